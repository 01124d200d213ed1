package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rocreport/internal/metrics"
)

func sampleEvaluation() *Evaluation {
	return &Evaluation{
		Model:          "SVM",
		DataPath:       "data/applications.csv",
		LabelColumn:    "default",
		Seed:           42,
		TrainShare:     0.7,
		TrainRows:      700,
		TestRows:       300,
		Threshold:      0.5,
		Confusion:      metrics.ConfusionMatrix{TP: 40, FP: 10, TN: 230, FN: 20},
		Accuracy:       0.9,
		Precision:      0.8,
		Sensitivity:    0.667,
		Specificity:    0.958,
		F1:             0.727,
		AUC:            0.87,
		PRAUC:          0.74,
		Discrimination: metrics.DiscriminationExcellent,
		GeneratedAt:    time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestEvaluationRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "eval.json")
	ev := sampleEvaluation()
	require.NoError(t, ev.Save(path))

	got, err := LoadEvaluation(path)
	require.NoError(t, err)
	assert.Equal(t, ev, got)
}

func TestLoadEvaluationMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadEvaluation(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestRenderHTML(t *testing.T) {
	t.Parallel()

	body, err := RenderHTML(sampleEvaluation(), "/static/roc_curve.png")
	require.NoError(t, err)
	html := string(body)

	assert.Contains(t, html, "Excellent")
	assert.Contains(t, html, "0.870")
	assert.Contains(t, html, `<img src="/static/roc_curve.png"`)
	assert.Contains(t, html, "ROC curve")
	// narrative rendered from markdown
	assert.Contains(t, html, "<strong>confusion matrix</strong>")
}

func TestPlotROCWritesPNG(t *testing.T) {
	t.Parallel()

	points := []metrics.ROCPoint{
		{FPR: 0, TPR: 0}, {FPR: 0.1, TPR: 0.6}, {FPR: 0.3, TPR: 0.9}, {FPR: 1, TPR: 1},
	}
	path := filepath.Join(t.TempDir(), "roc.png")
	require.NoError(t, PlotROC(path, points, 0.85))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPlotROCNoPoints(t *testing.T) {
	t.Parallel()

	assert.Error(t, PlotROC(filepath.Join(t.TempDir(), "roc.png"), nil, 0))
}

func TestWriteHTMLInlinesChart(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	chart := filepath.Join(dir, "roc.png")
	points := []metrics.ROCPoint{{FPR: 0, TPR: 0}, {FPR: 1, TPR: 1}}
	require.NoError(t, PlotROC(chart, points, 0.5))

	out := filepath.Join(dir, "report.html")
	require.NoError(t, WriteHTML(out, sampleEvaluation(), chart))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), "data:image/png;base64,"))
}

func TestWritePDF(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	chart := filepath.Join(dir, "roc.png")
	points := []metrics.ROCPoint{{FPR: 0, TPR: 0}, {FPR: 1, TPR: 1}}
	require.NoError(t, PlotROC(chart, points, 0.5))

	out := filepath.Join(dir, "report.pdf")
	require.NoError(t, WritePDF(out, sampleEvaluation(), chart))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
