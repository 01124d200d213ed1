package report

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"rocreport/internal/metrics"
)

// PlotROC renders the ROC curve to a PNG: the curve with its area
// shaded, a dashed diagonal for the no-skill reference, and the AUC
// annotated at a fixed position.
func PlotROC(path string, points []metrics.ROCPoint, auc float64) error {
	if len(points) == 0 {
		return fmt.Errorf("no ROC points to plot")
	}

	p := plot.New()
	p.Title.Text = "ROC Curve"
	p.X.Label.Text = "False Positive Rate (1 - Specificity)"
	p.Y.Label.Text = "True Positive Rate (Sensitivity)"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	pts := make(plotter.XYs, len(points))
	for i, pt := range points {
		pts[i].X = pt.FPR
		pts[i].Y = pt.TPR
	}
	curve, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	curve.LineStyle.Width = vg.Points(1.5)
	curve.LineStyle.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	curve.FillColor = color.RGBA{R: 31, G: 119, B: 180, A: 60}

	diag, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return err
	}
	diag.LineStyle.Color = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	diag.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}

	annot, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: 0.62, Y: 0.12}},
		Labels: []string{fmt.Sprintf("AUC = %.3f", auc)},
	})
	if err != nil {
		return err
	}

	p.Add(curve, diag, annot)
	p.Legend.Add("ROC", curve)
	p.Legend.Add("chance", diag)
	p.Legend.Top = false
	p.Legend.Left = false

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}
