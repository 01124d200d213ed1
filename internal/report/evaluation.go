package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"rocreport/internal/metrics"
)

// Evaluation is the artifact the trainer writes and the report/API
// binaries read.
type Evaluation struct {
	Model          string                  `json:"model"`
	DataPath       string                  `json:"data_path"`
	LabelColumn    string                  `json:"label_column"`
	Seed           int64                   `json:"seed"`
	TrainShare     float64                 `json:"train_share"`
	TrainRows      int                     `json:"train_rows"`
	TestRows       int                     `json:"test_rows"`
	Threshold      float64                 `json:"threshold"`
	Confusion      metrics.ConfusionMatrix `json:"confusion_matrix"`
	Accuracy       float64                 `json:"accuracy"`
	Precision      float64                 `json:"precision"`
	Sensitivity    float64                 `json:"sensitivity"`
	Specificity    float64                 `json:"specificity"`
	F1             float64                 `json:"f1"`
	AUC            float64                 `json:"roc_auc"`
	PRAUC          float64                 `json:"pr_auc"`
	Discrimination string                  `json:"discrimination"`
	GeneratedAt    time.Time               `json:"generated_at"`
}

func (e *Evaluation) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func LoadEvaluation(path string) (*Evaluation, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read evaluation: %w", err)
	}
	var e Evaluation
	if err := json.Unmarshal(b, &e); err != nil {
		return nil, fmt.Errorf("parse evaluation %s: %w", path, err)
	}
	return &e, nil
}
