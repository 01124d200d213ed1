package report

import (
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/go-pdf/fpdf"
)

// WritePDF exports the evaluation as a one-page PDF with the ROC
// chart embedded.
func WritePDF(path string, ev *Evaluation, chartPath string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Classifier Evaluation Report")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Model: %s  |  Dataset: %s  |  Seed: %d  |  %d train / %d test rows",
		ev.Model, ev.DataPath, ev.Seed, ev.TrainRows, ev.TestRows))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Confusion matrix (threshold %.2f)", ev.Threshold))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	cmRows := [][3]string{
		{"", "Actual default", "Actual no default"},
		{"Predicted default", fmt.Sprintf("%d", ev.Confusion.TP), fmt.Sprintf("%d", ev.Confusion.FP)},
		{"Predicted no default", fmt.Sprintf("%d", ev.Confusion.FN), fmt.Sprintf("%d", ev.Confusion.TN)},
	}
	for _, row := range cmRows {
		pdf.CellFormat(50, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, row[1], "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, row[2], "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Metrics")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	rows := [][2]string{
		{"Accuracy", fmt.Sprintf("%.3f", ev.Accuracy)},
		{"Precision", fmt.Sprintf("%.3f", ev.Precision)},
		{"Sensitivity", fmt.Sprintf("%.3f", ev.Sensitivity)},
		{"Specificity", fmt.Sprintf("%.3f", ev.Specificity)},
		{"F1", fmt.Sprintf("%.3f", ev.F1)},
		{"ROC AUC", fmt.Sprintf("%.3f", ev.AUC)},
		{"PR AUC", fmt.Sprintf("%.3f", ev.PRAUC)},
		{"Discrimination", ev.Discrimination},
	}
	for _, row := range rows {
		pdf.CellFormat(50, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, row[1], "1", 1, "R", false, 0, "")
	}

	if chartPath != "" {
		if _, err := os.Stat(chartPath); err == nil {
			pdf.Ln(4)
			pdf.ImageOptions(chartPath, 30, pdf.GetY(), 140, 0, false,
				fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return pdf.OutputFileAndClose(path)
}
