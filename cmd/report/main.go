package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"rocreport/internal/config"
	"rocreport/internal/report"
	"rocreport/pkg/utils"
)

func main() {
	logger := utils.Logger()
	defer logger.Sync()

	cfg := config.Default()

	cfgPath := flag.String("config", os.Getenv("CONFIG_FILE"), "YAML config file")
	metricsPath := flag.String("metrics", cfg.Report.MetricsPath, "Evaluation artifact from the trainer")
	chartPath := flag.String("chart", cfg.Report.ChartPath, "ROC curve PNG from the trainer")
	htmlOut := flag.String("html", cfg.Report.HTMLPath, "Standalone HTML report")
	pdfOut := flag.String("pdf", cfg.Report.PDFPath, "PDF report (empty to skip)")
	flag.Parse()

	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			logger.Fatal("Failed to load config", zap.Error(err))
		}
		set := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if !set["metrics"] {
			*metricsPath = loaded.Report.MetricsPath
		}
		if !set["chart"] {
			*chartPath = loaded.Report.ChartPath
		}
		if !set["html"] {
			*htmlOut = loaded.Report.HTMLPath
		}
		if !set["pdf"] {
			*pdfOut = loaded.Report.PDFPath
		}
	}

	ev, err := report.LoadEvaluation(*metricsPath)
	if err != nil {
		logger.Fatal("Failed to load evaluation (run the trainer first)", zap.Error(err))
	}

	if err := report.WriteHTML(*htmlOut, ev, *chartPath); err != nil {
		logger.Fatal("Failed to write HTML report", zap.Error(err))
	}
	logger.Info("HTML report written", zap.String("path", *htmlOut))

	if *pdfOut != "" {
		if err := report.WritePDF(*pdfOut, ev, *chartPath); err != nil {
			logger.Fatal("Failed to write PDF report", zap.Error(err))
		}
		logger.Info("PDF report written", zap.String("path", *pdfOut))
	}
}
