package main

import (
	"encoding/csv"
	"encoding/gob"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"go.uber.org/zap"

	"rocreport/internal/config"
	"rocreport/internal/data"
	"rocreport/internal/features"
	"rocreport/internal/metrics"
	"rocreport/internal/models"
	"rocreport/internal/report"
	"rocreport/pkg/utils"
)

func main() {
	logger := utils.Logger()
	defer logger.Sync()

	cfg := config.Default()

	cfgPath := flag.String("config", os.Getenv("CONFIG_FILE"), "YAML config file")
	regen := flag.Bool("regen", false, "Regenerate the synthetic dataset")
	n := flag.Int("n", 20000, "Number of synthetic records")
	rate := flag.Float64("rate", 0.12, "Base default rate for synthetic data")
	dataPath := flag.String("data", cfg.Data.Path, "Input CSV")
	label := flag.String("label", cfg.Data.LabelColumn, "Binary outcome column")
	trainShare := flag.Float64("train_share", cfg.Data.TrainShare, "Per-row probability of landing in the training set")
	seed := flag.Int64("seed", cfg.Data.Seed, "Seed for the split, the synthetic data and the model")
	algo := flag.String("algo", cfg.Model.Algo, "Algorithm: svm|logreg")
	lambda := flag.Float64("lambda", cfg.Model.Lambda, "L2 regularization for the SVM")
	epochs := flag.Int("epochs", cfg.Model.Epochs, "Training epochs")
	lr := flag.Float64("lr", cfg.Model.LearningRate, "Learning rate for logistic regression")
	threshold := flag.Float64("threshold", cfg.Model.Threshold, "Classification threshold for the confusion matrix")
	modelOut := flag.String("model_out", cfg.Model.Path, "Path for the serialized model")
	chartOut := flag.String("chart", cfg.Report.ChartPath, "PNG of the ROC curve")
	metricsOut := flag.String("metrics", cfg.Report.MetricsPath, "JSON evaluation artifact")
	curve := flag.Bool("curve", false, "Generate a learning curve (PNG and CSV)")
	curvePoints := flag.Int("curve_points", 8, "Points on the learning curve")
	curveImg := flag.String("curve_out_img", "cmd/api/static/learning_curve.png", "PNG of the learning curve")
	curveCsv := flag.String("curve_out_csv", "reports/learning_curve.csv", "CSV of the learning curve")
	flag.Parse()

	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			logger.Fatal("Failed to load config", zap.Error(err))
		}
		cfg = loaded
		set := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if !set["data"] {
			*dataPath = cfg.Data.Path
		}
		if !set["label"] {
			*label = cfg.Data.LabelColumn
		}
		if !set["train_share"] {
			*trainShare = cfg.Data.TrainShare
		}
		if !set["seed"] {
			*seed = cfg.Data.Seed
		}
		if !set["algo"] {
			*algo = cfg.Model.Algo
		}
		if !set["lambda"] {
			*lambda = cfg.Model.Lambda
		}
		if !set["epochs"] {
			*epochs = cfg.Model.Epochs
		}
		if !set["lr"] {
			*lr = cfg.Model.LearningRate
		}
		if !set["threshold"] {
			*threshold = cfg.Model.Threshold
		}
		if !set["model_out"] {
			*modelOut = cfg.Model.Path
		}
		if !set["chart"] {
			*chartOut = cfg.Report.ChartPath
		}
		if !set["metrics"] {
			*metricsOut = cfg.Report.MetricsPath
		}
	}

	if *regen {
		logger.Info("Generating synthetic dataset", zap.Int("n", *n), zap.String("out", *dataPath))
		if err := data.Generate(*n, *rate, *seed, *dataPath); err != nil {
			logger.Fatal("Failed to generate dataset", zap.Error(err))
		}
	}

	ds, err := data.Load(*dataPath, *label)
	if err != nil {
		logger.Fatal("Failed to load dataset", zap.Error(err))
	}

	X := make([][]float64, len(ds.Applicants))
	y := ds.Labels
	for i, a := range ds.Applicants {
		X[i], _ = features.Vectorize(a)
	}

	var pos, neg int
	for i := range y {
		if y[i] == 1 {
			pos++
		} else {
			neg++
		}
	}
	logger.Info("Class distribution", zap.Int("positive", pos), zap.Int("negative", neg))

	trainIdx, testIdx := data.Split(len(X), *trainShare, *seed)
	if err := data.CheckBalance(y, trainIdx, testIdx); err != nil {
		logger.Fatal("Degenerate train/test split", zap.Error(err))
	}
	Xtrain, ytrain := gather(X, y, trainIdx)
	Xtest, ytest := gather(X, y, testIdx)

	mdl := buildModel(*algo, *lambda, *epochs, *lr, *seed)
	if err := mdl.Fit(Xtrain, ytrain); err != nil {
		logger.Fatal("Failed to train model", zap.Error(err))
	}

	scores := mdl.PredictProba(Xtest)
	cm := metrics.Confusion(ytest, scores, *threshold)
	auc := metrics.AUC(ytest, scores)
	prauc := metrics.PRAUC(ytest, scores)
	tier := metrics.Discrimination(auc)

	logger.Info("Holdout metrics",
		zap.String("model", mdl.Name()),
		zap.Float64("accuracy", cm.Accuracy()),
		zap.Float64("precision", cm.Precision()),
		zap.Float64("sensitivity", cm.Sensitivity()),
		zap.Float64("specificity", cm.Specificity()),
		zap.Float64("f1", cm.F1()),
		zap.Float64("roc_auc", auc),
		zap.Float64("pr_auc", prauc),
		zap.String("discrimination", tier),
	)

	points := metrics.Curve(ytest, scores)
	if err := report.PlotROC(*chartOut, points, auc); err != nil {
		logger.Fatal("Failed to plot ROC curve", zap.Error(err))
	}
	logger.Info("ROC curve saved", zap.String("path", *chartOut))

	ev := &report.Evaluation{
		Model:          mdl.Name(),
		DataPath:       *dataPath,
		LabelColumn:    *label,
		Seed:           *seed,
		TrainShare:     *trainShare,
		TrainRows:      len(trainIdx),
		TestRows:       len(testIdx),
		Threshold:      *threshold,
		Confusion:      cm,
		Accuracy:       cm.Accuracy(),
		Precision:      cm.Precision(),
		Sensitivity:    cm.Sensitivity(),
		Specificity:    cm.Specificity(),
		F1:             cm.F1(),
		AUC:            auc,
		PRAUC:          prauc,
		Discrimination: tier,
		GeneratedAt:    time.Now().UTC(),
	}
	if err := ev.Save(*metricsOut); err != nil {
		logger.Fatal("Failed to save evaluation", zap.Error(err))
	}
	logger.Info("Evaluation saved", zap.String("path", *metricsOut))

	if err := saveModel(*modelOut, mdl); err != nil {
		logger.Fatal("Failed to save model", zap.Error(err))
	}
	logger.Info("Model saved", zap.String("path", *modelOut))
	fmt.Println("Model:", mdl.Name(), "| AUC:", strconv.FormatFloat(auc, 'f', 4, 64), "|", tier)

	if *curve {
		sizes := computeCurveSizes(len(Xtrain), *curvePoints, 200)
		trainAcc := make([]float64, len(sizes))
		testAcc := make([]float64, len(sizes))
		trainF1 := make([]float64, len(sizes))
		testF1 := make([]float64, len(sizes))
		for k, s := range sizes {
			m := buildModel(*algo, *lambda, *epochs, *lr, *seed)
			if err := m.Fit(Xtrain[:s], ytrain[:s]); err != nil {
				logger.Fatal("Failed to train at curve point", zap.Error(err))
			}
			pTrain := metrics.Confusion(ytrain[:s], m.PredictProba(Xtrain[:s]), *threshold)
			pTest := metrics.Confusion(ytest, m.PredictProba(Xtest), *threshold)
			trainAcc[k] = pTrain.Accuracy()
			testAcc[k] = pTest.Accuracy()
			trainF1[k] = pTrain.F1()
			testF1[k] = pTest.F1()
		}
		if err := writeCurveCSV(*curveCsv, sizes, trainAcc, testAcc, trainF1, testF1); err != nil {
			logger.Warn("Failed to save curve CSV", zap.Error(err))
		}
		if err := plotCurvePNG(*curveImg, sizes, trainAcc, testAcc, trainF1, testF1); err != nil {
			logger.Warn("Failed to save curve PNG", zap.Error(err))
		} else {
			logger.Info("Learning curve generated", zap.String("png", *curveImg), zap.String("csv", *curveCsv))
		}
	}
}

func gather(X [][]float64, y []int, idx []int) ([][]float64, []int) {
	outX := make([][]float64, len(idx))
	outY := make([]int, len(idx))
	for i, j := range idx {
		outX[i] = X[j]
		outY[i] = y[j]
	}
	return outX, outY
}

func buildModel(algo string, lambda float64, epochs int, lr float64, seed int64) models.Model {
	switch algo {
	case "logreg":
		lg := models.NewLogistic()
		lg.LearningRate = lr
		lg.Epochs = epochs
		return lg
	default:
		svm := models.NewSVM()
		svm.Lambda = lambda
		svm.Epochs = epochs
		svm.Seed = seed
		return svm
	}
}

func saveModel(path string, mdl models.Model) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(mdl)
}

func computeCurveSizes(totalTrain, points, min int) []int {
	if points <= 1 {
		points = 2
	}
	if min > totalTrain {
		min = int(math.Max(10, float64(totalTrain)/2))
	}
	ratio := math.Pow(float64(totalTrain)/float64(min), 1.0/float64(points-1))
	sizes := make([]int, 0, points)
	last := -1
	for i := 0; i < points; i++ {
		s := int(math.Round(float64(min) * math.Pow(ratio, float64(i))))
		if s <= last {
			s = last + 1
		}
		if s > totalTrain {
			s = totalTrain
		}
		if s != last {
			sizes = append(sizes, s)
			last = s
		}
	}
	if sizes[len(sizes)-1] != totalTrain {
		sizes[len(sizes)-1] = totalTrain
	}
	return sizes
}

func writeCurveCSV(path string, sizes []int, trainAcc, testAcc, trainF1, testF1 []float64) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"size", "train_acc", "test_acc", "train_f1", "test_f1"}); err != nil {
		return err
	}
	for i := range sizes {
		rec := []string{
			strconv.Itoa(sizes[i]),
			fmt.Sprintf("%.6f", trainAcc[i]), fmt.Sprintf("%.6f", testAcc[i]),
			fmt.Sprintf("%.6f", trainF1[i]), fmt.Sprintf("%.6f", testF1[i]),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func plotCurvePNG(path string, sizes []int, trainAcc, testAcc, trainF1, testF1 []float64) error {
	p := plot.New()
	p.Title.Text = "Learning Curve"
	p.X.Label.Text = "Training samples"
	p.Y.Label.Text = "Metric"
	p.Y.Min = 0
	p.Y.Max = 1

	toXY := func(xs []int, ys []float64) plotter.XYs {
		pts := make(plotter.XYs, len(xs))
		for i := range xs {
			pts[i].X = float64(xs[i])
			pts[i].Y = ys[i]
		}
		return pts
	}
	if err := plotutil.AddLinePoints(p,
		"Train (Acc)", toXY(sizes, trainAcc),
		"Test (Acc)", toXY(sizes, testAcc),
		"Train (F1)", toXY(sizes, trainF1),
		"Test (F1)", toXY(sizes, testF1),
	); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
