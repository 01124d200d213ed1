package main

import (
	"encoding/gob"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rocreport/internal/config"
	"rocreport/internal/data"
	"rocreport/internal/features"
	"rocreport/internal/models"
	"rocreport/internal/report"
	"rocreport/pkg/utils"
)

var model models.Model
var cfg *config.Config

func main() {
	logger := utils.Logger()
	defer logger.Sync()

	var err error
	cfg, err = config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	model = loadModel(cfg.Model.Algo, cfg.Model.Path)
	if model == nil {
		logger.Warn("No fitted model found, scoring endpoints will return 503",
			zap.String("path", cfg.Model.Path))
	} else {
		logger.Info("Model loaded", zap.String("model", model.Name()))
	}

	r := gin.Default()

	r.Static("/static", "cmd/api/static")
	r.GET("/report", handleReport)
	r.GET("/metrics", handleMetrics)

	api := r.Group("/")
	api.Use(apiKeyMiddleware)
	api.POST("/predict", handlePredict)
	api.POST("/batch", handleBatch)

	r.Run(":" + cfg.Server.Port)
}

// loadModel restores the gob artifact written by the trainer. The
// concrete type depends on the algorithm that produced it.
func loadModel(algo, path string) models.Model {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	dec := gob.NewDecoder(f)
	switch strings.ToLower(algo) {
	case "logreg":
		var lg models.Logistic
		if err := dec.Decode(&lg); err == nil && len(lg.Weights) > 0 {
			return &lg
		}
	default:
		var svm models.SVM
		if err := dec.Decode(&svm); err == nil && len(svm.Weights) > 0 {
			return &svm
		}
	}
	return nil
}

func apiKeyMiddleware(c *gin.Context) {
	key := cfg.Server.APIKey
	if key == "" {
		c.Next()
		return
	}
	if c.GetHeader("X-API-Key") != key {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.Next()
}

func handleReport(c *gin.Context) {
	ev, err := report.LoadEvaluation(cfg.Report.MetricsPath)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no evaluation found, run the trainer first"})
		return
	}
	body, err := report.RenderHTML(ev, "/static/"+filepath.Base(cfg.Report.ChartPath))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}

func handleMetrics(c *gin.Context) {
	ev, err := report.LoadEvaluation(cfg.Report.MetricsPath)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no evaluation found, run the trainer first"})
		return
	}
	c.JSON(http.StatusOK, ev)
}

type predictReq struct {
	ApplicantID  string  `json:"applicant_id"`
	Age          int     `json:"age"`
	Income       float64 `json:"income"`
	LoanAmount   float64 `json:"loan_amount"`
	TermMonths   int     `json:"term_months"`
	LatePayments int     `json:"late_payments"`
	Utilization  float64 `json:"utilization"`
	Employment   string  `json:"employment"`
	Housing      string  `json:"housing"`
}

func (r predictReq) applicant() data.Applicant {
	return data.Applicant{
		ApplicantID:  r.ApplicantID,
		Age:          r.Age,
		Income:       r.Income,
		LoanAmount:   r.LoanAmount,
		TermMonths:   r.TermMonths,
		LatePayments: r.LatePayments,
		Utilization:  r.Utilization,
		Employment:   r.Employment,
		Housing:      r.Housing,
	}
}

func handlePredict(c *gin.Context) {
	if model == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no fitted model, run the trainer first"})
		return
	}
	var req predictReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	v, _ := features.Vectorize(req.applicant())
	p := model.PredictProba([][]float64{v})[0]
	c.JSON(http.StatusOK, gin.H{
		"applicant_id": req.ApplicantID,
		"score":        p,
		"default":      p >= 0.5,
		"model":        model.Name(),
	})
}

func handleBatch(c *gin.Context) {
	if model == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no fitted model, run the trainer first"})
		return
	}
	var items []predictReq
	if err := c.BindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	X := make([][]float64, len(items))
	for i := range items {
		X[i], _ = features.Vectorize(items[i].applicant())
	}
	ps := model.PredictProba(X)
	out := make([]gin.H, len(items))
	for i := range items {
		out[i] = gin.H{
			"applicant_id": items[i].ApplicantID,
			"score":        ps[i],
			"default":      ps[i] >= 0.5,
		}
	}
	c.JSON(http.StatusOK, out)
}
