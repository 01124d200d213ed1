package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
)

type Config struct {
	Data   DataConfig   `yaml:"data"`
	Model  ModelConfig  `yaml:"model"`
	Report ReportConfig `yaml:"report"`
	Server ServerConfig `yaml:"server"`
}

type DataConfig struct {
	Path        string  `yaml:"path"`
	LabelColumn string  `yaml:"label_column"`
	TrainShare  float64 `yaml:"train_share"`
	Seed        int64   `yaml:"seed"`
}

type ModelConfig struct {
	Algo         string  `yaml:"algo"`
	Lambda       float64 `yaml:"lambda"`
	Epochs       int     `yaml:"epochs"`
	LearningRate float64 `yaml:"learning_rate"`
	Threshold    float64 `yaml:"threshold"`
	Path         string  `yaml:"path"`
}

type ReportConfig struct {
	MetricsPath string `yaml:"metrics_path"`
	ChartPath   string `yaml:"chart_path"`
	HTMLPath    string `yaml:"html_path"`
	PDFPath     string `yaml:"pdf_path"`
}

type ServerConfig struct {
	Port   string `yaml:"port"`
	APIKey string `yaml:"api_key"`
}

// Default builds the configuration from environment variables with
// built-in fallbacks.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Path:        getEnv("DATA_PATH", "data/applications.csv"),
			LabelColumn: getEnv("LABEL_COLUMN", "default"),
			TrainShare:  getEnvFloat("TRAIN_SHARE", 0.7),
			Seed:        getEnvInt("SPLIT_SEED", 42),
		},
		Model: ModelConfig{
			Algo:         getEnv("MODEL_ALGO", "svm"),
			Lambda:       1e-4,
			Epochs:       20,
			LearningRate: 0.1,
			Threshold:    0.5,
			Path:         getEnv("MODEL_PATH", "models/svm_model.gob"),
		},
		Report: ReportConfig{
			MetricsPath: getEnv("METRICS_PATH", "reports/evaluation.json"),
			ChartPath:   getEnv("CHART_PATH", "cmd/api/static/roc_curve.png"),
			HTMLPath:    getEnv("REPORT_HTML", "reports/report.html"),
			PDFPath:     getEnv("REPORT_PDF", "reports/report.pdf"),
		},
		Server: ServerConfig{
			Port:   getEnv("PORT", "8080"),
			APIKey: getEnv("API_KEY", ""),
		},
	}
}

// Load returns Default overlaid with the YAML file at path. An empty
// path skips the file layer.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
