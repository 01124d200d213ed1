package utils

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// Logger returns the process-wide zap logger. LOG_LEVEL picks the
// minimum level (default info); LOG_FILE adds a JSON log file next to
// the console output.
func Logger() *zap.Logger {
	if logger != nil {
		return logger
	}

	lvl := zapcore.InfoLevel
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if parsed, err := zapcore.ParseLevel(v); err == nil {
			lvl = parsed
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	consoleCore := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(os.Stdout), lvl)

	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logger = zap.New(consoleCore)
		return logger
	}
	_ = os.MkdirAll(filepath.Dir(logFile), 0o755)
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger = zap.New(consoleCore)
		return logger
	}
	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), lvl)
	logger = zap.New(zapcore.NewTee(fileCore, consoleCore))
	return logger
}
