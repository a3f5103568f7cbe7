package logger

import (
	"os"

	"go.uber.org/zap"
)

var logger *zap.SugaredLogger

type Logger struct {
	*zap.SugaredLogger
}

func GetLogger() Logger {
	if logger == nil {
		logger = newZap().Sugar()
	}

	return Logger{SugaredLogger: logger}
}

func newZap() *zap.Logger {
	// JSON output inside Lambda, console output locally
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		zaplog, _ := zap.NewProduction()
		return zaplog
	}

	zaplog, _ := zap.NewDevelopment()
	return zaplog
}
