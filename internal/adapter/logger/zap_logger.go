package logger

import (
	"go.uber.org/zap"
)

type LoggerAdapter struct {
	logger *zap.Logger
}

// NewLoggerAdapter picks the development encoder outside production.
func NewLoggerAdapter(env string) *LoggerAdapter {
	var (
		logger *zap.Logger
		err    error
	)
	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		logger = zap.NewNop()
	}
	return &LoggerAdapter{logger: logger}
}

// NewWithZap wraps an existing zap logger, e.g. zaptest or zap.NewNop.
func NewWithZap(logger *zap.Logger) *LoggerAdapter {
	return &LoggerAdapter{logger: logger}
}

func toZapFields(fields map[string]interface{}) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

func (l *LoggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, toZapFields(fields)...)
}

func (l *LoggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, toZapFields(fields)...)
}

func (l *LoggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, toZapFields(fields)...)
}

func (l *LoggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, toZapFields(fields)...)
}

func (l *LoggerAdapter) Sync() error {
	return l.logger.Sync()
}
