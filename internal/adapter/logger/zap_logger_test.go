package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerAdapter_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewWithZap(zap.New(core))

	l.Debug("dropped below level", nil)
	l.Info("Vehicle looked up", map[string]interface{}{
		"registration": "191-D-12345",
		"year":         2019,
	})
	l.Error("Failed to save profile", map[string]interface{}{"error": "boom"})

	if logs.Len() != 2 {
		t.Fatalf("entries = %d, want 2", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Message != "Vehicle looked up" || entry.Level != zapcore.InfoLevel {
		t.Errorf("entry = %+v", entry)
	}
	fields := entry.ContextMap()
	if fields["registration"] != "191-D-12345" || fields["year"] != int64(2019) {
		t.Errorf("fields = %v", fields)
	}
	if got := logs.FilterLevelExact(zapcore.ErrorLevel).Len(); got != 1 {
		t.Errorf("error entries = %d, want 1", got)
	}
}

func TestNewLoggerAdapter(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		if l := NewLoggerAdapter(env); l == nil || l.logger == nil {
			t.Errorf("NewLoggerAdapter(%q) returned no logger", env)
		}
	}
}
