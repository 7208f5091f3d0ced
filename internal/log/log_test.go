package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_WritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)
	logger.Warn("test message", "key", "value")

	out := buf.String()
	if !strings.Contains(out, "test message") {
		t.Errorf("expected 'test message' in output, got %q", out)
	}
	if !strings.Contains(out, "key=value") {
		t.Errorf("expected 'key=value' in output, got %q", out)
	}
}

func TestNew_SuppressesInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)
	logger.Info("quiet")
	logger.Debug("quieter")

	if buf.Len() != 0 {
		t.Errorf("expected no output below WARN, got %q", buf.String())
	}
}

func TestNewWithLevel_Debug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithLevel(&buf, slog.LevelDebug)
	logger.Debug("bootstrap", "path", "/tmp/pw.db")

	out := buf.String()
	if !strings.Contains(out, "level=DEBUG") {
		t.Errorf("expected DEBUG level in output, got %q", out)
	}
	if !strings.Contains(out, "path=/tmp/pw.db") {
		t.Errorf("expected path attr in output, got %q", out)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("dropped")
	if logger.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("discard logger should not be enabled for WARN")
	}
}
