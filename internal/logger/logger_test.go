package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"

	"todoseed/internal/logger"
)

func TestNew_DefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, false, false)

	log.Debug("hidden")
	log.Info("shown", zap.String("project", "motodo-app"))

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("debug line should be suppressed, got %q", got)
	}
	if !strings.Contains(got, "INFO\tshown") {
		t.Errorf("expected info line, got %q", got)
	}
	if !strings.Contains(got, `"project": "motodo-app"`) {
		t.Errorf("expected project field, got %q", got)
	}
}

func TestNew_Debug(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, true, false)

	log.Debug("visible")

	if !strings.Contains(buf.String(), "DEBUG\tvisible") {
		t.Errorf("expected debug line, got %q", buf.String())
	}
}

func TestNew_Quiet(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, false, true)

	log.Info("informational")
	log.Warn("warning")
	log.Error("failure")

	got := buf.String()
	if strings.Contains(got, "informational") || strings.Contains(got, "warning") {
		t.Errorf("quiet logger should only emit errors, got %q", got)
	}
	if !strings.Contains(got, "ERROR\tfailure") {
		t.Errorf("expected error line, got %q", got)
	}
}
