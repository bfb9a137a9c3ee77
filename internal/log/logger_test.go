package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelDebug, Component: ComponentStorage, Output: &buf})

	l.Debug("wrote key", FieldKey, "cards")
	out := buf.String()
	if !strings.Contains(out, "component=storage") {
		t.Errorf("output %q missing component", out)
	}
	if !strings.Contains(out, "key=cards") {
		t.Errorf("output %q missing key", out)
	}
}

func TestWithComponentDoesNotDuplicate(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelInfo, Component: ComponentApp, Output: &buf})

	l.WithComponent(ComponentLedger).Info("added card")
	out := buf.String()
	if strings.Count(out, "component=") != 1 {
		t.Errorf("output %q: want exactly one component attr", out)
	}
	if !strings.Contains(out, "component=ledger") {
		t.Errorf("output %q missing ledger component", out)
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelWarn, Output: &buf})

	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("records below Warn were written: %q", buf.String())
	}
	l.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warn record missing: %q", buf.String())
	}
}
