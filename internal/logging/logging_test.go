package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestCategoryAndLevelTags(t *testing.T) {
	var buf bytes.Buffer
	l := New("Generation", LevelDebug, &buf)
	l.Infof("placed %d rooms", 7)

	out := buf.String()
	if !strings.Contains(out, "[INFO]") {
		t.Errorf("expected level tag in %q", out)
	}
	if !strings.Contains(out, "[Generation]") {
		t.Errorf("expected category tag in %q", out)
	}
	if !strings.Contains(out, "placed 7 rooms") {
		t.Errorf("expected formatted message in %q", out)
	}
}

func TestMinLevelSuppresses(t *testing.T) {
	var buf bytes.Buffer
	l := New("Generation", LevelWarn, &buf)
	l.Debugf("hidden")
	l.Infof("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug/info should be suppressed at warn level, got %q", buf.String())
	}
	l.Warnf("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn should pass at warn level")
	}
}

func TestNopDiscards(t *testing.T) {
	// Must not panic and must not write anywhere.
	l := Nop()
	l.Debugf("x")
	l.Infof("x %d", 1)
	l.Warnf("x")
	l.Errorf("x")
}
