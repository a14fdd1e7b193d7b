package capability

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_FiltersBelowMinLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LevelWarn, &buf)

	log.Debugf("debug line")
	log.Infof("info line")
	log.Warnf("warn line")
	log.Errorf("error line")

	out := buf.String()
	if strings.Contains(out, "debug line") || strings.Contains(out, "info line") {
		t.Errorf("lines below min level were written: %q", out)
	}
	if !strings.Contains(out, "warn line") || !strings.Contains(out, "error line") {
		t.Errorf("lines at or above min level are missing: %q", out)
	}
}

func TestLogger_FormatsArguments(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LevelDebug, &buf)

	log.Infof("turn %d: %s", 3, "draw")

	if !strings.Contains(buf.String(), "turn 3: draw") {
		t.Errorf("formatted output missing: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug": LevelDebug,
		"info":  LevelInfo,
		"warn":  LevelWarn,
		"error": LevelError,
		"bogus": LevelInfo,
		"":      LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
