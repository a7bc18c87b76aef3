package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func fixedLogger(cfg Config, buf *bytes.Buffer) *Logger {
	l := New(cfg, buf)
	l.now = func() time.Time { return time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC) }
	return l
}

func TestLog_FormatsSortedDetails(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(Config{Enabled: true, Level: LevelDebug}, &buf)

	l.Log(ActionStyle, 0, map[string]interface{}{"value": "pointer", "property": "cursor", "n": 2})

	want := "2026-10-16 09:30:00 [STYLE] window=0 n=2 property=\"cursor\" value=\"pointer\"\n"
	if got := buf.String(); got != want {
		t.Fatalf("log line = %q, want %q", got, want)
	}
}

func TestLog_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(Config{Enabled: true, Level: LevelWarn}, &buf)

	l.Log(ActionStyle, 0, nil)
	l.Log(ActionCreate, 0, nil)
	l.Log(ActionUnsupported, 0, map[string]interface{}{"op": "set_cursor_grab"})

	out := buf.String()
	if strings.Contains(out, "[STYLE]") || strings.Contains(out, "[CREATE]") {
		t.Fatalf("expected debug/info actions to be filtered, got %q", out)
	}
	if !strings.Contains(out, "[UNSUPPORTED]") {
		t.Fatalf("expected warn action to be written, got %q", out)
	}
}

func TestLog_DisabledAndNilAreSilent(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(Config{Enabled: false}, &buf)
	l.Log(ActionCreate, 0, nil)
	if buf.Len() != 0 {
		t.Fatalf("disabled logger wrote %q", buf.String())
	}

	var nilLogger *Logger
	nilLogger.Log(ActionCreate, 0, nil)
	if nilLogger.Enabled(ActionCreate) {
		t.Fatalf("nil logger must report disabled")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"":        LevelInfo,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
