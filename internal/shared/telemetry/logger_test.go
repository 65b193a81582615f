package telemetry

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestWriteUsesCurrentLogger(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	SetLogger(newLogger(&buf, "test", "info"))

	Warn("import.unsupported", map[string]any{"file": "notes.txt"})
	Info("debug-only", nil)

	var entry map[string]any
	line, _, _ := bytes.Cut(buf.Bytes(), []byte("\n"))
	if err := json.Unmarshal(line, &entry); err != nil {
		t.Fatalf("invalid json log: %v", err)
	}
	if entry["msg"] != "import.unsupported" || entry["level"] != "WARN" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if entry["file"] != "notes.txt" || entry["service"] != "test" {
		t.Fatalf("missing fields in %v", entry)
	}
}
