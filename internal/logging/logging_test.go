package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelWarn)

	l.Info("hidden")
	l.Warn("query failed", "scope", "folders")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %q", out)
	}
	if !strings.Contains(out, "query failed") || !strings.Contains(out, "scope=folders") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestOpenFile_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "iv.log")

	for _, msg := range []string{"first", "second"} {
		l, f, err := OpenFile(path, slog.LevelInfo)
		if err != nil {
			t.Fatalf("OpenFile() error = %v", err)
		}
		l.Info(msg)
		f.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Errorf("log file = %q, want both records", data)
	}
}

func TestNop(t *testing.T) {
	var l Logger = Nop{}
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
}
