package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesLogFile(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	want := filepath.Join(root, ".tablecipher", "logs", "tablecipher.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}
	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger: %v", err)
	}

	L().Info("round.ok", "columns", 3)
	L().Debug("round.start")

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if IsReady() == nil {
		t.Fatalf("expected logger reset after cleanup")
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	logs := string(b)
	if !strings.Contains(logs, `"msg":"logger.initialized"`) || !strings.Contains(logs, `"msg":"round.ok"`) {
		t.Fatalf("expected JSON events in log, got %s", logs)
	}
	if strings.Contains(logs, "round.start") {
		t.Fatalf("debug events must be filtered without --debug")
	}
}

func TestSetup_DebugTextToWriter(t *testing.T) {
	var buf bytes.Buffer

	cleanup, err := Setup(Config{Debug: true, Format: "text", Output: &buf})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	defer func() { _ = cleanup() }()

	L().Debug("round.start", "key", "312")

	out := buf.String()
	if !strings.Contains(out, "msg=round.start") || !strings.Contains(out, "key=312") {
		t.Fatalf("expected text debug event, got %q", out)
	}
	if !strings.Contains(out, "source=") {
		t.Fatalf("expected source attribute in debug mode, got %q", out)
	}
	if Path() != "" {
		t.Fatalf("expected no log file path, got %q", Path())
	}
}

func TestSetup_UnwritableRootFallsBackToDiscard(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, ".tablecipher")
	if err := os.WriteFile(blocker, []byte("file, not dir"), 0o644); err != nil {
		t.Fatal(err)
	}

	cleanup, err := Setup(Config{Root: root})
	if err == nil {
		t.Fatalf("expected error")
	}
	if cleanup != nil {
		t.Fatalf("expected nil cleanup on error")
	}
	if IsReady() == nil {
		t.Fatalf("expected discard logger")
	}
	L().Info("dropped")
}
