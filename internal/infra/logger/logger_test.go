package logger

import (
	"os"
	"strings"
	"testing"
)

func TestSetupWritesJSONLines(t *testing.T) {
	dir := t.TempDir()

	cleanup, err := Setup(Config{Dir: dir, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	L().Debug("test.entry", "key", "value")

	path := Path()
	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger: %v", err)
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "test.entry") {
		t.Fatalf("log missing entry: %s", b)
	}
	if err := IsReady(); err == nil {
		t.Fatal("expected logger not ready after cleanup")
	}
}
