package logutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	logger := GetLogger("foo ")
	defer SetOutput(io.Discard)

	var sb strings.Builder
	SetOutput(&sb)
	logger.Println("out 1")
	if got := sb.String(); !strings.Contains(got, "foo ") || !strings.HasSuffix(got, "out 1\n") {
		t.Errorf("got %q, want a line with prefix and message", got)
	}

	fname := filepath.Join(t.TempDir(), "log")
	if err := SetOutputFile(fname); err != nil {
		t.Fatal(err)
	}
	logger.Println("out 2")
	SetOutput(io.Discard)
	logger.Println("out 3")

	content, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if s := string(content); !strings.HasSuffix(s, "out 2\n") || strings.Contains(s, "out 3") {
		t.Errorf("log file has %q, want only out 2", s)
	}
	if strings.Contains(sb.String(), "out 2") {
		t.Errorf("old output still receives logs")
	}
}

func TestSetOutputFile_Error(t *testing.T) {
	err := SetOutputFile(filepath.Join(t.TempDir(), "no", "such", "dir", "log"))
	if err == nil {
		t.Errorf("SetOutputFile to a nonexistent directory returns nil error")
	}
}
