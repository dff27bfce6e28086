package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMultiHandlerFansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := multiHandler{
		slog.NewTextHandler(&a, nil),
		slog.NewJSONHandler(&b, nil),
	}
	log := slog.New(h)
	log.Info("hello", "k", "v")

	if !strings.Contains(a.String(), "hello") {
		t.Error("text handler missed the record")
	}
	if !strings.Contains(b.String(), `"msg":"hello"`) {
		t.Error("json handler missed the record")
	}
}

func TestMultiHandlerLevels(t *testing.T) {
	var buf bytes.Buffer
	h := multiHandler{
		slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug should be disabled when all handlers want warn")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled")
	}
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.log")
	log := New(Options{Level: slog.LevelInfo, FilePath: path})
	log.Info("file record")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file missing: %v", err)
	}
	if !strings.Contains(string(data), "file record") {
		t.Error("record not written to the file")
	}
}
