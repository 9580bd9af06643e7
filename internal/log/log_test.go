package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() {
		if err := SetLevel("info"); err != nil {
			t.Fatalf("failed to restore level: %v", err)
		}
	})

	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"blank defaults to info", "", false},
		{"debug", "debug", false},
		{"warn", "warn", false},
		{"warning alias", "WARNING", false},
		{"error", "Error", false},
		{"unknown", "verbose", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetLevel(tt.level)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetLevel(%q) error = %v, wantErr %t", tt.level, err, tt.wantErr)
			}
		})
	}
}

func TestReplaceLoggerRejectsNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil logger")
		}
	}()
	ReplaceLogger(nil)
}

func TestLoggerOutputUsesRenamedKeys(t *testing.T) {
	var buf bytes.Buffer
	original := Logger()
	t.Cleanup(func() { ReplaceLogger(original) })

	ReplaceLogger(slog.New(newHandler(&buf)))
	Info(context.Background(), "planting recorded", "plantingId", 7)

	out := buf.String()
	if !strings.Contains(out, "msg=\"planting recorded\"") {
		t.Fatalf("expected renamed message key in output, got %q", out)
	}
	if !strings.Contains(out, "level=info") {
		t.Fatalf("expected lowercase level key in output, got %q", out)
	}
	if !strings.Contains(out, "ts=") {
		t.Fatalf("expected ts key in output, got %q", out)
	}
	if !strings.Contains(out, "plantingId=7") {
		t.Fatalf("expected structured attribute in output, got %q", out)
	}
}

func TestErrorLogsWithNilContext(t *testing.T) {
	var buf bytes.Buffer
	original := Logger()
	t.Cleanup(func() { ReplaceLogger(original) })

	ReplaceLogger(slog.New(newHandler(&buf)))
	Error(nil, "database unavailable") //nolint:staticcheck

	if !strings.Contains(buf.String(), "database unavailable") {
		t.Fatalf("expected message in output, got %q", buf.String())
	}
}
