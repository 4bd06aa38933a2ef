package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { setLogger(nil) })

	var buf bytes.Buffer
	setLogger(newTextLogger(&buf, slog.LevelInfo))
	logger().Debug("hidden")
	logger().Info("world uploaded", "cubes", 1)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record written at info level: %q", out)
	}
	if !strings.Contains(out, "cubes=1") {
		t.Errorf("missing info record: %q", out)
	}

	setLogger(nil)
	if logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}
