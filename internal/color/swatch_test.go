package color

import (
	"bytes"
	"strings"
	"testing"
)

func TestSwatchOverridesBackgroundIndex(t *testing.T) {
	// Cube black keeps a white foreground regardless of the overridden
	// background, which is how the demo reaches the system and grayscale
	// ranges.
	black := Color{}

	tests := []struct {
		name  string
		index int
		want  string
	}{
		{"system color", 3, "\x1b[48;5;3m\x1b[38;5;231mx\x1b[0m"},
		{"grayscale color", 240, "\x1b[48;5;240m\x1b[38;5;231mx\x1b[0m"},
		{"own cube index", 16, "\x1b[48;5;16m\x1b[38;5;231mx\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := black.At(tt.index).Sprint("x"); got != tt.want {
				t.Errorf("Sprint = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSwatchFprintln(t *testing.T) {
	var buf bytes.Buffer
	if err := (Color{}).At(0).Fprintln(&buf, "label"); err != nil {
		t.Fatalf("Fprintln returned error: %v", err)
	}
	out := buf.String()
	if !strings.HasSuffix(out, "\x1b[0m\n") {
		t.Errorf("output %q does not reset before the newline", out)
	}
}

func TestValidIndex(t *testing.T) {
	tests := []struct {
		index int
		want  bool
	}{
		{-1, false},
		{0, true},
		{15, true},
		{16, true},
		{231, true},
		{255, true},
		{256, false},
	}

	for _, tt := range tests {
		if got := ValidIndex(tt.index); got != tt.want {
			t.Errorf("ValidIndex(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}
