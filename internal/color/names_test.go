package color

import "testing"

func TestByName(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Color
		found bool
	}{
		{"teal", "teal", Color{0, 2, 2}, true},
		{"case insensitive", "Bright Red", Color{5, 0, 0}, true},
		{"surrounding space", " magenta ", Color{5, 0, 5}, true},
		{"unknown", "chartreuse", Color{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ByName(tt.query)
			if found != tt.found {
				t.Fatalf("ByName(%q) found = %v, want %v", tt.query, found, tt.found)
			}
			if got != tt.want {
				t.Errorf("ByName(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestNamedColorsAreValid(t *testing.T) {
	if len(Named) != 8 {
		t.Fatalf("len(Named) = %d, want 8", len(Named))
	}
	for _, nc := range Named {
		if _, err := New(nc.Color.R, nc.Color.G, nc.Color.B); err != nil {
			t.Errorf("named color %q has invalid channels: %v", nc.Name, err)
		}
	}
}
