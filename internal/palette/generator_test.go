package palette

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/ddoxey/ansicolormanager/internal/color"
)

func seededGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

func TestGenerateSizeAndDistinctness(t *testing.T) {
	bases := []color.Color{
		{R: 0, G: 2, B: 2},
		{R: 2, G: 0, B: 2},
		{R: 5, G: 0, B: 0},
		{R: 0, G: 0, B: 0},
		{R: 5, G: 5, B: 5},
		{R: 3, G: 3, B: 3},
	}

	gen := seededGenerator(1)
	for _, base := range bases {
		colors, err := gen.Generate(base, DefaultSize)
		if err != nil {
			t.Fatalf("Generate(%v, %d) returned error: %v", base, DefaultSize, err)
		}
		if len(colors) != DefaultSize {
			t.Fatalf("Generate(%v) returned %d colors, want %d", base, len(colors), DefaultSize)
		}
		seen := make(map[color.Color]struct{}, len(colors))
		for _, c := range colors {
			if _, dup := seen[c]; dup {
				t.Errorf("Generate(%v) returned duplicate color %v", base, c)
			}
			seen[c] = struct{}{}
			if _, err := color.New(c.R, c.G, c.B); err != nil {
				t.Errorf("Generate(%v) returned out-of-range color %v", base, c)
			}
		}
	}
}

func TestGenerateContainsBaseAndComplement(t *testing.T) {
	gen := seededGenerator(2)
	base := color.Color{R: 2, G: 2, B: 0}

	colors, err := gen.Generate(base, 2)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(colors) != 2 {
		t.Fatalf("Generate returned %d colors, want 2", len(colors))
	}
	if colors[0] != base {
		t.Errorf("first color = %v, want base %v", colors[0], base)
	}
	if colors[1] != base.Complementary() {
		t.Errorf("second color = %v, want complement %v", colors[1], base.Complementary())
	}
}

func TestGenerateTealScenario(t *testing.T) {
	base := color.Color{R: 0, G: 2, B: 2}
	colors, err := seededGenerator(3).Generate(base, 16)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	want := []color.Color{
		{R: 0, G: 2, B: 2}, // base
		{R: 5, G: 3, B: 3}, // complement
		{R: 5, G: 5, B: 5}, // neutrals
		{R: 1, G: 1, B: 1},
		{R: 3, G: 3, B: 3},
		{R: 1, G: 2, B: 2}, // single-channel nudge
	}

	set := make(map[color.Color]struct{}, len(colors))
	for _, c := range colors {
		set[c] = struct{}{}
	}
	for _, w := range want {
		if _, ok := set[w]; !ok {
			t.Errorf("palette missing expected color %v", w)
		}
	}
}

func TestGenerateNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		colors, err := seededGenerator(4).Generate(color.Color{R: 1, G: 1, B: 1}, size)
		if err != nil {
			t.Fatalf("Generate(size=%d) returned error: %v", size, err)
		}
		if len(colors) != 0 {
			t.Errorf("Generate(size=%d) returned %d colors, want 0", size, len(colors))
		}
	}
}

func TestGenerateSizeOne(t *testing.T) {
	base := color.Color{R: 4, G: 1, B: 0}
	colors, err := seededGenerator(5).Generate(base, 1)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(colors) != 1 || colors[0] != base {
		t.Errorf("Generate(size=1) = %v, want [%v]", colors, base)
	}
}

func TestGenerateSeededDeterminism(t *testing.T) {
	base := color.Color{R: 2, G: 0, B: 2}

	first, err := seededGenerator(42).Generate(base, DefaultSize)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	second, err := seededGenerator(42).Generate(base, DefaultSize)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("seeded runs disagree on length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("seeded runs disagree at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestGenerateExhaustedSpace(t *testing.T) {
	// The jitter step only wraps each channel by 1 or 2 with a shared
	// sign, so the reachable neighborhood is far smaller than the cube.
	_, err := seededGenerator(6).Generate(color.Color{R: 0, G: 2, B: 2}, 64)
	if err == nil {
		t.Fatal("Generate(size=64) expected error, got nil")
	}
	var exhausted *ExhaustedPaletteSpaceError
	if !errors.As(err, &exhausted) {
		t.Fatalf("error type = %T, want *ExhaustedPaletteSpaceError", err)
	}
	if exhausted.Requested != 64 {
		t.Errorf("Requested = %d, want 64", exhausted.Requested)
	}
	if exhausted.Reached >= 64 {
		t.Errorf("Reached = %d, expected fewer than requested", exhausted.Reached)
	}
}

func TestShadesAndTints(t *testing.T) {
	base := color.Color{R: 0, G: 2, B: 2}
	got := shadesAndTints(base)

	want := []color.Color{
		{R: 0, G: 1, B: 1}, // half darken
		{R: 2, G: 3, B: 3}, // half lighten
		{R: 0, G: 0, B: 0}, // third darken
		{R: 1, G: 3, B: 3}, // third lighten
	}

	if len(got) != len(want) {
		t.Fatalf("shadesAndTints returned %d colors, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("shadesAndTints[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestChannelNudgesClampAtFaces(t *testing.T) {
	got := channelNudges(color.Color{R: 5, G: 0, B: 3})

	want := []color.Color{
		{R: 5, G: 0, B: 3}, // red up, clamped
		{R: 5, G: 1, B: 3},
		{R: 5, G: 0, B: 4},
		{R: 4, G: 0, B: 3},
		{R: 5, G: 0, B: 3}, // green down, clamped
		{R: 5, G: 0, B: 2},
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("channelNudges[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAnalogousHues(t *testing.T) {
	for r := 0; r <= 5; r++ {
		for g := 0; g <= 5; g++ {
			for b := 0; b <= 5; b++ {
				base := color.Color{R: r, G: g, B: b}
				got, err := analogousHues(base)
				if err != nil {
					t.Fatalf("analogousHues(%v) returned error: %v", base, err)
				}
				if len(got) != 2 {
					t.Fatalf("analogousHues(%v) returned %d colors, want 2", base, len(got))
				}
				// The round trip is pure, so repeating it must agree.
				again, err := analogousHues(base)
				if err != nil {
					t.Fatalf("analogousHues(%v) returned error on repeat: %v", base, err)
				}
				if got[0] != again[0] || got[1] != again[1] {
					t.Errorf("analogousHues(%v) is not deterministic", base)
				}
			}
		}
	}
}

func TestJitterWrapsAroundCube(t *testing.T) {
	gen := seededGenerator(7)
	base := color.Color{R: 0, G: 0, B: 5}

	// Every jittered color must stay in the cube; wrap-around means an
	// offset below 0 or above 5 lands on the far face instead of clamping.
	for i := 0; i < 1000; i++ {
		c := gen.jitter(base)
		if _, err := color.New(c.R, c.G, c.B); err != nil {
			t.Fatalf("jitter produced out-of-range color %v: %v", c, err)
		}
		if c == base {
			t.Errorf("jitter returned the base color unchanged")
		}
	}
}
