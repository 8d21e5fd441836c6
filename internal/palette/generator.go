// Package palette builds small curated palettes around a base color from
// the 6x6x6 ANSI color cube. A palette is a deduplicated, ordered set of
// related colors: the base and its complement, two analogous hues, shades
// and tints, fixed neutrals, single-channel nudges, and finally random
// jitter around the base to reach the requested size.
package palette

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ddoxey/ansicolormanager/internal/color"
	"github.com/ddoxey/ansicolormanager/internal/constants"
)

// DefaultSize is the palette size produced when the caller has no
// preference.
const DefaultSize = constants.DefaultPaletteSize

// ExhaustedPaletteSpaceError reports that the jitter fill could not reach
// the requested palette size. The jitter step only explores a bounded
// neighborhood of the base color, so sufficiently large requests are not
// satisfiable.
type ExhaustedPaletteSpaceError struct {
	Requested int
	Reached   int
}

// Error implements the error interface
func (e *ExhaustedPaletteSpaceError) Error() string {
	return fmt.Sprintf("palette space exhausted: reached %d of %d requested colors",
		e.Reached, e.Requested)
}

// Generator produces palettes using an injectable random source, so tests
// can seed the jitter step deterministically.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator using the given random source. A nil
// source gets a time-seeded one.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate builds a palette of exactly size distinct colors related to
// base. The deterministic steps run first, in a fixed order, so palettes
// that need no random fill are stable across runs; the returned slice
// preserves first-insertion order. A non-positive size yields an empty
// palette. ExhaustedPaletteSpaceError is returned when size exceeds the
// colors reachable from base.
func Generate(base color.Color, size int) ([]color.Color, error) {
	return NewGenerator(nil).Generate(base, size)
}

// Generate builds a palette of exactly size distinct colors related to
// base. See the package-level Generate for the contract.
func (g *Generator) Generate(base color.Color, size int) ([]color.Color, error) {
	if size <= 0 {
		return nil, nil
	}

	set := newColorSet()
	set.add(base)
	set.add(base.Complementary())

	analogous, err := analogousHues(base)
	if err != nil {
		return nil, err
	}
	set.addAll(analogous)
	set.addAll(shadesAndTints(base))
	set.addAll(neutrals())
	set.addAll(channelNudges(base))

	// Random fill toward the requested size. Offsets wrap around the cube
	// instead of clamping, unlike the deterministic steps above.
	attempts := 0
	for set.len() < size {
		if attempts >= constants.MaxJitterAttempts {
			return nil, &ExhaustedPaletteSpaceError{Requested: size, Reached: set.len()}
		}
		attempts++
		set.add(g.jitter(base))
	}

	return set.colors()[:size], nil
}

// jitter nudges every channel of base by a shared random sign and an
// independent random magnitude of 1 or 2, wrapping mod 6.
func (g *Generator) jitter(base color.Color) color.Color {
	sign := 1
	if g.rng.Intn(2) == 0 {
		sign = -1
	}
	wrap := func(ch int) int {
		ch += sign * (1 + g.rng.Intn(2))
		return (ch%constants.ChannelSteps + constants.ChannelSteps) % constants.ChannelSteps
	}
	return color.Color{R: wrap(base.R), G: wrap(base.G), B: wrap(base.B)}
}

// analogousHues returns the two cube colors nearest to base at hue
// offsets of plus and minus 30 degrees, holding saturation and lightness
// fixed. This is the one step that leaves the cube: channels are scaled
// to the 0-255 range, round-tripped through HSL, and truncated back to
// cube steps.
func analogousHues(base color.Color) ([]color.Color, error) {
	c := colorful.Color{
		R: float64(base.R*constants.ChannelScale) / 255,
		G: float64(base.G*constants.ChannelScale) / 255,
		B: float64(base.B*constants.ChannelScale) / 255,
	}
	h, s, l := c.Hsl()

	out := make([]color.Color, 0, 2)
	for _, offset := range []float64{30, -30} {
		hue := math.Mod(h+offset+360, 360)
		rgb := colorful.Hsl(hue, s, l)
		cube, err := color.New(
			truncateToCube(rgb.R),
			truncateToCube(rgb.G),
			truncateToCube(rgb.B),
		)
		if err != nil {
			return nil, err
		}
		out = append(out, cube)
	}
	return out, nil
}

// truncateToCube maps a normalized 0-1 channel back to a 0-5 cube step,
// truncating toward zero.
func truncateToCube(f float64) int {
	ch := int(f * 255 / constants.ChannelScale)
	if ch < constants.ChannelMin {
		return constants.ChannelMin
	}
	if ch > constants.ChannelMax {
		return constants.ChannelMax
	}
	return ch
}

// shadesAndTints derives four variants of base by integer division: a
// half and a third step toward black, and a half and a third step toward
// white, each channel independently.
func shadesAndTints(base color.Color) []color.Color {
	max := constants.ChannelMax
	return []color.Color{
		{R: base.R / 2, G: base.G / 2, B: base.B / 2},
		{R: base.R + (max-base.R)/2, G: base.G + (max-base.G)/2, B: base.B + (max-base.B)/2},
		{R: base.R / 3, G: base.G / 3, B: base.B / 3},
		{R: base.R + (max-base.R)/3, G: base.G + (max-base.G)/3, B: base.B + (max-base.B)/3},
	}
}

// neutrals returns the three fixed grays every palette carries,
// independent of the base color.
func neutrals() []color.Color {
	return []color.Color{
		{R: 5, G: 5, B: 5},
		{R: 1, G: 1, B: 1},
		{R: 3, G: 3, B: 3},
	}
}

// channelNudges returns the six variants of base with exactly one channel
// moved one step up or down, clamped at the cube faces.
func channelNudges(base color.Color) []color.Color {
	up := func(ch int) int {
		if ch >= constants.ChannelMax {
			return constants.ChannelMax
		}
		return ch + 1
	}
	down := func(ch int) int {
		if ch <= constants.ChannelMin {
			return constants.ChannelMin
		}
		return ch - 1
	}
	return []color.Color{
		{R: up(base.R), G: base.G, B: base.B},
		{R: base.R, G: up(base.G), B: base.B},
		{R: base.R, G: base.G, B: up(base.B)},
		{R: down(base.R), G: base.G, B: base.B},
		{R: base.R, G: down(base.G), B: base.B},
		{R: base.R, G: base.G, B: down(base.B)},
	}
}
