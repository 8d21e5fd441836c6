// Package color models a single color in the 6x6x6 cube of the ANSI
// 256-color palette. A Color holds three channels in the range 0-5 and
// derives everything else from them: its palette index, an approximate
// luminosity, a contrasting counterpart for readable text, and its
// complement. Colors are immutable values with structural equality, so
// they can be used directly as map keys.
package color

import (
	"fmt"
	"io"
	"math"

	"github.com/ddoxey/ansicolormanager/internal/constants"
)

// Luminosity channel weights, a Rec. 709 style approximation of perceived
// brightness applied to raw cube channels (not normalized to 0-1).
const (
	lumRed   = 0.2126
	lumGreen = 0.7152
	lumBlue  = 0.0722
)

// contrastThreshold splits the channel-weighted luminosity range into a
// dark half and a light half. Colors at or above it get darkened text,
// colors below it get lightened text.
const contrastThreshold = 2.5

// Color is a single color in the 6x6x6 ANSI color cube. Each channel is
// in [0,5]. The zero value is cube black.
type Color struct {
	R, G, B int
}

// InvalidChannelError reports a channel value outside the 0-5 cube range.
type InvalidChannelError struct {
	Channel string
	Value   int
}

// Error implements the error interface
func (e *InvalidChannelError) Error() string {
	return fmt.Sprintf("invalid %s channel %d: must be in range %d-%d",
		e.Channel, e.Value, constants.ChannelMin, constants.ChannelMax)
}

// New creates a Color from three cube channels. It returns an
// InvalidChannelError if any channel lies outside [0,5].
func New(r, g, b int) (Color, error) {
	channels := []struct {
		name  string
		value int
	}{
		{"red", r},
		{"green", g},
		{"blue", b},
	}
	for _, ch := range channels {
		if ch.value < constants.ChannelMin || ch.value > constants.ChannelMax {
			return Color{}, &InvalidChannelError{Channel: ch.name, Value: ch.value}
		}
	}
	return Color{R: r, G: g, B: b}, nil
}

// MustNew is like New but panics on an invalid channel. It is intended
// for static color literals whose validity is known at compile time.
func MustNew(r, g, b int) Color {
	c, err := New(r, g, b)
	if err != nil {
		panic(err)
	}
	return c
}

// FromIndex maps a 256-color palette index back to its cube color. Only
// indices in the cube range [16,231] are valid; system colors (0-15) and
// the grayscale ramp (232-255) have no cube coordinates.
func FromIndex(index int) (Color, error) {
	if index < constants.CubeIndexOffset || index > constants.CubeIndexMax {
		return Color{}, fmt.Errorf("index %d outside cube range %d-%d",
			index, constants.CubeIndexOffset, constants.CubeIndexMax)
	}
	offset := index - constants.CubeIndexOffset
	return Color{
		R: offset / 36,
		G: offset / 6 % 6,
		B: offset % 6,
	}, nil
}

// Index returns the 256-color palette index of this color, in [16,231].
func (c Color) Index() int {
	return constants.CubeIndexOffset + 36*c.R + 6*c.G + c.B
}

// Luminosity returns the weighted-channel brightness of the color. The
// weights are applied to raw cube channels, so the result ranges from 0
// for (0,0,0) to 5 for (5,5,5).
func (c Color) Luminosity() float64 {
	return lumRed*float64(c.R) + lumGreen*float64(c.G) + lumBlue*float64(c.B)
}

// Contrasting derives a color suitable for text displayed over this one.
// Light colors (luminosity >= 2.5) are moved toward black, dark colors
// toward white, each channel by percentage/100 of its remaining distance,
// floored at 0 when darkening and capped at 5 when lightening, then
// truncated toward zero. percentage is deliberately not range-checked:
// the clamp only bounds the movement direction, so a negative percentage
// can still push channels out of the cube, and channel validation in New
// is the enforcement point for that.
func (c Color) Contrasting(percentage int) (Color, error) {
	scale := float64(percentage) / 100
	var r, g, b float64
	if c.Luminosity() >= contrastThreshold {
		floor := float64(constants.ChannelMin)
		r = math.Max(floor, float64(c.R)-float64(c.R)*scale)
		g = math.Max(floor, float64(c.G)-float64(c.G)*scale)
		b = math.Max(floor, float64(c.B)-float64(c.B)*scale)
	} else {
		ceiling := float64(constants.ChannelMax)
		r = math.Min(ceiling, float64(c.R)+float64(constants.ChannelMax-c.R)*scale)
		g = math.Min(ceiling, float64(c.G)+float64(constants.ChannelMax-c.G)*scale)
		b = math.Min(ceiling, float64(c.B)+float64(constants.ChannelMax-c.B)*scale)
	}
	return New(int(r), int(g), int(b))
}

// Complementary returns the color with every channel mirrored across the
// cube (5 minus the channel). Applying it twice yields the original color.
func (c Color) Complementary() Color {
	return Color{
		R: constants.ChannelMax - c.R,
		G: constants.ChannelMax - c.G,
		B: constants.ChannelMax - c.B,
	}
}

// Sprint formats text with this color as background and its contrasting
// color at the given percentage as foreground, using 256-color escape
// sequences and a trailing reset. The error mirrors Contrasting's.
func (c Color) Sprint(text string, percentage int) (string, error) {
	fg, err := c.Contrasting(percentage)
	if err != nil {
		return "", err
	}
	return sprintSwatch(c.Index(), fg.Index(), text), nil
}

// Fprint writes the colored text to w without a trailing newline.
func (c Color) Fprint(w io.Writer, text string, percentage int) error {
	s, err := c.Sprint(text, percentage)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// Fprintln writes the colored text to w followed by a newline. The reset
// sequence precedes the newline so the background never bleeds across
// lines.
func (c Color) Fprintln(w io.Writer, text string, percentage int) error {
	s, err := c.Sprint(text, percentage)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// sprintSwatch emits the raw escape sequence for a background/foreground
// index pair: ESC[48;5;{bg}m ESC[38;5;{fg}m text ESC[0m.
func sprintSwatch(bg, fg int, text string) string {
	return fmt.Sprintf("\x1b[48;5;%dm\x1b[38;5;%dm%s\x1b[0m", bg, fg, text)
}

// String returns a compact diagnostic form, e.g. "cube(0,2,2)#30".
func (c Color) String() string {
	return fmt.Sprintf("cube(%d,%d,%d)#%d", c.R, c.G, c.B, c.Index())
}
