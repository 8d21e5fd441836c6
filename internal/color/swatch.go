package color

import (
	"fmt"
	"io"

	"github.com/ddoxey/ansicolormanager/internal/constants"
)

// Swatch pairs an arbitrary 256-color background index with a foreground
// index. It exists for the parts of the palette outside the cube: system
// colors (0-15) and the grayscale ramp (232-255) cannot be expressed as
// cube channels, so they are rendered by overriding the background index
// directly while keeping a cube-derived foreground.
type Swatch struct {
	Background int
	Foreground int
}

// At returns a Swatch that renders over the given raw palette index while
// keeping this color's full-contrast foreground. c.At(c.Index()) is
// equivalent to rendering c itself.
func (c Color) At(index int) Swatch {
	// Contrasting(100) cannot fail; the full-contrast endpoints are the
	// cube corners.
	fg, _ := c.Contrasting(100)
	return Swatch{Background: index, Foreground: fg.Index()}
}

// Sprint formats text over the swatch's background, ending with a reset.
func (s Swatch) Sprint(text string) string {
	return sprintSwatch(s.Background, s.Foreground, text)
}

// Fprint writes the swatch text to w without a trailing newline.
func (s Swatch) Fprint(w io.Writer, text string) error {
	_, err := io.WriteString(w, s.Sprint(text))
	return err
}

// Fprintln writes the swatch text to w followed by a newline.
func (s Swatch) Fprintln(w io.Writer, text string) error {
	_, err := fmt.Fprintln(w, s.Sprint(text))
	return err
}

// ValidIndex reports whether index addresses any slot of the 256-color
// palette, including the system and grayscale ranges.
func ValidIndex(index int) bool {
	return index >= 0 && index <= constants.GrayscaleEnd
}
