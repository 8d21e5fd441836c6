// Package demo renders the showcase sections of the 256-color palette to
// a writer: the 16 system colors, the full 6x6x6 color cube, the 24-step
// grayscale ramp, and generated palettes for a fixed list of named base
// colors. The command-line tool and the interactive browser both consume
// these printers.
package demo

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/ddoxey/ansicolormanager/internal/color"
	"github.com/ddoxey/ansicolormanager/internal/constants"
	"github.com/ddoxey/ansicolormanager/internal/palette"
)

// Printer renders palette sections to a single writer.
type Printer struct {
	w   io.Writer
	gen *palette.Generator

	headingStyle lipgloss.Style
}

// NewPrinter creates a Printer writing to w, generating palettes with a
// time-seeded generator.
func NewPrinter(w io.Writer) *Printer {
	return NewPrinterWithGenerator(w, palette.NewGenerator(nil))
}

// NewPrinterWithGenerator creates a Printer with an explicit palette
// generator, so callers can control the jitter seed.
func NewPrinterWithGenerator(w io.Writer, gen *palette.Generator) *Printer {
	return &Printer{
		w:            w,
		gen:          gen,
		headingStyle: lipgloss.NewStyle().Bold(true),
	}
}

// SystemColors prints one labeled line per system color (indices 0-15).
// System colors have no cube coordinates, so each line overrides the
// background index on cube black, which keeps a bright foreground.
func (p *Printer) SystemColors() error {
	black := color.Color{}
	for idx := 0; idx < constants.SystemColorCount; idx++ {
		label := fmt.Sprintf("System color %3d", idx)
		if err := black.At(idx).Fprintln(p.w, label); err != nil {
			return err
		}
	}
	return nil
}

// Cube prints the 216 cube colors as six 6x6 blocks, one block per red
// channel value, each swatch labeled with its palette index.
func (p *Printer) Cube() error {
	for r := 0; r <= constants.ChannelMax; r++ {
		for g := 0; g <= constants.ChannelMax; g++ {
			for b := 0; b <= constants.ChannelMax; b++ {
				c := color.Color{R: r, G: g, B: b}
				label := fmt.Sprintf("%*d", constants.SwatchLabelWidth, c.Index())
				if err := c.Fprint(p.w, label, 100); err != nil {
					return err
				}
				if _, err := io.WriteString(p.w, " "); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(p.w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(p.w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Grayscale prints one labeled line per grayscale ramp color (indices
// 232-255), again by overriding the background index on cube black.
func (p *Printer) Grayscale() error {
	black := color.Color{}
	for idx := constants.GrayscaleStart; idx <= constants.GrayscaleEnd; idx++ {
		label := fmt.Sprintf("Grayscale color %3d", idx)
		if err := black.At(idx).Fprintln(p.w, label); err != nil {
			return err
		}
	}
	return nil
}

// Palette prints a single palette as one row of index-labeled swatches.
func (p *Printer) Palette(colors []color.Color) error {
	for _, c := range colors {
		label := fmt.Sprintf("%*d", constants.SwatchLabelWidth, c.Index())
		if err := c.Fprint(p.w, label, 100); err != nil {
			return err
		}
		if _, err := io.WriteString(p.w, " "); err != nil {
			return err
		}
	}
	_, err := io.WriteString(p.w, "\n")
	return err
}

// Palettes generates and prints one default-size palette per named base
// color.
func (p *Printer) Palettes() error {
	for i, nc := range color.Named {
		heading := p.headingStyle.Render(fmt.Sprintf("Palette %d: %s", i+1, nc.Name))
		if _, err := fmt.Fprintln(p.w, heading); err != nil {
			return err
		}
		colors, err := p.gen.Generate(nc.Color, palette.DefaultSize)
		if err != nil {
			return err
		}
		if err := p.Palette(colors); err != nil {
			return err
		}
		if _, err := io.WriteString(p.w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// All prints every section in showcase order: system colors, the color
// cube, the grayscale ramp, and the generated palettes.
func (p *Printer) All() error {
	if err := p.SystemColors(); err != nil {
		return err
	}
	if err := p.Cube(); err != nil {
		return err
	}
	if err := p.Grayscale(); err != nil {
		return err
	}
	heading := p.headingStyle.Render("Generated Color Palettes in Terminal:")
	if _, err := fmt.Fprintln(p.w, heading); err != nil {
		return err
	}
	return p.Palettes()
}
