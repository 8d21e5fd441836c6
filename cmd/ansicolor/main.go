package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ddoxey/ansicolormanager/internal/color"
	"github.com/ddoxey/ansicolormanager/internal/demo"
	apperrors "github.com/ddoxey/ansicolormanager/internal/errors"
	"github.com/ddoxey/ansicolormanager/internal/palette"
	"github.com/ddoxey/ansicolormanager/internal/ui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	var debugMode bool
	var noAltScreen bool
	var paletteSize int
	baseName := "teal"

	rootCmd := &cobra.Command{
		Use:   "ansicolor",
		Short: "ansicolor - explore the ANSI 256-color palette",
		Long: `ansicolor renders the ANSI 256-color palette to the terminal: the 16
system colors, the 6x6x6 color cube, the 24-step grayscale ramp, and
generated palettes built from named base colors.

Run without arguments to print the full showcase.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		RunE: func(cmd *cobra.Command, args []string) error {
			return demo.NewPrinter(os.Stdout).All()
		},
	}

	paletteCmd := &cobra.Command{
		Use:   "palette [name]",
		Short: "Generate and print a palette for a named base color",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := baseName
			if len(args) == 1 {
				name = args[0]
			}
			base, ok := color.ByName(name)
			if !ok {
				return apperrors.NewUsageError(
					fmt.Sprintf("unknown base color %q (try one of: %s)", name, namedColorList()), nil,
				).WithContext("name", name)
			}
			colors, err := palette.Generate(base, paletteSize)
			if err != nil {
				return apperrors.NewValidationError("generating palette", err).
					WithContext("size", paletteSize)
			}
			return demo.NewPrinter(os.Stdout).Palette(colors)
		},
	}
	paletteCmd.Flags().IntVar(&paletteSize, "size", palette.DefaultSize, "Number of colors in the palette")

	cubeCmd := &cobra.Command{
		Use:   "cube",
		Short: "Print the 6x6x6 color cube",
		RunE: func(cmd *cobra.Command, args []string) error {
			return demo.NewPrinter(os.Stdout).Cube()
		},
	}

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the palette interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := ui.DefaultProgramOptions()
			opts.Debug = debugMode
			opts.AltScreen = !noAltScreen
			if err := ui.RunBrowser(opts); err != nil {
				return apperrors.NewUIError("running browser", err)
			}
			return nil
		},
	}
	browseCmd.Flags().BoolVarP(&debugMode, "debug", "d", false, "Enable debug mode (logs to ansicolor.log)")
	browseCmd.Flags().BoolVar(&noAltScreen, "no-alt-screen", false, "Disable alternate screen buffer")

	rootCmd.AddCommand(paletteCmd, cubeCmd, browseCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}

// namedColorList returns the known base color names for usage messages.
func namedColorList() string {
	names := ""
	for i, nc := range color.Named {
		if i > 0 {
			names += ", "
		}
		names += nc.Name
	}
	return names
}
