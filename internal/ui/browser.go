// Package ui implements the interactive palette browser: a Bubble Tea
// model with one tab per showcase section (system colors, the color
// cube, the grayscale ramp, and generated palettes). The browser renders
// the same grids as the demo printers, wrapped in themed chrome.
package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ddoxey/ansicolormanager/internal/color"
	"github.com/ddoxey/ansicolormanager/internal/demo"
	"github.com/ddoxey/ansicolormanager/internal/logging"
	"github.com/ddoxey/ansicolormanager/internal/palette"
	"github.com/ddoxey/ansicolormanager/internal/ui/styles"
)

// Tab identifies one of the browser's showcase sections.
type Tab int

const (
	TabSystem Tab = iota
	TabCube
	TabGrayscale
	TabPalettes

	tabCount
)

// String returns the tab's display label.
func (t Tab) String() string {
	switch t {
	case TabSystem:
		return "System"
	case TabCube:
		return "Cube"
	case TabGrayscale:
		return "Grayscale"
	case TabPalettes:
		return "Palettes"
	default:
		return "Unknown"
	}
}

// Browser is the Bubble Tea model for the interactive palette browser.
type Browser struct {
	Width  int
	Height int
	Debug  bool
	Logger *log.Logger

	ActiveTab Tab

	theme *styles.Theme
	keys  KeyMap
	help  help.Model

	gen      *palette.Generator
	palettes [][]color.Color
	selected int

	err error
}

// NewBrowser creates a browser with default keybindings, the dark theme,
// and a freshly generated palette per named base color.
func NewBrowser(debug bool) *Browser {
	b := &Browser{
		Debug:  debug,
		Logger: logging.SetupLogger(debug),
		theme:  styles.DefaultTheme(),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		gen:    palette.NewGenerator(nil),
	}
	b.generateAll()
	return b
}

// generateAll builds one palette per named base color.
func (b *Browser) generateAll() {
	b.palettes = make([][]color.Color, len(color.Named))
	for i, nc := range color.Named {
		colors, err := b.gen.Generate(nc.Color, palette.DefaultSize)
		if err != nil {
			b.err = err
			logging.Error(b.Logger, "generating palette for %s: %v", nc.Name, err)
			continue
		}
		b.palettes[i] = colors
	}
}

// regenerateSelected rebuilds only the currently selected palette.
func (b *Browser) regenerateSelected() {
	nc := color.Named[b.selected]
	colors, err := b.gen.Generate(nc.Color, palette.DefaultSize)
	if err != nil {
		b.err = err
		logging.Error(b.Logger, "regenerating palette for %s: %v", nc.Name, err)
		return
	}
	b.palettes[b.selected] = colors
	logging.Debug(b.Logger, "regenerated palette for %s", nc.Name)
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.Width = msg.Width
		b.Height = msg.Height
		b.help.Width = msg.Width
		return b, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keys.Quit):
			return b, tea.Quit
		case key.Matches(msg, b.keys.NextTab):
			b.ActiveTab = (b.ActiveTab + 1) % tabCount
		case key.Matches(msg, b.keys.PrevTab):
			b.ActiveTab = (b.ActiveTab + tabCount - 1) % tabCount
		case key.Matches(msg, b.keys.Up):
			if b.ActiveTab == TabPalettes && b.selected > 0 {
				b.selected--
			}
		case key.Matches(msg, b.keys.Down):
			if b.ActiveTab == TabPalettes && b.selected < len(color.Named)-1 {
				b.selected++
			}
		case key.Matches(msg, b.keys.Regenerate):
			if b.ActiveTab == TabPalettes {
				b.regenerateSelected()
			}
		case key.Matches(msg, b.keys.ToggleTheme):
			b.theme = b.theme.Toggle()
		case key.Matches(msg, b.keys.Help):
			b.help.ShowAll = !b.help.ShowAll
		}
	}
	return b, nil
}

// View implements tea.Model.
func (b *Browser) View() string {
	var sb strings.Builder

	sb.WriteString(b.renderTabs())
	sb.WriteString("\n\n")
	sb.WriteString(b.renderContent())
	sb.WriteString("\n")
	if b.err != nil {
		sb.WriteString(b.theme.StatusBar().Render("error: "+b.err.Error()) + "\n")
	}
	sb.WriteString(b.help.View(b.keys))

	return sb.String()
}

// renderTabs draws the tab bar with the active tab highlighted.
func (b *Browser) renderTabs() string {
	labels := make([]string, 0, int(tabCount))
	for t := Tab(0); t < tabCount; t++ {
		if t == b.ActiveTab {
			labels = append(labels, b.theme.ActiveTab().Render(t.String()))
		} else {
			labels = append(labels, b.theme.InactiveTab().Render(t.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labels...)
}

// renderContent draws the active tab's section using the demo printers.
func (b *Browser) renderContent() string {
	var buf strings.Builder
	printer := demo.NewPrinterWithGenerator(&buf, b.gen)

	switch b.ActiveTab {
	case TabSystem:
		b.renderErr(printer.SystemColors())
	case TabCube:
		b.renderErr(printer.Cube())
	case TabGrayscale:
		b.renderErr(printer.Grayscale())
	case TabPalettes:
		return b.renderPalettes()
	}
	return buf.String()
}

// renderPalettes draws every generated palette with the selected one
// highlighted, so j/k plus r can rework a single palette in place.
func (b *Browser) renderPalettes() string {
	var sb strings.Builder
	for i, nc := range color.Named {
		heading := nc.Name
		if i == b.selected {
			heading = b.theme.Selected().Render("> " + heading)
		} else {
			heading = b.theme.Heading().Render("  " + heading)
		}
		sb.WriteString(heading + "\n")

		var row strings.Builder
		printer := demo.NewPrinterWithGenerator(&row, b.gen)
		b.renderErr(printer.Palette(b.palettes[i]))
		sb.WriteString("  " + row.String() + "\n")
	}
	return sb.String()
}

// renderErr records a section rendering failure for the status line.
// Writes to a strings.Builder cannot fail, so this only fires on palette
// generation errors surfaced through the printers.
func (b *Browser) renderErr(err error) {
	if err != nil {
		b.err = err
	}
}
