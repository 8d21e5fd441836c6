package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ddoxey/ansicolormanager/internal/logging"
)

// ProgramOptions holds configuration for the Bubble Tea program
type ProgramOptions struct {
	Debug     bool
	AltScreen bool
}

// DefaultProgramOptions returns sensible defaults for the browser program
func DefaultProgramOptions() ProgramOptions {
	return ProgramOptions{
		Debug:     false,
		AltScreen: true, // Use alternate screen buffer
	}
}

// NewProgram creates a new Bubble Tea program with the browser model
func NewProgram(opts ProgramOptions) *tea.Program {
	browser := NewBrowser(opts.Debug)

	var programOpts []tea.ProgramOption
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	logging.Info(browser.Logger, "Creating Bubble Tea program with options: AltScreen=%v",
		opts.AltScreen)

	return tea.NewProgram(browser, programOpts...)
}

// RunBrowser creates and runs the interactive browser with the given
// options, blocking until the user quits.
func RunBrowser(opts ProgramOptions) error {
	program := NewProgram(opts)

	model, err := program.Run()
	if err != nil {
		return err
	}

	if browser, ok := model.(*Browser); ok && browser.Debug {
		logging.Info(browser.Logger, "browser exited successfully")
	}

	return nil
}
