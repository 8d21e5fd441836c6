package constants

// Browser UI dimensions
const (
	// MinTerminalWidth is the narrowest terminal the browser will lay out for
	MinTerminalWidth = 40

	// MinTerminalHeight is the shortest terminal the browser will lay out for
	MinTerminalHeight = 10

	// SwatchLabelWidth is the printed width of a palette index label
	SwatchLabelWidth = 3
)
