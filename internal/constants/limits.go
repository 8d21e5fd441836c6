package constants

// Palette generation limits
const (
	// DefaultPaletteSize is the number of colors produced when the caller
	// does not request a specific size
	DefaultPaletteSize = 16

	// MaxJitterAttempts bounds the random fill loop in palette generation.
	// The jitter step can only reach a bounded neighborhood of the base
	// color, so a request larger than that neighborhood must fail instead
	// of spinning forever.
	MaxJitterAttempts = 4096
)
