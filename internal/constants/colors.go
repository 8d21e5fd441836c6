package constants

// Geometry of the 6x6x6 ANSI color cube
const (
	// ChannelMin is the smallest valid value for a cube channel
	ChannelMin = 0

	// ChannelMax is the largest valid value for a cube channel
	ChannelMax = 5

	// ChannelSteps is the number of distinct values per cube channel
	ChannelSteps = 6

	// ChannelScale maps one cube step to the 0-255 RGB range (255 / 5)
	ChannelScale = 51
)

// 256-color palette index ranges
const (
	// SystemColorCount is the number of basic system colors (indices 0-15)
	SystemColorCount = 16

	// CubeIndexOffset is the palette index of cube color (0,0,0)
	CubeIndexOffset = 16

	// CubeIndexMax is the palette index of cube color (5,5,5)
	CubeIndexMax = 231

	// GrayscaleStart is the first index of the 24-step grayscale ramp
	GrayscaleStart = 232

	// GrayscaleEnd is the last index of the 24-step grayscale ramp
	GrayscaleEnd = 255
)
