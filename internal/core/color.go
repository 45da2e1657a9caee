package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color style.
type Color uint8

// Predefined colors for simulation elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorBrightBlue
	ColorYellow
	ColorWhite
	ColorGray
	ColorDarkGray
)
