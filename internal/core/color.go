package core

// Color is the palette slot of a screen cell. The tui renderer maps each
// slot to a lipgloss terminal color; ColorDefault keeps the terminal's own
// foreground.
type Color uint8

// Playfield palette. Lane traffic takes its color from the lane index;
// the runner and claimed homes share bright green.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorGray
)
