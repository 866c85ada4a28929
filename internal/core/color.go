package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal front end.
type Color uint8

// Palette used by sprites, HUD and overlays.
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
	ColorBrightCyan
	ColorOrange
	ColorGray
	ColorSky
)
