package core

// Color is the foreground color of a screen cell. The zero value leaves the
// terminal's own color in place.
type Color uint8

// Palette used by the game's sprites and messages.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorCyan
	ColorOrange
	ColorGray
	ColorGreen
	ColorRed
)

// Palette lists every defined color, default first.
var Palette = []Color{ColorDefault, ColorWhite, ColorCyan, ColorOrange, ColorGray, ColorGreen, ColorRed}

// Code returns the ANSI 256-color index for c, or "" for the default color.
func (c Color) Code() string {
	switch c {
	case ColorWhite:
		return "15"
	case ColorCyan:
		return "14"
	case ColorOrange:
		return "208"
	case ColorGray:
		return "245"
	case ColorGreen:
		return "10"
	case ColorRed:
		return "9"
	default:
		return ""
	}
}
