package core

// Color identifies the draw color of an actor or HUD element.
// Frontends map it to ANSI codes (terminal) or RGB (window).
type Color uint8

// Palette used by the simulation.
const (
	ColorDefault  Color = iota
	ColorWhite          // player, player bullets, HUD text
	ColorRed            // formation enemies, empty part of HP bars
	ColorPurple         // elite
	ColorYellow         // elite bullets, explosion bullets
	ColorGreen          // filled part of HP bars
	ColorCyan           // free-roam enemies
	ColorOrange         // barrage enemy and its orbs
	ColorDarkBlue       // final boss and its bullets
	ColorGray
)

// RGB returns the 8-bit channel values of the color.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorWhite:
		return 255, 255, 255
	case ColorRed:
		return 255, 0, 0
	case ColorPurple:
		return 128, 0, 128
	case ColorYellow:
		return 255, 255, 0
	case ColorGreen:
		return 0, 255, 0
	case ColorCyan:
		return 0, 255, 255
	case ColorOrange:
		return 255, 165, 0
	case ColorDarkBlue:
		return 0, 0, 128
	case ColorGray:
		return 128, 128, 128
	default:
		return 200, 200, 200
	}
}

// ANSI returns the 256-color terminal code closest to the color.
func (c Color) ANSI() string {
	switch c {
	case ColorWhite:
		return "15"
	case ColorRed:
		return "196"
	case ColorPurple:
		return "129"
	case ColorYellow:
		return "226"
	case ColorGreen:
		return "46"
	case ColorCyan:
		return "51"
	case ColorOrange:
		return "214"
	case ColorDarkBlue:
		// Pure navy is unreadable on dark terminals.
		return "27"
	case ColorGray:
		return "245"
	default:
		return "252"
	}
}
