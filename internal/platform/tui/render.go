package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyburst/internal/core"
)

// palette lists every color the simulation draws with.
var palette = []core.Color{
	core.ColorDefault,
	core.ColorWhite,
	core.ColorRed,
	core.ColorPurple,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorOrange,
	core.ColorDarkBlue,
	core.ColorGray,
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette))
	for _, c := range palette {
		if c == core.ColorDefault {
			styles[c] = lipgloss.NewStyle()
			continue
		}
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.ANSI()))
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		s.Runs(y, func(text string, c core.Color) {
			sb.WriteString(styleFor(c).Render(text))
		})
	}
	return sb.String()
}
