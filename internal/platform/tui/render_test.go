package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/skyburst/internal/core"
)

func TestRenderScreenKeepsRowsAndText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawText(0, 0, "Score: 10", core.ColorWhite)
	s.DrawText(2, 1, "AB", core.ColorRed)
	s.DrawText(4, 1, "CD", core.ColorCyan)

	out := RenderScreen(s)
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("newlines = %d, want 2", got)
	}
	for _, want := range []string{"Score: 10", "AB", "CD"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestStylesCoverPalette(t *testing.T) {
	for _, c := range palette {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
	// Unknown colors fall back to the default style.
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("fallback style rendered %q", got)
	}
}
