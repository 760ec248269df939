package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/skyburst/internal/core"
	"github.com/vovakirdan/skyburst/internal/games/shmup"
)

const (
	hpBarHeight = 4
	hpBarGap    = 6
	hudBarWidth = 100
)

var (
	background = color.RGBA{R: 8, G: 8, B: 16, A: 255}
	shade      = color.RGBA{A: 170}
)

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func fillRect(dst *ebiten.Image, r core.Rect, clr color.Color) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// drawHPBar fills ratio of the bar green and the rest red.
func drawHPBar(dst *ebiten.Image, bar core.Rect, ratio float64) {
	ratio = core.ClampF(ratio, 0, 1)
	full := int(float64(bar.W) * ratio)
	fillRect(dst, bar, rgba(core.ColorRed))
	if full > 0 {
		fillRect(dst, core.NewRect(bar.X, bar.Y, full, bar.H), rgba(core.ColorGreen))
	}
}

func drawSnapshot(dst *ebiten.Image, snap *shmup.Snapshot) {
	dst.Fill(background)

	for _, sp := range snap.Sprites {
		fillRect(dst, sp.Rect, rgba(sp.Color))
		if sp.HasHealthBar() {
			bar := core.NewRect(sp.Rect.X, sp.Rect.Y-hpBarGap-hpBarHeight, sp.Rect.W, hpBarHeight)
			drawHPBar(dst, bar, sp.HPRatio())
		}
	}
	if snap.PlayerVisible {
		fillRect(dst, snap.Player, rgba(shmup.KindPlayer.Color()))
	}

	drawHUD(dst, snap)
	drawOverlay(dst, snap)
}

func drawHUD(dst *ebiten.Image, snap *shmup.Snapshot) {
	white := rgba(core.ColorWhite)
	text.Draw(dst, fmt.Sprintf("Score: %d", snap.Score), basicfont.Face7x13, 10, 20, white)

	hp := fmt.Sprintf("HP %d/%d", snap.HP, snap.MaxHP)
	text.Draw(dst, hp, basicfont.Face7x13, 10, 40, white)
	ratio := 0.0
	if snap.MaxHP > 0 {
		ratio = float64(snap.HP) / float64(snap.MaxHP)
	}
	drawHPBar(dst, core.NewRect(10+text.BoundString(basicfont.Face7x13, hp).Dx()+8, 31, hudBarWidth, 8), ratio)

	secs := snap.Elapsed / 1000
	right := fmt.Sprintf("Lv %d  %02d:%02d", snap.Level, secs/60, secs%60)
	w := text.BoundString(basicfont.Face7x13, right).Dx()
	text.Draw(dst, right, basicfont.Face7x13, snap.ArenaW-w-10, 20, white)
}

func drawOverlay(dst *ebiten.Image, snap *shmup.Snapshot) {
	var title, subtitle string
	var c core.Color
	switch snap.Phase {
	case shmup.PhasePaused:
		title, subtitle, c = "PAUSED", "Press P to resume", core.ColorWhite
	case shmup.PhaseGameOver:
		title, subtitle, c = "GAME OVER", fmt.Sprintf("Final Score: %d  |  Press R to restart", snap.Score), core.ColorRed
	case shmup.PhaseVictory:
		title, subtitle, c = "VICTORY", fmt.Sprintf("Final Score: %d  |  Press R to restart", snap.Score), core.ColorYellow
	default:
		return
	}

	fillRect(dst, core.NewRect(0, 0, snap.ArenaW, snap.ArenaH), shade)
	drawCentered(dst, title, snap.ArenaW, snap.ArenaH/2-10, rgba(c))
	drawCentered(dst, subtitle, snap.ArenaW, snap.ArenaH/2+14, rgba(core.ColorWhite))
}

func drawCentered(dst *ebiten.Image, s string, width, y int, clr color.Color) {
	w := text.BoundString(basicfont.Face7x13, s).Dx()
	text.Draw(dst, s, basicfont.Face7x13, (width-w)/2, y, clr)
}
