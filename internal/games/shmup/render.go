package shmup

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/skyburst/internal/core"
)

// Glyphs used by the character renderer.
var kindGlyphs = map[Kind]rune{
	KindPlayer:          '▲',
	KindPlayerBullet:    '│',
	KindFormation:       '▼',
	KindElite:           '█',
	KindEliteBullet:     '•',
	KindFreeRoam:        '◆',
	KindBarrage:         '▓',
	KindOrb:             '●',
	KindExplosionBullet: '∗',
	KindFinalBoss:       '█',
	KindBossBullet:      '◉',
}

const (
	hudRows     = 1
	hpBarFull   = '━'
	hpBarEmpty  = '─'
	hudBarWidth = 10
)

// Render draws the current frame onto a character screen.
func (s *Session) Render(dst *core.Screen) {
	snap := s.Snapshot()
	RenderSnapshot(&snap, dst)
}

// RenderSnapshot projects the arena onto dst, scaling pixels to cells.
// Row 0 holds the HUD; the arena fills the remaining rows.
func RenderSnapshot(snap *Snapshot, dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 20 || dst.Height() < 6 {
		dst.DrawText(0, 0, "Window too small", core.ColorWhite)
		return
	}

	v := newViewport(snap.ArenaW, snap.ArenaH, dst.Width(), dst.Height()-hudRows)
	for _, sp := range snap.Sprites {
		cell := v.project(sp.Rect)
		dst.FillRect(cell, kindGlyphs[sp.Kind], sp.Color)
		if sp.HasHealthBar() {
			drawHPBar(dst, core.NewRect(cell.X, cell.Y-1, cell.W, 1), sp.HPRatio())
		}
	}
	if snap.PlayerVisible {
		dst.FillRect(v.project(snap.Player), kindGlyphs[KindPlayer], KindPlayer.Color())
	}

	renderHUD(snap, dst)
	renderOverlay(snap, dst)
}

// viewport maps arena pixels to screen cells below the HUD.
type viewport struct {
	cellW, cellH float64
	top          int
}

func newViewport(arenaW, arenaH, cols, rows int) viewport {
	return viewport{
		cellW: float64(arenaW) / float64(cols),
		cellH: float64(arenaH) / float64(rows),
		top:   hudRows,
	}
}

// project converts a pixel rectangle to the cells it covers, at least one.
func (v viewport) project(r core.Rect) core.Rect {
	x0 := int(math.Floor(float64(r.X) / v.cellW))
	y0 := int(math.Floor(float64(r.Y) / v.cellH))
	x1 := int(math.Ceil(float64(r.Right()) / v.cellW))
	y1 := int(math.Ceil(float64(r.Bottom()) / v.cellH))
	w := core.Max(x1-x0, 1)
	h := core.Max(y1-y0, 1)
	return core.NewRect(x0, y0+v.top, w, h)
}

func drawHPBar(dst *core.Screen, bar core.Rect, ratio float64) {
	if bar.Y < hudRows {
		return
	}
	filled := int(math.Round(ratio * float64(bar.W)))
	for i := range bar.W {
		if i < filled {
			dst.SetCell(bar.X+i, bar.Y, hpBarFull, core.ColorGreen)
		} else {
			dst.SetCell(bar.X+i, bar.Y, hpBarEmpty, core.ColorRed)
		}
	}
}

func renderHUD(snap *Snapshot, dst *core.Screen) {
	score := fmt.Sprintf("Score: %d", snap.Score)
	dst.DrawText(1, 0, score, core.ColorWhite)

	hp := fmt.Sprintf("HP %3d/%d ", snap.HP, snap.MaxHP)
	x := (dst.Width() - len(hp) - hudBarWidth) / 2
	dst.DrawText(x, 0, hp, core.ColorWhite)
	ratio := 0.0
	if snap.MaxHP > 0 {
		ratio = float64(snap.HP) / float64(snap.MaxHP)
	}
	drawHPBar(dst, core.NewRect(x+len(hp), 0, hudBarWidth, 1), ratio)

	secs := snap.Elapsed / 1000
	right := fmt.Sprintf("Lv %d  %02d:%02d", snap.Level, secs/60, secs%60)
	dst.DrawText(dst.Width()-len(right)-1, 0, right, core.ColorWhite)
}

func renderOverlay(snap *Snapshot, dst *core.Screen) {
	switch snap.Phase {
	case PhasePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume", core.ColorWhite)
	case PhaseGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Final Score: %d  |  Press R to restart", snap.Score), core.ColorRed)
	case PhaseVictory:
		drawCenteredBox(dst, "VICTORY", fmt.Sprintf("Final Score: %d  |  Press R to restart", snap.Score), core.ColorYellow)
	}
}

func drawCenteredBox(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title, c)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle, core.ColorWhite)
}

// Summary returns a one-line textual status, used by headless frontends.
func (snap *Snapshot) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "t=%05.1fs lv=%d score=%d hp=%d/%d", float64(snap.Elapsed)/1000, snap.Level, snap.Score, snap.HP, snap.MaxHP)
	if snap.BossActive {
		sb.WriteString(" boss")
	}
	if snap.Phase != PhasePlaying {
		sb.WriteString(" ")
		sb.WriteString(snap.Phase.String())
	}
	return sb.String()
}
