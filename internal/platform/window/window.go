// Package window runs the simulation in a desktop window through Ebitengine.
// The arena is drawn at its native pixel size; ebiten scales the window.
package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/skyburst/internal/audio"
	"github.com/vovakirdan/skyburst/internal/config"
	"github.com/vovakirdan/skyburst/internal/core"
	"github.com/vovakirdan/skyburst/internal/games/shmup"
	"github.com/vovakirdan/skyburst/internal/telemetry"
)

// Options configures a window session.
type Options struct {
	Config config.ShmupConfig
	Seed   int64               // 0 picks a time-based seed
	Logger *log.Logger         // nil disables logging
	Sound  *audio.SoundManager // nil plays silently
	Scale  float64             // window size relative to the arena; <= 0 means 1
	Debug  bool                // print tick rate and step counters
}

// keyBindings lists the physical keys held for each action.
var keyBindings = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{core.ActionFire, []ebiten.Key{ebiten.KeySpace}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
}

// Game adapts a session to ebiten.Game.
type Game struct {
	session  *shmup.Session
	journal  *telemetry.Journal
	sound    *audio.SoundManager
	logger   *log.Logger
	steps    int64
	debug    bool
	finished bool
	summary  telemetry.RunSummary
}

// New creates a window game and its session.
func New(opts Options) *Game {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	journal := telemetry.NewJournal(opts.Logger, false)
	journal.Reset(seed)

	return &Game{
		session: shmup.New(opts.Config, seed),
		journal: journal,
		sound:   opts.Sound,
		logger:  opts.Logger,
		debug:   opts.Debug,
	}
}

// sampleInput reads the keyboard into one input frame. Keys are polled, so
// held keys stay held for as long as they are down.
func sampleInput() core.InputFrame {
	f := core.NewInputFrame()
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if ebiten.IsKeyPressed(k) {
				f.Set(b.action)
				break
			}
		}
	}
	return f
}

// Update advances the session by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.finish()
		return ebiten.Termination
	}

	res := g.session.Step(sampleInput())
	g.steps++
	g.journal.Record(g.steps, res)
	if g.sound != nil {
		g.sound.OnEvents(res.Events)
	}
	return nil
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	drawSnapshot(screen, &snap)
	if g.debug {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("TPS %.0f  FPS %.0f  step %d  hash %016x", ebiten.ActualTPS(), ebiten.ActualFPS(), g.steps, snap.Hash()),
			10, snap.ArenaH-20)
	}
}

// Layout keeps the logical screen at arena size.
func (g *Game) Layout(_, _ int) (int, int) {
	rt := g.session.Runtime()
	return rt.ScreenW, rt.ScreenH
}

func (g *Game) finish() {
	if g.finished {
		return
	}
	g.finished = true
	g.summary = g.journal.Finish(g.steps, g.session.Elapsed(), g.session.State())
	if g.logger != nil {
		g.logger.Info("session ended",
			"seed", g.summary.Seed,
			"score", g.summary.Score,
			"outcome", g.summary.Outcome,
			"level", g.summary.MaxLevel,
		)
	}
}

// Run opens the window and plays until it is closed or Q is pressed.
func Run(opts Options) (telemetry.RunSummary, error) {
	g := New(opts)
	rt := g.session.Runtime()

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(rt.ScreenW)*scale), int(float64(rt.ScreenH)*scale))
	ebiten.SetWindowTitle("Skyburst")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(rt.TickRate)

	err := ebiten.RunGame(g)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return telemetry.RunSummary{}, fmt.Errorf("window: %w", err)
	}
	// Closing the window skips Update, so the journal may still be open.
	g.finish()
	return g.summary, nil
}
