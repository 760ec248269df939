package shmup

import (
	"math"

	"github.com/vovakirdan/skyburst/internal/config"
	"github.com/vovakirdan/skyburst/internal/core"
)

// Motion selects how a formation enemy travels.
type Motion int

const (
	MotionStraight Motion = iota
	MotionWave
)

func parseMotion(s string) Motion {
	if s == "straight" {
		return MotionStraight
	}
	return MotionWave
}

// FormationEnemy is wave-spawned trash descending at its spawn-time speed,
// optionally swaying sideways around the column it spawned in.
type FormationEnemy struct {
	core.Body
	lifecycle

	Motion    Motion
	speed     float64
	originX   float64
	spawnedAt int64
	amplitude float64
	angular   float64
}

func (e *FormationEnemy) Kind() Kind        { return KindFormation }
func (e *FormationEnemy) Bounds() core.Rect { return e.Rect() }

// Update descends and applies the sinusoidal offset for wave motion.
// The enemy is dropped once it passes the bottom edge.
func (e *FormationEnemy) Update(ctx *frameContext) {
	e.Pos.Y += e.speed
	if e.Motion == MotionWave {
		lifetime := float64(ctx.elapsed-e.spawnedAt) / 100
		e.Pos.X = e.originX + e.amplitude*math.Sin(e.angular*lifetime)
	}
	if e.Bounds().Y > ctx.arenaH {
		e.remove()
	}
}

// spawnWave creates one row of formation enemies at a random aligned x so
// the whole row fits inside the arena.
func spawnWave(ctx *frameContext) []*FormationEnemy {
	cfg := ctx.cfg.Formation
	pitch := cfg.Size + cfg.Spacing
	maxX := ctx.arenaW - pitch*cfg.WaveSize
	startX := 0
	if maxX > 0 {
		startX = ctx.rng.IntN(maxX + 1)
	}

	speed := ctx.diff.ScaleSpeed(cfg.BaseSpeed, cfg.SpeedRate, ctx.level)
	wave := make([]*FormationEnemy, 0, cfg.WaveSize)
	for i := range cfg.WaveSize {
		x := float64(startX + pitch*i)
		e := newFormationEnemy(x, float64(-cfg.Size), cfg)
		e.speed = speed
		e.spawnedAt = ctx.elapsed
		wave = append(wave, e)
	}
	return wave
}

func newFormationEnemy(x, y float64, cfg config.FormationConfig) *FormationEnemy {
	return &FormationEnemy{
		Body:      core.NewBody(x, y, cfg.Size, cfg.Size),
		Motion:    parseMotion(cfg.Motion),
		speed:     cfg.BaseSpeed,
		originX:   x,
		amplitude: cfg.Amplitude,
		angular:   cfg.AngularRate,
	}
}
