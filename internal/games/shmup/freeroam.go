package shmup

import (
	"github.com/vovakirdan/skyburst/internal/config"
	"github.com/vovakirdan/skyburst/internal/core"
)

// RoamMode is the steering policy of a free-roam enemy, fixed at spawn.
type RoamMode int

const (
	ModeRoam RoamMode = iota
	ModeChase
)

func (m RoamMode) String() string {
	if m == ModeChase {
		return "chase"
	}
	return "roam"
}

// FreeRoamEnemy enters from a side edge and either wanders between random
// points in the upper half or periodically re-aims at the player.
type FreeRoamEnemy struct {
	core.Body
	lifecycle

	Mode         RoamMode
	Target       core.Vec2
	speed        float64
	tolerance    float64
	retargetMs   int64
	lastRetarget int64
}

func (e *FreeRoamEnemy) Kind() Kind        { return KindFreeRoam }
func (e *FreeRoamEnemy) Bounds() core.Rect { return e.Rect() }

func spawnFreeRoam(ctx *frameContext) *FreeRoamEnemy {
	cfg := ctx.cfg.FreeRoam
	x := -cfg.EdgeOffset
	if ctx.rng.IntN(2) == 1 {
		x = ctx.arenaW + cfg.EdgeOffset
	}
	y := ctx.rng.IntN(ctx.arenaH/2 + 1)

	e := newFreeRoam(float64(x), float64(y), cfg)
	e.speed = ctx.diff.ScaleSpeed(cfg.BaseSpeed, cfg.SpeedRate, ctx.level)
	e.Mode = RoamMode(ctx.rng.IntN(2))
	e.Target = randomRoamPoint(ctx, cfg.Size)
	e.lastRetarget = ctx.elapsed
	return e
}

func newFreeRoam(x, y float64, cfg config.FreeRoamConfig) *FreeRoamEnemy {
	return &FreeRoamEnemy{
		Body:       core.NewBody(x, y, cfg.Size, cfg.Size),
		speed:      cfg.BaseSpeed,
		tolerance:  cfg.Tolerance,
		retargetMs: cfg.RetargetMs,
	}
}

// randomRoamPoint picks a top-left position in the upper half of the arena.
func randomRoamPoint(ctx *frameContext, size int) core.Vec2 {
	return core.Vec2{
		X: float64(ctx.rng.IntN(core.Max(ctx.arenaW-size, 0) + 1)),
		Y: float64(ctx.rng.IntN(ctx.arenaH/2 + 1)),
	}
}

// Update steers toward the current target and drops the enemy once it
// leaves the arena.
func (e *FreeRoamEnemy) Update(ctx *frameContext) {
	switch e.Mode {
	case ModeChase:
		if ctx.elapsed-e.lastRetarget > e.retargetMs {
			half := core.Vec2{X: float64(e.W) / 2, Y: float64(e.H) / 2}
			e.Target = ctx.target.Sub(half)
			e.lastRetarget = ctx.elapsed
		}
	case ModeRoam:
		if e.Target.Sub(e.Pos).Len() < e.tolerance {
			e.Target = randomRoamPoint(ctx, e.W)
		}
	}
	e.Pos = core.StepToward(e.Pos, e.Target, e.speed)

	if outside(e.Bounds(), ctx.arenaW, ctx.arenaH) {
		e.remove()
	}
}
