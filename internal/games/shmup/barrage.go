package shmup

import (
	"github.com/vovakirdan/skyburst/internal/config"
	"github.com/vovakirdan/skyburst/internal/core"
)

// Barrage is the orb-launching singleton. It descends to a random hold
// altitude in the upper third and periodically drops an orb beneath itself.
type Barrage struct {
	core.Body
	Health

	cfg     config.BarrageConfig
	orb     config.OrbConfig
	holdY   float64
	lastOrb int64
}

func spawnBarrage(ctx *frameContext) *Barrage {
	cfg := ctx.cfg.Barrage
	span := ctx.arenaW - 2*cfg.SideMargin - cfg.Size
	x := cfg.SideMargin + ctx.rng.IntN(core.Max(span, 0)+1)
	holdSpan := ctx.arenaH/3 - cfg.MinHoldY
	holdY := cfg.MinHoldY + ctx.rng.IntN(core.Max(holdSpan, 0)+1)
	return newBarrage(float64(x), float64(holdY), ctx.cfg.Barrage, ctx.cfg.Orb)
}

func newBarrage(x, holdY float64, cfg config.BarrageConfig, orb config.OrbConfig) *Barrage {
	return &Barrage{
		Body:   core.NewBody(x, float64(-2*cfg.Size), cfg.Size, cfg.Size),
		Health: newHealth(cfg.HP),
		cfg:    cfg,
		orb:    orb,
		holdY:  holdY,
	}
}

func (b *Barrage) Kind() Kind        { return KindBarrage }
func (b *Barrage) Bounds() core.Rect { return b.Rect() }

// Update descends toward the hold altitude and launches orbs on cooldown.
func (b *Barrage) Update(ctx *frameContext) {
	if b.Pos.Y < b.holdY {
		b.Pos.Y += b.cfg.Descent
	}
	cooldown := ctx.diff.ScaleInterval(b.cfg.OrbCooldownMs, ctx.level)
	if ctx.elapsed-b.lastOrb > cooldown {
		pos := core.Vec2{
			X: b.Pos.X + float64(b.W/2) - float64(b.orb.Size/2),
			Y: b.Pos.Y + float64(b.H),
		}
		ctx.spawn(newOrb(pos, b.orb, ctx.elapsed))
		b.lastOrb = ctx.elapsed
	}
}

// Orb is a slow destructible bomb. It detonates into a radial burst when
// its fuse runs out, when it reaches the floor, or when its hp is
// exhausted, whichever comes first, and never more than once.
type Orb struct {
	core.Body
	Health
	lifecycle

	cfg       config.OrbConfig
	spawnedAt int64
	detonated bool
	primed    bool
}

func newOrb(pos core.Vec2, cfg config.OrbConfig, now int64) *Orb {
	return &Orb{
		Body:      core.NewBody(pos.X, pos.Y, cfg.Size, cfg.Size),
		Health:    newHealth(cfg.HP),
		cfg:       cfg,
		spawnedAt: now,
	}
}

func (o *Orb) Kind() Kind        { return KindOrb }
func (o *Orb) Bounds() core.Rect { return o.Rect() }

// Update sinks the orb and primes it once the fuse or the floor triggers.
func (o *Orb) Update(ctx *frameContext) {
	o.Pos.Y += o.cfg.Speed
	floor := o.Bounds().Y > ctx.arenaH-o.H
	fuse := ctx.elapsed-o.spawnedAt > o.cfg.FuseMs
	if floor || fuse {
		o.primed = true
	}
}

// Detonate removes the orb and returns its burst. Later calls return nil.
func (o *Orb) Detonate() []*Projectile {
	if o.detonated {
		return nil
	}
	o.detonated = true
	o.remove()
	r := o.Bounds()
	origin := core.Vec2{X: float64(r.X), Y: float64(r.Y)}
	return radialBurst(origin, o.cfg.Burst, o.cfg.Shrapnel)
}

// Detonated reports whether the orb already burst.
func (o *Orb) Detonated() bool {
	return o.detonated
}
