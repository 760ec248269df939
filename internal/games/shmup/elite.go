package shmup

import (
	"github.com/vovakirdan/skyburst/internal/config"
	"github.com/vovakirdan/skyburst/internal/core"
)

// Elite is the mid-tier singleton: it descends to a hold altitude and fires
// single shots aimed at the player.
type Elite struct {
	core.Body
	Health

	cfg      config.EliteConfig
	lastShot int64
}

func newElite(cfg config.EliteConfig, arenaW int) *Elite {
	x := float64((arenaW - cfg.Size) / 2)
	return &Elite{
		Body:   core.NewBody(x, float64(-2*cfg.Size), cfg.Size, cfg.Size),
		Health: newHealth(cfg.HP),
		cfg:    cfg,
	}
}

func (e *Elite) Kind() Kind        { return KindElite }
func (e *Elite) Bounds() core.Rect { return e.Rect() }

// Update descends toward the hold altitude and fires on cooldown.
func (e *Elite) Update(ctx *frameContext) {
	if e.Pos.Y < e.cfg.HoldY {
		e.Pos.Y += e.cfg.Descent
	}
	cooldown := ctx.diff.ScaleInterval(e.cfg.ShotCooldownMs, ctx.level)
	if ctx.elapsed-e.lastShot > cooldown {
		ctx.spawn(e.shoot(ctx.target))
		e.lastShot = ctx.elapsed
	}
}

// shoot fires from the middle of the elite's bottom edge.
func (e *Elite) shoot(target core.Vec2) *Projectile {
	def := e.cfg.Bullet
	pos := core.Vec2{
		X: e.Pos.X + float64(e.W/2) - float64(def.Width/2),
		Y: e.Pos.Y + float64(e.H),
	}
	return newAimedShot(KindEliteBullet, pos, target, def)
}
