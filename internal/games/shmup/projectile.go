package shmup

import (
	"math"

	"github.com/vovakirdan/skyburst/internal/config"
	"github.com/vovakirdan/skyburst/internal/core"
)

// Projectile is a straight-flying bullet. Player bullets fly up and are
// cleared at the top edge; hostile bullets carry their owner and damage
// and are cleared once they leave the arena on any side.
type Projectile struct {
	core.Body
	lifecycle
	kind   Kind
	Vel    core.Vec2
	Damage int
}

func newProjectile(kind Kind, pos core.Vec2, def config.ProjectileDef, vel core.Vec2) *Projectile {
	return &Projectile{
		Body:   core.NewBody(pos.X, pos.Y, def.Width, def.Height),
		kind:   kind,
		Vel:    vel,
		Damage: def.Damage,
	}
}

// newAimedShot fires from pos toward target at the definition's speed.
func newAimedShot(kind Kind, pos, target core.Vec2, def config.ProjectileDef) *Projectile {
	return newProjectile(kind, pos, def, core.AimVelocity(pos, target, def.Speed))
}

// radialBurst returns n shrapnel bullets leaving origin at angles 2πi/n.
func radialBurst(origin core.Vec2, n int, def config.ProjectileDef) []*Projectile {
	out := make([]*Projectile, 0, n)
	for i := range n {
		angle := 2 * math.Pi / float64(n) * float64(i)
		vel := core.Vec2{X: def.Speed * math.Cos(angle), Y: def.Speed * math.Sin(angle)}
		out = append(out, newProjectile(KindExplosionBullet, origin, def, vel))
	}
	return out
}

func (p *Projectile) Kind() Kind        { return p.kind }
func (p *Projectile) Bounds() core.Rect { return p.Rect() }

// Owner returns the kind of actor that fired the projectile.
func (p *Projectile) Owner() Kind {
	switch p.kind {
	case KindEliteBullet:
		return KindElite
	case KindExplosionBullet:
		return KindOrb
	case KindBossBullet:
		return KindFinalBoss
	default:
		return KindPlayer
	}
}

// Update moves the projectile and marks it for removal once it leaves the arena.
func (p *Projectile) Update(ctx *frameContext) {
	p.Move(p.Vel)
	r := p.Bounds()
	if p.kind == KindPlayerBullet {
		if r.Y < 0 {
			p.remove()
		}
		return
	}
	if outside(r, ctx.arenaW, ctx.arenaH) {
		p.remove()
	}
}
