package shmup

import (
	"github.com/vovakirdan/skyburst/internal/config"
	"github.com/vovakirdan/skyburst/internal/core"
)

// Player is the ship steered by input.
type Player struct {
	core.Body
	Health

	cfg      config.PlayerConfig
	lastShot int64
	lastHit  int64
	everHit  bool
}

func newPlayer(cfg config.PlayerConfig, arenaW, arenaH int) *Player {
	x := float64((arenaW - cfg.Width) / 2)
	y := float64(arenaH - cfg.Height - cfg.BottomOffset)
	return &Player{
		Body:   core.NewBody(x, y, cfg.Width, cfg.Height),
		Health: newHealth(cfg.HP),
		cfg:    cfg,
	}
}

func (p *Player) Kind() Kind        { return KindPlayer }
func (p *Player) Bounds() core.Rect { return p.Rect() }

// Steer applies the held directions and clamps the ship inside the arena.
// Diagonals are not normalized.
func (p *Player) Steer(in core.InputFrame, arenaW, arenaH int) {
	dx, dy := in.Axis()
	p.Pos.X += float64(dx) * p.cfg.Speed
	p.Pos.Y += float64(dy) * p.cfg.Speed
	p.Pos.X = core.ClampF(p.Pos.X, 0, float64(arenaW-p.W))
	p.Pos.Y = core.ClampF(p.Pos.Y, 0, float64(arenaH-p.H))
}

// Fire returns a new bullet when fire is held and the cooldown elapsed.
func (p *Player) Fire(in core.InputFrame, elapsed int64) *Projectile {
	if !in.Has(core.ActionFire) || elapsed-p.lastShot <= p.cfg.FireCooldownMs {
		return nil
	}
	p.lastShot = elapsed
	def := p.cfg.Bullet
	pos := core.Vec2{
		X: p.Pos.X + float64(p.W/2) - float64(def.Width/2),
		Y: p.Pos.Y,
	}
	return newProjectile(KindPlayerBullet, pos, def, core.Vec2{Y: -def.Speed})
}

// Invincible reports whether the post-hit grace window is still open.
func (p *Player) Invincible(elapsed int64) bool {
	return p.everHit && elapsed-p.lastHit <= p.cfg.InvincibleMs
}

// Visible implements the flashing contract: while invincible the ship is
// hidden on every other flash period.
func (p *Player) Visible(elapsed int64) bool {
	if !p.Invincible(elapsed) {
		return true
	}
	flash := p.cfg.FlashMs
	if flash <= 0 {
		return true
	}
	return (elapsed/flash)%2 != 0
}

// TakeHit applies summed contact damage and restarts the grace window.
func (p *Player) TakeHit(damage int, elapsed int64) {
	if damage <= 0 {
		return
	}
	p.Damage(damage)
	p.lastHit = elapsed
	p.everHit = true
}
