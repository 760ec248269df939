package shmup

import (
	"github.com/vovakirdan/skyburst/internal/config"
	"github.com/vovakirdan/skyburst/internal/core"
)

// FinalBoss is stationary, fires aimed shots from its center and never
// leaves the arena. Destroying it ends the session in victory.
type FinalBoss struct {
	core.Body
	Health

	cfg      config.BossConfig
	lastShot int64
}

func newFinalBoss(cfg config.BossConfig, arenaW, arenaH int) *FinalBoss {
	x := float64((arenaW - cfg.Size) / 2)
	y := float64(arenaH / 4)
	return &FinalBoss{
		Body:   core.NewBody(x, y, cfg.Size, cfg.Size),
		Health: newHealth(cfg.HP),
		cfg:    cfg,
	}
}

func (b *FinalBoss) Kind() Kind        { return KindFinalBoss }
func (b *FinalBoss) Bounds() core.Rect { return b.Rect() }

// Update fires on cooldown while the boss is alive.
func (b *FinalBoss) Update(ctx *frameContext) {
	if b.Dead() {
		return
	}
	cooldown := ctx.diff.ScaleInterval(b.cfg.ShotCooldownMs, ctx.level)
	if ctx.elapsed-b.lastShot > cooldown {
		ctx.spawn(newAimedShot(KindBossBullet, b.Center(), ctx.target, b.cfg.Bullet))
		b.lastShot = ctx.elapsed
	}
}
