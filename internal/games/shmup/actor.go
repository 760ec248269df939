// Package shmup implements the vertical shoot-'em-up simulation: a
// deterministic, frame-stepped session that owns every actor population
// and advances them in a fixed order each tick.
package shmup

import (
	"math/rand/v2"

	"github.com/vovakirdan/skyburst/internal/config"
	"github.com/vovakirdan/skyburst/internal/core"
)

// Kind tags the concrete variant behind an Actor.
type Kind int

const (
	KindPlayer Kind = iota
	KindPlayerBullet
	KindFormation
	KindElite
	KindEliteBullet
	KindFreeRoam
	KindBarrage
	KindOrb
	KindExplosionBullet
	KindFinalBoss
	KindBossBullet
)

var kindNames = [...]string{
	KindPlayer:          "player",
	KindPlayerBullet:    "player_bullet",
	KindFormation:       "formation",
	KindElite:           "elite",
	KindEliteBullet:     "elite_bullet",
	KindFreeRoam:        "free_roam",
	KindBarrage:         "barrage",
	KindOrb:             "orb",
	KindExplosionBullet: "explosion_bullet",
	KindFinalBoss:       "final_boss",
	KindBossBullet:      "boss_bullet",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Color returns the draw color of the kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindPlayer, KindPlayerBullet:
		return core.ColorWhite
	case KindFormation:
		return core.ColorRed
	case KindElite:
		return core.ColorPurple
	case KindEliteBullet, KindExplosionBullet:
		return core.ColorYellow
	case KindFreeRoam:
		return core.ColorCyan
	case KindBarrage, KindOrb:
		return core.ColorOrange
	case KindFinalBoss, KindBossBullet:
		return core.ColorDarkBlue
	default:
		return core.ColorDefault
	}
}

// Hostile reports whether the kind can hurt the player.
func (k Kind) Hostile() bool {
	return k != KindPlayer && k != KindPlayerBullet
}

// Actor is the capability every simulated entity shares.
type Actor interface {
	Kind() Kind
	Bounds() core.Rect
}

// Mover is an actor that advances itself once per tick.
type Mover interface {
	Actor
	Update(ctx *frameContext)
}

// Health tracks hit points of a destructible actor.
type Health struct {
	HP    int
	MaxHP int
}

func newHealth(hp int) Health {
	return Health{HP: hp, MaxHP: hp}
}

// Damage subtracts n hit points, flooring at zero. It returns true only on
// the call that takes hp from positive to zero, so a destruction is
// observed exactly once.
func (h *Health) Damage(n int) (killed bool) {
	if h.HP <= 0 || n <= 0 {
		return false
	}
	h.HP -= n
	if h.HP <= 0 {
		h.HP = 0
		return true
	}
	return false
}

// Dead reports whether hp is exhausted.
func (h Health) Dead() bool {
	return h.HP <= 0
}

// Ratio returns hp/max in [0, 1] for HP bars.
func (h Health) Ratio() float64 {
	if h.MaxHP <= 0 {
		return 0
	}
	return float64(h.HP) / float64(h.MaxHP)
}

// lifecycle carries the pending-removal mark used by population compaction.
type lifecycle struct {
	removed bool
}

func (l *lifecycle) remove()      { l.removed = true }
func (l *lifecycle) Removed() bool { return l.removed }

// compact drops every element marked for removal, preserving order.
func compact[T interface{ Removed() bool }](xs []T) []T {
	n := 0
	for _, x := range xs {
		if !x.Removed() {
			xs[n] = x
			n++
		}
	}
	clear(xs[n:])
	return xs[:n]
}

// frameContext is the read-mostly view of the session handed to movers.
// Actors created during an update are queued in spawned and adopted by the
// session right after the producing population finishes.
type frameContext struct {
	elapsed int64
	level   int
	target  core.Vec2 // player center
	arenaW  int
	arenaH  int
	cfg     *config.ShmupConfig
	diff    *config.Difficulty
	rng     *rand.Rand
	spawned []Actor
}

func (c *frameContext) spawn(a Actor) {
	c.spawned = append(c.spawned, a)
}

// outside reports whether r left the arena by more than its own size on any edge.
func outside(r core.Rect, arenaW, arenaH int) bool {
	return r.X < -r.W || r.X > arenaW+r.W || r.Y < -r.H || r.Y > arenaH+r.H
}
