package shmup

import "github.com/vovakirdan/skyburst/internal/core"

// Sprite is the presentation view of one live actor.
type Sprite struct {
	Kind  Kind
	Rect  core.Rect
	Color core.Color
	HP    int // zero MaxHP means the actor has no HP bar
	MaxHP int
}

// HasHealthBar reports whether the sprite carries an HP bar.
func (sp Sprite) HasHealthBar() bool {
	return sp.MaxHP > 0
}

// HPRatio returns the filled fraction of the HP bar.
func (sp Sprite) HPRatio() float64 {
	return Health{HP: sp.HP, MaxHP: sp.MaxHP}.Ratio()
}

// Snapshot is a read-only copy of everything a frontend needs to draw a
// frame. Sprites are listed in draw order.
type Snapshot struct {
	Tick          int64
	Elapsed       int64
	Level         int
	Score         int
	HP            int
	MaxHP         int
	Player        core.Rect
	PlayerVisible bool
	Invincible    bool
	Phase         Phase
	ArenaW        int
	ArenaH        int
	BossActive    bool
	Sprites       []Sprite

	// RNG state for determinism checks
	RNGState []byte
}

func spriteOf(a Actor) Sprite {
	return Sprite{Kind: a.Kind(), Rect: a.Bounds(), Color: a.Kind().Color()}
}

func spriteWithHealth(a Actor, h Health) Sprite {
	sp := spriteOf(a)
	sp.HP = h.HP
	sp.MaxHP = h.MaxHP
	return sp
}

// Snapshot returns the current frame for presentation.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          s.tick,
		Elapsed:       s.elapsed,
		Level:         s.tracker.Level(),
		Score:         s.score,
		HP:            s.player.HP,
		MaxHP:         s.player.MaxHP,
		Player:        s.player.Bounds(),
		PlayerVisible: s.player.Visible(s.elapsed),
		Invincible:    s.player.Invincible(s.elapsed),
		Phase:         s.phase,
		ArenaW:        s.cfg.Arena.Width,
		ArenaH:        s.cfg.Arena.Height,
		BossActive:    s.boss != nil,
	}

	n := len(s.bullets) + len(s.formation) + len(s.eliteBullets) + len(s.freeRoam) +
		len(s.orbs) + len(s.shrapnel) + len(s.bossBullets) + 3
	sprites := make([]Sprite, 0, n)
	for _, b := range s.bullets {
		sprites = append(sprites, spriteOf(b))
	}
	for _, e := range s.formation {
		sprites = append(sprites, spriteOf(e))
	}
	if s.elite != nil {
		sprites = append(sprites, spriteWithHealth(s.elite, s.elite.Health))
	}
	for _, b := range s.eliteBullets {
		sprites = append(sprites, spriteOf(b))
	}
	for _, e := range s.freeRoam {
		sprites = append(sprites, spriteOf(e))
	}
	if s.barrage != nil {
		sprites = append(sprites, spriteWithHealth(s.barrage, s.barrage.Health))
	}
	for _, o := range s.orbs {
		sprites = append(sprites, spriteWithHealth(o, o.Health))
	}
	for _, b := range s.shrapnel {
		sprites = append(sprites, spriteOf(b))
	}
	if s.boss != nil {
		sprites = append(sprites, spriteWithHealth(s.boss, s.boss.Health))
	}
	for _, b := range s.bossBullets {
		sprites = append(sprites, spriteOf(b))
	}
	snap.Sprites = sprites

	if state, err := s.pcg.MarshalBinary(); err == nil {
		snap.RNGState = state
	}
	return snap
}

// Count returns how many sprites of the given kind are live.
func (snap *Snapshot) Count(kind Kind) int {
	n := 0
	for _, sp := range snap.Sprites {
		if sp.Kind == kind {
			n++
		}
	}
	return n
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Elapsed) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HP)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)   //#nosec G115 -- hash computation
	h = h*31 + hashRect(snap.Player)
	h = h*31 + uint64(len(snap.Sprites))

	for _, sp := range snap.Sprites {
		h = h*31 + uint64(sp.Kind) //#nosec G115 -- hash computation
		h = h*31 + hashRect(sp.Rect)
		h = h*31 + uint64(sp.HP) //#nosec G115 -- hash computation
	}

	for _, b := range snap.RNGState {
		h = h*31 + uint64(b)
	}
	return h
}

func hashRect(r core.Rect) uint64 {
	h := uint64(r.X)          //#nosec G115 -- hash computation
	h = h*31 + uint64(r.Y)    //#nosec G115 -- hash computation
	h = h*31 + uint64(r.W)    //#nosec G115 -- hash computation
	return h*31 + uint64(r.H) //#nosec G115 -- hash computation
}
