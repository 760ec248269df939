package shmup

import (
	"math/rand/v2"

	"github.com/vovakirdan/skyburst/internal/config"
	"github.com/vovakirdan/skyburst/internal/core"
)

// Phase is the state of the session state machine.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseGameOver
	PhaseVictory
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase waits for a restart.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseVictory
}

// Session owns every actor population, the score, the timers and the RNG
// of one run. It is single-threaded: callers must not share it between
// goroutines.
type Session struct {
	cfg     config.ShmupConfig
	runtime core.RuntimeConfig
	diff    *config.Difficulty
	tracker *config.Tracker
	pcg     *rand.PCG
	rng     *rand.Rand

	tick     int64
	elapsed  int64
	score    int
	phase    Phase
	restarts uint64
	pauseWas bool

	player       *Player
	bullets      []*Projectile
	formation    []*FormationEnemy
	elite        *Elite
	eliteBullets []*Projectile
	freeRoam     []*FreeRoamEnemy
	barrage      *Barrage
	orbs         []*Orb
	shrapnel     []*Projectile
	boss         *FinalBoss
	bossBullets  []*Projectile
	bossSpawned  bool

	timers spawnTimers
	ctx    frameContext
	events []Event
}

// New creates a session from a validated configuration. The same
// configuration and seed always produce the same run for the same inputs.
func New(cfg config.ShmupConfig, seed int64) *Session {
	s := &Session{
		cfg: cfg,
		runtime: core.RuntimeConfig{
			ScreenW:  cfg.Arena.Width,
			ScreenH:  cfg.Arena.Height,
			TickRate: cfg.Arena.TickRate,
			Seed:     seed,
		},
		diff: config.NewDifficulty(cfg.Difficulty),
	}
	s.tracker = config.NewTracker(s.diff)
	s.reset()
	return s
}

// reset reconstructs all run state. Each restart derives a fresh RNG
// stream from the seed so consecutive runs differ but stay reproducible.
func (s *Session) reset() {
	s.pcg = rand.NewPCG(uint64(s.runtime.Seed), s.restarts) //#nosec G115 -- seed bits reused as-is
	s.rng = rand.New(s.pcg)
	s.tracker.Reset()

	s.tick = 0
	s.elapsed = 0
	s.score = 0
	s.phase = PhasePlaying
	s.pauseWas = false

	s.player = newPlayer(s.cfg.Player, s.cfg.Arena.Width, s.cfg.Arena.Height)
	s.bullets = nil
	s.formation = nil
	s.elite = nil
	s.eliteBullets = nil
	s.freeRoam = nil
	s.barrage = nil
	s.orbs = nil
	s.shrapnel = nil
	s.boss = nil
	s.bossBullets = nil
	s.bossSpawned = false
	s.timers = spawnTimers{}

	s.ctx = frameContext{
		level:  1,
		arenaW: s.cfg.Arena.Width,
		arenaH: s.cfg.Arena.Height,
		cfg:    &s.cfg,
		diff:   s.diff,
		rng:    s.rng,
	}
}

// Restart discards the current run and starts a new one at level 1.
func (s *Session) Restart() {
	s.restarts++
	s.reset()
}

// Runtime returns the arena size, tick rate and seed of the session.
func (s *Session) Runtime() core.RuntimeConfig {
	return s.runtime
}

// Step advances the session by one tick of sampled input.
func (s *Session) Step(in core.InputFrame) StepResult {
	s.events = s.events[:0]

	if s.phase.Terminal() {
		if in.Has(core.ActionRestart) {
			s.Restart()
			s.emit(Event{Type: EventRestart})
		}
		return s.result()
	}

	pause := in.Has(core.ActionPause)
	if pause && !s.pauseWas {
		if s.phase == PhasePaused {
			s.phase = PhasePlaying
			s.emit(Event{Type: EventResumed})
		} else {
			s.phase = PhasePaused
			s.emit(Event{Type: EventPaused})
		}
	}
	s.pauseWas = pause
	if s.phase == PhasePaused {
		return s.result()
	}

	s.tick++
	s.advance(in, s.runtime.ElapsedMs(s.tick))
	return s.result()
}

// advance runs one simulation frame at the given session time.
func (s *Session) advance(in core.InputFrame, elapsed int64) {
	s.elapsed = elapsed
	ctx := &s.ctx
	ctx.elapsed = elapsed

	if level, changed := s.tracker.Update(elapsed); changed {
		s.emit(Event{Type: EventLevelUp, Level: level})
	}
	ctx.level = s.tracker.Level()

	s.player.Steer(in, ctx.arenaW, ctx.arenaH)
	if shot := s.player.Fire(in, elapsed); shot != nil {
		s.bullets = append(s.bullets, shot)
		s.emit(Event{Type: EventShot, Kind: KindPlayerBullet})
	}
	ctx.target = s.player.Center()

	s.runSpawners(ctx)
	s.updatePopulations(ctx)

	s.resolveBulletHits()
	if s.phase == PhaseVictory {
		s.emit(Event{Type: EventVictory, Score: s.score})
		return
	}
	s.resolvePlayerContacts()

	if s.player.Dead() {
		s.phase = PhaseGameOver
		s.emit(Event{Type: EventGameOver, Score: s.score})
	}
}

// updatePopulations moves every population in a fixed order. Actors spawned
// by an update join their population before it moves, so new shots travel
// on the tick they are fired.
func (s *Session) updatePopulations(ctx *frameContext) {
	updateAll(ctx, s.bullets)
	updateAll(ctx, s.formation)

	if s.elite != nil {
		s.elite.Update(ctx)
		s.adopt(ctx)
	}
	updateAll(ctx, s.eliteBullets)

	updateAll(ctx, s.freeRoam)

	if s.barrage != nil {
		s.barrage.Update(ctx)
		s.adopt(ctx)
	}
	for _, o := range s.orbs {
		o.Update(ctx)
		if o.primed {
			s.detonate(o)
		}
	}
	updateAll(ctx, s.shrapnel)

	if s.boss != nil {
		s.boss.Update(ctx)
		s.adopt(ctx)
	}
	updateAll(ctx, s.bossBullets)

	s.bullets = compact(s.bullets)
	s.formation = compact(s.formation)
	s.eliteBullets = compact(s.eliteBullets)
	s.freeRoam = compact(s.freeRoam)
	s.orbs = compact(s.orbs)
	s.shrapnel = compact(s.shrapnel)
	s.bossBullets = compact(s.bossBullets)
}

func updateAll[T Mover](ctx *frameContext, xs []T) {
	for _, x := range xs {
		x.Update(ctx)
	}
}

func (s *Session) award(points int) {
	if points > 0 {
		s.score += points
	}
}

func (s *Session) destroyed(kind Kind, points int) {
	s.award(points)
	s.emit(Event{Type: EventDestroyed, Kind: kind, Points: points})
}

func (s *Session) emit(e Event) {
	e.Elapsed = s.elapsed
	s.events = append(s.events, e)
}

func (s *Session) result() StepResult {
	events := make([]Event, len(s.events))
	copy(events, s.events)
	return StepResult{State: s.State(), Events: events}
}

// State returns the externally visible status.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		GameOver: s.phase == PhaseGameOver,
		Won:      s.phase == PhaseVictory,
		Paused:   s.phase == PhasePaused,
	}
}

// Phase returns the current state machine phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Level returns the current difficulty level.
func (s *Session) Level() int {
	return s.tracker.Level()
}

// Elapsed returns the session time in milliseconds.
func (s *Session) Elapsed() int64 {
	return s.elapsed
}

// Player returns the player ship.
func (s *Session) Player() *Player {
	return s.player
}

// Config returns the configuration the session runs with.
func (s *Session) Config() config.ShmupConfig {
	return s.cfg
}
