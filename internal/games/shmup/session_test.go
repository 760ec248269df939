package shmup

import (
	"math/rand/v2"
	"testing"

	"github.com/vovakirdan/skyburst/internal/config"
	"github.com/vovakirdan/skyburst/internal/core"
)

func TestNewSessionStartsClean(t *testing.T) {
	s := newTestSession(t)

	if s.Phase() != PhasePlaying {
		t.Errorf("phase = %s, expected playing", s.Phase())
	}
	if s.Level() != 1 || s.Score() != 0 || s.Elapsed() != 0 {
		t.Errorf("level=%d score=%d elapsed=%d, expected 1/0/0", s.Level(), s.Score(), s.Elapsed())
	}

	p := s.Player()
	if p.Pos.X != 390 || p.Pos.Y != 550 {
		t.Errorf("player at %+v, expected (390, 550)", p.Pos)
	}
	if p.Invincible(0) {
		t.Error("player must not start invincible")
	}
	if p.HP != 100 {
		t.Errorf("hp = %d, expected 100", p.HP)
	}
}

func TestSpawnTimersAreStrict(t *testing.T) {
	tests := []struct {
		name    string
		at      int64
		count   func(s *Session) int
		expects int
	}{
		{"formation at interval", 1000, func(s *Session) int { return len(s.formation) }, 0},
		{"formation after interval", 1001, func(s *Session) int { return len(s.formation) }, 4},
		{"free roam at interval", 2000, func(s *Session) int { return len(s.freeRoam) }, 0},
		{"free roam after interval", 2001, func(s *Session) int { return len(s.freeRoam) }, 1},
		{"elite at respawn", 7000, func(s *Session) int { return boolCount(s.elite != nil) }, 0},
		{"elite after respawn", 7001, func(s *Session) int { return boolCount(s.elite != nil) }, 1},
		{"barrage at interval", 25000, func(s *Session) int { return boolCount(s.barrage != nil) }, 0},
		{"barrage after interval", 25001, func(s *Session) int { return boolCount(s.barrage != nil) }, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t)
			s.advance(core.NewInputFrame(), tc.at)
			if got := tc.count(s); got != tc.expects {
				t.Errorf("count = %d, expected %d", got, tc.expects)
			}
		})
	}
}

func boolCount(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestFormationWaveLayout(t *testing.T) {
	s := newTestSession(t)
	s.advance(core.NewInputFrame(), 1001)

	cfg := s.cfg.Formation
	pitch := float64(cfg.Size + cfg.Spacing)
	first := s.formation[0].originX
	if first < 0 || first+pitch*float64(cfg.WaveSize-1)+float64(cfg.Size) > float64(s.cfg.Arena.Width) {
		t.Errorf("wave starting at %.0f does not fit the arena", first)
	}
	for i, e := range s.formation {
		if e.originX != first+pitch*float64(i) {
			t.Errorf("enemy %d origin = %.0f, expected %.0f", i, e.originX, first+pitch*float64(i))
		}
		if e.spawnedAt != 1001 {
			t.Errorf("enemy %d spawnedAt = %d, expected 1001", i, e.spawnedAt)
		}
		// Spawned at y=-30 and moved once in the same frame.
		if e.Pos.Y != -30+cfg.BaseSpeed {
			t.Errorf("enemy %d y = %.2f, expected %.2f", i, e.Pos.Y, -30+cfg.BaseSpeed)
		}
	}
}

func TestFreeRoamSpawnsAtSideEdge(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s := New(config.DefaultShmupConfig(), seed)
		ctx := &s.ctx
		ctx.elapsed = 2001
		e := spawnFreeRoam(ctx)

		if e.Pos.X != -20 && e.Pos.X != 820 {
			t.Errorf("seed %d: x = %.0f, expected -20 or 820", seed, e.Pos.X)
		}
		if e.Pos.Y < 0 || e.Pos.Y > 300 {
			t.Errorf("seed %d: y = %.0f, expected within [0, 300]", seed, e.Pos.Y)
		}
		if e.Target.Y < 0 || e.Target.Y > 300 || e.Target.X < 0 || e.Target.X > 775 {
			t.Errorf("seed %d: roam target %+v outside the upper half", seed, e.Target)
		}
		if e.lastRetarget != 2001 {
			t.Errorf("seed %d: lastRetarget = %d, expected spawn time", seed, e.lastRetarget)
		}
	}
}

func TestFinalBossSpawnsOnce(t *testing.T) {
	s := newTestSession(t)
	idle := core.NewInputFrame()

	s.advance(idle, 60000)
	if s.boss != nil {
		t.Fatal("boss must not spawn at exactly the threshold")
	}

	s.advance(idle, 60001)
	if s.boss == nil {
		t.Fatal("boss should spawn once the threshold passed")
	}
	if s.boss.Pos.X != 325 || s.boss.Pos.Y != 150 {
		t.Errorf("boss at %+v, expected (325, 150)", s.boss.Pos)
	}

	s.advance(idle, 60017)
	s.advance(idle, 90000)
	if got := countEvents(s.events, EventBossSpawned); got != 1 {
		t.Errorf("boss spawn events = %d, expected 1", got)
	}
}

func TestLevelUpEvents(t *testing.T) {
	s := newTestSession(t)
	idle := core.NewInputFrame()

	s.advance(idle, 29999)
	if s.Level() != 1 {
		t.Fatalf("level = %d, expected 1", s.Level())
	}
	s.advance(idle, 30000)
	if s.Level() != 2 {
		t.Fatalf("level = %d, expected 2", s.Level())
	}
	if got := countEvents(s.events, EventLevelUp); got != 1 {
		t.Errorf("level up events = %d, expected 1", got)
	}
}

func TestPlayerSteeringIsClamped(t *testing.T) {
	s := newTestSession(t)
	left := core.InputOf(core.ActionLeft, core.ActionDown)

	for range 200 {
		s.player.Steer(left, 800, 600)
	}
	if s.player.Pos.X != 0 {
		t.Errorf("x = %.1f, expected clamp at 0", s.player.Pos.X)
	}
	if s.player.Pos.Y != 580 {
		t.Errorf("y = %.1f, expected clamp at 580", s.player.Pos.Y)
	}

	s.player.Pos = core.Vec2{X: 100, Y: 100}
	s.player.Steer(core.InputOf(core.ActionRight, core.ActionUp), 800, 600)
	if s.player.Pos.X != 103 || s.player.Pos.Y != 97 {
		t.Errorf("diagonal moved to %+v, expected (103, 97)", s.player.Pos)
	}
}

func TestPlayerFireCooldown(t *testing.T) {
	s := newTestSession(t)
	fire := core.InputOf(core.ActionFire)

	tests := []struct {
		at    int64
		fires bool
	}{
		{0, false},
		{16, false},
		{100, false},
		{101, true},
		{150, false},
		{201, false},
		{202, true},
	}
	for _, tc := range tests {
		got := s.player.Fire(fire, tc.at) != nil
		if got != tc.fires {
			t.Errorf("Fire at %d = %v, expected %v", tc.at, got, tc.fires)
		}
	}

	shot := s.player.Fire(fire, 1000)
	if shot.Pos.X != 390+10-2 || shot.Pos.Y != 550 {
		t.Errorf("bullet spawned at %+v, expected (398, 550)", shot.Pos)
	}
	if shot.Vel.Y != -12 {
		t.Errorf("bullet velocity = %+v, expected straight up at 12", shot.Vel)
	}
}

func TestPlayerFlashing(t *testing.T) {
	s := newTestSession(t)
	p := s.player
	p.TakeHit(10, 1000)

	tests := []struct {
		at      int64
		visible bool
	}{
		{1000, false},
		{1099, false},
		{1100, true},
		{1250, false},
		{1999, true},
		{2000, false},
		{2001, true},
	}
	for _, tc := range tests {
		if got := p.Visible(tc.at); got != tc.visible {
			t.Errorf("Visible(%d) = %v, expected %v", tc.at, got, tc.visible)
		}
	}
}

func TestPauseTogglesOnPress(t *testing.T) {
	s := newTestSession(t)
	pause := core.InputOf(core.ActionPause)
	idle := core.NewInputFrame()

	res := s.Step(pause)
	if !res.State.Paused || countEvents(res.Events, EventPaused) != 1 {
		t.Fatalf("expected pause, got %+v", res)
	}

	// Holding the key does not toggle again, and time stays frozen.
	s.Step(pause)
	s.Step(idle)
	if s.Phase() != PhasePaused || s.tick != 0 {
		t.Fatalf("phase=%s tick=%d, expected frozen pause", s.Phase(), s.tick)
	}

	res = s.Step(pause)
	if res.State.Paused || countEvents(res.Events, EventResumed) != 1 {
		t.Fatalf("expected resume, got %+v", res)
	}
	if s.tick != 1 {
		t.Errorf("tick = %d, expected the resuming step to advance", s.tick)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	s := newTestSession(t)
	s.score = 50
	s.tracker.Update(95000)
	s.player.HP = 1
	px, py := s.player.Pos.X, s.player.Pos.Y
	s.formation = []*FormationEnemy{newFormationEnemy(px-5, py-5, s.cfg.Formation)}

	res := s.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatalf("state = %+v, expected game over", res.State)
	}
	if s.player.HP != 0 {
		t.Errorf("hp = %d, expected floor at 0", s.player.HP)
	}
	if got := countEvents(res.Events, EventGameOver); got != 1 {
		t.Errorf("game over events = %d, expected 1", got)
	}

	tick := s.tick
	s.Step(core.InputOf(core.ActionFire, core.ActionLeft))
	if s.tick != tick || s.Phase() != PhaseGameOver {
		t.Fatal("terminal phase must ignore everything but restart")
	}

	res = s.Step(core.InputOf(core.ActionRestart))
	if countEvents(res.Events, EventRestart) != 1 {
		t.Error("expected a restart event")
	}
	if s.Phase() != PhasePlaying || s.Score() != 0 || s.Level() != 1 || s.tick != 0 {
		t.Errorf("phase=%s score=%d level=%d tick=%d after restart", s.Phase(), s.Score(), s.Level(), s.tick)
	}
	if len(s.formation) != 0 || s.player.HP != 100 {
		t.Error("restart must rebuild every population")
	}
}

func TestVictoryIsTerminal(t *testing.T) {
	s := newTestSession(t)
	s.boss = newFinalBoss(s.cfg.Boss, 800, 600)
	s.bossSpawned = true
	s.boss.HP = 1
	s.player.Pos = core.Vec2{X: 390, Y: 400}
	s.bullets = []*Projectile{playerShot(s, 395, 295)}

	res := s.Step(core.NewInputFrame())
	if !res.State.Won || countEvents(res.Events, EventVictory) != 1 {
		t.Fatalf("expected victory, got %+v", res)
	}

	tick := s.tick
	s.Step(core.InputOf(core.ActionFire))
	if s.tick != tick {
		t.Error("victory must freeze the session")
	}
}

func TestSameSeedSameRun(t *testing.T) {
	a := New(config.DefaultShmupConfig(), 42)
	b := New(config.DefaultShmupConfig(), 42)
	pilotA, pilotB := NewAutopilot(), NewAutopilot()

	lastScore := 0
	for tick := range 3600 {
		snapA, snapB := a.Snapshot(), b.Snapshot()
		if snapA.Hash() != snapB.Hash() {
			t.Fatalf("runs diverged at tick %d", tick)
		}
		a.Step(pilotA.Next(&snapA))
		b.Step(pilotB.Next(&snapB))

		if a.Score() < lastScore {
			t.Fatalf("score decreased at tick %d: %d -> %d", tick, lastScore, a.Score())
		}
		lastScore = a.Score()
	}
	if a.Score() != b.Score() {
		t.Errorf("final scores differ: %d vs %d", a.Score(), b.Score())
	}
}

func TestSeedsProduceDifferentRuns(t *testing.T) {
	a := New(config.DefaultShmupConfig(), 1)
	b := New(config.DefaultShmupConfig(), 2)
	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Hash() == sb.Hash() {
		t.Error("different seeds should not share RNG state")
	}
}

func TestRestartChangesStream(t *testing.T) {
	s := newTestSession(t)
	first := s.Snapshot()
	s.Restart()
	second := s.Snapshot()
	if string(first.RNGState) == string(second.RNGState) {
		t.Error("each restart should derive a fresh RNG stream")
	}

	replay := newTestSession(t)
	replay.Restart()
	again := replay.Snapshot()
	if second.Hash() != again.Hash() {
		t.Error("restart streams must be reproducible")
	}
}

func randomHeldInput(rng *rand.Rand) core.InputFrame {
	in := core.InputOf(core.ActionFire)
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
		if rng.IntN(3) == 0 {
			in.Set(a)
		}
	}
	return in
}

func TestRunInvariantsUnderRandomInput(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		s := New(config.DefaultShmupConfig(), seed)
		rng := rand.New(rand.NewPCG(uint64(seed), 99)) //#nosec G115 -- test input stream
		invincibleMs := s.Config().Player.InvincibleMs

		var in core.InputFrame
		lastScore, lastLevel := 0, 1
		lastHit := int64(-1)
		bosses := 0

		for tick := 0; tick < 6000 && !s.Phase().Terminal(); tick++ {
			if tick%12 == 0 {
				in = randomHeldInput(rng)
			}
			res := s.Step(in)

			if s.Score() < lastScore {
				t.Fatalf("seed %d tick %d: score decreased %d -> %d", seed, tick, lastScore, s.Score())
			}
			if s.Level() < lastLevel {
				t.Fatalf("seed %d tick %d: level decreased %d -> %d", seed, tick, lastLevel, s.Level())
			}
			p := s.Player()
			if p.HP < 0 || p.HP > p.MaxHP {
				t.Fatalf("seed %d tick %d: hp %d outside [0, %d]", seed, tick, p.HP, p.MaxHP)
			}
			if countEvents(res.Events, EventPlayerHit) > 0 {
				if lastHit >= 0 && s.Elapsed()-lastHit <= invincibleMs {
					t.Fatalf("seed %d: hit at %d ms inside invincibility from %d ms", seed, s.Elapsed(), lastHit)
				}
				lastHit = s.Elapsed()
			}
			bosses += countEvents(res.Events, EventBossSpawned)
			lastScore, lastLevel = s.Score(), s.Level()
		}
		if bosses > 1 {
			t.Errorf("seed %d: final boss spawned %d times", seed, bosses)
		}
	}
}
