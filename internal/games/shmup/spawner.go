package shmup

// spawnTimers holds the elapsed time of the last spawn per actor type.
// All start at zero, so the first spawn of each type happens once its
// interval has passed since the session began.
type spawnTimers struct {
	formation int64
	elite     int64
	freeRoam  int64
	barrage   int64
}

// runSpawners checks every spawn timer once. Singletons only spawn while
// their slot is empty; the final boss spawns at most once per session.
func (s *Session) runSpawners(ctx *frameContext) {
	cfg := ctx.cfg

	waveInterval := ctx.diff.ScaleInterval(cfg.Formation.IntervalMs, ctx.level)
	if ctx.elapsed-s.timers.formation > waveInterval {
		for _, e := range spawnWave(ctx) {
			s.formation = append(s.formation, e)
			s.emit(Event{Type: EventSpawn, Kind: KindFormation})
		}
		s.timers.formation = ctx.elapsed
	}

	if s.elite == nil && ctx.elapsed-s.timers.elite > cfg.Elite.RespawnMs {
		s.elite = newElite(cfg.Elite, ctx.arenaW)
		s.timers.elite = ctx.elapsed
		s.emit(Event{Type: EventSpawn, Kind: KindElite})
	}

	roamInterval := ctx.diff.ScaleInterval(cfg.FreeRoam.IntervalMs, ctx.level)
	if ctx.elapsed-s.timers.freeRoam > roamInterval {
		s.freeRoam = append(s.freeRoam, spawnFreeRoam(ctx))
		s.timers.freeRoam = ctx.elapsed
		s.emit(Event{Type: EventSpawn, Kind: KindFreeRoam})
	}

	if s.barrage == nil && ctx.elapsed-s.timers.barrage > cfg.Barrage.IntervalMs {
		s.barrage = spawnBarrage(ctx)
		s.timers.barrage = ctx.elapsed
		s.emit(Event{Type: EventSpawn, Kind: KindBarrage})
	}

	if !s.bossSpawned && ctx.elapsed > cfg.Boss.SpawnAfterMs {
		s.boss = newFinalBoss(cfg.Boss, ctx.arenaW, ctx.arenaH)
		s.bossSpawned = true
		s.emit(Event{Type: EventBossSpawned, Kind: KindFinalBoss})
	}
}

// adopt routes actors created during an update into their population.
func (s *Session) adopt(ctx *frameContext) {
	for _, a := range ctx.spawned {
		switch v := a.(type) {
		case *Projectile:
			switch v.Kind() {
			case KindEliteBullet:
				s.eliteBullets = append(s.eliteBullets, v)
			case KindBossBullet:
				s.bossBullets = append(s.bossBullets, v)
			case KindExplosionBullet:
				s.shrapnel = append(s.shrapnel, v)
			case KindPlayerBullet:
				s.bullets = append(s.bullets, v)
			}
			s.emit(Event{Type: EventShot, Kind: v.Kind()})
		case *Orb:
			s.orbs = append(s.orbs, v)
			s.emit(Event{Type: EventSpawn, Kind: KindOrb})
		}
	}
	ctx.spawned = ctx.spawned[:0]
}

// detonate bursts an orb exactly once and adds its shrapnel.
func (s *Session) detonate(o *Orb) {
	burst := o.Detonate()
	if burst == nil {
		return
	}
	s.shrapnel = append(s.shrapnel, burst...)
	s.emit(Event{Type: EventOrbDetonated, Kind: KindOrb})
}
