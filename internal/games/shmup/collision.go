package shmup

import "github.com/vovakirdan/skyburst/internal/core"

// resolveBulletHits is pass (a): every live player bullet is tested against
// each hostile population. Within one population only the first overlapping
// target is hit; targets destroyed earlier in the pass are skipped.
// Destructions and their score apply immediately.
func (s *Session) resolveBulletHits() {
	cfg := &s.cfg
	for _, b := range s.bullets {
		br := b.Bounds()

		for _, e := range s.formation {
			if !e.Removed() && br.Intersects(e.Bounds()) {
				b.remove()
				e.remove()
				s.destroyed(KindFormation, cfg.Formation.Scoring.KillScore)
				break
			}
		}

		if s.elite != nil && br.Intersects(s.elite.Bounds()) {
			b.remove()
			sc := cfg.Elite.Scoring
			s.award(sc.HitScore)
			if s.elite.Damage(sc.HitDamage) {
				s.destroyed(KindElite, sc.KillScore)
				s.elite = nil
			}
		}

		for _, e := range s.freeRoam {
			if !e.Removed() && br.Intersects(e.Bounds()) {
				b.remove()
				e.remove()
				s.destroyed(KindFreeRoam, cfg.FreeRoam.Scoring.KillScore)
				break
			}
		}

		for _, o := range s.orbs {
			if !o.Removed() && br.Intersects(o.Bounds()) {
				b.remove()
				sc := cfg.Orb.Scoring
				s.award(sc.HitScore)
				if o.Damage(sc.HitDamage) {
					s.destroyed(KindOrb, sc.KillScore)
					s.detonate(o)
				}
				break
			}
		}

		if s.barrage != nil && br.Intersects(s.barrage.Bounds()) {
			b.remove()
			sc := cfg.Barrage.Scoring
			s.award(sc.HitScore)
			if s.barrage.Damage(sc.HitDamage) {
				s.destroyed(KindBarrage, sc.KillScore)
				s.barrage = nil
			}
		}

		if s.boss != nil && !s.boss.Dead() && br.Intersects(s.boss.Bounds()) {
			b.remove()
			sc := cfg.Boss.Scoring
			s.award(sc.HitScore)
			if s.boss.Damage(sc.HitDamage) {
				s.destroyed(KindFinalBoss, sc.KillScore)
				s.phase = PhaseVictory
			}
		}
	}

	s.bullets = compact(s.bullets)
	s.formation = compact(s.formation)
	s.freeRoam = compact(s.freeRoam)
	s.orbs = compact(s.orbs)
}

// resolvePlayerContacts is pass (b). While the player is invincible the
// whole pass is skipped. Otherwise each hostile population contributes at
// most one contact, and the summed damage is applied once.
func (s *Session) resolvePlayerContacts() {
	if s.player.Invincible(s.elapsed) {
		return
	}
	cfg := &s.cfg
	pr := s.player.Bounds()
	damage := 0

	for _, e := range s.formation {
		if pr.Intersects(e.Bounds()) {
			damage += cfg.Formation.Scoring.ContactDamage
			e.remove()
			break
		}
	}
	if s.elite != nil && pr.Intersects(s.elite.Bounds()) {
		damage += cfg.Elite.Scoring.ContactDamage
	}
	damage += firstContact(pr, s.eliteBullets)
	for _, e := range s.freeRoam {
		if pr.Intersects(e.Bounds()) {
			damage += cfg.FreeRoam.Scoring.ContactDamage
			e.remove()
			break
		}
	}
	if s.barrage != nil && pr.Intersects(s.barrage.Bounds()) {
		damage += cfg.Barrage.Scoring.ContactDamage
	}
	for _, o := range s.orbs {
		if pr.Intersects(o.Bounds()) {
			damage += cfg.Orb.Scoring.ContactDamage
			s.detonate(o)
			break
		}
	}
	damage += firstContact(pr, s.shrapnel)
	if s.boss != nil && pr.Intersects(s.boss.Bounds()) {
		damage += cfg.Boss.Scoring.ContactDamage
	}
	damage += firstContact(pr, s.bossBullets)

	s.formation = compact(s.formation)
	s.freeRoam = compact(s.freeRoam)
	s.orbs = compact(s.orbs)
	s.eliteBullets = compact(s.eliteBullets)
	s.shrapnel = compact(s.shrapnel)
	s.bossBullets = compact(s.bossBullets)

	if damage > 0 {
		s.player.TakeHit(damage, s.elapsed)
		s.emit(Event{Type: EventPlayerHit, Kind: KindPlayer, Damage: damage, HP: s.player.HP})
	}
}

// firstContact consumes the first projectile touching the player and
// returns its damage.
func firstContact(pr core.Rect, shots []*Projectile) int {
	for _, p := range shots {
		if !p.Removed() && pr.Intersects(p.Bounds()) {
			p.remove()
			return p.Damage
		}
	}
	return 0
}
