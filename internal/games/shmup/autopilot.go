package shmup

import (
	"math"

	"github.com/vovakirdan/skyburst/internal/core"
)

// Autopilot is a deterministic input policy for headless runs. It always
// fires, sidesteps the closest threat coming down on the ship and
// otherwise lines up under the most valuable target.
type Autopilot struct {
	DangerRange float64 // vertical look-ahead above the ship, in pixels
	Deadband    float64 // horizontal slack when aligning with a target
	HomeOffset  int     // preferred distance from the bottom edge
}

// NewAutopilot returns a policy with tuned defaults.
func NewAutopilot() *Autopilot {
	return &Autopilot{DangerRange: 140, Deadband: 6, HomeOffset: 60}
}

// targetPriority ranks what the autopilot aims at; higher wins.
var targetPriority = map[Kind]int{
	KindFinalBoss: 5,
	KindElite:     4,
	KindBarrage:   3,
	KindOrb:       2,
	KindFreeRoam:  1,
	KindFormation: 1,
}

// Next chooses the input for the coming tick from the latest snapshot.
func (a *Autopilot) Next(snap *Snapshot) core.InputFrame {
	in := core.InputOf(core.ActionFire)
	if snap.Phase.Terminal() {
		return in
	}

	px, py := center(snap.Player)

	if threat, ok := a.closestThreat(snap, px, py); ok {
		tx, _ := center(threat)
		goLeft := tx >= px
		if goLeft && snap.Player.X <= snap.Player.W {
			goLeft = false
		} else if !goLeft && snap.Player.Right() >= snap.ArenaW-snap.Player.W {
			goLeft = true
		}
		if goLeft {
			in.Set(core.ActionLeft)
		} else {
			in.Set(core.ActionRight)
		}
	} else if target, ok := bestTarget(snap, px, py); ok {
		tx, _ := center(target)
		switch {
		case tx < px-a.Deadband:
			in.Set(core.ActionLeft)
		case tx > px+a.Deadband:
			in.Set(core.ActionRight)
		}
	}

	home := float64(snap.ArenaH - a.HomeOffset)
	switch {
	case py < home-a.Deadband:
		in.Set(core.ActionDown)
	case py > home+a.Deadband:
		in.Set(core.ActionUp)
	}
	return in
}

// closestThreat finds the nearest hostile whose column overlaps the ship
// and which sits within the danger range above it.
func (a *Autopilot) closestThreat(snap *Snapshot, px, py float64) (core.Rect, bool) {
	var best core.Rect
	bestDist := math.Inf(1)
	lane := snap.Player
	lane.X -= lane.W
	lane.W *= 3

	for _, sp := range snap.Sprites {
		if !sp.Kind.Hostile() || sp.Kind == KindFinalBoss {
			continue
		}
		if sp.Rect.Right() <= lane.X || sp.Rect.X >= lane.Right() {
			continue
		}
		_, sy := center(sp.Rect)
		dy := py - sy
		if dy < -float64(snap.Player.H) || dy > a.DangerRange {
			continue
		}
		if d := math.Abs(dy); d < bestDist {
			bestDist = d
			best = sp.Rect
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

func bestTarget(snap *Snapshot, px, py float64) (core.Rect, bool) {
	var best core.Rect
	bestRank, bestDist := 0, math.Inf(1)
	for _, sp := range snap.Sprites {
		rank := targetPriority[sp.Kind]
		if rank == 0 {
			continue
		}
		x, y := center(sp.Rect)
		d := math.Hypot(x-px, y-py)
		if rank > bestRank || (rank == bestRank && d < bestDist) {
			best, bestRank, bestDist = sp.Rect, rank, d
		}
	}
	return best, bestRank > 0
}

func center(r core.Rect) (float64, float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
}
