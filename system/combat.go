package system

import (
	"sort"

	"github.com/milk9111/scenekit/scene"
)

// contactDamage is applied symmetrically to both actors for every step a
// hostile pair stays overlapped. Not edge-triggered: prolonged contact
// compounds damage each frame.
const contactDamage = 5

// CombatStep resolves projectile hits and actor contact damage. Callers gate
// it on the multiplayer flags; it assumes combat is enabled.
func CombatStep(s *scene.Scene) {
	var projectiles, actors []*scene.Entity
	for _, e := range s.Entities {
		if e.Dead {
			continue
		}
		if e.Kind == scene.KindProjectile {
			projectiles = append(projectiles, e)
		} else {
			actors = append(actors, e)
		}
	}

	for _, p := range projectiles {
		for _, a := range actors {
			if a.Dead || a.Name == p.Owner || !scene.Hostile(p, a) {
				continue
			}
			if !scene.Overlaps(p, a) {
				continue
			}
			a.Health -= p.Damage
			// Score credits damage dealt, not kills.
			if owner := s.ByName(p.Owner); owner != nil {
				owner.Score += p.Damage
			}
			// A projectile spends itself on its first hit.
			p.MarkDead()
			break
		}
	}

	for i := 0; i < len(actors); i++ {
		for j := i + 1; j < len(actors); j++ {
			a, b := actors[i], actors[j]
			if a.Dead || b.Dead || !scene.Hostile(a, b) {
				continue
			}
			if scene.Overlaps(a, b) {
				a.Health -= contactDamage
				b.Health -= contactDamage
			}
		}
	}
}

// ScoreRanking returns the score-tracked live entities ordered by descending
// score, ties keeping encounter order. This is what a scoreboard consumer is
// handed after each step.
func ScoreRanking(s *scene.Scene) []*scene.Entity {
	var ranked []*scene.Entity
	for _, e := range s.Entities {
		if e.TrackScore && !e.Dead {
			ranked = append(ranked, e)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
