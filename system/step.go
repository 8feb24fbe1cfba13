package system

import (
	"log"

	"github.com/milk9111/scenekit/input"
	"github.com/milk9111/scenekit/scene"
)

// Scoreboard receives the score-tracked survivors after each step, ordered
// by descending score.
type Scoreboard func([]*scene.Entity)

// Runner executes one fixed simulation step: control resolution, physics,
// combat, reaping, and the timeline. The sampler is injected so tests can
// drive steps with a fake.
type Runner struct {
	Sampler input.Sampler
	// Multiplayer is the game-scope combat switch; combat also requires the
	// scene-scope flag.
	Multiplayer bool
	Scoreboard  Scoreboard
}

// Step advances the scene by dt seconds.
func (r *Runner) Step(s *scene.Scene, dt float64) {
	now := s.Elapsed

	// Control resolution reads the previous step's ground contact, so a
	// held jump fires on the first grounded step.
	for _, e := range s.Entities {
		if !e.Dead && e.Controls != nil {
			ResolveControls(s, e, r.Sampler, now)
		}
	}

	PhysicsStep(s, dt)

	if r.Multiplayer && s.Multiplayer {
		CombatStep(s)
	}

	s.RemoveDead()

	for _, out := range TimelineStep(s, dt) {
		if out.Err != nil {
			log.Printf("timeline: event at t=%g: %v", out.Event.FireTime, out.Err)
		}
	}

	if r.Scoreboard != nil {
		r.Scoreboard(ScoreRanking(s))
	}

	r.Sampler.Clear()
}
