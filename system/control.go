// Package system holds the per-step simulation passes: control resolution,
// physics and collision, combat, and the timeline scheduler. A Runner wires
// them into one fixed step.
package system

import (
	"github.com/milk9111/scenekit/input"
	"github.com/milk9111/scenekit/scene"
)

// sprintFactor multiplies movement speed while the sprint action is held.
const sprintFactor = 1.5

// ResolveControls maps an entity's control scheme and the sampled key state
// to velocity and actions. Left and right (and up/down in topdown mode) sum,
// so opposing held keys cancel. Held jump re-triggers every grounded step;
// the auto-bunny-hop is intentional.
func ResolveControls(s *scene.Scene, e *scene.Entity, in input.Sampler, now float64) {
	c := e.Controls
	if c == nil {
		return
	}

	speed := e.Speed
	if in.Held(c.Sprint) {
		speed *= sprintFactor
	}

	var vx float64
	if in.Held(c.Left) {
		vx -= speed
	}
	if in.Held(c.Right) {
		vx += speed
	}
	e.Vel.X = vx

	// Vertical input only moves entities that are not under platformer
	// gravity: topdown movers and physics-free entities.
	if e.Move == scene.MoveTopdown || e.Physics == scene.PhysicsNone {
		var vy float64
		if in.Held(c.Up) {
			vy -= speed
		}
		if in.Held(c.Down) {
			vy += speed
		}
		e.Vel.Y = vy
	}

	if in.Held(c.Jump) && e.Physics == scene.PhysicsDynamic && e.OnGround {
		e.Vel.Y = -e.JumpForce
		e.OnGround = false
	}

	if in.Held(c.Attack) {
		TryAttack(s, e, now)
	}
}
