package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/scenekit/scene"
)

// PhysicsStep integrates velocities, applies gravity to dynamic platformer
// entities, resolves dynamic-vs-static collisions, ages projectiles, and
// tags deaths. Control resolution runs before this, so a projectile spawned
// by a held attack is integrated and aged on its spawn step.
func PhysicsStep(s *scene.Scene, dt float64) {
	var statics []*scene.Entity
	for _, e := range s.Entities {
		if !e.Dead && e.Physics == scene.PhysicsStatic {
			statics = append(statics, e)
		}
	}

	for _, e := range s.Entities {
		if e.Dead {
			continue
		}
		e.RememberPos()
		e.OnGround = false

		if e.Physics == scene.PhysicsDynamic && e.Move == scene.MovePlatformer {
			e.Vel.Y += s.Gravity * dt
		}

		// Statics never move, whatever velocity authoring gave them.
		if e.Physics != scene.PhysicsStatic {
			e.Pos.X += e.Vel.X * dt
			e.Pos.Y += e.Vel.Y * dt
		}

		if e.Physics == scene.PhysicsDynamic {
			for _, st := range statics {
				if st != e {
					resolveAABB(e, st)
				}
			}
		}

		if e.Kind == scene.KindProjectile {
			e.Life -= dt
			if e.Life <= 0 {
				e.MarkDead()
			}
		}

		if e.Health <= 0 && e.MarkDead() && e.Kind != scene.KindProjectile {
			// Dead actors stop where the step found them; the rollback
			// prevents a one-frame death lunge before reaping.
			e.Rollback()
		}
	}
}

// resolveAABB separates a dynamic entity from a static one along the axis of
// smaller overlap. The dynamic box is swept from its pre-integration
// position so one fast step cannot pass through a thin static. Resolution
// clamps the entity to the static's face, zeroes the velocity component on
// that axis, and sets OnGround when the entity was pushed up.
func resolveAABB(d, st *scene.Entity) {
	pre := d.PrevPos()
	swept := cp.BB{
		L: math.Min(pre.X, d.Pos.X),
		B: math.Min(pre.Y, d.Pos.Y),
		R: math.Max(pre.X, d.Pos.X) + d.W,
		T: math.Max(pre.Y, d.Pos.Y) + d.H,
	}
	sb := st.BB()

	ox := math.Min(swept.R, sb.R) - math.Max(swept.L, sb.L)
	oy := math.Min(swept.T, sb.T) - math.Max(swept.B, sb.B)
	if ox <= 0 || oy <= 0 {
		return
	}

	if ox < oy {
		if swept.L < sb.L {
			d.Pos.X = sb.L - d.W
		} else {
			d.Pos.X = sb.R
		}
		d.Vel.X = 0
		return
	}

	if swept.B < sb.B {
		d.Pos.Y = sb.B - d.H
		d.OnGround = true
	} else {
		d.Pos.Y = sb.T
	}
	d.Vel.Y = 0
}
