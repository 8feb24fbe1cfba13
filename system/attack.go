package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/scenekit/scene"
)

// projectileLife is how long a projectile survives, in simulated seconds.
const projectileLife = 3.0

// TryAttack resolves the entity's weapon and spawns a projectile at its
// leading edge, unless the weapon cooldown has not elapsed. Returns the
// projectile, or nil when the attack was gated.
func TryAttack(s *scene.Scene, e *scene.Entity, now float64) *scene.Entity {
	w := s.ResolveWeapon(e)
	if now-e.LastAttack < w.Cooldown {
		return nil
	}
	e.LastAttack = now

	facing := e.Facing()
	x := e.Pos.X - w.W
	if facing > 0 {
		x = e.Pos.X + e.W
	}
	y := e.Pos.Y + e.H/2 - w.H/2

	p := &scene.Entity{
		Name:    scene.ProjectileName(e.Name),
		Pos:     cp.Vector{X: x, Y: y},
		Depth:   e.Depth,
		W:       w.W,
		H:       w.H,
		Vel:     cp.Vector{X: facing * w.ProjectileSpeed},
		Color:   w.Color,
		Physics: scene.PhysicsNone,
		Kind:    scene.KindProjectile,
		Team:    e.Team,
		Owner:   e.Name,
		Damage:  w.Damage,
		Life:    projectileLife,
		Health:  1,
	}
	s.Spawn(p)
	return p
}
