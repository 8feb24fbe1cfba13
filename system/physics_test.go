package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/scenekit/scene"
)

func vec(x, y float64) cp.Vector {
	return cp.Vector{X: x, Y: y}
}

const dt = 1.0 / 60.0

func TestRestingEntityConvergesOnGround(t *testing.T) {
	s := scene.New("test")
	s.Add(scene.Config{Name: "floor", X: 0, Y: 100, W: 200, H: 20, Physics: scene.PhysicsStatic})
	e := s.Add(scene.Config{Name: "crate", X: 50, Y: 70, W: 10, H: 10, Physics: scene.PhysicsDynamic})

	for i := 0; i < 120; i++ {
		PhysicsStep(s, dt)
	}

	restY := e.Pos.Y
	if !e.OnGround {
		t.Fatal("entity resting on the floor should be on ground")
	}
	if math.Abs(restY-90) > 1e-9 {
		t.Fatalf("rest y = %g, want 90 (floor top minus height)", restY)
	}

	for i := 0; i < 60; i++ {
		PhysicsStep(s, dt)
		if !e.OnGround {
			t.Fatalf("on ground flag lost at extra step %d", i)
		}
		if math.Abs(e.Pos.Y-restY) > 1e-9 {
			t.Fatalf("rest position jittered: y = %g, want %g", e.Pos.Y, restY)
		}
	}
	if e.Vel.Y != 0 {
		t.Fatalf("resting vertical velocity = %g, want 0", e.Vel.Y)
	}
}

func TestFastFallClampsToStaticTop(t *testing.T) {
	// One big step would carry the entity through the thin slab; the swept
	// resolution clamps it onto the top instead.
	s := scene.New("test")
	s.Gravity = 0
	s.Add(scene.Config{Name: "slab", X: 0, Y: 10, W: 20, H: 1, Physics: scene.PhysicsStatic})
	e := s.Add(scene.Config{Name: "faller", X: 0, Y: 9, W: 1, H: 1, VY: 5, Physics: scene.PhysicsDynamic})

	PhysicsStep(s, 1)

	if e.Pos.Y != 9 {
		t.Fatalf("y = %g, want 9 (clamped to slab top)", e.Pos.Y)
	}
	if !e.OnGround {
		t.Fatal("entity pushed up onto a static should be on ground")
	}
	if e.Vel.Y != 0 {
		t.Fatalf("vertical velocity = %g, want 0", e.Vel.Y)
	}
}

func TestHorizontalResolutionZeroesVX(t *testing.T) {
	s := scene.New("test")
	s.Gravity = 0
	s.Add(scene.Config{Name: "wall", X: 50, Y: 0, W: 10, H: 100, Physics: scene.PhysicsStatic})
	e := s.Add(scene.Config{Name: "runner", X: 30, Y: 40, W: 10, H: 10, VX: 900, Physics: scene.PhysicsDynamic})

	PhysicsStep(s, dt)

	if e.Pos.X != 40 {
		t.Fatalf("x = %g, want 40 (clamped to wall face)", e.Pos.X)
	}
	if e.Vel.X != 0 {
		t.Fatalf("vx = %g, want 0", e.Vel.X)
	}
	if e.OnGround {
		t.Fatal("horizontal resolution must not set on ground")
	}
}

func TestStaticEntitiesNeverMove(t *testing.T) {
	s := scene.New("test")
	st := s.Add(scene.Config{Name: "block", X: 10, Y: 10, W: 5, H: 5, VX: 100, VY: 100, Physics: scene.PhysicsStatic})

	for i := 0; i < 10; i++ {
		PhysicsStep(s, dt)
	}

	if st.Pos.X != 10 || st.Pos.Y != 10 {
		t.Fatalf("static moved to (%g, %g), want (10, 10)", st.Pos.X, st.Pos.Y)
	}
}

func TestPhysicsNoneIgnoresGravityAndCollision(t *testing.T) {
	s := scene.New("test")
	s.Add(scene.Config{Name: "floor", X: 0, Y: 50, W: 100, H: 10, Physics: scene.PhysicsStatic})
	e := s.Add(scene.Config{Name: "ghost", X: 10, Y: 45, W: 10, H: 10, VY: 60, Physics: scene.PhysicsNone})

	PhysicsStep(s, 1)

	if e.Pos.Y != 105 {
		t.Fatalf("y = %g, want 105 (no collision, no gravity)", e.Pos.Y)
	}
}

func TestProjectileLifeCountdown(t *testing.T) {
	s := scene.New("test")
	p := &scene.Entity{
		Name: "shot", W: 4, H: 4,
		Kind: scene.KindProjectile, Physics: scene.PhysicsNone,
		Life: 3 * dt, Health: 1,
	}
	s.Spawn(p)

	prev := p.Life
	for i := 0; i < 2; i++ {
		PhysicsStep(s, dt)
		if p.Life >= prev {
			t.Fatalf("life did not strictly decrease: %g -> %g", prev, p.Life)
		}
		if p.Dead {
			t.Fatalf("projectile died early at step %d, life %g", i, p.Life)
		}
		prev = p.Life
	}

	PhysicsStep(s, dt)
	if !p.Dead {
		t.Fatalf("projectile should die the step life first reaches <= 0, life %g", p.Life)
	}
	s.RemoveDead()
	if s.ByName("shot") != nil {
		t.Fatal("dead projectile should be reaped")
	}
}

func TestDeadActorRollsBackAndStops(t *testing.T) {
	s := scene.New("test")
	s.Gravity = 0
	e := s.Add(scene.Config{Name: "victim", X: 10, Y: 10, W: 5, H: 5, VX: 600, Physics: scene.PhysicsNone})
	e.Health = -1

	PhysicsStep(s, dt)

	if !e.Dead {
		t.Fatal("entity at negative health should be marked dead")
	}
	if e.Pos.X != 10 {
		t.Fatalf("dead actor lunged to x = %g, want rollback to 10", e.Pos.X)
	}
}

func TestDeadProjectileSkipsRollback(t *testing.T) {
	s := scene.New("test")
	p := &scene.Entity{
		Name: "shot", Pos: vec(0, 0), W: 4, H: 4, Vel: vec(600, 0),
		Kind: scene.KindProjectile, Physics: scene.PhysicsNone,
		Life: dt / 2, Health: 1,
	}
	s.Spawn(p)

	PhysicsStep(s, dt)

	if !p.Dead {
		t.Fatal("expired projectile should be dead")
	}
	if p.Pos.X != 600*dt {
		t.Fatalf("projectile x = %g, want %g (no rollback)", p.Pos.X, 600*dt)
	}
}

func TestDeadEntitiesSkipPhysics(t *testing.T) {
	s := scene.New("test")
	s.Gravity = 0
	e := s.Add(scene.Config{Name: "corpse", X: 5, Y: 5, VX: 100, Physics: scene.PhysicsNone})
	e.MarkDead()

	PhysicsStep(s, dt)

	if e.Pos.X != 5 {
		t.Fatalf("dead entity moved to x = %g, want 5", e.Pos.X)
	}
}
