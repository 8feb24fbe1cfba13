package system

import (
	"testing"

	"github.com/milk9111/scenekit/input"
	"github.com/milk9111/scenekit/scene"
)

func actorAt(s *scene.Scene, name, team string, x float64, health float64) *scene.Entity {
	return s.Add(scene.Config{
		Name: name, Team: team, X: x, Y: 0, W: 20, H: 20,
		Health: health, Physics: scene.PhysicsNone, TrackScore: true,
	})
}

func shot(s *scene.Scene, owner, team string, x, y, damage float64) *scene.Entity {
	p := &scene.Entity{
		Name: scene.ProjectileName(owner), Owner: owner, Team: team,
		Pos: vec(x, y), W: 4, H: 4, Damage: damage, Life: 3, Health: 1,
		Kind: scene.KindProjectile, Physics: scene.PhysicsNone,
	}
	s.Spawn(p)
	return p
}

func TestProjectileHitDamagesAndScores(t *testing.T) {
	s := scene.New("test")
	a := actorAt(s, "a", "", 0, 100)
	b := actorAt(s, "b", "", 100, 50)
	p := shot(s, "a", "", 105, 5, 10)

	CombatStep(s)

	if b.Health != 40 {
		t.Fatalf("target health = %g, want 40", b.Health)
	}
	if a.Score != 10 {
		t.Fatalf("owner score = %g, want 10", a.Score)
	}
	if !p.Dead {
		t.Fatal("projectile should be dead after its first hit")
	}
	if b.Dead {
		t.Fatal("target should survive a non-lethal hit")
	}
}

func TestProjectileSkipsOwner(t *testing.T) {
	s := scene.New("test")
	a := actorAt(s, "a", "", 0, 100)
	p := shot(s, "a", "", 5, 5, 10)

	CombatStep(s)

	if a.Health != 100 {
		t.Fatalf("owner health = %g, want 100", a.Health)
	}
	if p.Dead {
		t.Fatal("projectile overlapping only its owner should stay live")
	}
}

func TestProjectileSkipsTeammates(t *testing.T) {
	s := scene.New("test")
	b := actorAt(s, "b", "red", 100, 100)
	shot(s, "a", "red", 105, 5, 10)

	CombatStep(s)

	if b.Health != 100 {
		t.Fatalf("teammate health = %g, want 100", b.Health)
	}
}

func TestProjectileDestroysItselfOnFirstHitOnly(t *testing.T) {
	s := scene.New("test")
	b := actorAt(s, "b", "", 100, 100)
	c := actorAt(s, "c", "", 102, 100)
	shot(s, "a", "", 105, 5, 10)

	CombatStep(s)

	hits := 0
	if b.Health < 100 {
		hits++
	}
	if c.Health < 100 {
		hits++
	}
	if hits != 1 {
		t.Fatalf("projectile hit %d actors, want exactly 1", hits)
	}
}

func TestContactDamageCompoundsPerStep(t *testing.T) {
	s := scene.New("test")
	a := actorAt(s, "a", "red", 0, 100)
	b := actorAt(s, "b", "blue", 10, 100)

	for i := 0; i < 3; i++ {
		CombatStep(s)
	}

	if a.Health != 85 || b.Health != 85 {
		t.Fatalf("health after 3 contact steps = %g/%g, want 85/85", a.Health, b.Health)
	}
	if a.Dead || b.Dead {
		t.Fatal("neither actor should be dead")
	}
}

func TestSameTeamNeverHurtsEachOther(t *testing.T) {
	s := scene.New("test")
	a := actorAt(s, "a", "red", 0, 100)
	b := actorAt(s, "b", "red", 10, 100)
	shot(s, "a", "red", 12, 5, 25)

	for i := 0; i < 10; i++ {
		CombatStep(s)
	}

	if a.Health != 100 || b.Health != 100 {
		t.Fatalf("teammate health = %g/%g, want 100/100", a.Health, b.Health)
	}
}

func TestUnteamedActorsAlwaysHostile(t *testing.T) {
	s := scene.New("test")
	a := actorAt(s, "a", "", 0, 100)
	b := actorAt(s, "b", "", 10, 100)

	CombatStep(s)

	if a.Health != 95 || b.Health != 95 {
		t.Fatalf("health = %g/%g, want 95/95 after one contact step", a.Health, b.Health)
	}
}

func TestRestingOnStaticDealsNoContactDamage(t *testing.T) {
	// Physics clamps a resting entity flush to the static's face; the
	// touching boxes must not read as contact, or every grounded actor
	// would grind against the floor.
	s := scene.New("test")
	s.Multiplayer = true
	s.Add(scene.Config{Name: "floor", X: 0, Y: 100, W: 200, H: 20, Physics: scene.PhysicsStatic})
	e := s.Add(scene.Config{Name: "stander", X: 50, Y: 70, W: 10, H: 10, Physics: scene.PhysicsDynamic})

	r := &Runner{Sampler: input.NewFake(), Multiplayer: true}
	for i := 0; i < 180; i++ {
		r.Step(s, dt)
	}

	if !e.OnGround {
		t.Fatal("entity should be resting on the floor")
	}
	if e.Health != 100 {
		t.Fatalf("resting entity health = %g, want 100", e.Health)
	}
	if floor := s.ByName("floor"); floor == nil || floor.Health != 100 {
		t.Fatal("floor should survive an entity resting on it")
	}
}

func TestDeadEntitiesExcludedFromCombat(t *testing.T) {
	s := scene.New("test")
	a := actorAt(s, "a", "red", 0, 100)
	b := actorAt(s, "b", "blue", 10, 100)
	b.MarkDead()

	CombatStep(s)

	if a.Health != 100 {
		t.Fatalf("health = %g, want 100 (dead actor deals no contact damage)", a.Health)
	}
}

func TestScoreRankingOrdersByScoreDescending(t *testing.T) {
	s := scene.New("test")
	a := actorAt(s, "a", "", 0, 100)
	b := actorAt(s, "b", "", 200, 100)
	c := actorAt(s, "c", "", 400, 100)
	d := s.Add(scene.Config{Name: "untracked", X: 600, W: 10, H: 10})
	_ = d
	a.Score = 5
	b.Score = 20
	c.Score = 5

	ranked := ScoreRanking(s)

	want := []string{"b", "a", "c"}
	if len(ranked) != len(want) {
		t.Fatalf("ranked %d entities, want %d", len(ranked), len(want))
	}
	for i, name := range want {
		if ranked[i].Name != name {
			t.Fatalf("ranked[%d] = %s, want %s (ties keep encounter order)", i, ranked[i].Name, name)
		}
	}
}
