package scene

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// PhysicsMode controls how the physics step treats an entity.
type PhysicsMode int

const (
	// PhysicsNone entities ignore gravity and collision; they move only by
	// control input or scripted velocity.
	PhysicsNone PhysicsMode = iota
	// PhysicsDynamic entities fall under gravity and collide with statics.
	PhysicsDynamic
	// PhysicsStatic entities are immovable colliders.
	PhysicsStatic
)

func (m PhysicsMode) String() string {
	switch m {
	case PhysicsDynamic:
		return "dynamic"
	case PhysicsStatic:
		return "static"
	default:
		return "none"
	}
}

// MoveMode governs whether vertical input and gravity apply to an entity.
type MoveMode int

const (
	// MovePlatformer reserves vertical motion for gravity and jumping.
	MovePlatformer MoveMode = iota
	// MoveTopdown maps up/down input to vertical velocity and skips gravity.
	MoveTopdown
)

func (m MoveMode) String() string {
	if m == MoveTopdown {
		return "topdown"
	}
	return "platformer"
}

// Kind separates actors from the projectiles they fire.
type Kind int

const (
	KindActor Kind = iota
	KindProjectile
)

func (k Kind) String() string {
	if k == KindProjectile {
		return "projectile"
	}
	return "actor"
}

// KeyNone marks an unbound action in a ControlScheme.
const KeyNone ebiten.Key = -1

// ControlScheme maps logical actions to keyboard keys. Unbound actions hold
// KeyNone.
type ControlScheme struct {
	Left   ebiten.Key
	Right  ebiten.Key
	Up     ebiten.Key
	Down   ebiten.Key
	Jump   ebiten.Key
	Attack ebiten.Key
	Sprint ebiten.Key
}

// Entity is one simulated actor, projectile, or obstacle. Fields are mutated
// in place by the step systems; removal happens only through the dead tag and
// the scene's end-of-step compaction.
type Entity struct {
	Name string

	Pos   cp.Vector
	Depth float64
	W, H  float64
	Vel   cp.Vector

	Color  color.NRGBA
	Sprite *ebiten.Image

	Physics  PhysicsMode
	Move     MoveMode
	Controls *ControlScheme

	Team      string
	Health    float64
	MaxHealth float64

	Speed     float64
	JumpForce float64
	OnGround  bool

	Score      float64
	TrackScore bool

	// Weapon names a registered preset; WeaponPatch holds inline overrides
	// applied on top of it at attack time.
	Weapon      string
	WeaponPatch *WeaponPatch
	LastAttack  float64

	Kind Kind
	// Owner is the name of the actor that fired this projectile.
	Owner string
	// Damage carried by this projectile, resolved at spawn.
	Damage float64
	// Life is the remaining projectile lifetime in simulated seconds.
	Life float64

	Dead bool

	// prevPos is the position before this step's integration, kept so a
	// death this step can roll the entity back (no death lunge).
	prevPos cp.Vector
}

// BB returns the entity's axis-aligned bounding box.
func (e *Entity) BB() cp.BB {
	return cp.BB{L: e.Pos.X, B: e.Pos.Y, R: e.Pos.X + e.W, T: e.Pos.Y + e.H}
}

// Facing is +1 when the entity faces right, -1 when it faces left. An entity
// at rest faces right.
func (e *Entity) Facing() float64 {
	if e.Vel.X < 0 {
		return -1
	}
	return 1
}

// Overlaps reports whether two entities' bounding boxes overlap with
// positive area. Boxes that merely share an edge or corner do not overlap,
// so an actor resting flush against a surface is not in contact. It is
// symmetric: Overlaps(a, b) == Overlaps(b, a).
func Overlaps(a, b *Entity) bool {
	ab, bb := a.BB(), b.BB()
	ox := math.Min(ab.R, bb.R) - math.Max(ab.L, bb.L)
	oy := math.Min(ab.T, bb.T) - math.Max(ab.B, bb.B)
	return ox > 0 && oy > 0
}

// Hostile reports whether two entities may damage each other. Equal non-empty
// team labels suppress damage.
func Hostile(a, b *Entity) bool {
	return a.Team == "" || b.Team == "" || a.Team != b.Team
}

// RememberPos records the current position as this step's rollback point.
func (e *Entity) RememberPos() {
	e.prevPos = e.Pos
}

// PrevPos returns the position recorded by RememberPos.
func (e *Entity) PrevPos() cp.Vector {
	return e.prevPos
}

// Rollback restores the position recorded by RememberPos.
func (e *Entity) Rollback() {
	e.Pos = e.prevPos
}

// MarkDead tags the entity for removal at the end of the step. Idempotent.
func (e *Entity) MarkDead() bool {
	if e.Dead {
		return false
	}
	e.Dead = true
	return true
}

const (
	defaultSize      = 32.0
	defaultSpeed     = 200.0
	defaultJumpForce = 600.0
	defaultHealth    = 100.0
)

// applyDefaults fills zero-valued tuning fields so the step functions are
// total over any entity added through the public API.
func (e *Entity) applyDefaults() {
	if e.W < 0 {
		e.W = 0
	}
	if e.H < 0 {
		e.H = 0
	}
	if e.W == 0 && e.H == 0 {
		e.W, e.H = defaultSize, defaultSize
	}
	if e.Color == (color.NRGBA{}) {
		e.Color = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	if e.Speed == 0 {
		e.Speed = defaultSpeed
	}
	if e.JumpForce == 0 {
		e.JumpForce = defaultJumpForce
	}
	if e.MaxHealth == 0 {
		if e.Health > 0 {
			e.MaxHealth = e.Health
		} else {
			e.MaxHealth = defaultHealth
		}
	}
	if e.Health == 0 {
		e.Health = e.MaxHealth
	}
	// A fresh entity may attack immediately.
	e.LastAttack = math.Inf(-1)
	if e.Kind == KindProjectile {
		// Projectiles never carry a control scheme.
		e.Controls = nil
	}
}
