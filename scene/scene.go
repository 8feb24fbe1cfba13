package scene

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
)

// Callback is a timeline event body. It runs at most once, with errors
// isolated from sibling events and from the frame.
type Callback func(s *Scene) error

// TimelineEvent is a one-shot callback keyed to scene elapsed time. Fired
// events are kept (never removed) so re-registration and debugging stay
// simple.
type TimelineEvent struct {
	FireTime float64
	Fn       Callback
	Fired    bool
}

// Scene owns an ordered collection of entities plus the per-scene simulation
// state. Entity order is creation order only.
type Scene struct {
	Name        string
	Background  color.NRGBA
	Multiplayer bool
	Gravity     float64
	PixelScale  float64
	// Follow names the entity the camera tracks, empty for a fixed camera.
	Follow string

	Elapsed  float64
	Entities []*Entity
	Events   []*TimelineEvent

	weapons map[string]Weapon
}

// New creates an empty scene with platformer-friendly defaults.
func New(name string) *Scene {
	return &Scene{
		Name:       name,
		Background: color.NRGBA{R: 0x1a, G: 0x1a, B: 0x22, A: 0xff},
		Gravity:    1200,
		PixelScale: 1,
	}
}

// Config describes one entity to add. String-valued control scheme names are
// coerced into resolved mappings; zero-valued tuning fields take documented
// defaults.
type Config struct {
	Name     string
	X, Y     float64
	Depth    float64
	W, H     float64
	VX, VY   float64
	Color    color.NRGBA
	Sprite   *ebiten.Image
	Physics  PhysicsMode
	Move     MoveMode
	Kind     Kind
	Controls string // preset name, e.g. "wasd" or "arrows"
	Scheme   *ControlScheme
	Team     string
	Health   float64
	// MaxHealth defaults to Health when zero.
	MaxHealth   float64
	Speed       float64
	JumpForce   float64
	Weapon      string
	WeaponPatch *WeaponPatch
	TrackScore  bool
}

// Add builds an entity from cfg, applies defaults, and appends it to the
// scene. The returned entity is owned by the scene.
func (s *Scene) Add(cfg Config) *Entity {
	e := &Entity{
		Name:        cfg.Name,
		Pos:         vec(cfg.X, cfg.Y),
		Depth:       cfg.Depth,
		W:           cfg.W,
		H:           cfg.H,
		Vel:         vec(cfg.VX, cfg.VY),
		Color:       cfg.Color,
		Sprite:      cfg.Sprite,
		Physics:     cfg.Physics,
		Move:        cfg.Move,
		Kind:        cfg.Kind,
		Team:        cfg.Team,
		Health:      cfg.Health,
		MaxHealth:   cfg.MaxHealth,
		Speed:       cfg.Speed,
		JumpForce:   cfg.JumpForce,
		Weapon:      cfg.Weapon,
		WeaponPatch: cfg.WeaponPatch,
		TrackScore:  cfg.TrackScore,
	}
	if cfg.Scheme != nil {
		sc := *cfg.Scheme
		e.Controls = &sc
	} else if cfg.Controls != "" {
		// Unknown preset names degrade to an uncontrolled entity.
		e.Controls = SchemeByName(cfg.Controls)
	}
	e.applyDefaults()
	s.Entities = append(s.Entities, e)
	return e
}

// Spawn appends an already-built entity, e.g. a projectile.
func (s *Scene) Spawn(e *Entity) {
	s.Entities = append(s.Entities, e)
}

// RemoveDead compacts the entity list, dropping every dead entity. Called
// once per step, never while iterating.
func (s *Scene) RemoveDead() {
	live := s.Entities[:0]
	for _, e := range s.Entities {
		if !e.Dead {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(s.Entities); i++ {
		s.Entities[i] = nil
	}
	s.Entities = live
}

// Find returns the first entity matching pred, or nil.
func (s *Scene) Find(pred func(*Entity) bool) *Entity {
	for _, e := range s.Entities {
		if pred(e) {
			return e
		}
	}
	return nil
}

// ByName returns the first entity with the given name, or nil.
func (s *Scene) ByName(name string) *Entity {
	return s.Find(func(e *Entity) bool { return e.Name == name })
}

// At registers a one-shot timeline event at t seconds of scene elapsed time.
func (s *Scene) At(t float64, fn Callback) *TimelineEvent {
	ev := &TimelineEvent{FireTime: t, Fn: fn}
	s.Events = append(s.Events, ev)
	return ev
}

// RegisterWeapon stores a named weapon preset, layered on top of the builtin
// default at resolution time.
func (s *Scene) RegisterWeapon(name string, patch *WeaponPatch) {
	if s.weapons == nil {
		s.weapons = map[string]Weapon{}
	}
	w := DefaultWeapon.Merge(patch)
	w.Name = name
	s.weapons[name] = w
}

// ResolveWeapon merges the builtin default, the named preset (if any), and
// the entity's inline patch into the weapon an attack will use.
func (s *Scene) ResolveWeapon(e *Entity) Weapon {
	w := DefaultWeapon
	if e.Weapon != "" {
		if preset, ok := s.weapons[e.Weapon]; ok {
			w = preset
		}
	}
	return w.Merge(e.WeaponPatch).normalize()
}

var projectileSeq atomic.Uint64

// ProjectileName builds a per-spawn unique name so name-based lookups never
// collide between projectiles.
func ProjectileName(owner string) string {
	return fmt.Sprintf("%s#%d-%06x", owner, projectileSeq.Add(1), rand.IntN(1<<24))
}
