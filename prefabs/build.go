package prefabs

import (
	"image/color"
	"log"

	"github.com/milk9111/scenekit/scene"
)

// BuildScene turns a decoded spec into a live scene. Timeline entries naming
// a script are bound through scriptFn; a nil scriptFn skips them with a log
// line so a missing script runtime never blocks the scene.
func BuildScene(spec SceneSpec, scriptFn func(path string) scene.Callback) *scene.Scene {
	s := scene.New(spec.Name)
	s.Multiplayer = spec.Multiplayer
	if bg, ok := parseColor(spec.Background); ok {
		s.Background = bg
	}
	if spec.Gravity != nil {
		s.Gravity = float64(*spec.Gravity)
	}
	if spec.PixelScale != nil && *spec.PixelScale > 0 {
		s.PixelScale = float64(*spec.PixelScale)
	}
	s.Follow = spec.Camera.Follow

	for name, w := range spec.Weapons {
		s.RegisterWeapon(name, weaponPatch(&w))
	}

	for _, es := range spec.Entities {
		s.Add(entityConfig(es))
	}

	for _, ev := range spec.Timeline {
		if ev.Script == "" {
			continue
		}
		if scriptFn == nil {
			log.Printf("prefabs: scene %s: no script runtime, skipping event at t=%g (%s)",
				spec.Name, float64(ev.At), ev.Script)
			continue
		}
		s.At(float64(ev.At), scriptFn(ev.Script))
	}

	return s
}

func entityConfig(es EntitySpec) scene.Config {
	cfg := scene.Config{
		Name:       es.Name,
		Color:      colorOr(es.Color, color.NRGBA{}),
		Physics:    physicsMode(es.Physics),
		Move:       moveMode(es.Move),
		Kind:       kind(es.Kind),
		Controls:   es.Controls,
		Team:       es.Team,
		Weapon:     es.Weapon,
		TrackScore: es.TrackScore,
	}
	cfg.X, cfg.Y, cfg.Depth = at(es.Position, 0), at(es.Position, 1), at(es.Position, 2)
	cfg.W, cfg.H = at(es.Size, 0), at(es.Size, 1)
	cfg.VX, cfg.VY = at(es.Velocity, 0), at(es.Velocity, 1)
	// Negative authored sizes degrade to the entity default.
	if cfg.W < 0 {
		cfg.W = 0
	}
	if cfg.H < 0 {
		cfg.H = 0
	}
	if es.Health != nil {
		cfg.Health = float64(*es.Health)
	}
	if es.MaxHealth != nil {
		cfg.MaxHealth = float64(*es.MaxHealth)
	}
	if es.Speed != nil {
		cfg.Speed = float64(*es.Speed)
	}
	if es.JumpForce != nil {
		cfg.JumpForce = float64(*es.JumpForce)
	}
	if len(es.Scheme) > 0 {
		cfg.Scheme = controlScheme(es.Scheme)
	}
	if es.WeaponMods != nil {
		cfg.WeaponPatch = weaponPatch(es.WeaponMods)
	}
	return cfg
}

func weaponPatch(w *WeaponSpec) *scene.WeaponPatch {
	p := &scene.WeaponPatch{
		Damage:          fptr(w.Damage),
		Cooldown:        fptr(w.Cooldown),
		ProjectileSpeed: fptr(w.ProjectileSpeed),
		W:               fptr(w.Width),
		H:               fptr(w.Height),
	}
	if c, ok := parseColor(w.Color); ok {
		p.Color = &c
	}
	return p
}

// controlScheme resolves an action->key-token map. Unknown action names are
// ignored; unknown key tokens leave the action unbound.
func controlScheme(m map[string]string) *scene.ControlScheme {
	sc := &scene.ControlScheme{
		Left:   scene.KeyNone,
		Right:  scene.KeyNone,
		Up:     scene.KeyNone,
		Down:   scene.KeyNone,
		Jump:   scene.KeyNone,
		Attack: scene.KeyNone,
		Sprint: scene.KeyNone,
	}
	for action, token := range m {
		k := scene.KeyByName(token)
		switch action {
		case "left":
			sc.Left = k
		case "right":
			sc.Right = k
		case "up":
			sc.Up = k
		case "down":
			sc.Down = k
		case "jump":
			sc.Jump = k
		case "attack":
			sc.Attack = k
		case "sprint":
			sc.Sprint = k
		}
	}
	return sc
}

func physicsMode(s string) scene.PhysicsMode {
	switch s {
	case "dynamic":
		return scene.PhysicsDynamic
	case "static":
		return scene.PhysicsStatic
	default:
		return scene.PhysicsNone
	}
}

func moveMode(s string) scene.MoveMode {
	if s == "topdown" {
		return scene.MoveTopdown
	}
	return scene.MovePlatformer
}

func kind(s string) scene.Kind {
	if s == "projectile" {
		return scene.KindProjectile
	}
	return scene.KindActor
}

func at(v []flexFloat, i int) float64 {
	if i < len(v) {
		return float64(v[i])
	}
	return 0
}

func fptr(f *flexFloat) *float64 {
	if f == nil {
		return nil
	}
	v := float64(*f)
	return &v
}

func colorOr(s string, def color.NRGBA) color.NRGBA {
	if c, ok := parseColor(s); ok {
		return c
	}
	return def
}
