// Package script runs timeline event callbacks authored as tengo scripts.
// Scripts are compiled once per path; each fire binds a fresh engine object
// over the current scene. Script failures surface as errors on the timeline
// outcome, never as panics into the frame.
package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/scenekit/prefabs"
	"github.com/milk9111/scenekit/scene"
)

// Runtime compiles and caches timeline scripts.
type Runtime struct {
	cache map[string]*tengo.Compiled
}

func NewRuntime() *Runtime {
	return &Runtime{cache: map[string]*tengo.Compiled{}}
}

// Callback binds a script path into a timeline callback. Compilation is
// deferred to the first fire so a bad path only fails its own event.
func (r *Runtime) Callback(path string) scene.Callback {
	return func(s *scene.Scene) error {
		return r.run(path, s)
	}
}

func (r *Runtime) run(path string, s *scene.Scene) error {
	compiled, err := r.compile(path)
	if err != nil {
		return err
	}
	c := compiled.Clone()
	if err := c.Set("engine", engineFor(s)); err != nil {
		return fmt.Errorf("script: bind engine for %s: %w", path, err)
	}
	if err := c.Run(); err != nil {
		return fmt.Errorf("script: run %s: %w", path, err)
	}
	return nil
}

func (r *Runtime) compile(path string) (*tengo.Compiled, error) {
	if c, ok := r.cache[path]; ok {
		return c, nil
	}
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", path, err)
	}
	sc := tengo.NewScript(src)
	sc.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	_ = sc.Add("engine", &tengo.ImmutableMap{Value: map[string]tengo.Object{}})
	compiled, err := sc.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", path, err)
	}
	r.cache[path] = compiled
	return compiled, nil
}

// Invalidate drops a cached script so the next fire recompiles it. Hot
// reload calls this when a .tengo file changes.
func (r *Runtime) Invalidate(path string) {
	delete(r.cache, path)
}

// engineFor exposes a small scene API to scripts: spawn, find, and a few
// mutators. All lookups are by entity name.
func engineFor(s *scene.Scene) *tengo.ImmutableMap {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"spawn": &tengo.UserFunction{Name: "spawn", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			m, ok := tengo.ToInterface(args[0]).(map[string]any)
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "first", Expected: "map"}
			}
			s.Add(configFromMap(m))
			return tengo.UndefinedValue, nil
		}},
		"find": &tengo.UserFunction{Name: "find", Value: func(args ...tengo.Object) (tengo.Object, error) {
			e, err := entityArg(s, args)
			if err != nil || e == nil {
				return tengo.UndefinedValue, err
			}
			return &tengo.Map{Value: map[string]tengo.Object{
				"x":      &tengo.Float{Value: e.Pos.X},
				"y":      &tengo.Float{Value: e.Pos.Y},
				"health": &tengo.Float{Value: e.Health},
				"score":  &tengo.Float{Value: e.Score},
				"team":   &tengo.String{Value: e.Team},
			}}, nil
		}},
		"set_velocity": &tengo.UserFunction{Name: "set_velocity", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 3 {
				return nil, tengo.ErrWrongNumArguments
			}
			e, err := entityArg(s, args[:1])
			if err != nil || e == nil {
				return tengo.UndefinedValue, err
			}
			vx, _ := tengo.ToFloat64(args[1])
			vy, _ := tengo.ToFloat64(args[2])
			e.Vel = cp.Vector{X: vx, Y: vy}
			return tengo.UndefinedValue, nil
		}},
		"damage": &tengo.UserFunction{Name: "damage", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 2 {
				return nil, tengo.ErrWrongNumArguments
			}
			e, err := entityArg(s, args[:1])
			if err != nil || e == nil {
				return tengo.UndefinedValue, err
			}
			amount, _ := tengo.ToFloat64(args[1])
			e.Health -= amount
			return tengo.UndefinedValue, nil
		}},
		"elapsed": &tengo.UserFunction{Name: "elapsed", Value: func(args ...tengo.Object) (tengo.Object, error) {
			return &tengo.Float{Value: s.Elapsed}, nil
		}},
	}}
}

func entityArg(s *scene.Scene, args []tengo.Object) (*scene.Entity, error) {
	if len(args) < 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	name, ok := tengo.ToString(args[0])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "first", Expected: "string"}
	}
	return s.ByName(name), nil
}

func configFromMap(m map[string]any) scene.Config {
	cfg := scene.Config{}
	str := func(k string) string {
		v, _ := m[k].(string)
		return v
	}
	num := func(k string) float64 {
		switch v := m[k].(type) {
		case int64:
			return float64(v)
		case float64:
			return v
		}
		return 0
	}
	cfg.Name = str("name")
	cfg.X, cfg.Y, cfg.Depth = num("x"), num("y"), num("depth")
	cfg.W, cfg.H = num("width"), num("height")
	cfg.VX, cfg.VY = num("vx"), num("vy")
	cfg.Team = str("team")
	cfg.Health = num("health")
	cfg.Speed = num("speed")
	cfg.Weapon = str("weapon")
	cfg.Controls = str("controls")
	switch str("physics") {
	case "dynamic":
		cfg.Physics = scene.PhysicsDynamic
	case "static":
		cfg.Physics = scene.PhysicsStatic
	}
	if str("move") == "topdown" {
		cfg.Move = scene.MoveTopdown
	}
	return cfg
}
