// Package prefabs loads scene authoring specs from YAML. Malformed values
// degrade to documented defaults instead of failing the load; a content
// mistake should never take the engine down.
package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// flexFloat parses like a float64 but treats unparsable scalars as zero, so
// a typo in authoring input degrades instead of erroring.
type flexFloat float64

func (f *flexFloat) UnmarshalYAML(n *yaml.Node) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(n.Value), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}

// SceneSpec is one scene file: background, combat flag, physics tuning,
// weapon presets, entities, and timeline events.
type SceneSpec struct {
	Name        string                `yaml:"name"`
	Background  string                `yaml:"background"`
	Multiplayer bool                  `yaml:"multiplayer"`
	Gravity     *flexFloat            `yaml:"gravity"`
	PixelScale  *flexFloat            `yaml:"pixel_scale"`
	Camera      CameraSpec            `yaml:"camera"`
	Weapons     map[string]WeaponSpec `yaml:"weapons"`
	Entities    []EntitySpec          `yaml:"entities"`
	Timeline    []EventSpec           `yaml:"timeline"`
}

type CameraSpec struct {
	Follow string `yaml:"follow"`
}

// WeaponSpec is a partial weapon preset; absent fields fall through to the
// builtin default at resolution time.
type WeaponSpec struct {
	Damage          *flexFloat `yaml:"damage"`
	Cooldown        *flexFloat `yaml:"cooldown"`
	ProjectileSpeed *flexFloat `yaml:"projectile_speed"`
	Color           string     `yaml:"color"`
	Width           *flexFloat `yaml:"width"`
	Height          *flexFloat `yaml:"height"`
}

// EntitySpec mirrors the entity config consumed by scene.Add. Position is
// [x, y, depth]; size is [width, height]; velocity is [vx, vy]. Missing
// components read as zero.
type EntitySpec struct {
	Name       string            `yaml:"name"`
	Position   []flexFloat       `yaml:"position"`
	Size       []flexFloat       `yaml:"size"`
	Velocity   []flexFloat       `yaml:"velocity"`
	Color      string            `yaml:"color"`
	Physics    string            `yaml:"physics"`
	Move       string            `yaml:"move"`
	Kind       string            `yaml:"kind"`
	Controls   string            `yaml:"controls"`
	Scheme     map[string]string `yaml:"scheme"`
	Team       string            `yaml:"team"`
	Health     *flexFloat        `yaml:"health"`
	MaxHealth  *flexFloat        `yaml:"max_health"`
	Speed      *flexFloat        `yaml:"speed"`
	JumpForce  *flexFloat        `yaml:"jump_force"`
	Weapon     string            `yaml:"weapon"`
	WeaponMods *WeaponSpec       `yaml:"weapon_mods"`
	TrackScore bool              `yaml:"track_score"`
}

// EventSpec schedules a tengo script at a point of scene elapsed time.
type EventSpec struct {
	At     flexFloat `yaml:"at"`
	Script string    `yaml:"script"`
}

// LoadSceneSpec reads and decodes a scene file by name (basename, .yaml
// optional).
func LoadSceneSpec(name string) (SceneSpec, error) {
	data, err := Load(sceneFileName(name))
	if err != nil {
		return SceneSpec{}, fmt.Errorf("prefabs: load scene %s: %w", name, err)
	}
	var spec SceneSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return SceneSpec{}, fmt.Errorf("prefabs: unmarshal scene %s: %w", name, err)
	}
	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(sceneFileName(name), ".yaml")
	}
	return spec, nil
}

func sceneFileName(name string) string {
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return name
	}
	return name + ".yaml"
}

// parseColor decodes "#rrggbb" or "#rrggbbaa". The second return is false
// for anything else; callers substitute their default.
func parseColor(s string) (color.NRGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, false
	}
	part := func(start int) (uint8, bool) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err == nil
	}
	r, ok1 := part(0)
	g, ok2 := part(2)
	b, ok3 := part(4)
	if !ok1 || !ok2 || !ok3 {
		return color.NRGBA{}, false
	}
	a := uint8(0xff)
	if len(s) == 8 {
		var ok bool
		if a, ok = part(6); !ok {
			return color.NRGBA{}, false
		}
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, true
}
