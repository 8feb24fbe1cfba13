package scene

import "image/color"

// Weapon is a fully resolved weapon template. Values are copied onto the
// projectile at spawn; the template itself is never mutated by combat.
type Weapon struct {
	Name            string
	Damage          float64
	Cooldown        float64 // seconds between attacks
	ProjectileSpeed float64
	Color           color.NRGBA
	W, H            float64
}

// WeaponPatch is a partial weapon override. Nil fields keep the value from
// the layer below; merge precedence is builtin default < named preset <
// inline patch.
type WeaponPatch struct {
	Damage          *float64
	Cooldown        *float64
	ProjectileSpeed *float64
	Color           *color.NRGBA
	W, H            *float64
}

// DefaultWeapon is the builtin base every resolution starts from.
var DefaultWeapon = Weapon{
	Name:            "default",
	Damage:          10,
	Cooldown:        0.2,
	ProjectileSpeed: 400,
	Color:           color.NRGBA{R: 0xff, G: 0xe0, B: 0x66, A: 0xff},
	W:               8,
	H:               8,
}

// Merge applies a patch on top of w and returns the result.
func (w Weapon) Merge(p *WeaponPatch) Weapon {
	if p == nil {
		return w
	}
	if p.Damage != nil {
		w.Damage = *p.Damage
	}
	if p.Cooldown != nil {
		w.Cooldown = *p.Cooldown
	}
	if p.ProjectileSpeed != nil {
		w.ProjectileSpeed = *p.ProjectileSpeed
	}
	if p.Color != nil {
		w.Color = *p.Color
	}
	if p.W != nil {
		w.W = *p.W
	}
	if p.H != nil {
		w.H = *p.H
	}
	return w
}

// normalize clamps resolved values the combat step cannot tolerate back to
// the builtin defaults.
func (w Weapon) normalize() Weapon {
	if w.Cooldown <= 0 {
		w.Cooldown = DefaultWeapon.Cooldown
	}
	if w.W < 0 {
		w.W = DefaultWeapon.W
	}
	if w.H < 0 {
		w.H = DefaultWeapon.H
	}
	return w
}
