package scene

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

func vec(x, y float64) cp.Vector {
	return cp.Vector{X: x, Y: y}
}

// SchemeByName resolves a control scheme preset name. Unknown names return
// nil, leaving the entity uncontrolled.
func SchemeByName(name string) *ControlScheme {
	switch strings.ToLower(name) {
	case "wasd":
		return &ControlScheme{
			Left:   ebiten.KeyA,
			Right:  ebiten.KeyD,
			Up:     ebiten.KeyW,
			Down:   ebiten.KeyS,
			Jump:   ebiten.KeySpace,
			Attack: ebiten.KeyF,
			Sprint: ebiten.KeyShiftLeft,
		}
	case "arrows":
		return &ControlScheme{
			Left:   ebiten.KeyArrowLeft,
			Right:  ebiten.KeyArrowRight,
			Up:     ebiten.KeyArrowUp,
			Down:   ebiten.KeyArrowDown,
			Jump:   ebiten.KeyEnter,
			Attack: ebiten.KeyShiftRight,
			Sprint: ebiten.KeyControlRight,
		}
	default:
		return nil
	}
}

var keyNames = map[string]ebiten.Key{
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"tab":       ebiten.KeyTab,
	"shift":     ebiten.KeyShiftLeft,
	"rshift":    ebiten.KeyShiftRight,
	"ctrl":      ebiten.KeyControlLeft,
	"rctrl":     ebiten.KeyControlRight,
	"alt":       ebiten.KeyAltLeft,
	"escape":    ebiten.KeyEscape,
	"comma":     ebiten.KeyComma,
	"period":    ebiten.KeyPeriod,
	"slash":     ebiten.KeySlash,
	"minus":     ebiten.KeyMinus,
	"equal":     ebiten.KeyEqual,
	"backspace": ebiten.KeyBackspace,
}

// KeyByName parses a key token from authoring input: a single letter or
// digit, or a named key. Unknown tokens return KeyNone so a bad binding
// degrades to an unbound action instead of failing the scene.
func KeyByName(name string) ebiten.Key {
	n := strings.ToLower(strings.TrimSpace(name))
	if len(n) == 1 {
		c := n[0]
		switch {
		case c >= 'a' && c <= 'z':
			return ebiten.KeyA + ebiten.Key(c-'a')
		case c >= '0' && c <= '9':
			return ebiten.KeyDigit0 + ebiten.Key(c-'0')
		}
	}
	if k, ok := keyNames[n]; ok {
		return k
	}
	return KeyNone
}
