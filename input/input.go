// Package input samples key state for the simulation step. The step reads
// whatever the latest event delivered (last-write-wins per key); the sampler
// is injected so tests can drive the step deterministically.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Sampler is the key-state view a simulation step reads. Held reports
// currently-down keys; JustPressed reports keys pressed since the last
// Clear. Clear is called once per step after consumption.
type Sampler interface {
	Held(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	Clear()
}

// Keyboard samples the live Ebiten keyboard. Edge tracking is handled by
// inpututil per tick, so Clear is a no-op.
type Keyboard struct{}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (*Keyboard) Held(k ebiten.Key) bool {
	if k < 0 {
		return false
	}
	return ebiten.IsKeyPressed(k)
}

func (*Keyboard) JustPressed(k ebiten.Key) bool {
	if k < 0 {
		return false
	}
	return inpututil.IsKeyJustPressed(k)
}

func (*Keyboard) Clear() {}
