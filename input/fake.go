package input

import "github.com/hajimehoshi/ebiten/v2"

// Fake is a scriptable Sampler for tests and headless runs. Press/Release
// mimic key-down/key-up events arriving between steps.
type Fake struct {
	held    map[ebiten.Key]bool
	pressed map[ebiten.Key]bool
}

func NewFake() *Fake {
	return &Fake{
		held:    map[ebiten.Key]bool{},
		pressed: map[ebiten.Key]bool{},
	}
}

// Press marks keys down and records their just-pressed edges.
func (f *Fake) Press(keys ...ebiten.Key) {
	for _, k := range keys {
		if !f.held[k] {
			f.pressed[k] = true
		}
		f.held[k] = true
	}
}

// Release marks keys up.
func (f *Fake) Release(keys ...ebiten.Key) {
	for _, k := range keys {
		delete(f.held, k)
	}
}

func (f *Fake) Held(k ebiten.Key) bool {
	return f.held[k]
}

func (f *Fake) JustPressed(k ebiten.Key) bool {
	return f.pressed[k]
}

// Clear drops the just-pressed edge set; held state persists.
func (f *Fake) Clear() {
	clear(f.pressed)
}
