// Package render draws a scene back-to-front by depth onto an Ebiten image.
// Depth affects paint order and a small vertical parallax lift only, never
// physics.
package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/scenekit/scene"
)

// Renderer is a pure function of the current entity list and camera; it
// keeps only a scratch slice between frames.
type Renderer struct {
	// Debug overlays a stroked outline on every drawn rectangle.
	Debug bool

	scratch []*scene.Entity
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw fills the background and paints live entities in ascending depth
// order (painter's algorithm), so higher-depth entities occlude.
func (r *Renderer) Draw(dst *ebiten.Image, s *scene.Scene, cam *Camera) {
	dst.Fill(s.Background)

	r.scratch = r.scratch[:0]
	for _, e := range s.Entities {
		if !e.Dead {
			r.scratch = append(r.scratch, e)
		}
	}
	sort.SliceStable(r.scratch, func(i, j int) bool {
		return r.scratch[i].Depth < r.scratch[j].Depth
	})

	for _, e := range r.scratch {
		x, y := cam.Apply(e.Pos.X, e.Pos.Y, e.Depth, s.PixelScale)
		w := e.W * s.PixelScale
		h := e.H * s.PixelScale

		if e.Sprite != nil {
			op := &ebiten.DrawImageOptions{}
			b := e.Sprite.Bounds()
			if b.Dx() > 0 && b.Dy() > 0 {
				op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
			}
			op.GeoM.Translate(x, y)
			dst.DrawImage(e.Sprite, op)
		} else {
			vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), e.Color, false)
		}

		if r.Debug {
			vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1,
				color.NRGBA{R: 0x00, G: 0xff, B: 0x6a, A: 0xff}, false)
		}
	}
}
