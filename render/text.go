package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// TextOptions positions and styles a HUD text overlay.
type TextOptions struct {
	X, Y  float64
	Color color.Color
	Face  ebtext.Face
}

var defaultFace = ebtext.NewGoXFace(basicfont.Face7x13)

// Text draws a HUD string outside the simulation step. Zero-valued options
// take the built-in face and white.
func Text(dst *ebiten.Image, s string, o TextOptions) {
	face := o.Face
	if face == nil {
		face = defaultFace
	}
	clr := o.Color
	if clr == nil {
		clr = color.White
	}
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(o.X, o.Y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(dst, s, face, op)
}
