package render

import "github.com/milk9111/scenekit/scene"

// Camera maps world coordinates to screen pixels. X/Y are the view's
// top-left in screen-pixel space.
type Camera struct {
	X, Y  float64
	ViewW int
	ViewH int
}

func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewW: viewW, ViewH: viewH}
}

// Follow recenters the camera on the scene's follow target, if one is named
// and present. Called once per frame after the physics and combat step, so
// the camera trails combat-induced movement by one frame.
func (c *Camera) Follow(s *scene.Scene) {
	if s.Follow == "" {
		return
	}
	target := s.ByName(s.Follow)
	if target == nil {
		return
	}
	c.X = target.Pos.X*s.PixelScale - float64(c.ViewW)/2
	c.Y = target.Pos.Y*s.PixelScale - float64(c.ViewH)/2
}

// Apply converts a world position to screen pixels, including the depth
// parallax lift that fakes elevation.
func (c *Camera) Apply(x, y, depth, pixelScale float64) (float64, float64) {
	sx := x*pixelScale - c.X
	sy := y*pixelScale - c.Y - depth*pixelScale*0.2
	return sx, sy
}
