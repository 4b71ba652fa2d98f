package sim

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Rocket is a launched shell climbing under gravity until its fuse runs out
type Rocket struct {
	Pos  Vec2    // world position
	Vel  Vec2    // velocity in pixels per second
	Hue  float64 // color hue in [0, 1)
	Fuse float64 // seconds until burst
}

// Color returns the rocket's fully saturated display color
func (r *Rocket) Color() color.NRGBA {
	cr, cg, cb := colorful.Hsv(r.Hue*360, 1, 1).RGB255()
	return color.NRGBA{R: cr, G: cg, B: cb, A: 255}
}
