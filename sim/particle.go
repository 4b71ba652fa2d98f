package sim

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// radiusShrink is the fraction of the base radius lost over a full lifetime
const radiusShrink = 0.6

// Particle is a single burst fragment falling under scaled gravity and drag
type Particle struct {
	Pos Vec2 // world position
	Vel Vec2 // velocity in pixels per second

	Hue float64 // color hue in [0, 1)
	Sat float64 // color saturation in [0, 1]
	Val float64 // color brightness in [0, 1]

	BaseRadius float64 // rendered radius at age 0
	Lifetime   float64 // total seconds the particle may live
	Age        float64 // seconds since spawn
	Drag       float64 // velocity damping coefficient, applied as exp(-Drag*dt)
}

// IsAlive returns true if the particle is still within its lifetime
func (p *Particle) IsAlive() bool {
	return p.Age < p.Lifetime
}

// Alpha returns the particle's opacity: 1 at age 0, falling linearly to 0
// at the end of its lifetime, never increasing in between
func (p *Particle) Alpha() float64 {
	if p.Lifetime <= 0 {
		return 0
	}
	a := 1 - p.Age/p.Lifetime
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// Radius returns the current rendered radius, shrinking with normalized age
func (p *Particle) Radius() float64 {
	if p.Lifetime <= 0 {
		return 0
	}
	t := p.Age / p.Lifetime
	if t > 1 {
		t = 1
	}
	return p.BaseRadius * (1 - radiusShrink*t)
}

// Color returns the particle's display color; fading is the renderer's job
// via Alpha, so the returned color is fully opaque
func (p *Particle) Color() color.NRGBA {
	cr, cg, cb := colorful.Hsv(p.Hue*360, p.Sat, p.Val).RGB255()
	return color.NRGBA{R: cr, G: cg, B: cb, A: 255}
}
