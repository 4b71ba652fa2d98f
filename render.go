package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"fireworks/sim"
)

// newParticleSprite builds a white disc whose alpha falls off toward the
// rim. Tinting and additive compositing happen per draw call, so one sprite
// serves every particle.
func newParticleSprite(size int) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	center := float64(size-1) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)-center, float64(y)-center) / center
			if d > 1 {
				continue
			}
			// Quadratic falloff reads as a glow once blended additively.
			v := uint8((1 - d*d) * 255)
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: v})
		}
	}
	return ebiten.NewImageFromImage(img)
}

// drawRocket draws a rocket as a small filled circle
func drawRocket(dst *ebiten.Image, r *sim.Rocket) {
	vector.DrawFilledCircle(dst, float32(r.Pos.X), float32(r.Pos.Y), rocketDrawRadius, r.Color(), true)
}

// drawParticle composites one particle additively, scaled to its current
// radius and faded by its age
func drawParticle(dst *ebiten.Image, sprite *ebiten.Image, p *sim.Particle) {
	radius := p.Radius()
	alpha := p.Alpha()
	if radius <= 0 || alpha <= 0 {
		return
	}

	clr := p.Color()
	a := float32(alpha)

	op := &ebiten.DrawImageOptions{}
	scale := radius * 2 / float64(sprite.Bounds().Dx())
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(p.Pos.X-radius, p.Pos.Y-radius)
	// Premultiplied tint so overlapping particles lighten instead of clip.
	op.ColorScale.Scale(float32(clr.R)/255*a, float32(clr.G)/255*a, float32(clr.B)/255*a, a)
	op.Blend = ebiten.BlendLighter
	dst.DrawImage(sprite, op)
}

// drawGround marks the launch baseline along the bottom edge
func drawGround(dst *ebiten.Image, width, height int) {
	vector.DrawFilledRect(dst, 0, float32(height)-groundHeight, float32(width), groundHeight, colornames.Darkslategray, false)
}
