package sim

import "math"

// burst converts an exploding rocket into a ring of particles around its
// last position. One base hue per burst keeps each firework color-cohesive;
// every other property is sampled per particle.
func (e *Engine) burst(origin Vec2) []Particle {
	count := e.cfg.BurstCountMin + e.rng.Intn(e.cfg.BurstCountMax-e.cfg.BurstCountMin+1)
	baseHue := e.rng.Float64()

	// Jitter within half an angular slot keeps the ring even instead of clumpy.
	jitter := math.Pi / float64(count)

	out := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		angle := float64(i)/float64(count)*2*math.Pi + e.uniform(-jitter, jitter)
		speed := e.uniform(e.cfg.ParticleSpeedMin, e.cfg.ParticleSpeedMax)

		out = append(out, Particle{
			Pos: origin,
			Vel: Vec2{
				X: math.Cos(angle) * speed,
				Y: math.Sin(angle) * speed,
			},
			Hue:        wrapHue(baseHue + e.uniform(-e.cfg.HueJitter, e.cfg.HueJitter)),
			Sat:        1,
			Val:        1,
			BaseRadius: e.uniform(e.cfg.ParticleRadiusMin, e.cfg.ParticleRadiusMax),
			Lifetime:   e.uniform(e.cfg.ParticleLifeMin, e.cfg.ParticleLifeMax),
			Drag:       e.uniform(e.cfg.ParticleDragMin, e.cfg.ParticleDragMax),
		})
	}
	return out
}

// wrapHue maps h into [0, 1)
func wrapHue(h float64) float64 {
	h = math.Mod(h, 1)
	if h < 0 {
		h += 1
	}
	return h
}
