package sim

import (
	"math"
	"math/rand"
	"time"
)

// maxStep caps the integration delta so a stalled or backgrounded app does
// not apply one giant physics jump on resume
const maxStep = 1.0 / 30

// Bounds is the rectangular simulation region, anchored at the origin
type Bounds struct {
	W float64
	H float64
}

// contains reports whether pos lies inside b expanded outward by slack
func (b Bounds) contains(pos Vec2, slack float64) bool {
	return pos.X >= -slack && pos.X <= b.W+slack &&
		pos.Y >= -slack && pos.Y <= b.H+slack
}

// Engine owns all transient fireworks state and advances it one tick at a
// time. It is single-threaded: Step must never run concurrently with itself
// or with reads of Rockets/Particles.
type Engine struct {
	cfg Config
	rng *rand.Rand

	rockets   []Rocket
	particles []Particle

	lastTick   time.Time // zero value means no tick processed yet
	nextLaunch float64   // seconds until the next rocket spawn
	bounds     Bounds
}

// New creates an engine with the given configuration. A nil rng gets a
// time-seeded source; tests pass a fixed seed for deterministic runs.
func New(cfg Config, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e := &Engine{
		cfg: cfg,
		rng: rng,
	}
	e.Reset(Bounds{W: float64(cfg.ScreenWidth), H: float64(cfg.ScreenHeight)})
	return e
}

// Reset drops every live entity and timer and re-anchors the launch
// countdown. The next Step only records its timestamp.
func (e *Engine) Reset(bounds Bounds) {
	e.rockets = nil
	e.particles = nil
	e.lastTick = time.Time{}
	e.nextLaunch = e.uniform(e.cfg.LaunchEveryMin, e.cfg.LaunchEveryMax)
	e.bounds = bounds
}

// Rockets returns the live rockets for the current frame
func (e *Engine) Rockets() []Rocket {
	return e.rockets
}

// Particles returns the live particles for the current frame
func (e *Engine) Particles() []Particle {
	return e.particles
}

// Step advances the simulation by the elapsed time since the previous call.
// running gates new launches only; entities already in flight keep
// integrating and expire naturally.
func (e *Engine) Step(now time.Time, bounds Bounds, running bool) {
	// First tick just anchors the clock; there is no meaningful delta yet.
	if e.lastTick.IsZero() {
		e.lastTick = now
		return
	}

	dt := now.Sub(e.lastTick).Seconds()
	e.lastTick = now
	if dt < 0 {
		dt = 0
	}
	if dt > maxStep {
		dt = maxStep
	}

	// Rendering surface not sized yet.
	if bounds.W <= 0 || bounds.H <= 0 {
		return
	}
	e.bounds = bounds

	if running {
		e.nextLaunch -= dt
		if e.nextLaunch <= 0 {
			e.rockets = append(e.rockets, e.launch(bounds))
			e.nextLaunch = e.uniform(e.cfg.LaunchEveryMin, e.cfg.LaunchEveryMax)
		}
	}

	// Rockets: integrate, then either burst, cull, or keep. Bursts are
	// collected and appended after the particle pass so new particles
	// finish the step at age 0.
	var spawned []Particle
	liveRockets := make([]Rocket, 0, len(e.rockets))
	for _, r := range e.rockets {
		r.Vel.Y += e.cfg.Gravity * dt
		r.Pos.X += r.Vel.X * dt
		r.Pos.Y += r.Vel.Y * dt
		r.Fuse -= dt

		switch {
		case r.Fuse <= 0:
			spawned = append(spawned, e.burst(r.Pos)...)
		case !bounds.contains(r.Pos, e.cfg.CullSlack):
			// Dropped without bursting; keeps runaway rockets from
			// integrating forever off screen.
		default:
			liveRockets = append(liveRockets, r)
		}
	}
	e.rockets = liveRockets

	liveParticles := make([]Particle, 0, len(e.particles))
	for _, p := range e.particles {
		damp := math.Exp(-p.Drag * dt)
		p.Vel.X *= damp
		p.Vel.Y *= damp
		p.Vel.Y += e.cfg.Gravity * e.cfg.ParticleGravityScale * dt
		p.Pos.X += p.Vel.X * dt
		p.Pos.Y += p.Vel.Y * dt
		p.Age += dt

		if !p.IsAlive() || !bounds.contains(p.Pos, e.cfg.CullSlack) {
			continue
		}
		liveParticles = append(liveParticles, p)
	}
	e.particles = liveParticles

	for _, p := range spawned {
		if len(e.particles) >= e.cfg.MaxParticles {
			break
		}
		e.particles = append(e.particles, p)
	}
}

// uniform samples a value uniformly from [lo, hi)
func (e *Engine) uniform(lo, hi float64) float64 {
	return lo + e.rng.Float64()*(hi-lo)
}
