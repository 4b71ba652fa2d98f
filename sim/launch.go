package sim

// Launch origin and target placement, as fractions of the bounds
const (
	launchBandFrac = 0.12 // origin x within this fraction of width around center
	targetXMinFrac = 0.10
	targetXMaxFrac = 0.90
	targetYMinFrac = 0.05
	targetYMaxFrac = 0.45
)

// launch creates a rocket at the bottom of the bounds aimed at a random
// point in the upper region. The fuse alone decides when it bursts.
func (e *Engine) launch(bounds Bounds) Rocket {
	originX := bounds.W*0.5 + (e.rng.Float64()*2-1)*bounds.W*launchBandFrac
	origin := Vec2{X: originX, Y: bounds.H}

	target := Vec2{
		X: bounds.W * e.uniform(targetXMinFrac, targetXMaxFrac),
		Y: bounds.H * e.uniform(targetYMinFrac, targetYMaxFrac),
	}

	dir := target.Sub(origin)
	dist := dir.Len()
	if dist < 1 {
		// Degenerate zero-size bounds would put origin on top of the
		// target; clamping keeps the division finite.
		dist = 1
	}
	speed := e.uniform(e.cfg.RocketSpeedMin, e.cfg.RocketSpeedMax)

	return Rocket{
		Pos:  origin,
		Vel:  dir.Scale(speed / dist),
		Hue:  e.rng.Float64(),
		Fuse: e.uniform(e.cfg.FuseMin, e.cfg.FuseMax),
	}
}
