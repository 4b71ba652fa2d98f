package sim

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBounds = Bounds{W: 800, H: 600}

func newTestEngine(seed int64) *Engine {
	return New(DefaultConfig(), rand.New(rand.NewSource(seed)))
}

// prime anchors the engine clock with a first no-op step and returns the
// anchored timestamp
func prime(e *Engine, b Bounds) time.Time {
	now := time.Unix(1000, 0)
	e.Step(now, b, false)
	return now
}

func TestFirstStepOnlyAnchorsClock(t *testing.T) {
	e := newTestEngine(1)
	e.rockets = []Rocket{{Pos: Vec2{X: 400, Y: 300}, Fuse: 5}}

	e.Step(time.Unix(1000, 0), testBounds, true)

	require.Len(t, e.rockets, 1)
	assert.Equal(t, Vec2{X: 400, Y: 300}, e.rockets[0].Pos)
	assert.Equal(t, Vec2{}, e.rockets[0].Vel)
	assert.Empty(t, e.particles)
	assert.False(t, e.lastTick.IsZero())
}

func TestRocketGravityIsExact(t *testing.T) {
	e := newTestEngine(1)
	e.rockets = []Rocket{{Pos: Vec2{X: 400, Y: 300}, Fuse: 5}}
	now := prime(e, testBounds)

	dt := (10 * time.Millisecond).Seconds()
	e.Step(now.Add(10*time.Millisecond), testBounds, false)

	require.Len(t, e.rockets, 1)
	r := e.rockets[0]
	assert.InDelta(t, e.cfg.Gravity*dt, r.Vel.Y, 1e-12)
	assert.InDelta(t, 300+e.cfg.Gravity*dt*dt, r.Pos.Y, 1e-12)
	assert.Equal(t, 400.0, r.Pos.X)
}

func TestLargeDeltaIsClamped(t *testing.T) {
	e := newTestEngine(1)
	e.rockets = []Rocket{{Pos: Vec2{X: 400, Y: 300}, Fuse: 5}}
	now := prime(e, testBounds)

	// Ten seconds of wall clock must integrate as a single capped step.
	e.Step(now.Add(10*time.Second), testBounds, false)

	require.Len(t, e.rockets, 1)
	assert.InDelta(t, e.cfg.Gravity*maxStep, e.rockets[0].Vel.Y, 1e-12)
	assert.InDelta(t, 5-maxStep, e.rockets[0].Fuse, 1e-12)
}

func TestBackwardsClockIsZeroDelta(t *testing.T) {
	e := newTestEngine(1)
	e.rockets = []Rocket{{Pos: Vec2{X: 400, Y: 300}, Fuse: 5}}
	now := prime(e, testBounds)

	e.Step(now.Add(-time.Second), testBounds, false)

	require.Len(t, e.rockets, 1)
	assert.Equal(t, Vec2{X: 400, Y: 300}, e.rockets[0].Pos)
	assert.Equal(t, Vec2{}, e.rockets[0].Vel)
}

func TestDegenerateBoundsLeaveStateUntouched(t *testing.T) {
	e := newTestEngine(1)
	e.rockets = []Rocket{{Pos: Vec2{X: 400, Y: 300}, Fuse: 5}}
	now := prime(e, testBounds)

	e.Step(now.Add(16*time.Millisecond), Bounds{W: 0, H: 600}, true)
	e.Step(now.Add(32*time.Millisecond), Bounds{W: 800, H: 0}, true)

	require.Len(t, e.rockets, 1)
	assert.Equal(t, Vec2{X: 400, Y: 300}, e.rockets[0].Pos)
	assert.Empty(t, e.particles)
}

func TestNotRunningNeverSpawns(t *testing.T) {
	e := newTestEngine(1)
	now := prime(e, testBounds)

	for i := 0; i < 120; i++ {
		now = now.Add(16 * time.Millisecond)
		e.Step(now, testBounds, false)
		assert.Empty(t, e.Rockets())
		assert.Empty(t, e.Particles())
	}
}

func TestRunningSpawnsWithinASecond(t *testing.T) {
	e := newTestEngine(1)
	now := prime(e, testBounds)

	sawEntity := false
	for i := 0; i < 60; i++ {
		now = now.Add(time.Second / 60)
		e.Step(now, testBounds, true)
		if len(e.Rockets()) > 0 || len(e.Particles()) > 0 {
			sawEntity = true
			break
		}
	}
	assert.True(t, sawEntity, "one simulated second at 60fps should launch at least one rocket")
}

func TestFuseExpiryBurstsAndRemovesSameStep(t *testing.T) {
	e := newTestEngine(1)
	e.rockets = []Rocket{{Pos: Vec2{X: 400, Y: 300}, Vel: Vec2{Y: -200}, Fuse: 0.05}}
	now := prime(e, testBounds)

	dt := (33 * time.Millisecond).Seconds()
	now = now.Add(33 * time.Millisecond)
	e.Step(now, testBounds, false)
	require.Len(t, e.rockets, 1, "fuse 0.05 must survive the first 33ms step")
	require.Empty(t, e.particles)

	// Predict where the rocket bursts on the next step.
	r := e.rockets[0]
	vy := r.Vel.Y + e.cfg.Gravity*dt
	want := Vec2{X: r.Pos.X + r.Vel.X*dt, Y: r.Pos.Y + vy*dt}

	now = now.Add(33 * time.Millisecond)
	e.Step(now, testBounds, false)

	assert.Empty(t, e.rockets, "an exploded rocket never persists")
	require.NotEmpty(t, e.particles)
	assert.GreaterOrEqual(t, len(e.particles), e.cfg.BurstCountMin)
	assert.LessOrEqual(t, len(e.particles), e.cfg.BurstCountMax)
	for i := range e.particles {
		assert.InDelta(t, want.X, e.particles[i].Pos.X, 1e-9)
		assert.InDelta(t, want.Y, e.particles[i].Pos.Y, 1e-9)
		assert.Zero(t, e.particles[i].Age, "burst particles spawn unaged")
	}
}

func TestOffscreenRocketDroppedWithoutBurst(t *testing.T) {
	e := newTestEngine(1)
	e.rockets = []Rocket{{Pos: Vec2{X: -100, Y: 300}, Fuse: 5}}
	now := prime(e, testBounds)

	e.Step(now.Add(16*time.Millisecond), testBounds, false)

	assert.Empty(t, e.rockets)
	assert.Empty(t, e.particles)
}

func TestParticleCulling(t *testing.T) {
	e := newTestEngine(1)
	outside := Particle{Pos: Vec2{X: -200, Y: 300}, Lifetime: 10, BaseRadius: 2}
	insideSlack := Particle{Pos: Vec2{X: 400, Y: -30}, Lifetime: 10, BaseRadius: 2}
	e.particles = []Particle{outside, insideSlack}
	now := prime(e, testBounds)

	e.Step(now.Add(16*time.Millisecond), testBounds, false)

	// -200 is past the 60px slack, -30 is within it.
	require.Len(t, e.particles, 1)
	assert.Equal(t, 400.0, e.particles[0].Pos.X)
}

func TestExpiredParticleRemoved(t *testing.T) {
	e := newTestEngine(1)
	e.particles = []Particle{{Pos: Vec2{X: 400, Y: 300}, Lifetime: 0.01, BaseRadius: 2}}
	now := prime(e, testBounds)

	e.Step(now.Add(33*time.Millisecond), testBounds, false)

	assert.Empty(t, e.particles)
}

func TestResetClearsEverything(t *testing.T) {
	e := newTestEngine(1)
	now := prime(e, testBounds)
	for i := 0; i < 180; i++ {
		now = now.Add(16 * time.Millisecond)
		e.Step(now, testBounds, true)
	}
	require.NotZero(t, len(e.Rockets())+len(e.Particles()), "three simulated seconds should leave entities in flight")

	e.Reset(testBounds)

	assert.Empty(t, e.Rockets())
	assert.Empty(t, e.Particles())
	assert.True(t, e.lastTick.IsZero())
	assert.Greater(t, e.nextLaunch, 0.0)

	// The first step after a reset only re-anchors the clock.
	e.Step(now.Add(time.Second), testBounds, true)
	assert.Empty(t, e.Rockets())
}

func TestParticleCapStopsBurstAppends(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxParticles = 50
	e := New(cfg, rand.New(rand.NewSource(1)))

	for i := 0; i < 5; i++ {
		e.rockets = append(e.rockets, Rocket{Pos: Vec2{X: 400, Y: 300}, Fuse: 0.001})
	}
	now := prime(e, testBounds)

	e.Step(now.Add(16*time.Millisecond), testBounds, false)

	assert.Empty(t, e.rockets)
	assert.Len(t, e.particles, 50)
}
