package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"fireworks/sim"
)

// Game wires the simulation engine to the ebiten frame loop. It owns the
// running toggle and the current window size; everything else lives in sim.
type Game struct {
	engine  *sim.Engine
	running bool

	width  int
	height int

	particleSprite *ebiten.Image
	prevAltEnter   bool
}

// NewGame creates the windowed shell around an engine
func NewGame(cfg sim.Config, engine *sim.Engine) *Game {
	return &Game{
		engine:         engine,
		width:          cfg.ScreenWidth,
		height:         cfg.ScreenHeight,
		particleSprite: newParticleSprite(particleSpriteSize),
	}
}

// bounds returns the current window size as the simulation region
func (g *Game) bounds() sim.Bounds {
	return sim.Bounds{W: float64(g.width), H: float64(g.height)}
}

// Update advances the simulation by one frame tick
func (g *Game) Update() error {
	g.handleInput()
	g.engine.Step(time.Now(), g.bounds(), g.running)
	return nil
}

// Draw renders the current simulation state
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	drawGround(screen, g.width, g.height)

	rockets := g.engine.Rockets()
	for i := range rockets {
		drawRocket(screen, &rockets[i])
	}

	particles := g.engine.Particles()
	for i := range particles {
		drawParticle(screen, g.particleSprite, &particles[i])
	}

	g.drawHUD(screen)
}

// Layout tracks window resizes so culling and spawning follow the surface
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width = outsideWidth
	g.height = outsideHeight
	return outsideWidth, outsideHeight
}
