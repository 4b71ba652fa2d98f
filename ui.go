package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawHUD overlays the control hints and live entity counts
func (g *Game) drawHUD(screen *ebiten.Image) {
	state := "off"
	if g.running {
		state = "on"
	}
	msg := fmt.Sprintf("launch: %s  [space/click] toggle  [r] reset  rockets: %d  particles: %d  fps: %.0f",
		state, len(g.engine.Rockets()), len(g.engine.Particles()), ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, msg, hudMarginX, hudMarginY)
}
