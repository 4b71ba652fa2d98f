package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleInput processes the start/stop toggle, hard reset, and fullscreen
func (g *Game) handleInput() {
	// Space or click toggles launching; entities in flight keep going.
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.running = !g.running
	}

	// R clears the sky entirely.
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.running = false
		g.engine.Reset(g.bounds())
	}

	// Handle Alt+Enter to toggle fullscreen
	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
	enterPressed := ebiten.IsKeyPressed(ebiten.KeyEnter)
	altEnterPressed := altPressed && enterPressed

	if altEnterPressed && !g.prevAltEnter {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	g.prevAltEnter = altEnterPressed
}
