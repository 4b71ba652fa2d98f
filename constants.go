package main

import "image/color"

// Rendering constants
const (
	rocketDrawRadius   = 2.5
	particleSpriteSize = 32
	groundHeight       = 2.0
)

// UI constants
const (
	hudMarginX = 8
	hudMarginY = 8
)

// Color constants
var (
	colorBackground = color.NRGBA{R: 5, G: 6, B: 18, A: 255}
)
