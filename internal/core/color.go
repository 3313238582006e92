package core

// Color is a semantic color hint for a screen cell. The platform maps each
// hint to an actual terminal style.
type Color uint8

const (
	ColorDefault   Color = iota
	ColorBorder          // Field fence
	ColorGardener        // Player glyph
	ColorVegetable       // Vegetables in play
	ColorCarried         // Vegetables being dragged away
	ColorSquirrel        // Squirrel glyph
	ColorRaccoon         // Raccoon glyph
	ColorWater           // Droplets and an open tap
	ColorTapOff          // Closed tap
	ColorHUD             // Status line
	ColorMessage         // Round transition banners
	ColorRed             // Warnings and game over
	ColorOrange
	ColorGreen
	ColorGray
)
