package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(180, 180, 180) // Brighter gray

	RgbSnakeHead = tcell.NewRGBColor(50, 255, 50) // Bright Green
	RgbSnakeBody = tcell.NewRGBColor(0, 170, 0)   // Normal Green
	RgbSnakeDead = tcell.NewRGBColor(180, 50, 50) // Dark Red

	RgbFoodNormal = tcell.NewRGBColor(255, 80, 80) // Normal Red
	RgbFoodBonus  = tcell.NewRGBColor(255, 255, 0) // Bright Yellow

	// Status bar backgrounds
	RgbRunningBg  = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbPausedBg   = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbGameOverBg = tcell.NewRGBColor(200, 50, 50)   // Red
	RgbScoreBg    = tcell.NewRGBColor(255, 255, 255) // Bright white
	RgbSpeedBg    = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbHintText   = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)

// stateBackground returns the status bar color for a game state
func stateBackground(s core.GameState) tcell.Color {
	switch s {
	case core.StatePaused:
		return RgbPausedBg
	case core.StateGameOver:
		return RgbGameOverBg
	default:
		return RgbRunningBg
	}
}

func foodColor(k component.FoodKind) tcell.Color {
	if k == component.FoodBonus {
		return RgbFoodBonus
	}
	return RgbFoodNormal
}
