package input

import (
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // Terminal resize event

	// Game intents, forwarded to the scheduler
	IntentDirection   // Arrows, WASD
	IntentTogglePause // Space, p
	IntentRestart     // Enter, r
	IntentSpeed       // 1, 2, 3
)

// Intent is the parsed meaning of one terminal event
type Intent struct {
	Type      IntentType
	Direction core.Direction
	Speed     core.Speed
}

// Command converts a game intent into a scheduler command
// Returns false for system intents
func (i Intent) Command() (engine.Command, bool) {
	switch i.Type {
	case IntentDirection:
		return engine.DirectionCommand(i.Direction), true
	case IntentTogglePause:
		return engine.PauseCommand(), true
	case IntentRestart:
		return engine.RestartCommand(), true
	case IntentSpeed:
		return engine.SpeedCommand(i.Speed), true
	default:
		return engine.Command{}, false
	}
}
