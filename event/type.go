package event

// EventType represents the type of game event
type EventType int

const (
	// EventGameUpdated signals that observable game state changed
	// Trigger: Initialize, successful Tick, TogglePause, Restart, SetSpeed
	// Consumer: Renderer, spectate hub | Payload: *GameUpdatedPayload
	EventGameUpdated EventType = iota + 1

	// EventGameOver signals the transition into the game-over state
	// Trigger: wall or self collision, board cleared
	// Consumer: Renderer, spectate hub, status | Payload: *GameOverPayload
	EventGameOver

	// EventScoreChanged signals that food was eaten
	// Trigger: Tick landing the head on food
	// Consumer: Renderer status bar, spectate hub | Payload: *ScoreChangedPayload
	EventScoreChanged
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64 // Game tick at emission time
}

func (t EventType) String() string {
	if name := GetEventName(t); name != "" {
		return name
	}
	return "EventUnknown"
}
