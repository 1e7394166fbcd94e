package event

import (
	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
)

// Snapshot is an immutable copy of observable game state
// Snake is head first and owned by the snapshot
type Snapshot struct {
	Session   string         `json:"session"`
	Tick      uint64         `json:"tick"`
	State     core.GameState `json:"state"`
	Score     int            `json:"score"`
	Speed     core.Speed     `json:"speed"`
	Direction core.Direction `json:"direction"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Snake     []core.Cell    `json:"snake"`
	Food      component.Food `json:"food"`
	HasFood   bool           `json:"has_food"`
	Cleared   bool           `json:"cleared"`
}

// GameUpdatedPayload carries the state after a change
type GameUpdatedPayload struct {
	Snapshot Snapshot `json:"snapshot"`
}

// GameOverPayload carries the final result of a game
type GameOverPayload struct {
	FinalScore int      `json:"final_score"`
	Cleared    bool     `json:"cleared"` // Snake filled the board
	Snapshot   Snapshot `json:"snapshot"`
}

// ScoreChangedPayload carries the score after food was eaten
type ScoreChangedPayload struct {
	Score  int                `json:"score"`
	Points int                `json:"points"`
	Kind   component.FoodKind `json:"kind"`
}
