package core

import (
	"fmt"
	"strings"
)

// GameState is the lifecycle state of a game
type GameState uint8

const (
	// StateRunning accepts direction changes and ticks
	StateRunning GameState = iota
	// StatePaused ignores ticks, accepts only pause toggle and restart
	StatePaused
	// StateGameOver ignores ticks, accepts only restart
	StateGameOver
)

var stateNames = [...]string{
	StateRunning:  "running",
	StatePaused:   "paused",
	StateGameOver: "game_over",
}

func (s GameState) String() string {
	if int(s) >= len(stateNames) {
		return fmt.Sprintf("GameState(%d)", s)
	}
	return stateNames[s]
}

// MarshalText encodes the state by name for JSON snapshots
func (s GameState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name from JSON snapshots
func (s *GameState) UnmarshalText(text []byte) error {
	v, err := ParseGameState(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseGameState resolves a case-insensitive state name
func ParseGameState(name string) (GameState, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for s, sn := range stateNames {
		if sn == n {
			return GameState(s), nil
		}
	}
	return StateGameOver, fmt.Errorf("unknown game state %q", name)
}
