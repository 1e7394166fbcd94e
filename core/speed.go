package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/vi-snake/parameter"
)

// Speed selects the tick interval of the game loop
// Swapping it never touches snake, food or score
type Speed uint8

const (
	SpeedSlow Speed = iota
	SpeedNormal
	SpeedFast
)

// Speeds lists all speed presets, slowest first
var Speeds = [...]Speed{SpeedSlow, SpeedNormal, SpeedFast}

var speedTable = [...]struct {
	name  string
	delay time.Duration
}{
	SpeedSlow:   {"slow", parameter.SlowTickDelay},
	SpeedNormal: {"normal", parameter.NormalTickDelay},
	SpeedFast:   {"fast", parameter.FastTickDelay},
}

// Valid reports whether s is a declared preset
func (s Speed) Valid() bool {
	return int(s) < len(speedTable)
}

// Delay returns the tick interval; unknown values fall back to normal
func (s Speed) Delay() time.Duration {
	if !s.Valid() {
		return parameter.NormalTickDelay
	}
	return speedTable[s].delay
}

func (s Speed) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Speed(%d)", s)
	}
	return speedTable[s].name
}

// MarshalText encodes the speed by name for JSON snapshots
func (s Speed) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseSpeed resolves a case-insensitive preset name
func ParseSpeed(name string) (Speed, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Speeds {
		if speedTable[s].name == n {
			return s, nil
		}
	}
	return SpeedNormal, fmt.Errorf("unknown speed %q (want slow, normal or fast)", name)
}

// UnmarshalText decodes a preset name, used by config files
func (s *Speed) UnmarshalText(text []byte) error {
	v, err := ParseSpeed(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
