package core

import (
	"fmt"
	"strings"
)

// Direction is one of the four unit moves on the grid
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all directions in declaration order
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

var directionDeltas = [...]Cell{
	DirUp:    {X: 0, Y: -1},
	DirDown:  {X: 0, Y: 1},
	DirLeft:  {X: -1, Y: 0},
	DirRight: {X: 1, Y: 0},
}

var directionNames = [...]string{
	DirUp:    "up",
	DirDown:  "down",
	DirLeft:  "left",
	DirRight: "right",
}

// Valid reports whether d is one of the four declared directions
func (d Direction) Valid() bool {
	return int(d) < len(directionDeltas)
}

// Delta returns the unit offset, zero Cell for an invalid direction
func (d Direction) Delta() Cell {
	if !d.Valid() {
		return Cell{}
	}
	return directionDeltas[d]
}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return d
}

// IsOpposite reports whether the two deltas cancel out
// Never true for d against itself
func (d Direction) IsOpposite(other Direction) bool {
	if !d.Valid() || !other.Valid() {
		return false
	}
	a, b := d.Delta(), other.Delta()
	return a.X+b.X == 0 && a.Y+b.Y == 0
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", d)
	}
	return directionNames[d]
}

// MarshalText encodes the direction by name for JSON snapshots
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name from JSON snapshots
func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// ParseDirection resolves a case-insensitive direction name
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Directions {
		if directionNames[d] == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
