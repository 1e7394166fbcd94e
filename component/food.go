package component

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

// FoodKind tags a food item; the point value is fixed per kind
type FoodKind uint8

const (
	FoodNormal FoodKind = iota
	FoodBonus
)

var foodTable = [...]struct {
	name   string
	points int
}{
	FoodNormal: {"normal", parameter.NormalFoodPoints},
	FoodBonus:  {"bonus", parameter.BonusFoodPoints},
}

// Points returns the score awarded when the snake eats this kind
func (k FoodKind) Points() int {
	if int(k) >= len(foodTable) {
		return 0
	}
	return foodTable[k].points
}

func (k FoodKind) String() string {
	if int(k) >= len(foodTable) {
		return fmt.Sprintf("FoodKind(%d)", k)
	}
	return foodTable[k].name
}

// MarshalText encodes the kind by name for JSON snapshots
func (k FoodKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name from JSON snapshots
func (k *FoodKind) UnmarshalText(text []byte) error {
	v, err := ParseFoodKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// ParseFoodKind resolves a case-insensitive kind name
func ParseFoodKind(name string) (FoodKind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, e := range foodTable {
		if e.name == n {
			return FoodKind(k), nil
		}
	}
	return FoodNormal, fmt.Errorf("unknown food kind %q", name)
}

// Food is the single edible item on the board
type Food struct {
	Cell   core.Cell `json:"cell"`
	Kind   FoodKind  `json:"kind"`
	Points int       `json:"points"`
}

// NewFood creates a food of kind k on cell c with the kind's point value
func NewFood(c core.Cell, k FoodKind) Food {
	return Food{Cell: c, Kind: k, Points: k.Points()}
}
