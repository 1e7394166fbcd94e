package component

import (
	"testing"

	"github.com/lixenwraith/vi-snake/core"
)

func TestFoodKinds(t *testing.T) {
	tests := []struct {
		kind   FoodKind
		name   string
		points int
	}{
		{FoodNormal, "normal", 10},
		{FoodBonus, "bonus", 50},
		{FoodKind(9), "FoodKind(9)", 0},
	}
	for _, tt := range tests {
		if tt.kind.String() != tt.name || tt.kind.Points() != tt.points {
			t.Errorf("%d: %s/%d, want %s/%d", tt.kind, tt.kind.String(), tt.kind.Points(), tt.name, tt.points)
		}
	}
	if f := NewFood(core.C(2, 3), FoodBonus); f.Points != 50 || f.Cell != core.C(2, 3) {
		t.Errorf("NewFood = %+v", f)
	}
}

func TestParseFoodKind(t *testing.T) {
	for _, k := range []FoodKind{FoodNormal, FoodBonus} {
		var got FoodKind
		if err := got.UnmarshalText([]byte(k.String())); err != nil || got != k {
			t.Errorf("UnmarshalText(%q) = %v, %v", k.String(), got, err)
		}
	}
	if got, err := ParseFoodKind("Bonus"); err != nil || got != FoodBonus {
		t.Errorf("ParseFoodKind(Bonus) = %v, %v", got, err)
	}
	if _, err := ParseFoodKind("golden"); err == nil {
		t.Error("ParseFoodKind(golden) = nil error")
	}
}
