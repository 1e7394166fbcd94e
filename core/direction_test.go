package core

import "testing"

func TestDirectionOpposites(t *testing.T) {
	pairs := []struct {
		a, b Direction
	}{
		{DirUp, DirDown},
		{DirLeft, DirRight},
	}
	for _, p := range pairs {
		if !p.a.IsOpposite(p.b) || !p.b.IsOpposite(p.a) {
			t.Errorf("%v and %v should be opposite", p.a, p.b)
		}
		if p.a.Opposite() != p.b || p.b.Opposite() != p.a {
			t.Errorf("Opposite(%v) = %v, want %v", p.a, p.a.Opposite(), p.b)
		}
	}

	for _, d := range Directions {
		if d.IsOpposite(d) {
			t.Errorf("%v.IsOpposite(itself) = true", d)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("double Opposite(%v) = %v", d, d.Opposite().Opposite())
		}
		for _, o := range Directions {
			perpendicular := o != d && o != d.Opposite()
			if perpendicular && d.IsOpposite(o) {
				t.Errorf("%v.IsOpposite(%v) = true for perpendicular directions", d, o)
			}
		}
	}

	if Direction(9).IsOpposite(DirUp) {
		t.Error("invalid direction reported opposite")
	}
}

func TestCellStep(t *testing.T) {
	tests := []struct {
		d    Direction
		want Cell
	}{
		{DirUp, C(5, 4)},
		{DirDown, C(5, 6)},
		{DirLeft, C(4, 5)},
		{DirRight, C(6, 5)},
	}
	for _, tt := range tests {
		if got := C(5, 5).Step(tt.d); got != tt.want {
			t.Errorf("Step(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestCellIn(t *testing.T) {
	tests := []struct {
		c    Cell
		want bool
	}{
		{C(0, 0), true},
		{C(19, 19), true},
		{C(20, 5), false},
		{C(-1, 5), false},
		{C(5, 20), false},
	}
	for _, tt := range tests {
		if got := tt.c.In(20, 20); got != tt.want {
			t.Errorf("%v.In(20,20) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, err)
		}
	}
	if _, err := ParseDirection("north"); err == nil {
		t.Error("ParseDirection(north) = nil error")
	}
}

func TestDirectionUnmarshalText(t *testing.T) {
	var d Direction
	if err := d.UnmarshalText([]byte("Left")); err != nil || d != DirLeft {
		t.Errorf("UnmarshalText(Left) = %v, %v", d, err)
	}
	if err := d.UnmarshalText([]byte("north")); err == nil {
		t.Error("UnmarshalText(north) = nil error")
	}
	if d != DirLeft {
		t.Errorf("failed UnmarshalText changed value to %v", d)
	}
}
