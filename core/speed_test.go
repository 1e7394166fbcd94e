package core

import "testing"

func TestSpeed(t *testing.T) {
	tests := []struct {
		name  string
		speed Speed
		ms    int64
	}{
		{"slow", SpeedSlow, 250},
		{"normal", SpeedNormal, 150},
		{"fast", SpeedFast, 80},
	}
	for _, tt := range tests {
		if got := tt.speed.Delay().Milliseconds(); got != tt.ms {
			t.Errorf("%s Delay = %dms, want %dms", tt.name, got, tt.ms)
		}
		parsed, err := ParseSpeed(" " + tt.name + " ")
		if err != nil || parsed != tt.speed {
			t.Errorf("ParseSpeed(%q) = %v, %v", tt.name, parsed, err)
		}
	}
	if Speed(5).Delay() != SpeedNormal.Delay() {
		t.Error("invalid speed should fall back to normal delay")
	}
	var s Speed
	if err := s.UnmarshalText([]byte("FAST")); err != nil || s != SpeedFast {
		t.Errorf("UnmarshalText(FAST) = %v, %v", s, err)
	}
	if err := s.UnmarshalText([]byte("warp")); err == nil {
		t.Error("UnmarshalText(warp) = nil error")
	}
}
