package event

import "testing"

func TestRegistryNames(t *testing.T) {
	tests := []struct {
		et   EventType
		name string
	}{
		{EventGameUpdated, "EventGameUpdated"},
		{EventGameOver, "EventGameOver"},
		{EventScoreChanged, "EventScoreChanged"},
	}
	for _, tt := range tests {
		if got := GetEventName(tt.et); got != tt.name {
			t.Errorf("GetEventName(%d) = %q, want %q", tt.et, got, tt.name)
		}
	}
	if got := EventType(99).String(); got != "EventUnknown" {
		t.Errorf("String() = %q, want EventUnknown", got)
	}
}

func TestPayloadMatches(t *testing.T) {
	tests := []struct {
		name    string
		et      EventType
		payload any
		want    bool
	}{
		{"updated pointer", EventGameUpdated, &GameUpdatedPayload{}, true},
		{"over value", EventGameOver, GameOverPayload{}, true},
		{"wrong payload", EventScoreChanged, &GameOverPayload{}, false},
		{"nil for typed event", EventGameOver, nil, false},
		{"unknown event nil", EventType(99), nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PayloadMatches(tt.et, tt.payload); got != tt.want {
				t.Errorf("PayloadMatches = %v, want %v", got, tt.want)
			}
		})
	}
}
