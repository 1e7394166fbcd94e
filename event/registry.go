package event

import (
	"reflect"
	"sync"
)

var (
	typeToName    = make(map[EventType]string)
	typeToPayload = make(map[EventType]reflect.Type)
	registryOnce  sync.Once
)

// registerType maps an EventType to its name and payload struct type
// payloadInstance should be a pointer to the payload struct, nil if the event has no payload
func registerType(name string, et EventType, payloadInstance any) {
	typeToName[et] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[et] = t
	}
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	InitRegistry()
	return typeToName[et]
}

// PayloadMatches reports whether payload has the registered payload type for et
// Events without a registered payload accept only nil
func PayloadMatches(et EventType, payload any) bool {
	InitRegistry()
	want, ok := typeToPayload[et]
	if !ok {
		return payload == nil
	}
	if payload == nil {
		return false
	}
	t := reflect.TypeOf(payload)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t == want
}

// InitRegistry populates the registry with all game events
// Safe to call repeatedly
func InitRegistry() {
	registryOnce.Do(func() {
		registerType("EventGameUpdated", EventGameUpdated, &GameUpdatedPayload{})
		registerType("EventGameOver", EventGameOver, &GameOverPayload{})
		registerType("EventScoreChanged", EventScoreChanged, &ScoreChangedPayload{})
	})
}
