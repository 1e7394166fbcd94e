package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// Metric keys written by the engine and read by the status bar and spectate endpoint
const (
	KeyTicks      = "engine.ticks"
	KeyCommands   = "engine.commands"
	KeyScore      = "game.score"
	KeyLength     = "game.length"
	KeyFoodEaten  = "game.food_eaten"
	KeyBonusEaten = "game.bonus_eaten"
	KeyGames      = "game.games"
	KeyHighScore  = "game.high_score"
	KeyState      = "game.state"
	KeySpeed      = "game.speed"
	KeySession    = "game.session"
	KeySpectators = "spectate.clients"

	KeySpectateDropped = "spectate.dropped"
	KeySpectateFrames  = "spectate.frames"
)

// Registry is the central metrics facade
// Writers cache pointers once; the hot path touches only atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Strings.Count()
}

// Snapshot copies every metric into a flat map keyed by metric name
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out[key] = v.Load()
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		out[key] = v.Load()
	})
	return out
}

// MaxStringLen caps string metrics in bytes; a session UUID fits
const MaxStringLen = 64

// AtomicString is a string metric; the zero value holds ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, cut at a rune boundary to at most MaxStringLen bytes
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
