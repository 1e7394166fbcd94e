package engine

import (
	"sync"
	"time"
)

// TickSource delivers game ticks to the scheduler loop
// Start and Stop are only called from the goroutine that owns the source
type TickSource interface {
	// Start begins delivering ticks every d, replacing any previous interval
	Start(d time.Duration)
	// Stop halts delivery; no tick is observed after Stop returns
	Stop()
	// C returns the current tick channel, nil while stopped
	C() <-chan time.Time
}

// TickerSource drives ticks from a time.Ticker
type TickerSource struct {
	ticker *time.Ticker
}

// NewTickerSource creates a stopped wall-clock tick source
func NewTickerSource() *TickerSource {
	return &TickerSource{}
}

func (s *TickerSource) Start(d time.Duration) {
	s.Stop()
	s.ticker = time.NewTicker(d)
}

func (s *TickerSource) Stop() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	// Drain a tick buffered before Stop
	select {
	case <-s.ticker.C:
	default:
	}
	s.ticker = nil
}

func (s *TickerSource) C() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C
}

// ManualTickSource delivers a tick only when Fire is called
// Used by tests to step the scheduler deterministically
type ManualTickSource struct {
	mu     sync.Mutex
	ch     chan time.Time
	active bool
	delay  time.Duration
	starts int
}

// NewManualTickSource creates a stopped manual source
func NewManualTickSource() *ManualTickSource {
	return &ManualTickSource{ch: make(chan time.Time)}
}

func (s *ManualTickSource) Start(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = true
	s.delay = d
	s.starts++
}

func (s *ManualTickSource) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
}

func (s *ManualTickSource) C() <-chan time.Time {
	return s.ch
}

// Fire hands one tick to the receiving loop
// Returns false if the source is stopped or nothing received within timeout
func (s *ManualTickSource) Fire(timeout time.Duration) bool {
	s.mu.Lock()
	active := s.active
	s.mu.Unlock()
	if !active {
		return false
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case s.ch <- time.Now():
		return true
	case <-timer.C:
		return false
	}
}

// Delay returns the interval passed to the last Start
func (s *ManualTickSource) Delay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delay
}

// Starts returns how many times Start was called
func (s *ManualTickSource) Starts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.starts
}

// Active reports whether the source is started
func (s *ManualTickSource) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}
