package event

import (
	"log"
	"slices"
	"sync"
)

// Handler processes specific event types
// Listeners implement this interface to receive routed events
// Implementations must be comparable, typically pointer types
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously on the emitting goroutine
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	// The router uses this for registration
	EventTypes() []EventType
}

// HandlerFunc adapts a function to Handler for a fixed set of event types
type HandlerFunc struct {
	fn    func(GameEvent)
	types []EventType
}

// NewHandlerFunc returns a pointer so that each adapter has its own identity
func NewHandlerFunc(fn func(GameEvent), types ...EventType) *HandlerFunc {
	return &HandlerFunc{fn: fn, types: types}
}

func (h *HandlerFunc) HandleEvent(ev GameEvent) { h.fn(ev) }

func (h *HandlerFunc) EventTypes() []EventType { return h.types }

// Router dispatches events to registered handlers
//
// Architecture:
//   - Synchronous dispatch on the emitting goroutine, no queueing
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - A handler is registered at most once
//   - Payloads are checked against the registry before delivery
//   - Each dispatch iterates a snapshot, so handlers may register or
//     unregister during delivery without affecting the in-flight pass
type Router struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
	order    []Handler
}

// NewRouter creates an empty router
func NewRouter() *Router {
	InitRegistry()
	return &Router{
		handlers: make(map[EventType][]Handler),
	}
}

// Register adds a handler for its declared event types
// Returns false if the handler is nil or already registered
func (r *Router) Register(handler Handler) bool {
	if handler == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.Contains(r.order, handler) {
		return false
	}
	r.order = append(r.order, handler)
	for _, t := range handler.EventTypes() {
		// Copy on write keeps snapshots taken by Dispatch stable
		hs := r.handlers[t]
		if slices.Contains(hs, handler) {
			continue
		}
		next := make([]Handler, len(hs), len(hs)+1)
		copy(next, hs)
		r.handlers[t] = append(next, handler)
	}
	return true
}

// Unregister removes a handler from every event type
// Returns false if the handler was not registered
func (r *Router) Unregister(handler Handler) bool {
	if handler == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.Index(r.order, handler)
	if idx < 0 {
		return false
	}
	r.order = slices.Delete(slices.Clone(r.order), idx, idx+1)
	for t, hs := range r.handlers {
		i := slices.Index(hs, handler)
		if i < 0 {
			continue
		}
		next := slices.Delete(slices.Clone(hs), i, i+1)
		if len(next) == 0 {
			delete(r.handlers, t)
			continue
		}
		r.handlers[t] = next
	}
	return true
}

// Emit builds an event and dispatches it, false if the payload was rejected
func (r *Router) Emit(t EventType, payload any, tick uint64) bool {
	return r.Dispatch(GameEvent{Type: t, Payload: payload, Tick: tick})
}

// Dispatch delivers ev to every handler registered for its type
// Events whose payload does not match the registered payload type are dropped
func (r *Router) Dispatch(ev GameEvent) bool {
	if !PayloadMatches(ev.Type, ev.Payload) {
		log.Printf("event: dropped %v with payload %T", ev.Type, ev.Payload)
		return false
	}

	r.mu.RLock()
	handlers := r.handlers[ev.Type]
	r.mu.RUnlock()

	for _, h := range handlers {
		h.HandleEvent(ev)
	}
	return true
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *Router) HasHandlers(t EventType) bool {
	return r.HandlerCount(t) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers[t])
}

// Len returns the number of registered handlers
func (r *Router) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
