// Package spectate serves read-only game state over HTTP and websocket
package spectate

import (
	"encoding/json"
	"log"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/status"
)

// MessageHello is sent once to each client on connect, carrying the latest snapshot
const MessageHello = "Hello"

// Message is the websocket frame layout
type Message struct {
	Type    string `json:"type"`
	Tick    uint64 `json:"tick"`
	Payload any    `json:"payload,omitempty"`
}

// Hub fans game events out to spectator clients
// HandleEvent runs on the scheduler goroutine and never blocks on a client
type Hub struct {
	mu      sync.RWMutex
	latest  event.Snapshot
	hasSnap bool
	clients map[*client]struct{}
	closed  bool

	// Cached metric pointers
	statClients *atomic.Int64
	statDropped *atomic.Int64
	statFrames  *atomic.Int64
}

// NewHub creates an empty hub
func NewHub(statusReg *status.Registry) *Hub {
	if statusReg == nil {
		statusReg = status.NewRegistry()
	}
	return &Hub{
		clients:     make(map[*client]struct{}),
		statClients: statusReg.Ints.Get(status.KeySpectators),
		statDropped: statusReg.Ints.Get(status.KeySpectateDropped),
		statFrames:  statusReg.Ints.Get(status.KeySpectateFrames),
	}
}

// EventTypes implements event.Handler
func (h *Hub) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameUpdated,
		event.EventGameOver,
		event.EventScoreChanged,
	}
}

// HandleEvent implements event.Handler
func (h *Hub) HandleEvent(ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.GameUpdatedPayload:
		h.setLatest(p.Snapshot)
	case *event.GameOverPayload:
		h.setLatest(p.Snapshot)
	}

	// Nobody watching, skip encoding on the tick goroutine
	if h.ClientCount() == 0 {
		return
	}

	data, err := json.Marshal(Message{
		Type:    event.GetEventName(ev.Type),
		Tick:    ev.Tick,
		Payload: ev.Payload,
	})
	if err != nil {
		log.Printf("spectate: encode %v: %v", ev.Type, err)
		return
	}
	h.statFrames.Add(1)
	h.broadcast(data)
}

// Latest returns the most recent snapshot, false before the first update
func (h *Hub) Latest() (event.Snapshot, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest, h.hasSnap
}

// ClientCount returns the number of connected spectators
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client and rejects new ones
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
	h.statClients.Store(0)
}

func (h *Hub) setLatest(snap event.Snapshot) {
	h.mu.Lock()
	h.latest = snap
	h.hasSnap = true
	h.mu.Unlock()
}

// broadcast queues data on every client; full queues drop the frame
func (h *Hub) broadcast(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.statDropped.Add(1)
		}
	}
}

// register adds c and queues the hello frame; false once the hub is closed
func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}

	hello := Message{Type: MessageHello}
	if h.hasSnap {
		hello.Tick = h.latest.Tick
		hello.Payload = &event.GameUpdatedPayload{Snapshot: h.latest}
	}
	if data, err := json.Marshal(hello); err == nil {
		c.send <- data
	}

	h.clients[c] = struct{}{}
	h.statClients.Store(int64(len(h.clients)))
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	h.statClients.Store(int64(len(h.clients)))
}

func newClientQueue() chan []byte {
	return make(chan []byte, parameter.SpectateSendBuffer)
}
