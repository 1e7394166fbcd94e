package parameter

import "time"

// Spectator websocket tuning
const (
	// SpectateSendBuffer is the per-client backlog; messages beyond it are dropped
	SpectateSendBuffer = 32

	// SpectateWriteWait bounds a single websocket write
	SpectateWriteWait = 5 * time.Second

	// SpectatePongWait is how long a client may stay silent before it is dropped
	SpectatePongWait = 60 * time.Second

	// SpectatePingPeriod must be shorter than SpectatePongWait
	SpectatePingPeriod = 30 * time.Second

	// SpectateReadLimit caps inbound frames; spectators only send control frames
	SpectateReadLimit = 512

	// SpectateShutdownTimeout bounds graceful HTTP shutdown
	SpectateShutdownTimeout = 2 * time.Second
)
