package parameter

import "time"

// Tick Delays per speed preset
const (
	// SlowTickDelay is the interval between moves at the slow preset
	SlowTickDelay = 250 * time.Millisecond

	// NormalTickDelay is the default interval between moves
	NormalTickDelay = 150 * time.Millisecond

	// FastTickDelay is the interval between moves at the fast preset
	FastTickDelay = 80 * time.Millisecond
)

// Control Loop
const (
	// CommandQueueSize is the buffer of pending input commands before Submit blocks
	CommandQueueSize = 64
)
