package engine

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/status"
)

// ClockScheduler owns a Game on a single goroutine
// Ticks, player commands and queries are serialized by one select loop,
// so event handlers run on that goroutine and the game needs no locks
type ClockScheduler struct {
	game   *Game
	source TickSource

	commands chan Command
	calls    chan func(*Game)

	// Tick counter for metrics and tests
	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Cached metric pointers
	statCommands *atomic.Int64
}

// NewClockScheduler binds game to source; the game should be initialized before Start
func NewClockScheduler(game *Game, source TickSource, statusReg *status.Registry) *ClockScheduler {
	if statusReg == nil {
		statusReg = status.NewRegistry()
	}
	return &ClockScheduler{
		game:         game,
		source:       source,
		commands:     make(chan Command, parameter.CommandQueueSize),
		calls:        make(chan func(*Game)),
		stopChan:     make(chan struct{}),
		statCommands: statusReg.Ints.Get(status.KeyCommands),
	}
}

// Start begins the scheduler loop at the game's current speed
func (cs *ClockScheduler) Start() {
	select {
	case <-cs.stopChan:
		return
	default:
	}
	if cs.running.CompareAndSwap(false, true) {
		cs.source.Start(cs.game.Speed().Delay())
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the loop and the tick source; safe to call more than once
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		if cs.running.CompareAndSwap(true, false) {
			cs.wg.Wait()
			cs.source.Stop()
		}
	})
}

// Submit queues a command without blocking
// Returns false if the scheduler is stopped or the queue is full
func (cs *ClockScheduler) Submit(cmd Command) bool {
	select {
	case <-cs.stopChan:
		return false
	default:
	}
	select {
	case cs.commands <- cmd:
		return true
	default:
		return false
	}
}

// Do runs fn on the loop goroutine and waits for it to return
// Commands submitted earlier are applied first
// Returns false if the scheduler is not running
func (cs *ClockScheduler) Do(fn func(*Game)) bool {
	if !cs.running.Load() {
		return false
	}
	done := make(chan struct{})
	call := func(g *Game) {
		defer close(done)
		fn(g)
	}
	select {
	case cs.calls <- call:
	case <-cs.stopChan:
		return false
	}
	select {
	case <-done:
		return true
	case <-cs.stopChan:
		return false
	}
}

// TickCount returns the number of ticks delivered to the game
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// IsRunning reports whether the loop is active
func (cs *ClockScheduler) IsRunning() bool {
	return cs.running.Load()
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	for {
		select {
		case <-cs.stopChan:
			return

		case <-cs.source.C():
			cs.tickCount.Add(1)
			cs.game.Tick()

		case cmd := <-cs.commands:
			cs.apply(cmd)

		case fn := <-cs.calls:
			cs.drainCommands()
			fn(cs.game)
		}
	}
}

// drainCommands applies queued commands so Do observes their effect
func (cs *ClockScheduler) drainCommands() {
	for {
		select {
		case cmd := <-cs.commands:
			cs.apply(cmd)
		default:
			return
		}
	}
}

func (cs *ClockScheduler) apply(cmd Command) {
	cs.statCommands.Add(1)
	switch cmd.Kind {
	case CmdDirection:
		cs.game.SetDirection(cmd.Direction)
	case CmdTogglePause:
		cs.game.TogglePause()
	case CmdRestart:
		if cs.game.Restart() {
			cs.restartTicks()
		}
	case CmdSpeed:
		if cs.game.SetSpeed(cmd.Speed) {
			cs.restartTicks()
		}
	}
}

// restartTicks stops the previous interval before starting the current one
func (cs *ClockScheduler) restartTicks() {
	cs.source.Stop()
	cs.source.Start(cs.game.Speed().Delay())
}
