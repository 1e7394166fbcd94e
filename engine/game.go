package engine

import (
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/status"
	"github.com/lixenwraith/vi-snake/system"
)

// Game is the authoritative snake state machine
// Not safe for concurrent use; ClockScheduler serializes all access on one goroutine
type Game struct {
	cfg     config.Config
	router  *event.Router
	spawner *system.FoodSpawner

	snake   *component.SnakeBody
	food    component.Food
	hasFood bool

	direction core.Direction // Committed at the start of each tick
	pending   core.Direction // Latest accepted input

	state   core.GameState
	speed   core.Speed
	score   int
	ticks   uint64
	cleared bool
	session string

	// Cached metric pointers
	statusReg   *status.Registry
	statTicks   *atomic.Int64
	statScore   *atomic.Int64
	statLength  *atomic.Int64
	statFood    *atomic.Int64
	statBonus   *atomic.Int64
	statGames   *atomic.Int64
	statHigh    *atomic.Int64
	statState   *status.AtomicString
	statSpeed   *status.AtomicString
	statSession *status.AtomicString
}

// NewGame validates cfg and builds a game in the GameOver state
// Call Initialize (or Restart) to begin play; nil router or registry get private instances
func NewGame(cfg config.Config, router *event.Router, statusReg *status.Registry) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if router == nil {
		router = event.NewRouter()
	}
	if statusReg == nil {
		statusReg = status.NewRegistry()
	}

	g := &Game{
		cfg:         cfg,
		router:      router,
		spawner:     system.NewFoodSpawner(cfg.Seed),
		direction:   core.DirRight,
		pending:     core.DirRight,
		state:       core.StateGameOver,
		speed:       cfg.Speed,
		statusReg:   statusReg,
		statTicks:   statusReg.Ints.Get(status.KeyTicks),
		statScore:   statusReg.Ints.Get(status.KeyScore),
		statLength:  statusReg.Ints.Get(status.KeyLength),
		statFood:    statusReg.Ints.Get(status.KeyFoodEaten),
		statBonus:   statusReg.Ints.Get(status.KeyBonusEaten),
		statGames:   statusReg.Ints.Get(status.KeyGames),
		statHigh:    statusReg.Ints.Get(status.KeyHighScore),
		statState:   statusReg.Strings.Get(status.KeyState),
		statSpeed:   statusReg.Strings.Get(status.KeySpeed),
		statSession: statusReg.Strings.Get(status.KeySession),
	}
	g.publish()
	return g, nil
}

// Initialize starts a fresh game: centered snake facing right, zero score, one food
func (g *Game) Initialize() {
	g.snake = component.NewSnakeBody(g.cfg.Center(), core.DirRight, g.cfg.InitialLength)
	g.direction = core.DirRight
	g.pending = core.DirRight
	g.score = 0
	g.ticks = 0
	g.cleared = false
	g.session = uuid.NewString()
	g.hasFood = false
	g.spawnFood()
	g.state = core.StateRunning

	g.statGames.Add(1)
	g.publish()
	g.emitUpdated()
}

// Tick advances the game one step; no-op unless running
func (g *Game) Tick() {
	if g.state != core.StateRunning {
		return
	}
	g.ticks++
	g.statTicks.Add(1)

	g.direction = g.pending
	g.snake.Move(g.direction)

	head := g.snake.Head()
	if !head.In(g.cfg.Width, g.cfg.Height) || g.snake.HasSelfCollision() {
		g.endGame(false)
		return
	}

	if g.hasFood && head == g.food.Cell {
		if !g.eat() {
			return
		}
	}

	g.publish()
	g.emitUpdated()
}

// eat consumes the food under the head; returns false when the board is full
func (g *Game) eat() bool {
	eaten := g.food
	g.score += eaten.Points
	g.snake.Grow()
	g.statFood.Add(1)
	if eaten.Kind == component.FoodBonus {
		g.statBonus.Add(1)
	}

	g.hasFood = false
	spawned := g.spawnFood()

	g.publish()
	g.emit(event.EventScoreChanged, &event.ScoreChangedPayload{
		Score:  g.score,
		Points: eaten.Points,
		Kind:   eaten.Kind,
	})

	if !spawned {
		g.endGame(true)
		return false
	}
	return true
}

func (g *Game) spawnFood() bool {
	food, ok := g.spawner.Spawn(g.cfg.Width, g.cfg.Height, g.snake.Occupies, g.cfg.BonusChance)
	if !ok {
		return false
	}
	g.food = food
	g.hasFood = true
	return true
}

func (g *Game) endGame(cleared bool) {
	g.state = core.StateGameOver
	g.cleared = cleared
	if int64(g.score) > g.statHigh.Load() {
		g.statHigh.Store(int64(g.score))
	}
	g.publish()
	g.emit(event.EventGameOver, &event.GameOverPayload{
		FinalScore: g.score,
		Cleared:    cleared,
		Snapshot:   g.Snapshot(),
	})
}

// SetDirection queues d for the next tick
// Rejected while not running, or when d reverses the committed direction
func (g *Game) SetDirection(d core.Direction) bool {
	if g.state != core.StateRunning || !d.Valid() || d.IsOpposite(g.direction) {
		return false
	}
	g.pending = d
	return true
}

// TogglePause flips between running and paused; no-op after game over
func (g *Game) TogglePause() bool {
	switch g.state {
	case core.StateRunning:
		g.state = core.StatePaused
	case core.StatePaused:
		g.state = core.StateRunning
	default:
		return false
	}
	g.publish()
	g.emitUpdated()
	return true
}

// Restart re-initializes from game over or pause; ignored while running
func (g *Game) Restart() bool {
	if g.state == core.StateRunning {
		return false
	}
	g.Initialize()
	return true
}

// SetSpeed swaps the tick interval preset, leaving snake, food and score untouched
func (g *Game) SetSpeed(s core.Speed) bool {
	if !s.Valid() || s == g.speed {
		return false
	}
	g.speed = s
	g.publish()
	g.emitUpdated()
	return true
}

func (g *Game) State() core.GameState { return g.state }
func (g *Game) Score() int { return g.score }
func (g *Game) Direction() core.Direction { return g.direction }
func (g *Game) PendingDirection() core.Direction { return g.pending }
func (g *Game) Speed() core.Speed { return g.speed }
func (g *Game) Session() string { return g.session }
func (g *Game) Ticks() uint64 { return g.ticks }
func (g *Game) Cleared() bool { return g.cleared }

// Food returns the current food and whether one is on the board
func (g *Game) Food() (component.Food, bool) {
	return g.food, g.hasFood
}

// Snake returns a copy of the snake cells, head first
func (g *Game) Snake() []core.Cell {
	if g.snake == nil {
		return nil
	}
	return g.snake.Cells()
}

// Snapshot copies the observable state
func (g *Game) Snapshot() event.Snapshot {
	return event.Snapshot{
		Session:   g.session,
		Tick:      g.ticks,
		State:     g.state,
		Score:     g.score,
		Speed:     g.speed,
		Direction: g.direction,
		Width:     g.cfg.Width,
		Height:    g.cfg.Height,
		Snake:     g.Snake(),
		Food:      g.food,
		HasFood:   g.hasFood,
		Cleared:   g.cleared,
	}
}

func (g *Game) emit(t event.EventType, payload any) {
	g.router.Emit(t, payload, g.ticks)
}

func (g *Game) emitUpdated() {
	g.emit(event.EventGameUpdated, &event.GameUpdatedPayload{Snapshot: g.Snapshot()})
}

// publish mirrors game state into the status registry
func (g *Game) publish() {
	g.statScore.Store(int64(g.score))
	length := 0
	if g.snake != nil {
		length = g.snake.Len()
	}
	g.statLength.Store(int64(length))
	g.statState.Store(g.state.String())
	g.statSpeed.Store(g.speed.String())
	g.statSession.Store(g.session)
}
