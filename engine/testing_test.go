package engine

import (
	"testing"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/status"
)

// eventLog records every game event in delivery order
type eventLog struct {
	events []event.GameEvent
}

func (l *eventLog) HandleEvent(ev event.GameEvent) {
	l.events = append(l.events, ev)
}

func (l *eventLog) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameUpdated, event.EventGameOver, event.EventScoreChanged}
}

func (l *eventLog) reset() { l.events = nil }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, ev := range l.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func (l *eventLog) types() []event.EventType {
	out := make([]event.EventType, len(l.events))
	for i, ev := range l.events {
		out[i] = ev.Type
	}
	return out
}

// newTestGame builds an initialized 20x20 game that never spawns bonus food
func newTestGame(t *testing.T, mutate func(*config.Config)) (*Game, *eventLog, *status.Registry) {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 1
	cfg.BonusChance = 0
	if mutate != nil {
		mutate(&cfg)
	}
	router := event.NewRouter()
	log := &eventLog{}
	router.Register(log)
	reg := status.NewRegistry()

	g, err := NewGame(cfg, router, reg)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	g.Initialize()
	log.reset()
	return g, log, reg
}

// place overrides the snake layout and both directions
func place(g *Game, dir core.Direction, cells ...core.Cell) {
	g.snake = component.NewSnakeBodyFrom(cells...)
	g.direction = dir
	g.pending = dir
}

// putFood overrides the food on the board
func putFood(g *Game, c core.Cell, kind component.FoodKind) {
	g.food = component.NewFood(c, kind)
	g.hasFood = true
}

func sameCells(a, b []core.Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
