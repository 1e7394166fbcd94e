package event

import (
	"testing"
)

type recorder struct {
	name  string
	types []EventType
	log   *[]string
}

func (r *recorder) HandleEvent(ev GameEvent) {
	*r.log = append(*r.log, r.name+":"+ev.Type.String())
}

func (r *recorder) EventTypes() []EventType { return r.types }

func TestRouterDispatchOrder(t *testing.T) {
	var log []string
	router := NewRouter()
	a := &recorder{name: "a", types: []EventType{EventGameUpdated, EventGameOver}, log: &log}
	b := &recorder{name: "b", types: []EventType{EventGameUpdated}, log: &log}
	c := &recorder{name: "c", types: []EventType{EventGameUpdated, EventScoreChanged}, log: &log}

	for _, h := range []Handler{a, b, c} {
		if !router.Register(h) {
			t.Fatalf("Register(%s) = false, want true", h.(*recorder).name)
		}
	}

	router.Emit(EventGameUpdated, &GameUpdatedPayload{}, 1)
	router.Emit(EventScoreChanged, &ScoreChangedPayload{Score: 10}, 1)
	router.Emit(EventGameOver, &GameOverPayload{FinalScore: 10}, 2)

	want := []string{
		"a:EventGameUpdated", "b:EventGameUpdated", "c:EventGameUpdated",
		"c:EventScoreChanged",
		"a:EventGameOver",
	}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}

func TestRouterRegisterDuplicate(t *testing.T) {
	var log []string
	router := NewRouter()
	a := &recorder{name: "a", types: []EventType{EventGameUpdated}, log: &log}

	if !router.Register(a) {
		t.Fatal("first Register = false, want true")
	}
	if router.Register(a) {
		t.Error("second Register = true, want false")
	}
	if got := router.HandlerCount(EventGameUpdated); got != 1 {
		t.Errorf("HandlerCount = %d, want 1", got)
	}

	router.Emit(EventGameUpdated, &GameUpdatedPayload{}, 0)
	if len(log) != 1 {
		t.Errorf("deliveries = %d, want 1", len(log))
	}
	if router.Register(nil) {
		t.Error("Register(nil) = true, want false")
	}
}

func TestRouterUnregister(t *testing.T) {
	var log []string
	router := NewRouter()
	a := &recorder{name: "a", types: []EventType{EventGameUpdated, EventGameOver}, log: &log}
	b := &recorder{name: "b", types: []EventType{EventGameUpdated}, log: &log}
	router.Register(a)
	router.Register(b)

	if !router.Unregister(a) {
		t.Fatal("Unregister(a) = false, want true")
	}
	if router.Unregister(a) {
		t.Error("second Unregister(a) = true, want false")
	}
	if router.HasHandlers(EventGameOver) {
		t.Error("HasHandlers(EventGameOver) = true after unregister")
	}
	if got := router.Len(); got != 1 {
		t.Errorf("Len = %d, want 1", got)
	}

	router.Emit(EventGameUpdated, &GameUpdatedPayload{}, 0)
	if len(log) != 1 || log[0] != "b:EventGameUpdated" {
		t.Errorf("log = %v, want [b:EventGameUpdated]", log)
	}

	// Re-registering moves the handler to the end of the order
	router.Register(a)
	log = log[:0]
	router.Emit(EventGameUpdated, &GameUpdatedPayload{}, 0)
	if len(log) != 2 || log[0] != "b:EventGameUpdated" || log[1] != "a:EventGameUpdated" {
		t.Errorf("log = %v, want [b a]", log)
	}
}

func TestRouterMutationDuringDispatch(t *testing.T) {
	router := NewRouter()
	var calls []string

	late := NewHandlerFunc(func(GameEvent) { calls = append(calls, "late") }, EventGameUpdated)
	var second *HandlerFunc
	first := NewHandlerFunc(func(GameEvent) {
		calls = append(calls, "first")
		router.Unregister(second)
		router.Register(late)
	}, EventGameUpdated)
	second = NewHandlerFunc(func(GameEvent) { calls = append(calls, "second") }, EventGameUpdated)

	router.Register(first)
	router.Register(second)

	router.Emit(EventGameUpdated, &GameUpdatedPayload{}, 0)
	want := []string{"first", "second"}
	if len(calls) != len(want) || calls[0] != want[0] || calls[1] != want[1] {
		t.Fatalf("in-flight calls = %v, want %v", calls, want)
	}

	calls = calls[:0]
	router.Emit(EventGameUpdated, &GameUpdatedPayload{}, 0)
	want = []string{"first", "late"}
	if len(calls) != len(want) || calls[0] != want[0] || calls[1] != want[1] {
		t.Errorf("next pass calls = %v, want %v", calls, want)
	}
}

func TestHandlerFuncIdentity(t *testing.T) {
	router := NewRouter()
	fn := func(GameEvent) {}
	h1 := NewHandlerFunc(fn, EventGameOver)
	h2 := NewHandlerFunc(fn, EventGameOver)

	if !router.Register(h1) || !router.Register(h2) {
		t.Fatal("distinct adapters should both register")
	}
	if got := router.HandlerCount(EventGameOver); got != 2 {
		t.Errorf("HandlerCount = %d, want 2", got)
	}
}

func TestRouterRejectsMismatchedPayload(t *testing.T) {
	var log []string
	router := NewRouter()
	router.Register(&recorder{name: "a", types: []EventType{EventGameOver, EventScoreChanged}, log: &log})

	tests := []struct {
		name    string
		et      EventType
		payload any
		want    bool
	}{
		{"matching", EventGameOver, &GameOverPayload{FinalScore: 30}, true},
		{"wrong type", EventGameOver, &ScoreChangedPayload{Score: 30}, false},
		{"nil", EventScoreChanged, nil, false},
	}
	for _, tt := range tests {
		log = log[:0]
		if got := router.Emit(tt.et, tt.payload, 1); got != tt.want {
			t.Errorf("%s: Emit = %v, want %v", tt.name, got, tt.want)
		}
		if delivered := len(log) == 1; delivered != tt.want {
			t.Errorf("%s: delivered = %v, want %v", tt.name, delivered, tt.want)
		}
	}
}
