package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/spectate"
	"github.com/lixenwraith/vi-snake/status"
	"golang.org/x/term"
)

func main() {
	// Panics on the main goroutine also restore the terminal
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	logFile, err := setupLogging(opts.logPath)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if err := opts.apply(&cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	keys, err := input.LoadKeyConfig(cfg.Keys)
	if err != nil {
		return fmt.Errorf("keymap: %w", err)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	statusReg := status.NewRegistry()
	router := event.NewRouter()

	game, err := engine.NewGame(cfg, router, statusReg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashTerminal(screen)
	defer core.SetCrashTerminal(nil)
	screen.HideCursor()

	renderer := render.NewTerminalRenderer(screen, statusReg)
	router.Register(renderer)

	if cfg.SpectateAddr != "" {
		hub := spectate.NewHub(statusReg)
		router.Register(hub)
		srv := spectate.NewServer(hub, statusReg, log.Writer())
		if _, err := srv.Start(cfg.SpectateAddr); err != nil {
			return fmt.Errorf("spectate: %w", err)
		}
		defer shutdownSpectate(srv)
	}

	router.Register(event.NewHandlerFunc(func(ev event.GameEvent) {
		if p, ok := ev.Payload.(*event.GameOverPayload); ok {
			log.Printf("game over: score %d, length %d, cleared %v", p.FinalScore, len(p.Snapshot.Snake), p.Cleared)
		}
	}, event.EventGameOver))

	game.Initialize()
	log.Printf("game %s started: %dx%d, speed %s", game.Session(), cfg.Width, cfg.Height, game.Speed())

	scheduler := engine.NewClockScheduler(game, engine.NewTickerSource(), statusReg)
	scheduler.Start()
	defer scheduler.Stop()

	return pollInput(screen, scheduler, renderer, input.NewMachine(keys))
}

// pollInput forwards terminal events to the scheduler until a quit intent
func pollInput(screen tcell.Screen, scheduler *engine.ClockScheduler, renderer *render.TerminalRenderer, machine *input.Machine) error {
	eventChan := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	})

	for ev := range eventChan {
		intent := machine.Process(ev)
		if intent == nil {
			continue
		}

		switch intent.Type {
		case input.IntentQuit:
			return nil
		case input.IntentResize:
			scheduler.Do(func(*engine.Game) { renderer.Redraw() })
		default:
			if cmd, ok := intent.Command(); ok && !scheduler.Submit(cmd) {
				log.Printf("input: dropped %v", cmd)
			}
		}
	}
	return nil
}

// shutdownSpectate stops the spectator server, logging any failure
func shutdownSpectate(srv interface{ Shutdown(context.Context) error }) {
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("spectate: shutdown: %v", err)
	}
}

// setupLogging routes the standard logger to path, or discards when empty
// The terminal belongs to tcell, so logs never go to stderr while running
func setupLogging(path string) (*os.File, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}
