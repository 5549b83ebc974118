package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-party-arcade/internal/app"
	"go-party-arcade/internal/audio"
	"go-party-arcade/internal/component"
	"go-party-arcade/internal/defs"
	"go-party-arcade/internal/event"
	"go-party-arcade/internal/input"
	"go-party-arcade/internal/logging"
)

const frameInterval = 16 * time.Millisecond

func main() {
	levelsPath := flag.String("levels", "", "JSON file overriding the built-in level table")
	seed := flag.Int64("seed", 0, "seed for randomized waves, 0 picks one from the clock")
	hold := flag.Duration("hold", 500*time.Millisecond, "release a key when the terminal stops repeating it for this long")
	logPath := flag.String("log", "", "write logs, and every gameplay event, to this file")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	dispatcher := event.NewDispatcher()
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
		logging.NewEventLogger(f).Attach(dispatcher)
	} else {
		log.SetOutput(io.Discard)
	}

	levels := defs.DefaultLevels
	if *levelsPath != "" {
		loaded, err := defs.LoadLevelDefinitions(*levelsPath)
		if err != nil {
			log.Fatal(err)
		}
		levels = loaded
	}

	player := audio.NewPlayer()
	player.SetMuted(*mute)
	if !*mute {
		if err := player.Init(); err != nil {
			log.Printf("Sound disabled: %v", err)
		}
	}
	defer player.Close()
	dispatcher.SubscribeAll(player)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.EnableFocus()
	screen.HideCursor()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	intents := input.NewAggregator(input.DefaultBindings())
	g := app.NewGame(intents, func() { log.Println("Mission complete") },
		app.WithDispatcher(dispatcher),
		app.WithSeed(*seed),
		app.WithLevels(levels),
	)

	go pollEvents(screen, intents, g, cancel)

	err = app.Loop(ctx, g, frameInterval, func(st app.State) {
		intents.ReleaseStale(time.Now(), *hold)
		draw(screen, st)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Println(err)
	}
}

// pollEvents feeds terminal events into the aggregator and the game controls
// until the screen is finalized or the player quits.
func pollEvents(screen tcell.Screen, intents *input.Aggregator, g *app.Game, quit func()) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventFocus:
			if !ev.Focused {
				intents.FocusLost()
			}
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch actionFor(ev.Key(), ev.Rune()) {
			case actionQuit:
				quit()
				return
			case actionConfirm:
				if g.Phase() == component.PhaseVictory {
					quit()
					return
				}
				g.Apply(app.ControlFor(g.Phase(), true, false))
			case actionRetry:
				g.Apply(app.ControlFor(g.Phase(), false, true))
			default:
				if k := keyFor(ev.Key(), ev.Rune()); k != "" {
					intents.Press(k, ev.When())
				}
			}
		}
	}
}
