// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-party-arcade/internal/app"
	"go-party-arcade/internal/audio"
	"go-party-arcade/internal/config"
	"go-party-arcade/internal/defs"
	"go-party-arcade/internal/event"
	"go-party-arcade/internal/input"
	"go-party-arcade/internal/logging"
	"go-party-arcade/internal/scene"
	"go-party-arcade/internal/session"
	"go-party-arcade/internal/state"
	"go-party-arcade/internal/ui"
	"go-party-arcade/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	levelsPath := flag.String("levels", "", "JSON file overriding the built-in level table")
	seed := flag.Int64("seed", 0, "seed for randomized waves, 0 picks one from the clock")
	sessionURL := flag.String("session", "", "session server to publish phase changes to, e.g. ws://localhost:3001/ws")
	sessionID := flag.String("session-id", "party", "session to join")
	encoding := flag.String("enc", "json", "session encoding: json or msgpack")
	verbose := flag.Bool("v", false, "log every gameplay event")
	mute := flag.Bool("mute", false, "disable sound")
	skipStory := flag.Bool("skip-story", false, "start straight at the shooting gallery")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	levels := defs.DefaultLevels
	if *levelsPath != "" {
		loaded, err := defs.LoadLevelDefinitions(*levelsPath)
		if err != nil {
			log.Fatal(err)
		}
		levels = loaded
	}

	dispatcher := event.NewDispatcher()
	if *verbose {
		logging.NewEventLogger(os.Stderr).Attach(dispatcher)
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

	if *sessionURL != "" {
		codec := session.CodecFor(*encoding)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		pub, err := session.Dial(ctx, *sessionURL, *sessionID, "gallery", codec)
		cancel()
		if err != nil {
			log.Printf("Not publishing to session: %v", err)
		} else {
			defer pub.Close()
			dispatcher.Subscribe(event.PhaseChanged, pub)
		}
	}

	fonts, err := ui.LoadFonts()
	if err != nil {
		log.Fatal(err)
	}
	hud := ui.NewHUD(fonts)
	hud.Popups.Attach(dispatcher)

	intents := input.NewAggregator(input.DefaultBindings())
	clock := app.NewPausableClock(app.SystemClock{})

	newGallery := func() scene.Minigame {
		return app.NewGame(intents, func() { log.Println("Mission complete") },
			app.WithDispatcher(dispatcher),
			app.WithClock(clock),
			app.WithSeed(*seed),
			app.WithLevels(levels),
		)
	}

	shell := &state.Shell{
		Fonts:       fonts,
		Clock:       clock,
		Keyboard:    state.NewKeyboardBridge(intents),
		Renderer:    render.NewFieldRenderer(render.DefaultFieldColors(), config.ScreenWidth, config.ScreenHeight),
		HUD:         hud,
		NewDirector: func() *scene.Director { return scene.NewDirector(scene.Script(newGallery)) },
	}
	if *skipStory {
		shell.StartAt = "gallery"
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, shell))
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth/2, config.ScreenHeight/2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Party Arcade")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
