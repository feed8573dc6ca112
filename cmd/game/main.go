// cmd/game/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
	"go-path-defense/internal/logging"
	"go-path-defense/internal/observability"
	"go-path-defense/internal/settings"
	"go-path-defense/internal/state"
	"go-path-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/image/font/basicfont"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	env            *state.Env
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if a.env.Quitting {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
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
	// --- Флаги командной строки ---
	seed := flag.Int64("seed", 0, "Roster shuffle seed (0 = time based)")
	levelPath := flag.String("level", "", "Level JSON file (default: built-in level 1)")
	metricsAddr := flag.String("metrics", "", "Serve Prometheus metrics on this address, e.g. :9090")
	settingsPath := flag.String("settings", "settings.json", "Settings file")
	devMode := flag.Bool("dev", false, "Start directly in the game state")
	flag.Parse()

	ctx := context.Background()
	logger := logging.NewFromEnv()

	level := defs.DefaultLevel()
	if *levelPath != "" {
		var err error
		if level, err = defs.LoadLevel(*levelPath); err != nil {
			log.Fatal(err)
		}
	}

	prefs, err := settings.Load(*settingsPath)
	if err != nil {
		logger.Warn(ctx, "settings ignored", logging.Any("error", err))
	}

	dispatcher := event.NewDispatcher()
	registry := prometheus.NewRegistry()
	metrics, err := observability.NewSessionCollector(registry)
	if err != nil {
		log.Fatal(err)
	}
	metrics.Subscribe(dispatcher)

	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		go func() {
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "metrics server stopped", logging.Any("error", err))
			}
		}()
		logger.Info(ctx, "metrics enabled", logging.String("addr", *metricsAddr))
	}

	game := app.NewGame(
		app.WithLevel(level),
		app.WithSeed(*seed),
		app.WithLogger(logger),
		app.WithDispatcher(dispatcher),
	)

	palette := render.DefaultPalette()
	if prefs.InvertColors {
		palette = palette.Inverted()
	}
	face := basicfont.Face7x13

	env := &state.Env{
		Game:         game,
		Renderer:     render.NewSceneRenderer(face, palette, config.ScreenWidth, config.ScreenHeight),
		Face:         face,
		Settings:     &prefs,
		SettingsPath: *settingsPath,
		Metrics:      metrics,
		Log:          logger,
	}

	// победа открывает следующий уровень
	dispatcher.Subscribe(event.GameWon, event.ListenerFunc(func(e event.Event) {
		data, ok := e.Data.(event.OutcomeData)
		if ok && env.Settings.Unlock(data.Level) {
			env.SaveSettings()
		}
	}))

	sm := state.NewStateMachine()
	if *devMode {
		sm.SetState(state.NewGameState(sm, env))
	} else {
		sm.SetState(state.NewMenuState(sm, env))
	}

	appGame := &AppGame{
		stateMachine:   sm,
		env:            env,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Path Defense")
	ebiten.SetTPS(config.TicksPerSecond)
	if err := ebiten.RunGame(appGame); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
