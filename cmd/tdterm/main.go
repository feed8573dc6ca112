// cmd/tdterm/main.go
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/logging"
	"go-path-defense/internal/termview"
)

type session struct {
	game   *app.Game
	view   *termview.View
	cursor termview.Cursor
	speed  int // индекс в config.SpeedMultipliers
}

func (s *session) handleKey(ev *tcell.EventKey) bool {
	w, h := s.view.Size()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		s.cursor.X = max(s.cursor.X-1, 0)
	case tcell.KeyRight:
		s.cursor.X = min(s.cursor.X+1, w-1)
	case tcell.KeyUp:
		s.cursor.Y = max(s.cursor.Y-1, 1)
	case tcell.KeyDown:
		s.cursor.Y = min(s.cursor.Y+1, h-1)
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q':
			return false
		case 'p':
			s.game.TogglePause()
		case 'r':
			s.game.Reset()
		case ' ':
			s.speed = (s.speed + 1) % len(config.SpeedMultipliers)
		case '1', '2', '3', '4':
			s.game.PlaceDefender(s.view.ToWorld(s.cursor.X, s.cursor.Y), defs.ArchetypeID(r-'1'))
		}
	}
	return true
}

func main() {
	seed := flag.Int64("seed", 0, "Roster shuffle seed (0 = time based)")
	levelPath := flag.String("level", "", "Level JSON file (default: built-in level 1)")
	logPath := flag.String("log", "", "Write structured logs to this file")
	flag.Parse()

	logger := logging.Noop()
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logger = logging.New(logging.Config{Level: os.Getenv("LOG_LEVEL"), Format: os.Getenv("LOG_FORMAT"), Output: f})
	}

	level := defs.DefaultLevel()
	if *levelPath != "" {
		var err error
		if level, err = defs.LoadLevel(*levelPath); err != nil {
			log.Fatal(err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	s := &session{
		game: app.NewGame(app.WithLevel(level), app.WithSeed(*seed), app.WithLogger(logger)),
		view: termview.New(screen),
	}
	s.cursor = termview.Cursor{X: 1, Y: 1, Shown: true}
	run(s, screen)
}

func run(s *session, screen tcell.Screen) {
	ticker := time.NewTicker(time.Second / config.TicksPerSecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, eventChan, done)

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !s.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				s.view.Resize()
				screen.Sync()
			}

		case <-ticker.C:
			for i := 0; i < config.SpeedMultipliers[s.speed]; i++ {
				s.game.AdvanceTick()
			}
			s.cursor.Valid = s.game.CanPlace(s.view.ToWorld(s.cursor.X, s.cursor.Y))
			s.view.Draw(s.game.Snapshot(), s.cursor)
		}
	}
}

// pollEvents пересылает ввод в out, пока экран не закрыт (PollEvent
// вернул nil) или не закрыт done.
func pollEvents(screen tcell.Screen, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}
