package state

import (
	"go-path-defense/internal/config"
	"go-path-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ResultState — экран победы или поражения. Сессия уже терминальна,
// поле рисуется как есть.
type ResultState struct {
	sm      *StateMachine
	env     *Env
	won     bool
	restart ui.Button
	quit    ui.Button
}

func NewResultState(sm *StateMachine, env *Env, won bool) *ResultState {
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	return &ResultState{
		sm:      sm,
		env:     env,
		won:     won,
		restart: ui.NewButton(cx-120, cy+10, 240, 60, "Restart", config.AcceptColor),
		quit:    ui.NewButton(cx-120, cy+90, 240, 60, "Quit", config.CancelColor),
	}
}

func (s *ResultState) Enter() {}

func (s *ResultState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.restartSession()
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	switch {
	case s.restart.Contains(x, y):
		s.restartSession()
	case s.quit.Contains(x, y):
		s.env.Quitting = true
	}
}

func (s *ResultState) restartSession() {
	s.env.Game.Reset()
	s.sm.SetState(NewGameState(s.sm, s.env))
}

func (s *ResultState) Draw(screen *ebiten.Image) {
	r := s.env.Renderer
	r.Draw(screen, s.env.Game.Snapshot())

	p := r.Palette()
	if s.won {
		r.DrawBanner(screen, "You Win!", p.Win)
	} else {
		r.DrawBanner(screen, "You Lose!", p.Lose)
	}
	s.restart.Draw(screen, s.env.Face, p.Text)
	s.quit.Draw(screen, s.env.Face, p.Text)
}

func (s *ResultState) Exit() {}
