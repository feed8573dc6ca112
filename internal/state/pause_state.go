// internal/state/pause_state.go
package state

import (
	"context"

	"go-path-defense/internal/config"
	"go-path-defense/internal/logging"
	"go-path-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState — меню паузы. Сессия продолжает тикать: юниты стоят,
// но планировщик выпускает ростер.
type PauseState struct {
	stateMachine  *StateMachine
	env           *Env
	previousState *GameState
	resume        ui.Button
	invert        ui.Button
	restart       ui.Button
	quit          ui.Button
}

func NewPauseState(sm *StateMachine, env *Env, prev *GameState) *PauseState {
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	return &PauseState{
		stateMachine:  sm,
		env:           env,
		previousState: prev,
		resume:        ui.NewButton(cx-120, cy-120, 240, 60, "Resume", config.AcceptColor),
		invert:        ui.NewButton(cx-120, cy-40, 240, 60, "Invert colors", config.RangeColor),
		restart:       ui.NewButton(cx-120, cy+40, 240, 60, "Restart", config.ProjectileColor),
		quit:          ui.NewButton(cx-120, cy+120, 240, 60, "Quit", config.CancelColor),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	s.env.Metrics.ObserveTick(s.env.Game.AdvanceTick)

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.unpause()
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}

	x, y := ebiten.CursorPosition()
	switch {
	case s.resume.Contains(x, y):
		s.unpause()
	case s.invert.Contains(x, y):
		s.env.Settings.ToggleInvert()
		s.env.Renderer.SetPalette(s.env.Renderer.Palette().Inverted())
		s.env.SaveSettings()
	case s.restart.Contains(x, y):
		s.env.Log.Info(context.Background(), "session restarted", logging.Int("tick", int(s.env.Game.ECS.Tick)))
		s.env.Game.Reset()
		s.stateMachine.SetState(NewGameState(s.stateMachine, s.env))
	case s.quit.Contains(x, y):
		s.env.Quitting = true
	}
}

func (s *PauseState) unpause() {
	s.env.Game.SetPaused(false)
	s.stateMachine.SetState(s.previousState)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	s.env.Renderer.DrawOverlay(screen)

	p := s.env.Renderer.Palette()
	for _, b := range []ui.Button{s.resume, s.invert, s.restart, s.quit} {
		b.BgColor = p.Tint(b.BgColor)
		b.Draw(screen, s.env.Face, p.Text)
	}
}

func (s *PauseState) Exit() {}
