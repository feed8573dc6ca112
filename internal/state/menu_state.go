// internal/state/menu_state.go
package state

import (
	"fmt"

	"go-path-defense/internal/config"
	"go-path-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// MenuState — стартовый экран: уровень и кнопка запуска.
type MenuState struct {
	sm    *StateMachine
	env   *Env
	start ui.Button
}

func NewMenuState(sm *StateMachine, env *Env) *MenuState {
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	return &MenuState{
		sm:    sm,
		env:   env,
		start: ui.NewButton(cx-120, cy, 240, 60, "Start", config.AcceptColor),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		start = start || m.start.Contains(ebiten.CursorPosition())
	}
	if start {
		m.sm.SetState(NewGameState(m.sm, m.env))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	p := m.env.Renderer.Palette()
	screen.Fill(p.Background)

	level := m.env.Game.Level
	title := fmt.Sprintf("%s (unlocked: %d)", level.Name, m.env.Settings.UnlockedLevels)
	bounds := text.BoundString(m.env.Face, title)
	text.Draw(screen, title, m.env.Face, config.ScreenWidth/2-bounds.Dx()/2, config.ScreenHeight/2-60, p.Text)
	m.start.Draw(screen, m.env.Face, p.Text)
}

func (m *MenuState) Exit() {}
