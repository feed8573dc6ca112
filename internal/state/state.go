// internal/state/state.go
package state

import (
	"context"

	"go-path-defense/internal/app"
	"go-path-defense/internal/logging"
	"go-path-defense/internal/observability"
	"go-path-defense/internal/settings"
	"go-path-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Env — общие зависимости всех состояний драйвера.
type Env struct {
	Game         *app.Game
	Renderer     *render.SceneRenderer
	Face         font.Face
	Settings     *settings.Settings
	SettingsPath string
	Metrics      *observability.SessionCollector // может быть nil
	Log          logging.Logger
	Quitting     bool
}

// SaveSettings сохраняет настройки; ошибка только логируется.
func (e *Env) SaveSettings() {
	if e.SettingsPath == "" || e.Settings == nil {
		return
	}
	if err := settings.Save(e.SettingsPath, *e.Settings); err != nil {
		e.Log.Warn(context.Background(), "failed to save settings", logging.Any("error", err))
	}
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
