package system

import (
	"context"

	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/interfaces"
	"go-path-defense/internal/logging"
)

// StateSystem переводит сессию в победу или поражение.
type StateSystem struct {
	ecs   *entity.ECS
	game  interfaces.GameContext
	level int
	log   logging.Logger
}

func NewStateSystem(ecs *entity.ECS, game interfaces.GameContext, level int, log logging.Logger) *StateSystem {
	if log == nil {
		log = logging.Noop()
	}
	return &StateSystem{ecs: ecs, game: game, level: level, log: log}
}

// Evaluate проверяет условия конца игры. Переход происходит один раз:
// после него состояние больше не меняется до Reset.
func (s *StateSystem) Evaluate() {
	if s.ecs.GameState.Terminal() {
		return
	}

	switch {
	case s.game.Lives() <= 0:
		s.finish(component.Lost, event.GameLost, "session lost")
	case s.ecs.Wave != nil && s.ecs.Wave.Phase == component.WaveExhausted:
		s.finish(component.Won, event.GameWon, "session won")
	}
}

func (s *StateSystem) finish(outcome component.GameState, t event.EventType, msg string) {
	s.ecs.GameState = outcome
	data := event.OutcomeData{
		Level: s.level,
		Score: s.game.Score(),
		Lives: s.game.Lives(),
	}
	if s.ecs.Wave != nil {
		data.Wave = s.ecs.Wave.Number
	}
	s.log.Info(context.Background(), msg,
		logging.Int("level", data.Level),
		logging.Int("wave", data.Wave),
		logging.Int("score", data.Score),
		logging.Int("lives", data.Lives))
	s.game.Emit(t, data)
}
