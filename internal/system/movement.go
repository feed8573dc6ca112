// internal/system/movement.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/interfaces"
	"go-path-defense/pkg/geom"
	"go-path-defense/pkg/route"
)

// MovementSystem двигает юниты по дороге и снимает жизни за дошедших.
type MovementSystem struct {
	ecs  *entity.ECS
	game interfaces.GameContext
}

func NewMovementSystem(ecs *entity.ECS, game interfaces.GameContext) *MovementSystem {
	return &MovementSystem{ecs: ecs, game: game}
}

func (s *MovementSystem) Update() {
	path := s.game.Path()
	for _, id := range s.ecs.Units.IDs() {
		// после поражения юниты больше не трогаем
		if s.game.IsTerminal() {
			return
		}
		unit, ok := s.ecs.Units.Get(id)
		if !ok {
			continue
		}

		AdvanceUnit(unit, path)

		if unit.PathIndex >= path.LastIndex() {
			s.ecs.Units.Remove(id)
			lives := s.game.LoseLife()
			s.game.Emit(event.UnitLeaked, event.UnitData{
				ID:        id,
				Variant:   unit.Variant,
				LivesLeft: lives,
				Score:     s.game.Score(),
			})
		}
	}
}

// AdvanceUnit сдвигает юнит на один тик к следующему вейпоинту.
// За тик индекс растёт не больше чем на единицу, позиция никогда
// не проскакивает вейпоинт.
func AdvanceUnit(u *component.Unit, path route.Path) {
	if u.PathIndex >= path.LastIndex() {
		return
	}
	next := path.At(u.PathIndex + 1)
	pos, arrived := geom.StepToward(u.Position, next, u.Speed)
	u.Position = pos
	if arrived {
		u.PathIndex++
	}
}
