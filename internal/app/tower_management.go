// internal/app/tower_management.go
package app

import (
	"context"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
	"go-path-defense/internal/logging"
	"go-path-defense/internal/system"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
)

// CanPlace — проверка точки для превью: валидатор с текущими башнями
// и дорогой сессии.
func (g *Game) CanPlace(p geom.Point) bool {
	return system.IsValidPlacement(p, system.DefenderPositions(g.ECS), g.Level.Path, config.MinClearance)
}

// PlaceDefender ставит башню, если точка допустима. Неверная точка —
// обычное действие игрока, поэтому результат булев, а не ошибка.
// На паузе и после конца игры башни не ставятся.
func (g *Game) PlaceDefender(p geom.Point, archetype defs.ArchetypeID) (types.EntityID, bool) {
	def, ok := defs.ArchetypeByID(archetype)
	if !ok || g.paused || g.IsTerminal() || !g.CanPlace(p) {
		g.log.Debug(context.Background(), "placement rejected",
			logging.String("archetype", archetype.String()),
			logging.Any("x", p.X), logging.Any("y", p.Y))
		g.Emit(event.PlacementRejected, event.DefenderData{Archetype: archetype, X: p.X, Y: p.Y})
		return types.None, false
	}

	id := g.ECS.NewEntity()
	g.ECS.Defenders.Add(id, component.NewDefender(def, p))

	g.log.Debug(context.Background(), "defender placed",
		logging.String("archetype", def.ID.String()),
		logging.Any("x", p.X), logging.Any("y", p.Y))
	g.Emit(event.DefenderPlaced, event.DefenderData{ID: id, Archetype: def.ID, X: p.X, Y: p.Y})
	return id, true
}
