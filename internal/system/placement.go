package system

import (
	"go-path-defense/internal/entity"
	"go-path-defense/pkg/geom"
	"go-path-defense/pkg/route"
)

// IsValidPlacement решает, можно ли поставить башню в точку p.
// Точка запрещена, если ближе minClearance к центру любой башни
// или к любому отрезку дороги. Функция чистая.
func IsValidPlacement(p geom.Point, defenders []geom.Point, path route.Path, minClearance float64) bool {
	for _, d := range defenders {
		if geom.Distance(p, d) < minClearance {
			return false
		}
	}
	return path.DistanceTo(p) >= minClearance
}

// DefenderPositions собирает центры башен в порядке постройки.
func DefenderPositions(ecs *entity.ECS) []geom.Point {
	positions := make([]geom.Point, 0, ecs.Defenders.Len())
	for _, id := range ecs.Defenders.IDs() {
		if d, ok := ecs.Defenders.Get(id); ok {
			positions = append(positions, d.Position)
		}
	}
	return positions
}
