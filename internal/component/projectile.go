// internal/component/projectile.go
package component

import (
	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	Position geom.Point
	Speed    float64
	TargetID types.EntityID // невладеющая ссылка на юнит
	OwnerID  types.EntityID // башня, выпустившая снаряд
}
