// internal/system/projectile.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/interfaces"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
)

// ProjectileSystem управляет движением снарядов и попаданиями
type ProjectileSystem struct {
	ecs  *entity.ECS
	game interfaces.GameContext
}

func NewProjectileSystem(ecs *entity.ECS, game interfaces.GameContext) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, game: game}
}

func (s *ProjectileSystem) Update() {
	for _, id := range s.ecs.Projectiles.IDs() {
		proj, ok := s.ecs.Projectiles.Get(id)
		if !ok {
			continue
		}

		target, alive := s.ecs.Units.Get(proj.TargetID)
		if !alive {
			// цель уже убрана другим снарядом или дошла до конца — снаряд инертен
			s.ecs.Projectiles.Remove(id)
			continue
		}

		Home(proj, target.Position)

		if geom.Distance(proj.Position, target.Position) < config.HitProximity {
			s.hitTarget(id, proj)
		}
	}
}

// Home сдвигает снаряд к текущей позиции цели.
func Home(p *component.Projectile, target geom.Point) {
	p.Position, _ = geom.StepToward(p.Position, target, p.Speed)
}

// hitTarget снимает одно очко здоровья и убирает снаряд в любом случае.
func (s *ProjectileSystem) hitTarget(projectileID types.EntityID, proj *component.Projectile) {
	s.ecs.Projectiles.Remove(projectileID)

	unit, alive := s.ecs.Units.Get(proj.TargetID)
	s.game.Emit(event.ProjectileHit, event.ProjectileData{
		ID:       projectileID,
		OwnerID:  proj.OwnerID,
		TargetID: proj.TargetID,
		Damaged:  alive,
	})
	if !alive {
		return
	}

	unit.HitPoints--
	if unit.HitPoints > 0 {
		return
	}

	s.ecs.Units.Remove(proj.TargetID)
	score := s.game.AddScore(1)
	s.game.Emit(event.UnitDestroyed, event.UnitData{
		ID:        proj.TargetID,
		Variant:   unit.Variant,
		LivesLeft: s.game.Lives(),
		Score:     score,
	})
}
