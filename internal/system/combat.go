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

// CombatSystem управляет наведением и стрельбой башен.
//
// Порядок внутри тика для каждой башни:
//  1. цель пропала или вышла из радиуса — сброс цели и таймера наведения;
//  2. идёт перезарядка — уменьшаем и пропускаем весь тик;
//  3. нет цели — берём первый юнит в радиусе в порядке таблицы;
//  4. ждём задержку наведения, затем стреляем и уходим на перезарядку.
type CombatSystem struct {
	ecs  *entity.ECS
	game interfaces.GameContext
}

func NewCombatSystem(ecs *entity.ECS, game interfaces.GameContext) *CombatSystem {
	return &CombatSystem{ecs: ecs, game: game}
}

func (s *CombatSystem) Update() {
	for _, id := range s.ecs.Defenders.IDs() {
		if defender, ok := s.ecs.Defenders.Get(id); ok {
			s.updateDefender(id, defender)
		}
	}
}

func (s *CombatSystem) updateDefender(id types.EntityID, d *component.Defender) {
	if d.Target != types.None && !s.targetValid(d) {
		d.DropTarget()
	}

	if d.CooldownRemaining > 0 {
		d.CooldownRemaining--
		return
	}

	if d.Target == types.None {
		target := s.firstUnitInRange(d)
		if target == types.None {
			return
		}
		d.Target = target
		d.AcquisitionTimer = d.AcquisitionDelay
	}

	if d.AcquisitionTimer > 0 {
		d.AcquisitionTimer--
		return
	}

	// не больше одного снаряда в полёте на пару (башня, цель)
	if s.hasProjectileInFlight(id, d.Target) {
		return
	}
	s.createProjectile(id, d)
	d.CooldownRemaining = d.FireRate
}

func (s *CombatSystem) targetValid(d *component.Defender) bool {
	unit, ok := s.ecs.Units.Get(d.Target)
	if !ok {
		return false
	}
	return geom.Distance(unit.Position, d.Position) <= d.Range
}

// firstUnitInRange — первый подходящий юнит в порядке таблицы,
// без выбора ближайшего.
func (s *CombatSystem) firstUnitInRange(d *component.Defender) types.EntityID {
	for _, unitID := range s.ecs.Units.IDs() {
		unit, ok := s.ecs.Units.Get(unitID)
		if !ok {
			continue
		}
		if geom.Distance(unit.Position, d.Position) <= d.Range {
			return unitID
		}
	}
	return types.None
}

func (s *CombatSystem) hasProjectileInFlight(ownerID, targetID types.EntityID) bool {
	for _, projID := range s.ecs.Projectiles.IDs() {
		if p, ok := s.ecs.Projectiles.Get(projID); ok && p.OwnerID == ownerID && p.TargetID == targetID {
			return true
		}
	}
	return false
}

func (s *CombatSystem) createProjectile(ownerID types.EntityID, d *component.Defender) {
	projID := s.ecs.NewEntity()
	s.ecs.Projectiles.Add(projID, &component.Projectile{
		Position: d.Position,
		Speed:    config.ProjectileSpeed,
		TargetID: d.Target,
		OwnerID:  ownerID,
	})
	s.game.Emit(event.ProjectileFired, event.ProjectileData{
		ID:       projID,
		OwnerID:  ownerID,
		TargetID: d.Target,
	})
}
