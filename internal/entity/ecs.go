// internal/entity/ecs.go
package entity

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/types"
)

// ECS — арена всех сущностей сессии. Башни и снаряды ссылаются на юниты
// только по EntityID и проверяют ссылку через таблицу каждый тик.
type ECS struct {
	Tick        uint64
	NextID      types.EntityID
	Units       *Table[component.Unit]
	Defenders   *Table[component.Defender]
	Projectiles *Table[component.Projectile]
	Wave        *component.Wave
	GameState   component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Units:       NewTable[component.Unit](),
		Defenders:   NewTable[component.Defender](),
		Projectiles: NewTable[component.Projectile](),
		Wave:        nil,
		GameState:   component.InProgress,
	}
}

// NewEntity выдаёт новый идентификатор. Идентификаторы не переиспользуются,
// поэтому висячая ссылка никогда не укажет на чужой юнит.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}
