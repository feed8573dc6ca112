// internal/event/types.go
package event

import (
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
)

const (
	WaveStarted       EventType = "WaveStarted"       // ростер волны собран
	WaveEnded         EventType = "WaveEnded"         // волна зачищена, номер увеличен
	UnitSpawned       EventType = "UnitSpawned"       // юнит вышел на дорогу
	UnitDestroyed     EventType = "UnitDestroyed"     // юнит уничтожен снарядом
	UnitLeaked        EventType = "UnitLeaked"        // юнит дошёл до конца дороги
	DefenderPlaced    EventType = "DefenderPlaced"    // башня построена
	PlacementRejected EventType = "PlacementRejected" // попытка поставить башню в запрещённое место
	ProjectileFired   EventType = "ProjectileFired"
	ProjectileHit     EventType = "ProjectileHit"
	GameWon           EventType = "GameWon"  // все волны пройдены; драйвер может сохранить прогресс
	GameLost          EventType = "GameLost" // жизни кончились
)

// WaveData — нагрузка WaveStarted и WaveEnded.
type WaveData struct {
	Wave   int
	Roster int // размер ростера для WaveStarted
}

// UnitData — нагрузка событий юнита.
type UnitData struct {
	ID        types.EntityID
	Variant   defs.Variant
	LivesLeft int
	Score     int
}

// DefenderData — нагрузка DefenderPlaced / PlacementRejected.
type DefenderData struct {
	ID        types.EntityID
	Archetype defs.ArchetypeID
	X, Y      float64
}

// ProjectileData — нагрузка ProjectileFired / ProjectileHit.
type ProjectileData struct {
	ID       types.EntityID
	OwnerID  types.EntityID
	TargetID types.EntityID
	Damaged  bool // цель ещё была жива в момент попадания
}

// OutcomeData — нагрузка GameWon / GameLost.
type OutcomeData struct {
	Level int
	Wave  int
	Score int
	Lives int
}
