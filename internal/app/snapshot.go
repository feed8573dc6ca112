package app

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
)

// UnitView — копия юнита для рендера.
type UnitView struct {
	ID        types.EntityID
	Position  geom.Point
	PathIndex int
	HitPoints int
	Variant   defs.Variant
	Visuals   defs.Visuals
}

// DefenderView — копия башни для рендера.
type DefenderView struct {
	ID                types.EntityID
	Position          geom.Point
	Archetype         defs.ArchetypeID
	Range             float64
	State             component.DefenderState
	Target            types.EntityID
	CooldownRemaining int
	AcquisitionTimer  int
	Visuals           defs.Visuals
}

// ProjectileView — копия снаряда для рендера.
type ProjectileView struct {
	ID       types.EntityID
	Position geom.Point
	OwnerID  types.EntityID
	TargetID types.EntityID
}

// Snapshot — неизменяемый срез состояния сессии на момент вызова.
type Snapshot struct {
	Tick        uint64
	Level       int
	Path        []geom.Point
	Units       []UnitView
	Defenders   []DefenderView
	Projectiles []ProjectileView
	Lives       int
	Score       int
	Wave        int // фактический номер, может быть MaxWave+1
	DisplayWave int // min(Wave, MaxWave) для HUD
	MaxWave     int
	WavePhase   component.WavePhase
	Pending     int // юнитов ещё в ростере
	Paused      bool
	State       component.GameState
	Won         bool
	Lost        bool
}

// Snapshot копирует состояние; изменения копии не влияют на сессию.
func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	snap := Snapshot{
		Tick:        ecs.Tick,
		Level:       g.Level.Number,
		Path:        g.Level.Path.Points(),
		Units:       make([]UnitView, 0, ecs.Units.Len()),
		Defenders:   make([]DefenderView, 0, ecs.Defenders.Len()),
		Projectiles: make([]ProjectileView, 0, ecs.Projectiles.Len()),
		Lives:       g.lives,
		Score:       g.score,
		Wave:        ecs.Wave.Number,
		DisplayWave: min(ecs.Wave.Number, g.Level.MaxWave()),
		MaxWave:     g.Level.MaxWave(),
		WavePhase:   ecs.Wave.Phase,
		Pending:     len(ecs.Wave.Roster),
		Paused:      g.paused,
		State:       ecs.GameState,
		Won:         ecs.GameState == component.Won,
		Lost:        ecs.GameState == component.Lost,
	}

	for _, id := range ecs.Units.IDs() {
		u, _ := ecs.Units.Get(id)
		snap.Units = append(snap.Units, UnitView{
			ID:        id,
			Position:  u.Position,
			PathIndex: u.PathIndex,
			HitPoints: u.HitPoints,
			Variant:   u.Variant,
			Visuals:   defs.VariantStats(u.Variant).Visuals,
		})
	}
	for _, id := range ecs.Defenders.IDs() {
		d, _ := ecs.Defenders.Get(id)
		a, _ := defs.ArchetypeByID(d.Archetype)
		snap.Defenders = append(snap.Defenders, DefenderView{
			ID:                id,
			Position:          d.Position,
			Archetype:         d.Archetype,
			Range:             d.Range,
			State:             d.State(),
			Target:            d.Target,
			CooldownRemaining: d.CooldownRemaining,
			AcquisitionTimer:  d.AcquisitionTimer,
			Visuals:           a.Visuals,
		})
	}
	for _, id := range ecs.Projectiles.IDs() {
		p, _ := ecs.Projectiles.Get(id)
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			ID:       id,
			Position: p.Position,
			OwnerID:  p.OwnerID,
			TargetID: p.TargetID,
		})
	}
	return snap
}
