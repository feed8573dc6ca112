package system

import (
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
)

func (g *fakeGame) addProjectile(pos geom.Point, target types.EntityID) types.EntityID {
	id := g.ecs.NewEntity()
	g.ecs.Projectiles.Add(id, &component.Projectile{
		Position: pos,
		Speed:    config.ProjectileSpeed,
		TargetID: target,
		OwnerID:  types.EntityID(999),
	})
	return id
}

func TestProjectileHomesAndKills(t *testing.T) {
	g := newFakeGame(straightPath(1000))
	unitID := g.addUnit(defs.VariantStandard, geom.Pt(100, 0))
	projID := g.addProjectile(geom.Pt(0, 0), unitID)
	ps := NewProjectileSystem(g.ecs, g)

	// 9 тиков: снаряд в 72, до цели ровно 28 — ещё не попадание
	for i := 0; i < 9; i++ {
		ps.Update()
	}
	p, ok := g.ecs.Projectiles.Get(projID)
	if !ok {
		t.Fatalf("projectile resolved too early")
	}
	if p.Position != geom.Pt(72, 0) {
		t.Fatalf("position = %v, want (72,0)", p.Position)
	}

	ps.Update()
	if g.ecs.Projectiles.Has(projID) {
		t.Errorf("projectile still live after hit")
	}
	if g.ecs.Units.Has(unitID) {
		t.Errorf("unit still live after lethal hit")
	}
	if g.score != 1 || g.count(event.UnitDestroyed) != 1 {
		t.Errorf("score %d destroyed events %d", g.score, g.count(event.UnitDestroyed))
	}
}

func TestProjectileDamagesDurableUnit(t *testing.T) {
	g := newFakeGame(straightPath(1000))
	unitID := g.addUnit(defs.VariantDurable, geom.Pt(5, 0))
	g.addProjectile(geom.Pt(0, 0), unitID)

	NewProjectileSystem(g.ecs, g).Update()

	u, ok := g.ecs.Units.Get(unitID)
	if !ok || u.HitPoints != 2 {
		t.Fatalf("durable unit after one hit: live=%v hp=%v", ok, u)
	}
	if g.ecs.Projectiles.Len() != 0 || g.score != 0 {
		t.Errorf("projectiles %d score %d", g.ecs.Projectiles.Len(), g.score)
	}
}

func TestProjectileWithLostTargetIsReaped(t *testing.T) {
	g := newFakeGame(straightPath(1000))
	unitID := g.addUnit(defs.VariantStandard, geom.Pt(500, 0))
	g.addProjectile(geom.Pt(0, 0), unitID)
	g.ecs.Units.Remove(unitID)

	NewProjectileSystem(g.ecs, g).Update()

	if g.ecs.Projectiles.Len() != 0 {
		t.Errorf("stale projectile not reaped")
	}
	if g.score != 0 {
		t.Errorf("score = %d for a stale projectile", g.score)
	}
}

func TestSecondProjectileOnDeadTargetScoresNothing(t *testing.T) {
	g := newFakeGame(straightPath(1000))
	unitID := g.addUnit(defs.VariantStandard, geom.Pt(5, 0))
	g.addProjectile(geom.Pt(0, 0), unitID)
	g.addProjectile(geom.Pt(10, 0), unitID)

	NewProjectileSystem(g.ecs, g).Update()

	if g.score != 1 {
		t.Errorf("score = %d, want exactly 1 per unit", g.score)
	}
	if g.ecs.Projectiles.Len() != 0 {
		t.Errorf("projectiles left = %d, want 0", g.ecs.Projectiles.Len())
	}
}

func TestScoreIgnoresVariant(t *testing.T) {
	g := newFakeGame(straightPath(1000))
	fast := g.addUnit(defs.VariantFast, geom.Pt(5, 0))
	g.addProjectile(geom.Pt(0, 0), fast)
	durable := g.addUnit(defs.VariantDurable, geom.Pt(5, 100))
	u, _ := g.ecs.Units.Get(durable)
	u.HitPoints = 1
	g.addProjectile(geom.Pt(0, 100), durable)

	NewProjectileSystem(g.ecs, g).Update()

	if g.score != 2 {
		t.Errorf("score = %d, want 2", g.score)
	}
}
