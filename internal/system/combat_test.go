package system

import (
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
)

func projectileCount(g *fakeGame, owner, target types.EntityID) int {
	n := 0
	for _, id := range g.ecs.Projectiles.IDs() {
		p, _ := g.ecs.Projectiles.Get(id)
		if p.OwnerID == owner && p.TargetID == target {
			n++
		}
	}
	return n
}

func TestDefenderDwellsBeforeFirstShot(t *testing.T) {
	g := newFakeGame(straightPath(1000))
	unitID := g.addUnit(defs.VariantStandard, geom.Pt(50, 0))
	defID, d := g.addDefender(defs.ArchetypeB, geom.Pt(0, 0)) // range 70, fire rate 30, dwell 60
	combat := NewCombatSystem(g.ecs, g)

	combat.Update()
	if d.Target != unitID || d.State() != component.DefenderAcquiring {
		t.Fatalf("after first tick: target %d state %v", d.Target, d.State())
	}

	for tick := 2; tick <= 60; tick++ {
		combat.Update()
		if g.ecs.Projectiles.Len() != 0 {
			t.Fatalf("fired on tick %d during dwell", tick)
		}
	}
	if d.AcquisitionTimer != 0 || d.State() != component.DefenderEngaged {
		t.Fatalf("after dwell: timer %d state %v", d.AcquisitionTimer, d.State())
	}

	combat.Update()
	if got := projectileCount(g, defID, unitID); got != 1 {
		t.Fatalf("projectiles after dwell = %d, want 1", got)
	}
	if d.CooldownRemaining != d.FireRate {
		t.Errorf("cooldown = %d, want fire rate %d", d.CooldownRemaining, d.FireRate)
	}
	if g.count(event.ProjectileFired) != 1 {
		t.Errorf("ProjectileFired events = %d", g.count(event.ProjectileFired))
	}
}

func TestDefenderNeverFiresDuringCooldown(t *testing.T) {
	g := newFakeGame(straightPath(1000))
	g.addUnit(defs.VariantStandard, geom.Pt(10, 0))
	_, d := g.addDefender(defs.ArchetypeA, geom.Pt(0, 0))
	d.AcquisitionDelay = 0
	d.CooldownRemaining = 5
	combat := NewCombatSystem(g.ecs, g)

	for tick := 1; tick <= 5; tick++ {
		combat.Update()
		// перезарядка гейтит весь тик, включая наведение
		if d.Target != types.None {
			t.Fatalf("tick %d: acquired while cooling down", tick)
		}
		if g.ecs.Projectiles.Len() != 0 {
			t.Fatalf("tick %d: fired while cooling down", tick)
		}
	}

	combat.Update()
	if g.ecs.Projectiles.Len() != 1 {
		t.Fatalf("projectiles = %d after cooldown, want 1", g.ecs.Projectiles.Len())
	}
	if d.CooldownRemaining != 60 {
		t.Errorf("cooldown = %d, want 60", d.CooldownRemaining)
	}
}

func TestDefenderHoldsOneProjectilePerTarget(t *testing.T) {
	g := newFakeGame(straightPath(1000))
	unitID := g.addUnit(defs.VariantDurable, geom.Pt(10, 0))
	defID, d := g.addDefender(defs.ArchetypeB, geom.Pt(0, 0))
	d.AcquisitionDelay = 0
	combat := NewCombatSystem(g.ecs, g)

	// снаряды не двигаются: без ProjectileSystem первый так и висит в полёте
	for tick := 0; tick < 200; tick++ {
		combat.Update()
		if got := projectileCount(g, defID, unitID); got > 1 {
			t.Fatalf("tick %d: %d projectiles in flight for one pair", tick, got)
		}
	}
	if g.ecs.Projectiles.Len() != 1 {
		t.Errorf("projectiles = %d, want 1", g.ecs.Projectiles.Len())
	}
}

func TestTwoDefendersMayShareTarget(t *testing.T) {
	g := newFakeGame(straightPath(1000))
	unitID := g.addUnit(defs.VariantDurable, geom.Pt(10, 0))
	first, d1 := g.addDefender(defs.ArchetypeB, geom.Pt(0, 0))
	second, d2 := g.addDefender(defs.ArchetypeB, geom.Pt(20, 0))
	d1.AcquisitionDelay = 0
	d2.AcquisitionDelay = 0

	NewCombatSystem(g.ecs, g).Update()

	if projectileCount(g, first, unitID) != 1 || projectileCount(g, second, unitID) != 1 {
		t.Errorf("want one projectile per defender, got %d total", g.ecs.Projectiles.Len())
	}
}

func TestAcquisitionTakesFirstUnitInOrder(t *testing.T) {
	g := newFakeGame(straightPath(1000))
	far := g.addUnit(defs.VariantStandard, geom.Pt(60, 0))
	g.addUnit(defs.VariantStandard, geom.Pt(5, 0))
	_, d := g.addDefender(defs.ArchetypeB, geom.Pt(0, 0))

	NewCombatSystem(g.ecs, g).Update()

	if d.Target != far {
		t.Errorf("target = %d, want first in table order %d", d.Target, far)
	}
}

func TestTargetDroppedWhenOutOfRange(t *testing.T) {
	g := newFakeGame(straightPath(1000))
	unitID := g.addUnit(defs.VariantStandard, geom.Pt(50, 0))
	_, d := g.addDefender(defs.ArchetypeB, geom.Pt(0, 0))
	combat := NewCombatSystem(g.ecs, g)

	combat.Update()
	combat.Update()
	if d.Target != unitID || d.AcquisitionTimer != 58 {
		t.Fatalf("target %d timer %d", d.Target, d.AcquisitionTimer)
	}

	u, _ := g.ecs.Units.Get(unitID)
	u.Position = geom.Pt(71, 0)
	combat.Update()

	if d.Target != types.None || d.AcquisitionTimer != 0 || d.State() != component.DefenderIdle {
		t.Errorf("after leaving range: target %d timer %d state %v", d.Target, d.AcquisitionTimer, d.State())
	}
}

func TestTargetDroppedWhenDestroyed(t *testing.T) {
	g := newFakeGame(straightPath(1000))
	first := g.addUnit(defs.VariantStandard, geom.Pt(50, 0))
	_, d := g.addDefender(defs.ArchetypeB, geom.Pt(0, 0))
	combat := NewCombatSystem(g.ecs, g)

	combat.Update()
	g.ecs.Units.Remove(first)
	second := g.addUnit(defs.VariantStandard, geom.Pt(30, 0))
	combat.Update()

	// старая цель сброшена, новая получает полную задержку наведения
	if d.Target != second {
		t.Fatalf("target = %d, want %d", d.Target, second)
	}
	if d.AcquisitionTimer != d.AcquisitionDelay-1 {
		t.Errorf("timer = %d, want fresh dwell %d", d.AcquisitionTimer, d.AcquisitionDelay-1)
	}
}

func TestNewDefenderStartsOnCooldown(t *testing.T) {
	def, _ := defs.ArchetypeByID(defs.ArchetypeC)
	d := component.NewDefender(def, geom.Pt(0, 0))
	if d.CooldownRemaining != 90 || d.State() != component.DefenderIdle {
		t.Errorf("new defender cooldown %d state %v", d.CooldownRemaining, d.State())
	}
}
