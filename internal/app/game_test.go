package app

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
	"go-path-defense/internal/logging"
	"go-path-defense/pkg/geom"
	"go-path-defense/pkg/route"
)

// recorder считает события по типу.
type recorder struct {
	counts map[event.EventType]int
	last   map[event.EventType]event.Event
}

func newRecorder(d *event.Dispatcher) *recorder {
	r := &recorder{counts: map[event.EventType]int{}, last: map[event.EventType]event.Event{}}
	d.SubscribeAll(r,
		event.WaveStarted, event.WaveEnded, event.UnitSpawned, event.UnitDestroyed,
		event.UnitLeaked, event.DefenderPlaced, event.PlacementRejected,
		event.ProjectileFired, event.ProjectileHit, event.GameWon, event.GameLost)
	return r
}

func (r *recorder) OnEvent(e event.Event) {
	r.counts[e.Type]++
	r.last[e.Type] = e
}

// fortressLevel — прямая дорога, вдоль которой помещается сплошной ряд башен.
func fortressLevel() defs.Level {
	return defs.Level{
		Number: 1,
		Name:   "Fortress",
		Path:   route.MustNew(geom.Pt(0, 0), geom.Pt(6000, 0)),
		Waves:  defs.DefaultWaves,
	}
}

func buildFortress(t *testing.T, g *Game) {
	t.Helper()
	for x := 100.0; x <= 5500; x += 50 {
		if _, ok := g.PlaceDefender(geom.Pt(x, 50), defs.ArchetypeC); !ok {
			t.Fatalf("defender at x=%v rejected", x)
		}
	}
}

func runUntil(g *Game, limit int, done func() bool) int {
	for i := 0; i < limit; i++ {
		if done() {
			return i
		}
		g.AdvanceTick()
	}
	return limit
}

func TestNewGameInitialState(t *testing.T) {
	g := NewGame(WithSeed(1))
	snap := g.Snapshot()

	if snap.Lives != 3 || snap.Score != 0 || snap.Wave != 1 || snap.Tick != 0 {
		t.Errorf("initial snapshot = lives %d score %d wave %d tick %d", snap.Lives, snap.Score, snap.Wave, snap.Tick)
	}
	if snap.State != component.InProgress || len(snap.Units) != 0 || len(snap.Defenders) != 0 {
		t.Errorf("initial state %v units %d defenders %d", snap.State, len(snap.Units), len(snap.Defenders))
	}
	if len(snap.Path) != 13 || snap.MaxWave != 3 {
		t.Errorf("path points %d max wave %d", len(snap.Path), snap.MaxWave)
	}
}

func TestNewGamePanicsOnInvalidLevel(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for a level without waves")
		}
	}()
	NewGame(WithLevel(defs.Level{Path: route.MustNew(geom.Pt(0, 0), geom.Pt(1, 0))}))
}

func TestFirstTickSpawnsUnit(t *testing.T) {
	d := event.NewDispatcher()
	rec := newRecorder(d)
	g := NewGame(WithSeed(1), WithDispatcher(d))

	g.AdvanceTick()

	snap := g.Snapshot()
	if len(snap.Units) != 1 || snap.Units[0].Position != geom.Pt(1, 400) {
		t.Fatalf("units after tick 1 = %+v", snap.Units)
	}
	if rec.counts[event.WaveStarted] != 1 || rec.counts[event.UnitSpawned] != 1 {
		t.Errorf("events = %v", rec.counts)
	}
	if snap.Pending != 14 || snap.WavePhase != component.WaveSpawning {
		t.Errorf("pending %d phase %v", snap.Pending, snap.WavePhase)
	}
}

func TestPlaceDefender(t *testing.T) {
	d := event.NewDispatcher()
	rec := newRecorder(d)
	g := NewGame(WithSeed(1), WithDispatcher(d))

	if _, ok := g.PlaceDefender(geom.Pt(200, 400), defs.ArchetypeA); ok {
		t.Errorf("placed on the path")
	}
	id, ok := g.PlaceDefender(geom.Pt(200, 500), defs.ArchetypeA)
	if !ok {
		t.Fatalf("valid placement rejected")
	}
	if _, ok := g.PlaceDefender(geom.Pt(230, 500), defs.ArchetypeB); ok {
		t.Errorf("placed 30px from another defender")
	}
	if _, ok := g.PlaceDefender(geom.Pt(200, 600), defs.ArchetypeID(9)); ok {
		t.Errorf("placed an unknown archetype")
	}

	def, ok := g.ECS.Defenders.Get(id)
	if !ok || def.Range != 140 || def.CooldownRemaining != 60 {
		t.Errorf("placed defender = %+v", def)
	}
	if rec.counts[event.DefenderPlaced] != 1 || rec.counts[event.PlacementRejected] != 3 {
		t.Errorf("events = %v", rec.counts)
	}
}

func TestPlacementRejectedWhilePaused(t *testing.T) {
	g := NewGame(WithSeed(1))
	g.SetPaused(true)
	if _, ok := g.PlaceDefender(geom.Pt(200, 500), defs.ArchetypeA); ok {
		t.Errorf("placed while paused")
	}
	g.SetPaused(false)
	if _, ok := g.PlaceDefender(geom.Pt(200, 500), defs.ArchetypeA); !ok {
		t.Errorf("rejected after resume")
	}
}

func TestPauseFreezesEntitiesButNotScheduler(t *testing.T) {
	g := NewGame(WithSeed(1))
	if _, ok := g.PlaceDefender(geom.Pt(200, 500), defs.ArchetypeA); !ok {
		t.Fatalf("valid placement rejected")
	}
	g.AdvanceTick()
	before := g.Snapshot()

	g.SetPaused(true)
	for i := 0; i < 90; i++ {
		g.AdvanceTick()
	}
	after := g.Snapshot()

	// спавн на тиках 31, 61, 91
	if len(after.Units) != 4 || after.Pending != 11 {
		t.Fatalf("units %d pending %d after 90 paused ticks, want 4 and 11", len(after.Units), after.Pending)
	}
	if after.Tick != 91 {
		t.Errorf("tick = %d, want 91", after.Tick)
	}
	if after.Units[0].ID != before.Units[0].ID || after.Units[0].Position != before.Units[0].Position {
		t.Errorf("first unit moved while paused: %+v -> %+v", before.Units[0], after.Units[0])
	}
	for _, u := range after.Units[1:] {
		if u.Position != after.Path[0] || u.PathIndex != 0 {
			t.Errorf("unit %d left the spawn point while paused: %+v", u.ID, u)
		}
	}
	if !reflect.DeepEqual(before.Defenders, after.Defenders) {
		t.Errorf("defenders changed while paused: %+v -> %+v", before.Defenders, after.Defenders)
	}
	if len(after.Projectiles) != 0 || after.Score != 0 || after.Lives != 3 {
		t.Errorf("projectiles %d score %d lives %d", len(after.Projectiles), after.Score, after.Lives)
	}

	g.SetPaused(false)
	g.AdvanceTick()
	resumed := g.Snapshot()
	if resumed.Units[1].Position == after.Path[0] {
		t.Errorf("units still frozen after resume")
	}
	if resumed.Tick != 92 {
		t.Errorf("tick after resume = %d, want 92", resumed.Tick)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := NewGame(WithSeed(1))
	g.AdvanceTick()
	snap := g.Snapshot()
	snap.Units[0].Position = geom.Pt(-1, -1)
	snap.Path[0] = geom.Pt(-1, -1)

	again := g.Snapshot()
	if again.Units[0].Position == geom.Pt(-1, -1) || again.Path[0] == geom.Pt(-1, -1) {
		t.Errorf("snapshot aliases session state")
	}
}

func TestSameSeedSameRun(t *testing.T) {
	a := NewGame(WithSeed(42))
	b := NewGame(WithSeed(42))
	for i := 0; i < 700; i++ {
		a.AdvanceTick()
		b.AdvanceTick()
	}
	if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Errorf("runs with the same seed diverged")
	}
}

func TestResetRestartsSession(t *testing.T) {
	d := event.NewDispatcher()
	rec := newRecorder(d)
	g := NewGame(WithSeed(7), WithDispatcher(d))
	g.PlaceDefender(geom.Pt(200, 500), defs.ArchetypeA)
	for i := 0; i < 100; i++ {
		g.AdvanceTick()
	}
	first := g.Snapshot()

	g.Reset()
	snap := g.Snapshot()
	if snap.Tick != 0 || len(snap.Units) != 0 || len(snap.Defenders) != 0 || snap.Lives != 3 || snap.Wave != 1 {
		t.Fatalf("after reset: %+v", snap)
	}

	for i := 0; i < 100; i++ {
		g.AdvanceTick()
	}
	if rec.counts[event.WaveStarted] != 2 {
		t.Errorf("listener lost across reset: %v", rec.counts)
	}
	// тот же сид — тот же порядок вариантов
	for i := range first.Units {
		if first.Units[i].Variant != g.Snapshot().Units[i].Variant {
			t.Errorf("roster order differs after reset at %d", i)
		}
	}
}

func TestSessionLostWithoutDefenders(t *testing.T) {
	d := event.NewDispatcher()
	rec := newRecorder(d)
	g := NewGame(WithSeed(3), WithDispatcher(d))

	runUntil(g, 100000, g.Lost)

	if !g.Lost() || g.Lives() != 0 {
		t.Fatalf("state %v lives %d", g.State(), g.Lives())
	}
	if rec.counts[event.UnitLeaked] != 3 || rec.counts[event.GameLost] != 1 {
		t.Errorf("events = %v", rec.counts)
	}
	if g.WaveNumber() != 1 {
		t.Errorf("wave = %d, want 1", g.WaveNumber())
	}

	tick := g.ECS.Tick
	units := g.ECS.Units.Len()
	for i := 0; i < 100; i++ {
		g.AdvanceTick()
	}
	if g.ECS.Tick != tick || g.ECS.Units.Len() != units || g.Lives() != 0 {
		t.Errorf("simulation moved after loss")
	}
	if _, ok := g.PlaceDefender(geom.Pt(200, 500), defs.ArchetypeA); ok {
		t.Errorf("placed after loss")
	}
}

func TestFortressClearsFirstWave(t *testing.T) {
	d := event.NewDispatcher()
	rec := newRecorder(d)
	g := NewGame(WithSeed(5), WithLevel(fortressLevel()), WithDispatcher(d))
	buildFortress(t, g)

	runUntil(g, 20000, func() bool { return g.WaveNumber() == 2 })

	if g.WaveNumber() != 2 {
		t.Fatalf("wave 1 never cleared, units left %d", g.ECS.Units.Len())
	}
	if g.Score() != 15 || g.Lives() != 3 {
		t.Errorf("score %d lives %d, want 15 and 3", g.Score(), g.Lives())
	}
	if rec.counts[event.UnitDestroyed] != 15 || rec.counts[event.WaveEnded] != 1 {
		t.Errorf("events = %v", rec.counts)
	}
	if rec.counts[event.ProjectileFired] < 15 {
		t.Errorf("fired %d projectiles for 15 kills", rec.counts[event.ProjectileFired])
	}
}

func TestFortressWinsAllWaves(t *testing.T) {
	d := event.NewDispatcher()
	rec := newRecorder(d)
	g := NewGame(WithSeed(5), WithLevel(fortressLevel()), WithDispatcher(d))
	buildFortress(t, g)

	runUntil(g, 100000, g.Won)

	if !g.Won() {
		t.Fatalf("session not won: state %v wave %d lives %d", g.State(), g.WaveNumber(), g.Lives())
	}
	if g.Score() != 65 || g.Lives() != 3 || g.WaveNumber() != 4 {
		t.Errorf("score %d lives %d wave %d", g.Score(), g.Lives(), g.WaveNumber())
	}
	if rec.counts[event.GameWon] != 1 {
		t.Errorf("GameWon events = %d", rec.counts[event.GameWon])
	}
	outcome := rec.last[event.GameWon].Data.(event.OutcomeData)
	if outcome.Level != 1 || outcome.Score != 65 {
		t.Errorf("outcome = %+v", outcome)
	}

	snap := g.Snapshot()
	if snap.DisplayWave != 3 || !snap.Won {
		t.Errorf("display wave %d won %v", snap.DisplayWave, snap.Won)
	}
}

func TestWinningTickSkipsEntityPass(t *testing.T) {
	g := NewGame(WithSeed(5), WithLevel(fortressLevel()))
	buildFortress(t, g)

	lastAdvance := func() bool {
		w := g.ECS.Wave
		return w.Phase == component.WaveAdvance && w.Number > g.Level.MaxWave()
	}
	runUntil(g, 100000, lastAdvance)
	if !lastAdvance() || g.Won() {
		t.Fatalf("final wave not cleared: wave %d phase %v state %v", g.WaveNumber(), g.ECS.Wave.Phase, g.State())
	}
	before := g.Snapshot()

	g.AdvanceTick()

	after := g.Snapshot()
	if !after.Won || after.WavePhase != component.WaveExhausted {
		t.Fatalf("won %v phase %v", after.Won, after.WavePhase)
	}
	if !reflect.DeepEqual(before.Defenders, after.Defenders) {
		t.Errorf("defenders updated on the winning tick")
	}
}

func TestSessionStartLogsSeed(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Config{Format: "json", Output: &buf})
	g := NewGame(WithSeed(77), WithLevel(fortressLevel()), WithLogger(log))

	for _, want := range []string{`"msg":"session started"`, `"seed":77`, `"path_length":6000`, `"waves":3`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log %q missing %s", buf.String(), want)
		}
	}

	buf.Reset()
	g.Reset()
	if !strings.Contains(buf.String(), `"seed":77`) {
		t.Errorf("restart did not log the seed: %q", buf.String())
	}
}
