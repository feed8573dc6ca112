package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
	"go-path-defense/pkg/route"
)

// fakeGame — минимальный GameContext для тестов систем.
type fakeGame struct {
	ecs    *entity.ECS
	path   route.Path
	lives  int
	score  int
	state  *StateSystem
	events []event.Event
}

func newFakeGame(path route.Path) *fakeGame {
	g := &fakeGame{ecs: entity.NewECS(), path: path, lives: 3}
	g.state = NewStateSystem(g.ecs, g, 1, nil)
	return g
}

func (g *fakeGame) Path() route.Path { return g.path }
func (g *fakeGame) Lives() int       { return g.lives }
func (g *fakeGame) Score() int       { return g.score }
func (g *fakeGame) IsTerminal() bool { return g.ecs.GameState.Terminal() }

func (g *fakeGame) LoseLife() int {
	if g.lives > 0 {
		g.lives--
	}
	g.state.Evaluate()
	return g.lives
}

func (g *fakeGame) AddScore(n int) int {
	g.score += n
	return g.score
}

func (g *fakeGame) Emit(t event.EventType, data interface{}) {
	g.events = append(g.events, event.Event{Type: t, Tick: g.ecs.Tick, Data: data})
}

func (g *fakeGame) count(t event.EventType) int {
	n := 0
	for _, e := range g.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (g *fakeGame) addUnit(v defs.Variant, pos geom.Point) types.EntityID {
	id := g.ecs.NewEntity()
	u := component.NewUnit(v, pos)
	g.ecs.Units.Add(id, u)
	return id
}

// addDefender ставит башню без перезарядки, чтобы тесты начинались с наведения.
func (g *fakeGame) addDefender(a defs.ArchetypeID, pos geom.Point) (types.EntityID, *component.Defender) {
	def, _ := defs.ArchetypeByID(a)
	d := component.NewDefender(def, pos)
	d.CooldownRemaining = 0
	id := g.ecs.NewEntity()
	g.ecs.Defenders.Add(id, d)
	return id, d
}

func straightPath(length float64) route.Path {
	return route.MustNew(geom.Pt(0, 0), geom.Pt(length, 0))
}
