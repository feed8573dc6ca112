// internal/app/game.go
package app

import (
	"context"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/interfaces"
	"go-path-defense/internal/logging"
	"go-path-defense/internal/system"
	"go-path-defense/internal/utils"
	"go-path-defense/pkg/route"
)

var _ interfaces.GameContext = (*Game)(nil)

// Game — состояние одной сессии симуляции. Единственный писатель:
// все изменения идут через AdvanceTick, PlaceDefender и Reset.
type Game struct {
	Level           defs.Level
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	WaveSystem       *system.WaveSystem
	StateSystem      *system.StateSystem

	log    logging.Logger
	lives  int
	score  int
	paused bool
}

// Option настраивает Game при создании.
type Option func(*Game)

// WithLevel заменяет встроенный первый уровень.
func WithLevel(level defs.Level) Option {
	return func(g *Game) { g.Level = level }
}

// WithSeed фиксирует сид перемешивания ростеров.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.Rng = utils.NewPRNGService(seed) }
}

// WithLogger подключает структурный логгер.
func WithLogger(log logging.Logger) Option {
	return func(g *Game) { g.log = log }
}

// WithDispatcher позволяет подписаться на события до первого тика.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(g *Game) { g.EventDispatcher = d }
}

// NewGame создаёт новую сессию.
func NewGame(opts ...Option) *Game {
	g := &Game{
		Level: defs.DefaultLevel(),
		log:   logging.Noop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.EventDispatcher == nil {
		g.EventDispatcher = event.NewDispatcher()
	}
	if g.Rng == nil {
		g.Rng = utils.NewPRNGService(0)
	}
	if g.log == nil {
		g.log = logging.Noop()
	}
	if err := g.Level.Validate(); err != nil {
		panic("app: invalid level: " + err.Error())
	}
	g.log = g.log.With(logging.Int("level", g.Level.Number))
	g.Reset()
	return g
}

// Reset начинает сессию заново: жизни, очки, волна 1, пустые таблицы.
// Подписчики диспетчера сохраняются, генератор возвращается к сиду.
func (g *Game) Reset() {
	ecs := entity.NewECS()
	g.ECS = ecs
	g.lives = g.Level.StartingLives
	g.score = 0
	g.paused = false
	g.Rng.Reset()

	g.MovementSystem = system.NewMovementSystem(ecs, g)
	g.CombatSystem = system.NewCombatSystem(ecs, g)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g)
	g.WaveSystem = system.NewWaveSystem(ecs, g, g.Level, g.Rng, g.log)
	g.StateSystem = system.NewStateSystem(ecs, g, g.Level.Number, g.log)
	ecs.Wave = g.WaveSystem.NewWave()

	g.log.Info(context.Background(), "session started",
		logging.Any("seed", g.Rng.Seed()),
		logging.Any("path_length", g.Level.Path.Length()),
		logging.Int("waves", g.Level.MaxWave()))
}

// AdvanceTick продвигает симуляцию ровно на один тик.
// Порядок фаз фиксирован: волны, башни, снаряды, юниты, исход.
// Планировщик волн работает и на паузе, счётчик тиков тоже идёт;
// пауза останавливает только башни, снаряды и юнитов.
func (g *Game) AdvanceTick() {
	if g.IsTerminal() {
		return
	}
	g.ECS.Tick++

	g.WaveSystem.Update(g.ECS.Wave)
	// победа фиксируется до прохода по сущностям
	g.StateSystem.Evaluate()
	if g.paused || g.IsTerminal() {
		return
	}
	g.CombatSystem.Update()
	g.ProjectileSystem.Update()
	g.MovementSystem.Update()
	g.StateSystem.Evaluate()
}

// --- GameContext ---

func (g *Game) Path() route.Path { return g.Level.Path }
func (g *Game) Lives() int       { return g.lives }
func (g *Game) Score() int       { return g.score }

// LoseLife снимает жизнь и сразу проверяет поражение, чтобы оставшиеся
// в этом тике юниты уже не трогали счётчики.
func (g *Game) LoseLife() int {
	if g.lives > 0 {
		g.lives--
	}
	g.StateSystem.Evaluate()
	return g.lives
}

func (g *Game) AddScore(n int) int {
	g.score += n
	return g.score
}

func (g *Game) IsTerminal() bool {
	return g.ECS.GameState.Terminal()
}

func (g *Game) Emit(t event.EventType, data interface{}) {
	g.EventDispatcher.Dispatch(event.Event{Type: t, Tick: g.ECS.Tick, Data: data})
}

// --- состояние для драйвера ---

// State — исход сессии.
func (g *Game) State() component.GameState { return g.ECS.GameState }

// Won / Lost — терминальные флаги.
func (g *Game) Won() bool  { return g.ECS.GameState == component.Won }
func (g *Game) Lost() bool { return g.ECS.GameState == component.Lost }

// WaveNumber — текущий номер волны (может быть MaxWave+1 после последней).
func (g *Game) WaveNumber() int { return g.ECS.Wave.Number }

// SetPaused ставит сессию на паузу: сущности замирают, ростер волны
// продолжает выходить на дорогу.
func (g *Game) SetPaused(paused bool) { g.paused = paused }

// TogglePause переключает паузу и возвращает новое значение.
func (g *Game) TogglePause() bool {
	g.paused = !g.paused
	return g.paused
}

func (g *Game) IsPaused() bool { return g.paused }
