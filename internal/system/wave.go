package system

import (
	"context"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/interfaces"
	"go-path-defense/internal/logging"
	"go-path-defense/internal/utils"
)

// WaveSystem — планировщик волн:
// Idle → Spawning → Draining → Advance → Idle ... → Exhausted.
type WaveSystem struct {
	ecs   *entity.ECS
	game  interfaces.GameContext
	level defs.Level
	rng   *utils.PRNGService
	log   logging.Logger
}

func NewWaveSystem(ecs *entity.ECS, game interfaces.GameContext, level defs.Level, rng *utils.PRNGService, log logging.Logger) *WaveSystem {
	if log == nil {
		log = logging.Noop()
	}
	return &WaveSystem{
		ecs:   ecs,
		game:  game,
		level: level,
		rng:   rng,
		log:   log,
	}
}

// NewWave — состояние планировщика в начале сессии.
func (s *WaveSystem) NewWave() *component.Wave {
	return &component.Wave{Number: 1, Phase: component.WaveIdle}
}

// BuildRoster собирает и перемешивает ростер волны n.
func (s *WaveSystem) BuildRoster(n int) []defs.Variant {
	roster := s.level.RosterFor(n)
	s.rng.ShuffleRoster(roster)
	return roster
}

func (s *WaveSystem) Update(wave *component.Wave) {
	if wave == nil || s.game.IsTerminal() {
		return
	}

	if wave.Phase == component.WaveAdvance {
		wave.Phase = component.WaveIdle
	}

	if wave.Phase == component.WaveIdle {
		if wave.Number > s.level.MaxWave() {
			wave.Phase = component.WaveExhausted
			return
		}
		s.startWave(wave)
	}

	if wave.Phase == component.WaveSpawning {
		if len(wave.Roster) > 0 {
			wave.SpawnCooldown--
			if wave.SpawnCooldown <= 0 {
				s.spawnUnit(wave.Roster[0])
				wave.Roster = wave.Roster[1:]
				wave.SpawnCooldown = s.level.SpawnInterval
			}
		}
		if len(wave.Roster) == 0 {
			wave.Phase = component.WaveDraining
		}
	}

	// ждём не только пустой ростер, но и пустое поле
	if wave.Phase == component.WaveDraining && s.ecs.Units.Len() == 0 {
		finished := wave.Number
		wave.Number++
		wave.Phase = component.WaveAdvance
		s.log.Info(context.Background(), "wave cleared", logging.Int("wave", finished))
		s.game.Emit(event.WaveEnded, event.WaveData{Wave: finished})
	}
}

func (s *WaveSystem) startWave(wave *component.Wave) {
	wave.Roster = s.BuildRoster(wave.Number)
	wave.SpawnCooldown = 0
	wave.Phase = component.WaveSpawning
	s.log.Info(context.Background(), "wave started",
		logging.Int("wave", wave.Number),
		logging.Int("units", len(wave.Roster)))
	s.game.Emit(event.WaveStarted, event.WaveData{Wave: wave.Number, Roster: len(wave.Roster)})
}

func (s *WaveSystem) spawnUnit(v defs.Variant) {
	id := s.ecs.NewEntity()
	unit := component.NewUnit(v, s.game.Path().First())
	s.ecs.Units.Add(id, unit)
	s.game.Emit(event.UnitSpawned, event.UnitData{
		ID:        id,
		Variant:   unit.Variant,
		LivesLeft: s.game.Lives(),
		Score:     s.game.Score(),
	})
}
