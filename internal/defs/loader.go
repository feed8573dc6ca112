// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go-path-defense/internal/config"
	"go-path-defense/pkg/geom"
	"go-path-defense/pkg/route"
)

var (
	ErrNoWaves      = errors.New("level has no waves")
	ErrBadLives     = errors.New("level starting lives must be positive")
	ErrBadWaveEntry = errors.New("wave entry count must be non-negative")
)

// Level bundles the path and the wave table of one playable map.
type Level struct {
	Number        int              `json:"number"`
	Name          string           `json:"name"`
	Path          route.Path       `json:"path"`
	Waves         []WaveDefinition `json:"waves"`
	StartingLives int              `json:"starting_lives"`
	SpawnInterval int              `json:"spawn_interval"`
}

// MaxWave is the index of the last wave; waves are numbered from 1.
func (l Level) MaxWave() int {
	return len(l.Waves)
}

// RosterFor returns the unshuffled roster of wave n.
// Waves past MaxWave are empty.
func (l Level) RosterFor(n int) []Variant {
	if n < 1 || n > len(l.Waves) {
		return nil
	}
	return l.Waves[n-1].Roster()
}

// Validate checks level consistency and fills zero-valued tunables.
func (l *Level) Validate() error {
	if l.Path.Len() < 2 {
		return route.ErrTooShort
	}
	if len(l.Waves) == 0 {
		return ErrNoWaves
	}
	for i, w := range l.Waves {
		for _, e := range w.Entries {
			if e.Count < 0 {
				return fmt.Errorf("wave %d: %w", i+1, ErrBadWaveEntry)
			}
		}
	}
	if l.StartingLives == 0 {
		l.StartingLives = config.StartingLives
	}
	if l.StartingLives < 0 {
		return ErrBadLives
	}
	if l.SpawnInterval <= 0 {
		l.SpawnInterval = config.SpawnInterval
	}
	if l.Number == 0 {
		l.Number = 1
	}
	return nil
}

// DefaultLevel returns the built-in first level.
func DefaultLevel() Level {
	return Level{
		Number: 1,
		Name:   "Level 1",
		Path: route.MustNew(
			geom.Pt(0, 400), geom.Pt(400, 400), geom.Pt(400, 700), geom.Pt(1000, 700),
			geom.Pt(1000, 100), geom.Pt(1600, 100), geom.Pt(1600, 250), geom.Pt(1350, 250),
			geom.Pt(1350, 650), geom.Pt(1600, 650), geom.Pt(1600, 900), geom.Pt(800, 900),
			geom.Pt(800, 1100),
		),
		Waves:         DefaultWaves,
		StartingLives: config.StartingLives,
		SpawnInterval: config.SpawnInterval,
	}
}

// LoadLevel reads a level description from a JSON file.
func LoadLevel(path string) (Level, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("failed to read level file: %w", err)
	}

	var lvl Level
	if err := json.Unmarshal(file, &lvl); err != nil {
		return Level{}, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return Level{}, fmt.Errorf("invalid level %q: %w", path, err)
	}
	return lvl, nil
}
