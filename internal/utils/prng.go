// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-path-defense/internal/defs"
)

// PRNGService — обёртка над генератором случайных чисел, чтобы вся сессия
// могла работать на предсказуемом (seeded) рандоме.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService создаёт сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed — сид, с которым был создан сервис.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Reset возвращает генератор к исходному сиду.
func (s *PRNGService) Reset() {
	s.rng = rand.New(rand.NewSource(s.seed))
}

// ShuffleRoster перемешивает ростер на месте. Порядок влияет только
// на последовательность выхода юнитов, но не на состав волны.
func (s *PRNGService) ShuffleRoster(roster []defs.Variant) {
	s.rng.Shuffle(len(roster), func(i, j int) {
		roster[i], roster[j] = roster[j], roster[i]
	})
}
