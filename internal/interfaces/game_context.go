// internal/interfaces/game_context.go
package interfaces

import (
	"go-path-defense/internal/event"
	"go-path-defense/pkg/route"
)

// GameContext — то, что системам нужно от сессии, без прямой зависимости
// от пакета app.
type GameContext interface {
	Path() route.Path
	Lives() int
	Score() int
	LoseLife() int // возвращает оставшиеся жизни
	AddScore(n int) int
	IsTerminal() bool
	Emit(t event.EventType, data interface{})
}
