// internal/types/types.go
package types

// EntityID — стабильный идентификатор сущности в таблицах ECS.
// Нулевое значение означает «нет сущности».
type EntityID uint64

// None — пустая ссылка.
const None EntityID = 0
