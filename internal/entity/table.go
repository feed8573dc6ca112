// internal/entity/table.go
package entity

import "go-path-defense/internal/types"

// Table — таблица компонентов с порядком вставки.
// Итерация всегда идёт от старых записей к новым.
type Table[T any] struct {
	order []types.EntityID
	items map[types.EntityID]*T
}

func NewTable[T any]() *Table[T] {
	return &Table[T]{items: make(map[types.EntityID]*T)}
}

// Add добавляет запись в конец таблицы.
func (t *Table[T]) Add(id types.EntityID, item *T) {
	if _, exists := t.items[id]; exists {
		t.items[id] = item
		return
	}
	t.items[id] = item
	t.order = append(t.order, id)
}

// Get возвращает запись, если она жива.
func (t *Table[T]) Get(id types.EntityID) (*T, bool) {
	item, ok := t.items[id]
	return item, ok
}

// Has — проверка валидности ссылки.
func (t *Table[T]) Has(id types.EntityID) bool {
	_, ok := t.items[id]
	return ok
}

// Remove удаляет запись, сохраняя порядок остальных.
func (t *Table[T]) Remove(id types.EntityID) bool {
	if _, ok := t.items[id]; !ok {
		return false
	}
	delete(t.items, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// Len — число живых записей.
func (t *Table[T]) Len() int {
	return len(t.order)
}

// IDs возвращает снимок идентификаторов. Удаление во время обхода
// снимка безопасно: удалённые записи просто не находятся через Get.
func (t *Table[T]) IDs() []types.EntityID {
	ids := make([]types.EntityID, len(t.order))
	copy(ids, t.order)
	return ids
}
