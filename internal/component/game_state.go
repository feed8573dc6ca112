package component

// GameState — исход сессии. Ровно одно значение истинно в любой момент.
type GameState int

const (
	InProgress GameState = iota
	Won
	Lost
)

func (s GameState) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Terminal — сессия закончена победой или поражением.
func (s GameState) Terminal() bool {
	return s == Won || s == Lost
}
