package component

import "go-path-defense/internal/defs"

// WavePhase — состояние планировщика волн.
type WavePhase int

const (
	WaveIdle      WavePhase = iota // между волнами
	WaveSpawning                   // ростер не пуст, юниты выходят по таймеру
	WaveDraining                   // ростер пуст, ждём, пока живые юниты кончатся
	WaveAdvance                    // номер волны увеличен
	WaveExhausted                  // волны кончились — победа
)

func (p WavePhase) String() string {
	switch p {
	case WaveIdle:
		return "idle"
	case WaveSpawning:
		return "spawning"
	case WaveDraining:
		return "draining"
	case WaveAdvance:
		return "advance"
	case WaveExhausted:
		return "exhausted"
	}
	return "unknown"
}

// Wave хранит состояние текущей волны.
type Wave struct {
	Number        int
	Phase         WavePhase
	Roster        []defs.Variant // ещё не выпущенные юниты, голова — следующий
	SpawnCooldown int
}
