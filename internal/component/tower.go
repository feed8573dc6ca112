package component

import (
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
)

// DefenderState — состояние автомата наведения башни.
type DefenderState int

const (
	DefenderIdle      DefenderState = iota // нет цели
	DefenderAcquiring                      // цель есть, идёт задержка наведения
	DefenderEngaged                        // цель есть, можно стрелять по перезарядке
)

func (s DefenderState) String() string {
	switch s {
	case DefenderIdle:
		return "idle"
	case DefenderAcquiring:
		return "acquiring"
	case DefenderEngaged:
		return "engaged"
	}
	return "unknown"
}

// Defender — стационарная башня.
type Defender struct {
	Position          geom.Point
	Archetype         defs.ArchetypeID
	Range             float64
	FireRate          int
	AcquisitionDelay  int
	CooldownRemaining int
	AcquisitionTimer  int
	Target            types.EntityID // types.None, если цели нет
}

// NewDefender создаёт башню с профилем архетипа. Перезарядка стартует
// со значения Cooldown архетипа, так что только что поставленная башня
// не стреляет мгновенно.
func NewDefender(a defs.DefenderArchetype, pos geom.Point) *Defender {
	return &Defender{
		Position:          pos,
		Archetype:         a.ID,
		Range:             a.Range,
		FireRate:          a.FireRate,
		AcquisitionDelay:  a.AcquisitionDelay,
		CooldownRemaining: a.Cooldown,
	}
}

// State выводит состояние автомата из полей.
func (d *Defender) State() DefenderState {
	switch {
	case d.Target == types.None:
		return DefenderIdle
	case d.AcquisitionTimer > 0:
		return DefenderAcquiring
	default:
		return DefenderEngaged
	}
}

// DropTarget сбрасывает цель и таймер наведения.
func (d *Defender) DropTarget() {
	d.Target = types.None
	d.AcquisitionTimer = 0
}
