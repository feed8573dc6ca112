package component

import (
	"go-path-defense/internal/defs"
	"go-path-defense/pkg/geom"
)

// Unit — враждебный юнит, идущий по дороге.
type Unit struct {
	Position  geom.Point
	PathIndex int     // индекс последнего достигнутого вейпоинта
	Speed     float64 // пикселей за тик
	HitPoints int
	Variant   defs.Variant
}

// NewUnit создаёт юнит на первом вейпоинте дороги.
func NewUnit(v defs.Variant, start geom.Point) *Unit {
	def := defs.VariantStats(v)
	return &Unit{
		Position:  start,
		PathIndex: 0,
		Speed:     def.Speed,
		HitPoints: def.HitPoints,
		Variant:   def.Variant,
	}
}
