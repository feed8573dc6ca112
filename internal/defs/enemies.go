// internal/defs/enemies.go
package defs

import "image/color"

// UnitDefinition holds all the static data for a unit variant.
// Variants differ only by these parameters.
type UnitDefinition struct {
	Variant   Variant
	Name      string
	Speed     float64 // pixels per tick
	HitPoints int
	Visuals   Visuals
}

// UnitLibrary is indexed by Variant.
var UnitLibrary = [...]UnitDefinition{
	VariantStandard: {Variant: VariantStandard, Name: "Standard", Speed: 1, HitPoints: 1,
		Visuals: Visuals{Color: color.RGBA{255, 0, 0, 255}, Radius: 20}},
	VariantFast: {Variant: VariantFast, Name: "Fast", Speed: 2, HitPoints: 1,
		Visuals: Visuals{Color: color.RGBA{0, 200, 255, 255}, Radius: 18}},
	VariantDurable: {Variant: VariantDurable, Name: "Durable", Speed: 1, HitPoints: 3,
		Visuals: Visuals{Color: color.RGBA{128, 0, 128, 255}, Radius: 24}},
}

// VariantStats returns the definition for v, falling back to Standard.
func VariantStats(v Variant) UnitDefinition {
	if v < 0 || int(v) >= len(UnitLibrary) {
		return UnitLibrary[VariantStandard]
	}
	return UnitLibrary[v]
}
