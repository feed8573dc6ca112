// internal/defs/towers.go
package defs

import "image/color"

// DefenderArchetype holds the static profile of a defender kind.
// All timings are in ticks at config.TicksPerSecond.
type DefenderArchetype struct {
	ID               ArchetypeID
	Name             string
	Range            float64
	Cooldown         int // initial cooldown after placement
	FireRate         int // cooldown after each shot
	AcquisitionDelay int // dwell before the first shot at a new target
	Visuals          Visuals
}

// Archetypes is indexed by ArchetypeID.
var Archetypes = [...]DefenderArchetype{
	ArchetypeA: {ID: ArchetypeA, Name: "Blue", Range: 140, Cooldown: 60, FireRate: 60, AcquisitionDelay: 90,
		Visuals: Visuals{Color: color.RGBA{0, 0, 200, 255}, Radius: 20}},
	ArchetypeB: {ID: ArchetypeB, Name: "Red", Range: 70, Cooldown: 30, FireRate: 30, AcquisitionDelay: 60,
		Visuals: Visuals{Color: color.RGBA{200, 0, 0, 255}, Radius: 20}},
	ArchetypeC: {ID: ArchetypeC, Name: "Green", Range: 180, Cooldown: 90, FireRate: 90, AcquisitionDelay: 120,
		Visuals: Visuals{Color: color.RGBA{0, 180, 0, 255}, Radius: 20}},
	ArchetypeD: {ID: ArchetypeD, Name: "Yellow", Range: 100, Cooldown: 45, FireRate: 45, AcquisitionDelay: 72,
		Visuals: Visuals{Color: color.RGBA{200, 200, 0, 255}, Radius: 20}},
}

// ArchetypeByID looks up a profile; ok is false for unknown ids.
func ArchetypeByID(id ArchetypeID) (DefenderArchetype, bool) {
	if id < 0 || int(id) >= len(Archetypes) {
		return DefenderArchetype{}, false
	}
	return Archetypes[id], true
}
