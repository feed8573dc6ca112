// internal/defs/types.go
package defs

import (
	"fmt"
	"image/color"
	"strings"
)

// Visuals holds abstract presentation identifiers consumed by renderers.
type Visuals struct {
	Color  color.RGBA `json:"color"`
	Radius float64    `json:"radius"`
}

// Variant is the closed set of hostile unit kinds.
type Variant int

const (
	VariantStandard Variant = iota
	VariantFast
	VariantDurable
)

var variantNames = [...]string{"standard", "fast", "durable"}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// MarshalText encodes the variant by name.
func (v Variant) MarshalText() ([]byte, error) {
	if v < 0 || int(v) >= len(variantNames) {
		return nil, fmt.Errorf("unknown variant %d", int(v))
	}
	return []byte(variantNames[v]), nil
}

// UnmarshalText accepts the variant name, case-insensitive.
func (v *Variant) UnmarshalText(b []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(b)))
	for i, n := range variantNames {
		if n == name {
			*v = Variant(i)
			return nil
		}
	}
	return fmt.Errorf("unknown variant %q", string(b))
}

// ArchetypeID identifies one of the four defender profiles.
type ArchetypeID int

const (
	ArchetypeA ArchetypeID = iota
	ArchetypeB
	ArchetypeC
	ArchetypeD
)

func (a ArchetypeID) String() string {
	if a < ArchetypeA || a > ArchetypeD {
		return fmt.Sprintf("Archetype(%d)", int(a))
	}
	return string(rune('A' + int(a)))
}
