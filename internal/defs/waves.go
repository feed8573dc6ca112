// internal/defs/waves.go
package defs

// WaveEntry — сколько юнитов одного варианта входит в волну.
type WaveEntry struct {
	Variant Variant `json:"variant"`
	Count   int     `json:"count"`
}

// WaveDefinition описывает состав одной волны.
type WaveDefinition struct {
	Entries []WaveEntry `json:"entries"`
}

// Size — общее число юнитов в волне.
func (w WaveDefinition) Size() int {
	n := 0
	for _, e := range w.Entries {
		n += e.Count
	}
	return n
}

// Roster разворачивает волну в плоский список вариантов (без перемешивания).
func (w WaveDefinition) Roster() []Variant {
	roster := make([]Variant, 0, w.Size())
	for _, e := range w.Entries {
		for i := 0; i < e.Count; i++ {
			roster = append(roster, e.Variant)
		}
	}
	return roster
}

// DefaultWaves — три волны первого уровня.
var DefaultWaves = []WaveDefinition{
	{Entries: []WaveEntry{{VariantStandard, 15}}},
	{Entries: []WaveEntry{{VariantStandard, 15}, {VariantFast, 5}}},
	{Entries: []WaveEntry{{VariantStandard, 15}, {VariantFast, 10}, {VariantDurable, 5}}},
}
