package system

import (
	"testing"

	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/pkg/geom"
	"go-path-defense/pkg/route"
)

func TestIsValidPlacement(t *testing.T) {
	path := route.MustNew(geom.Pt(0, 0), geom.Pt(200, 0))
	defenders := []geom.Point{geom.Pt(100, 100)}

	tests := []struct {
		name string
		p    geom.Point
		want bool
	}{
		{"too close to path", geom.Pt(100, 39.9), false},
		{"on the path", geom.Pt(50, 0), false},
		{"exactly at clearance from path", geom.Pt(20, 40), true},
		{"near path end cap", geom.Pt(230, 20), false},
		{"inside defender footprint", geom.Pt(130, 100), false},
		{"exactly at clearance from defender", geom.Pt(140, 100), true},
		{"open field", geom.Pt(300, 300), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsValidPlacement(tt.p, defenders, path, config.MinClearance)
			if got != tt.want {
				t.Errorf("IsValidPlacement(%v) = %v, want %v", tt.p, got, tt.want)
			}
			// чистая функция: повторный вызов даёт то же самое
			if again := IsValidPlacement(tt.p, defenders, path, config.MinClearance); again != got {
				t.Errorf("second call = %v, first = %v", again, got)
			}
		})
	}
}

func TestIsValidPlacementDegenerateSegment(t *testing.T) {
	path := route.MustNew(geom.Pt(0, 0), geom.Pt(0, 0), geom.Pt(0, 0))
	if IsValidPlacement(geom.Pt(30, 0), nil, path, 40) {
		t.Errorf("point 30 away from a zero-length path accepted")
	}
	if !IsValidPlacement(geom.Pt(30, 30), nil, path, 40) {
		t.Errorf("point ~42 away from a zero-length path rejected")
	}
}

func TestIsValidPlacementDoesNotMutateInputs(t *testing.T) {
	defenders := []geom.Point{geom.Pt(1, 2)}
	path := straightPath(100)
	IsValidPlacement(geom.Pt(5, 5), defenders, path, 40)
	if defenders[0] != geom.Pt(1, 2) || path.At(path.LastIndex()) != geom.Pt(100, 0) {
		t.Errorf("inputs were mutated")
	}
}

func TestDefenderPositionsInPlacementOrder(t *testing.T) {
	g := newFakeGame(straightPath(100))
	g.addDefender(defs.ArchetypeA, geom.Pt(5, 100))
	g.addDefender(defs.ArchetypeB, geom.Pt(90, 100))

	got := DefenderPositions(g.ecs)
	if len(got) != 2 || got[0] != geom.Pt(5, 100) || got[1] != geom.Pt(90, 100) {
		t.Errorf("DefenderPositions = %v", got)
	}
}
