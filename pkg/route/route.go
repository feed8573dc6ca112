// pkg/route/route.go
package route

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"go-path-defense/pkg/geom"
)

// ErrTooShort is returned when a path has fewer than two waypoints.
var ErrTooShort = errors.New("route: path needs at least two waypoints")

// Path is an ordered polyline of waypoints followed by hostile units.
// The zero value is not usable; build one with New.
type Path struct {
	points []geom.Point
}

// New copies points into an immutable Path.
func New(points ...geom.Point) (Path, error) {
	if len(points) < 2 {
		return Path{}, ErrTooShort
	}
	cp := make([]geom.Point, len(points))
	copy(cp, points)
	return Path{points: cp}, nil
}

// MustNew is New for static tables; it panics on invalid input.
func MustNew(points ...geom.Point) Path {
	p, err := New(points...)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of waypoints.
func (p Path) Len() int { return len(p.points) }

// LastIndex is the index of the final waypoint.
func (p Path) LastIndex() int { return len(p.points) - 1 }

// At returns waypoint i.
func (p Path) At(i int) geom.Point { return p.points[i] }

// First returns the spawn waypoint.
func (p Path) First() geom.Point { return p.points[0] }

// Points returns a copy of the waypoints.
func (p Path) Points() []geom.Point {
	cp := make([]geom.Point, len(p.points))
	copy(cp, p.points)
	return cp
}

// DistanceTo returns the distance from pt to the nearest point on any segment.
func (p Path) DistanceTo(pt geom.Point) float64 {
	best := math.Inf(1)
	for i := 0; i+1 < len(p.points); i++ {
		if d := geom.DistanceToSegment(pt, p.points[i], p.points[i+1]); d < best {
			best = d
		}
	}
	return best
}

// Length returns the total polyline length.
func (p Path) Length() float64 {
	total := 0.0
	for i := 0; i+1 < len(p.points); i++ {
		total += geom.Distance(p.points[i], p.points[i+1])
	}
	return total
}

// MarshalJSON encodes the path as [[x,y],...].
func (p Path) MarshalJSON() ([]byte, error) {
	raw := make([][2]float64, len(p.points))
	for i, pt := range p.points {
		raw[i] = [2]float64{pt.X, pt.Y}
	}
	return json.Marshal(raw)
}

// UnmarshalJSON decodes [[x,y],...] and validates the waypoint count.
func (p *Path) UnmarshalJSON(data []byte) error {
	var raw [][2]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("route: decode waypoints: %w", err)
	}
	points := make([]geom.Point, len(raw))
	for i, r := range raw {
		points[i] = geom.Pt(r[0], r[1])
	}
	parsed, err := New(points...)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
