// pkg/geom/geom.go
package geom

import "math"

// Point is a position on the playfield in pixels.
type Point struct {
	X, Y float64
}

// Pt is a shorthand constructor.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p * k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Len returns the euclidean length of p as a vector.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// StepToward moves from toward target by at most speed.
// When the remaining distance is below speed (or zero) it snaps onto target
// and reports arrived. Coincident points never divide by zero.
func StepToward(from, target Point, speed float64) (Point, bool) {
	d := target.Sub(from)
	dist := d.Len()
	if dist == 0 || dist < speed {
		return target, true
	}
	return Point{X: from.X + speed*d.X/dist, Y: from.Y + speed*d.Y/dist}, false
}

// DistanceToSegment returns the distance from p to the closest point of
// segment ab. The projection parameter is clamped to [0,1]; a zero-length
// segment degrades to point-to-point distance.
func DistanceToSegment(p, a, b Point) float64 {
	d := b.Sub(a)
	lenSq := d.X*d.X + d.Y*d.Y
	if lenSq == 0 {
		return Distance(p, a)
	}
	t := ((p.X-a.X)*d.X + (p.Y-a.Y)*d.Y) / lenSq
	t = math.Max(0, math.Min(1, t))
	return Distance(p, a.Add(d.Scale(t)))
}
