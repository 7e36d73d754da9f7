package geometry

import "math"

// Tolerances and limits used throughout the geometric pipeline.
const (
	// DedupeEpsilon is the per-axis distance under which two points are
	// considered duplicates.
	DedupeEpsilon = 1e-9

	// InclusionEpsilon is the slack applied to barycentric containment
	// tests. Points this far outside a triangle edge still count as
	// contained, compensating for floating-point error when hull vertices
	// are tested against triangles built from those same vertices.
	InclusionEpsilon = 1e-10

	// DegenerateAreaEpsilon is the area below which a triangle is treated
	// as degenerate (collinear vertices) and rejected.
	DegenerateAreaEpsilon = 1e-10

	// MinPolygonPoints is the minimum number of unique points required for
	// any geometric operation that produces a triangle.
	MinPolygonPoints = 3
)

// Point is a 2D coordinate in image pixel space.
type Point struct {
	X float64 `json:"x"` // Horizontal position (0 = leftmost)
	Y float64 `json:"y"` // Vertical position (0 = topmost)
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Triangle is three vertices, implicitly closed. Edge i connects vertex i
// and vertex (i+1)%3.
type Triangle [3]Point

// Area returns the triangle's area using the shoelace formula. The result
// is identical for either vertex winding order.
func (t Triangle) Area() float64 {
	return math.Abs(t[0].X*(t[1].Y-t[2].Y)+
		t[1].X*(t[2].Y-t[0].Y)+
		t[2].X*(t[0].Y-t[1].Y)) / 2
}

// Contains reports whether p lies inside or on the boundary of the
// triangle, using barycentric coordinates with InclusionEpsilon slack.
//
// A degenerate triangle (denominator near zero) contains nothing: the test
// returns false rather than defaulting to true, so degenerate candidates
// can never pass an enclosure check.
func (t Triangle) Contains(p Point) bool {
	denom := (t[1].Y-t[2].Y)*(t[0].X-t[2].X) + (t[2].X-t[1].X)*(t[0].Y-t[2].Y)
	if math.Abs(denom) < 1e-10 {
		return false
	}

	a := ((t[1].Y-t[2].Y)*(p.X-t[2].X) + (t[2].X-t[1].X)*(p.Y-t[2].Y)) / denom
	b := ((t[2].Y-t[0].Y)*(p.X-t[2].X) + (t[0].X-t[2].X)*(p.Y-t[2].Y)) / denom
	c := 1 - a - b

	return a >= -InclusionEpsilon && b >= -InclusionEpsilon && c >= -InclusionEpsilon
}

// ContainsAll reports whether every point in pts passes Contains.
func (t Triangle) ContainsAll(pts []Point) bool {
	for _, p := range pts {
		if !t.Contains(p) {
			return false
		}
	}
	return true
}

// SamePoint reports whether a and b are within DedupeEpsilon of each other
// on both axes.
func SamePoint(a, b Point) bool {
	return math.Abs(a.X-b.X) < DedupeEpsilon && math.Abs(a.Y-b.Y) < DedupeEpsilon
}

// Dedupe returns pts with epsilon-duplicates removed, preserving first
// occurrence order. The input slice is never modified.
func Dedupe(pts []Point) []Point {
	unique := make([]Point, 0, len(pts))
	for _, p := range pts {
		dup := false
		for _, u := range unique {
			if SamePoint(p, u) {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, p)
		}
	}
	return unique
}
