package triangle

import (
	"errors"
	"log/slog"
	"math"

	"github.com/trichoscope/trichogram/internal/geometry"
)

// ErrInsufficientPoints is returned when fewer than geometry.MinPolygonPoints
// unique points are available, making any triangle impossible.
var ErrInsufficientPoints = errors.New("need at least 3 unique points to form a triangle")

// Result is a solver answer: three vertices and whether they were verified
// to enclose every input point. Unverified results come only from the
// extreme-point heuristic and may miss points; callers that need a proven
// enclosure must check VerifiedEnclosing.
type Result struct {
	Vertices          geometry.Triangle `json:"vertices"`
	VerifiedEnclosing bool              `json:"verified_enclosing"`
}

// Solver finds minimum enclosing triangles. The zero value is not usable;
// construct with NewSolver.
type Solver struct {
	log *slog.Logger
}

// NewSolver returns a Solver that reports search progress to log at defined
// extension points (hull built, search exhausted, fallback entered). A nil
// logger disables reporting.
func NewSolver(log *slog.Logger) *Solver {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Solver{log: log}
}

// MinimumEnclosing returns the smallest triangle found that encloses points.
//
// The input may contain duplicates and is treated as a set. Ties between
// equal-area candidates resolve to the first one encountered in enumeration
// order. Returns ErrInsufficientPoints when fewer than 3 unique points
// remain after deduplication; every other input produces a Result.
func (s *Solver) MinimumEnclosing(points []geometry.Point) (*Result, error) {
	unique := geometry.Dedupe(points)
	if len(unique) < geometry.MinPolygonPoints {
		return nil, ErrInsufficientPoints
	}

	hull := geometry.ConvexHull(unique)
	s.log.Debug("convex hull built", "points", len(unique), "hull_vertices", len(hull))

	if len(hull) == 3 {
		return &Result{
			Vertices:          geometry.Triangle{hull[0], hull[1], hull[2]},
			VerifiedEnclosing: true,
		}, nil
	}

	if best, ok := bestHullTriple(hull, unique); ok {
		return &Result{Vertices: best, VerifiedEnclosing: true}, nil
	}

	s.log.Debug("hull triples exhausted, extending candidate set",
		"hull_vertices", len(hull))
	if best, ok := bestExtendedTriple(hull, unique); ok {
		return &Result{Vertices: best, VerifiedEnclosing: true}, nil
	}

	if bbox, ok := boundingBoxTriangle(unique); ok {
		s.log.Debug("enclosing via bounding-box triangle", "area", bbox.Area())
		return &Result{Vertices: bbox, VerifiedEnclosing: true}, nil
	}

	s.log.Warn("no enclosing triangle found, using extreme-point heuristic",
		"points", len(unique))
	return &Result{
		Vertices:          extremeHeuristic(unique),
		VerifiedEnclosing: false,
	}, nil
}

// bestHullTriple brute-forces all triangles formed from hull vertices and
// returns the smallest one enclosing every input point.
func bestHullTriple(hull, points []geometry.Point) (geometry.Triangle, bool) {
	var best geometry.Triangle
	minArea := math.Inf(1)
	found := false

	n := len(hull)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				tri := geometry.Triangle{hull[i], hull[j], hull[k]}
				if tri.Area() < geometry.DegenerateAreaEpsilon {
					continue
				}
				if !tri.ContainsAll(points) {
					continue
				}
				if area := tri.Area(); area < minArea {
					minArea = area
					best = tri
					found = true
				}
			}
		}
	}

	return best, found
}

// bestExtendedTriple searches triangles built from a pair of hull vertices
// plus a third vertex drawn from the hull and the raw input points. This
// covers tolerance cases where the minimum triangle's third vertex is an
// interior point sitting within epsilon of the hull boundary.
func bestExtendedTriple(hull, points []geometry.Point) (geometry.Triangle, bool) {
	var best geometry.Triangle
	minArea := math.Inf(1)
	found := false

	candidates := make([]geometry.Point, 0, len(hull)+len(points))
	candidates = append(candidates, hull...)
	candidates = append(candidates, points...)

	n := len(hull)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p1, p2 := hull[i], hull[j]
			for _, p3 := range candidates {
				if geometry.SamePoint(p3, p1) || geometry.SamePoint(p3, p2) {
					continue
				}
				tri := geometry.Triangle{p1, p2, p3}
				if tri.Area() < geometry.DegenerateAreaEpsilon {
					continue
				}
				if !tri.ContainsAll(points) {
					continue
				}
				if area := tri.Area(); area < minArea {
					minArea = area
					best = tri
					found = true
				}
			}
		}
	}

	return best, found
}

// boundingBoxTriangle builds a right triangle with legs twice the width and
// height of the axis-aligned bounding box, anchored at its min corner. Every
// box point (x,y) satisfies (x-minX)/2w + (y-minY)/2h ≤ 1, so the triangle
// encloses the whole set whenever the box is non-degenerate. The enclosure
// is still verified before returning.
func boundingBoxTriangle(points []geometry.Point) (geometry.Triangle, bool) {
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	w := maxX - minX
	h := maxY - minY
	tri := geometry.Triangle{
		{X: minX, Y: minY},
		{X: minX + 2*w, Y: minY},
		{X: minX, Y: minY + 2*h},
	}
	if tri.Area() < geometry.DegenerateAreaEpsilon || !tri.ContainsAll(points) {
		return geometry.Triangle{}, false
	}
	return tri, true
}

// extremeHeuristic picks up to three distinct extreme points (min-x, max-x,
// min-y, max-y) and falls back to the first three unique input points when
// fewer than three extremes are distinct. The result is best-effort only.
func extremeHeuristic(points []geometry.Point) geometry.Triangle {
	minX, maxX := points[0], points[0]
	minY, maxY := points[0], points[0]
	for _, p := range points[1:] {
		if p.X < minX.X {
			minX = p
		}
		if p.X > maxX.X {
			maxX = p
		}
		if p.Y < minY.Y {
			minY = p
		}
		if p.Y > maxY.Y {
			maxY = p
		}
	}

	extremes := geometry.Dedupe([]geometry.Point{minX, maxX, minY, maxY})
	if len(extremes) >= 3 {
		return geometry.Triangle{extremes[0], extremes[1], extremes[2]}
	}
	return geometry.Triangle{points[0], points[1], points[2]}
}
