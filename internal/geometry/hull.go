package geometry

import (
	"math"
	"sort"
)

// ConvexHull computes the convex hull of a point set using a Graham scan.
//
// The input is treated purely as a point set: duplicates (within
// DedupeEpsilon) are collapsed and insertion order carries no meaning beyond
// the polar-angle sort. Self-intersecting polygons are therefore handled the
// same as any other point cloud.
//
// Returns hull vertices in counter-clockwise order starting at the anchor
// (lowest Y, ties broken by lowest X). If fewer than MinPolygonPoints unique
// points remain after deduplication, they are returned unchanged: a defined
// degenerate result, not an error. Collinear point sets collapse to their
// two extremes.
//
// The computation is idempotent: re-running it on its own output yields the
// same point set, possibly rotated.
func ConvexHull(pts []Point) []Point {
	unique := Dedupe(pts)
	if len(unique) < MinPolygonPoints {
		return unique
	}

	// Anchor: lowest Y, then lowest X.
	anchor := unique[0]
	for _, p := range unique[1:] {
		if p.Y < anchor.Y || (p.Y == anchor.Y && p.X < anchor.X) {
			anchor = p
		}
	}

	rest := make([]Point, 0, len(unique)-1)
	for _, p := range unique {
		if p != anchor {
			rest = append(rest, p)
		}
	}

	// Sort by polar angle around the anchor; equal angles put the closer
	// point first so the scan pops it.
	sort.Slice(rest, func(i, j int) bool {
		ai := math.Atan2(rest[i].Y-anchor.Y, rest[i].X-anchor.X)
		aj := math.Atan2(rest[j].Y-anchor.Y, rest[j].X-anchor.X)
		if ai != aj {
			return ai < aj
		}
		return squaredDistance(anchor, rest[i]) < squaredDistance(anchor, rest[j])
	})

	hull := make([]Point, 0, len(unique))
	hull = append(hull, anchor)
	for _, p := range rest {
		for len(hull) > 1 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	return hull
}

// cross returns the z component of (a-o) × (b-o). Positive means the turn
// o→a→b is counter-clockwise.
func cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func squaredDistance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}
