// Package geometry provides the 2D primitives shared by the triangle solver
// and the analysis pipeline: points, triangles, distance, area, containment
// tests, point deduplication, and convex hull computation.
//
// All types are plain values with structural equality; no function mutates
// its input. Coordinates are in image pixel space with (0,0) at the top-left
// corner, X increasing rightward and Y increasing downward. No unit system
// is assumed.
//
// # Tolerances
//
// Floating-point comparisons never use exact equality. Two named tolerances
// govern all operations:
//
//   - DedupeEpsilon (1e-9): two points closer than this on both axes are the
//     same point. Used when collapsing polygons to point sets.
//   - InclusionEpsilon (1e-10): slack for containment tests. A point whose
//     barycentric weights are all ≥ -InclusionEpsilon counts as inside; this
//     keeps hull vertices from failing inclusion in triangles built from the
//     very same vertices.
//
// # Thread Safety
//
// Every function is pure and safe for unsynchronized concurrent use.
package geometry
