// Package triangle finds the smallest triangle enclosing a detected shape
// and derives a canonical growth direction from it.
//
// # Solver policy
//
// MinimumEnclosing searches in order of preference:
//
//  1. A triangular convex hull is returned directly; it is by definition the
//     minimum enclosing triangle of itself.
//  2. Brute force over all C(h,3) triangles formed from hull vertices,
//     keeping the smallest one that encloses every input point. O(h³·n);
//     fine for hulls of tens of vertices, not hundreds.
//  3. An extended search over hull-vertex pairs combined with a third vertex
//     drawn from the hull and the raw input points.
//  4. A right triangle spanning twice the axis-aligned bounding box. For any
//     non-degenerate box this triangle provably encloses the whole set (and
//     is optimal when the hull is the box itself).
//  5. A last-resort heuristic built from up to three distinct extreme points.
//     This triangle is NOT guaranteed to enclose the input; results from
//     this stage carry VerifiedEnclosing=false so callers can tell proven
//     results from best-effort ones.
//
// Stages 2 and 3 exist for tolerance edge cases: a triangle whose vertices
// are input points can only enclose the whole set when the hull is (within
// epsilon of) a triangle, so most multi-vertex hulls resolve at stage 4.
//
// Degenerate candidates (area below geometry.DegenerateAreaEpsilon) are
// skipped during every search stage and are never returned as the answer.
//
// # Orientation
//
// Orient picks the triangle's shortest edge (exact ties resolve to the
// lowest edge index) and returns the edge midpoint as the start point and
// the opposite vertex as the apex. Downstream rendering draws a fixed-length
// ray from start toward apex.
package triangle
