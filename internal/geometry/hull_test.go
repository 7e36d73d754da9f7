package geometry

import "testing"

// pointSetEqual compares two slices as sets under SamePoint equality.
func pointSetEqual(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for _, p := range a {
		found := false
		for _, q := range b {
			if SamePoint(p, q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// hullContains checks p against every hull edge with the CCW cross-product
// sweep. Points on the boundary count as inside.
func hullContains(hull []Point, p Point) bool {
	for i := range hull {
		a := hull[i]
		b := hull[(i+1)%len(hull)]
		if cross(a, b, p) < -1e-9 {
			return false
		}
	}
	return true
}

func TestConvexHull_Square(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {5, 5}} // center is interior

	hull := ConvexHull(pts)

	if len(hull) != 4 {
		t.Fatalf("hull size = %d, want 4", len(hull))
	}
	if hull[0] != (Point{0, 0}) {
		t.Errorf("hull starts at %v, want anchor (0,0)", hull[0])
	}

	// CCW order starting at the anchor.
	want := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	for i := range want {
		if hull[i] != want[i] {
			t.Errorf("hull[%d] = %v, want %v", i, hull[i], want[i])
		}
	}
}

func TestConvexHull_AnchorTieBreak(t *testing.T) {
	// Two points share the lowest Y; the leftmost must anchor the hull.
	pts := []Point{{8, 0}, {2, 0}, {5, 6}}

	hull := ConvexHull(pts)

	if hull[0] != (Point{2, 0}) {
		t.Errorf("anchor = %v, want (2,0)", hull[0])
	}
}

func TestConvexHull_FewPoints(t *testing.T) {
	pts := []Point{{1, 1}, {2, 2}}

	hull := ConvexHull(pts)

	if !pointSetEqual(hull, pts) {
		t.Errorf("hull of <3 points = %v, want input unchanged", hull)
	}
}

func TestConvexHull_Duplicates(t *testing.T) {
	pts := []Point{{0, 0}, {0, 0}, {4, 0}, {4, 0}, {2, 3}}

	hull := ConvexHull(pts)

	if len(hull) != 3 {
		t.Fatalf("hull size = %d, want 3 after dedupe", len(hull))
	}
}

func TestConvexHull_Collinear(t *testing.T) {
	pts := []Point{{0, 0}, {5, 5}, {10, 10}}

	hull := ConvexHull(pts)

	// Collinear sets collapse to their two extremes.
	if len(hull) != 2 {
		t.Fatalf("hull of collinear points = %v, want 2 extremes", hull)
	}
	if !pointSetEqual(hull, []Point{{0, 0}, {10, 10}}) {
		t.Errorf("hull = %v, want extremes (0,0) and (10,10)", hull)
	}
}

func TestConvexHull_InteriorPointsExcluded(t *testing.T) {
	pts := []Point{{0, 0}, {12, 0}, {6, 10}, {6, 3}, {5, 2}, {7, 4}}

	hull := ConvexHull(pts)

	if !pointSetEqual(hull, []Point{{0, 0}, {12, 0}, {6, 10}}) {
		t.Errorf("hull = %v, want only the outer triangle", hull)
	}
}

func TestConvexHull_ContainsAllInputPoints(t *testing.T) {
	pts := []Point{
		{3, 1}, {9, 2}, {12, 7}, {8, 11}, {2, 9}, {1, 4},
		{5, 5}, {6, 7}, {7, 3}, {4, 8},
	}

	hull := ConvexHull(pts)

	for _, p := range pts {
		if !hullContains(hull, p) {
			t.Errorf("input point %v lies outside the hull %v", p, hull)
		}
	}
}

func TestConvexHull_Idempotent(t *testing.T) {
	pts := []Point{
		{3, 1}, {9, 2}, {12, 7}, {8, 11}, {2, 9}, {1, 4},
		{5, 5}, {6, 7},
	}

	hull := ConvexHull(pts)
	again := ConvexHull(hull)

	if !pointSetEqual(hull, again) {
		t.Errorf("hull not idempotent:\nfirst  %v\nsecond %v", hull, again)
	}
}
