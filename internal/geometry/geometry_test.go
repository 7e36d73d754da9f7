package geometry

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{name: "same point", a: Point{1, 1}, b: Point{1, 1}, want: 0},
		{name: "unit x", a: Point{0, 0}, b: Point{1, 0}, want: 1},
		{name: "3-4-5", a: Point{0, 0}, b: Point{3, 4}, want: 5},
		{name: "negative coords", a: Point{-3, -4}, b: Point{0, 0}, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMidpoint(t *testing.T) {
	got := Midpoint(Point{0, 0}, Point{4, 6})
	want := Point{2, 3}
	if got != want {
		t.Errorf("Midpoint = %v, want %v", got, want)
	}
}

func TestTriangleArea(t *testing.T) {
	tri := Triangle{{0, 0}, {4, 0}, {0, 3}}
	if got := tri.Area(); math.Abs(got-6) > 1e-12 {
		t.Errorf("Area = %v, want 6", got)
	}
}

func TestTriangleArea_WindingIndependent(t *testing.T) {
	ccw := Triangle{{0, 0}, {4, 0}, {0, 3}}
	cw := Triangle{{0, 0}, {0, 3}, {4, 0}}

	if ccw.Area() != cw.Area() {
		t.Errorf("area depends on winding: ccw=%v cw=%v", ccw.Area(), cw.Area())
	}
}

func TestTriangleArea_Degenerate(t *testing.T) {
	tri := Triangle{{0, 0}, {5, 5}, {10, 10}}
	if got := tri.Area(); got > DegenerateAreaEpsilon {
		t.Errorf("collinear triangle area = %v, want ~0", got)
	}
}

func TestTriangleContains(t *testing.T) {
	tri := Triangle{{0, 0}, {10, 0}, {0, 10}}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{name: "interior", p: Point{2, 2}, want: true},
		{name: "vertex", p: Point{0, 0}, want: true},
		{name: "on edge", p: Point{5, 0}, want: true},
		{name: "on hypotenuse", p: Point{5, 5}, want: true},
		{name: "outside", p: Point{8, 8}, want: false},
		{name: "far outside", p: Point{-5, -5}, want: false},
		{name: "just inside tolerance", p: Point{0, -1e-12}, want: true},
		{name: "beyond tolerance", p: Point{0, -1e-6}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tri.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestTriangleContains_Degenerate(t *testing.T) {
	tri := Triangle{{0, 0}, {5, 5}, {10, 10}}

	// A degenerate triangle contains nothing, not even its own vertices.
	if tri.Contains(Point{5, 5}) {
		t.Error("degenerate triangle should not contain any point")
	}
}

func TestTriangleContainsAll(t *testing.T) {
	tri := Triangle{{0, 0}, {10, 0}, {0, 10}}

	inside := []Point{{1, 1}, {2, 3}, {5, 0}}
	if !tri.ContainsAll(inside) {
		t.Error("ContainsAll should accept interior and boundary points")
	}

	mixed := []Point{{1, 1}, {9, 9}}
	if tri.ContainsAll(mixed) {
		t.Error("ContainsAll should reject a set with an outside point")
	}
}

func TestDedupe(t *testing.T) {
	pts := []Point{
		{1, 1},
		{2, 2},
		{1 + 1e-12, 1 - 1e-12}, // duplicate of first within epsilon
		{3, 3},
		{2, 2}, // exact duplicate
	}

	got := Dedupe(pts)
	want := []Point{{1, 1}, {2, 2}, {3, 3}}

	if len(got) != len(want) {
		t.Fatalf("Dedupe returned %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Dedupe[%d] = %v, want %v (order must be preserved)", i, got[i], want[i])
		}
	}
}

func TestDedupe_Empty(t *testing.T) {
	if got := Dedupe(nil); len(got) != 0 {
		t.Errorf("Dedupe(nil) = %v, want empty", got)
	}
}

func TestSamePoint(t *testing.T) {
	if !SamePoint(Point{1, 1}, Point{1 + 1e-10, 1}) {
		t.Error("points within epsilon should be the same")
	}
	if SamePoint(Point{1, 1}, Point{1.001, 1}) {
		t.Error("points beyond epsilon should differ")
	}
}
