package triangle

import (
	"math"
	"testing"

	"github.com/trichoscope/trichogram/internal/geometry"
)

func TestOrient(t *testing.T) {
	// Edges: 0:(0,0)-(4,0) len 4, 1:(4,0)-(2,3) len √13, 2:(2,3)-(0,0) len √13.
	// Edges 1 and 2 tie exactly; the lower index wins, so the start point is
	// the midpoint of edge 1 and the apex is vertex 0.
	tri := geometry.Triangle{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 3}}

	o := Orient(tri)

	wantStart := geometry.Point{X: 3, Y: 1.5}
	wantApex := geometry.Point{X: 0, Y: 0}
	if o.Start != wantStart {
		t.Errorf("Start = %v, want %v", o.Start, wantStart)
	}
	if o.Apex != wantApex {
		t.Errorf("Apex = %v, want %v", o.Apex, wantApex)
	}
}

func TestOrient_ShortestEdge(t *testing.T) {
	// Edge lengths: 0 is 20, 1 is the hypotenuse, 2 is 8.
	tri := geometry.Triangle{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 0, Y: 8}}

	o := Orient(tri)

	// Shortest is edge 2: (0,8)-(0,0), midpoint (0,4), apex vertex 1.
	if o.Start != (geometry.Point{X: 0, Y: 4}) {
		t.Errorf("Start = %v, want (0,4)", o.Start)
	}
	if o.Apex != (geometry.Point{X: 20, Y: 0}) {
		t.Errorf("Apex = %v, want (20,0)", o.Apex)
	}
}

func TestOrient_ExactTieBreak(t *testing.T) {
	// Edges 0 and 1 are both exactly length 4 in float64; the lowest-indexed
	// edge (0) must win.
	tri := geometry.Triangle{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}}

	o := Orient(tri)

	if o.Start != (geometry.Point{X: 2, Y: 0}) {
		t.Errorf("Start = %v, want midpoint of edge 0 (2,0)", o.Start)
	}
	if o.Apex != (geometry.Point{X: 4, Y: 4}) {
		t.Errorf("Apex = %v, want vertex 2", o.Apex)
	}
}

func TestOrient_Deterministic(t *testing.T) {
	tri := geometry.Triangle{{X: 3, Y: 7}, {X: 9, Y: 2}, {X: 12, Y: 11}}

	first := Orient(tri)
	second := Orient(tri)

	if first != second {
		t.Errorf("Orient not deterministic: %+v vs %+v", first, second)
	}
}

func TestDescribe(t *testing.T) {
	tri := geometry.Triangle{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}}

	p := Describe(tri)

	if math.Abs(p.Area-6) > 1e-12 {
		t.Errorf("Area = %v, want 6", p.Area)
	}
	if math.Abs(p.Perimeter-12) > 1e-12 {
		t.Errorf("Perimeter = %v, want 12", p.Perimeter)
	}
	if p.ShortestSide != 3 {
		t.Errorf("ShortestSide = %v, want 3", p.ShortestSide)
	}
	if p.LongestSide != 5 {
		t.Errorf("LongestSide = %v, want 5", p.LongestSide)
	}
	wantCentroid := geometry.Point{X: 4.0 / 3, Y: 1}
	if math.Abs(p.Centroid.X-wantCentroid.X) > 1e-12 || math.Abs(p.Centroid.Y-wantCentroid.Y) > 1e-12 {
		t.Errorf("Centroid = %v, want %v", p.Centroid, wantCentroid)
	}
}
