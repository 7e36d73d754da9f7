package triangle

import "github.com/trichoscope/trichogram/internal/geometry"

// Orientation is the canonical direction pair derived from a triangle:
// Start is the midpoint of the shortest edge and Apex is the vertex
// opposite that edge.
type Orientation struct {
	Start geometry.Point `json:"start"`
	Apex  geometry.Point `json:"apex"`
}

// Orient derives the orientation of a triangle. The shortest edge is chosen
// by iterating edges 0, 1, 2; exact length ties keep the lowest-indexed
// edge, making the result deterministic for any input.
func Orient(t geometry.Triangle) Orientation {
	shortest := 0
	best := geometry.Distance(t[0], t[1])
	for i := 1; i < 3; i++ {
		if l := geometry.Distance(t[i], t[(i+1)%3]); l < best {
			best = l
			shortest = i
		}
	}

	return Orientation{
		Start: geometry.Midpoint(t[shortest], t[(shortest+1)%3]),
		Apex:  t[(shortest+2)%3],
	}
}

// Properties summarizes a triangle's basic metrics.
type Properties struct {
	Area         float64        `json:"area"`
	Perimeter    float64        `json:"perimeter"`
	Sides        [3]float64     `json:"sides"`
	ShortestSide float64        `json:"shortest_side"`
	LongestSide  float64        `json:"longest_side"`
	Centroid     geometry.Point `json:"centroid"`
}

// Describe computes the metric summary of a triangle.
func Describe(t geometry.Triangle) Properties {
	var p Properties
	p.Area = t.Area()
	for i := 0; i < 3; i++ {
		p.Sides[i] = geometry.Distance(t[i], t[(i+1)%3])
		p.Perimeter += p.Sides[i]
	}
	p.ShortestSide = p.Sides[0]
	p.LongestSide = p.Sides[0]
	for _, s := range p.Sides[1:] {
		if s < p.ShortestSide {
			p.ShortestSide = s
		}
		if s > p.LongestSide {
			p.LongestSide = s
		}
	}
	p.Centroid = geometry.Point{
		X: (t[0].X + t[1].X + t[2].X) / 3,
		Y: (t[0].Y + t[1].Y + t[2].Y) / 3,
	}
	return p
}
