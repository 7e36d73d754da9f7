package overlay

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/trichoscope/trichogram/internal/analysis"
	"github.com/trichoscope/trichogram/internal/geometry"
	"github.com/trichoscope/trichogram/internal/report"
)

const (
	// RayLength is the fixed pixel length of the growth-direction ray.
	RayLength = 80.0

	rayThickness      = 3
	triangleThickness = 2
	arrowheadLength   = 12.0
	arrowheadAngle    = math.Pi / 6
)

// Class palette. Rays are colored by normalized class; triangles always use
// the triangle color.
var (
	classHex = map[report.Class]string{
		report.ClassStrong: "#00ff00",
		report.ClassMedium: "#ffff00",
		report.ClassWeak:   "#ff0000",
	}
	defaultHex  = "#00ff00"
	triangleHex = "#0000ff"
)

// Options controls which annotations Annotate draws.
type Options struct {
	// Triangles draws the enclosing triangle outline of each detection in
	// addition to its direction ray.
	Triangles bool
}

// Annotate composites detection annotations over a copy of img and returns
// the result. Outcomes without an orientation are skipped. The source image
// is not modified.
func Annotate(img image.Image, outcomes []analysis.Outcome, opts Options) image.Image {
	base := imaging.Clone(img)
	layer := image.NewNRGBA(base.Bounds())

	for _, o := range outcomes {
		if !o.HasOrientation() {
			continue
		}
		if opts.Triangles {
			drawTriangle(layer, *o.Triangle)
		}
		drawRay(layer, *o.ArrowStart, *o.ArrowEnd, classColor(o.Class))
	}

	return blend.Normal(base, layer)
}

// classColor resolves the ray color for a raw class label.
func classColor(label string) color.NRGBA {
	hex, ok := classHex[report.Classify(label)]
	if !ok {
		hex = defaultHex
	}
	return hexColor(hex)
}

// hexColor parses "#rrggbb" into an opaque NRGBA, falling back to green for
// malformed values.
func hexColor(hex string) color.NRGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{G: 255, A: 255}
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func drawTriangle(dst *image.NRGBA, t geometry.Triangle) {
	c := hexColor(triangleHex)
	for i := 0; i < 3; i++ {
		drawLine(dst, t[i], t[(i+1)%3], c, triangleThickness)
	}
}

// drawRay draws a fixed-length ray from start toward apex, with an
// arrowhead at the tip. Coincident endpoints leave nothing to draw.
func drawRay(dst *image.NRGBA, start, apex geometry.Point, c color.NRGBA) {
	dx := apex.X - start.X
	dy := apex.Y - start.Y
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		return
	}

	dx /= length
	dy /= length
	tip := geometry.Point{X: start.X + dx*RayLength, Y: start.Y + dy*RayLength}
	drawLine(dst, start, tip, c, rayThickness)

	// Arrowhead: two strokes swept back from the tip.
	angle := math.Atan2(dy, dx)
	for _, sign := range []float64{1, -1} {
		a := angle + math.Pi + sign*arrowheadAngle
		wing := geometry.Point{
			X: tip.X + math.Cos(a)*arrowheadLength,
			Y: tip.Y + math.Sin(a)*arrowheadLength,
		}
		drawLine(dst, tip, wing, c, rayThickness)
	}
}

// drawLine stamps a square brush along the segment from a to b. Pixels
// outside the image bounds are clipped.
func drawLine(dst *image.NRGBA, a, b geometry.Point, c color.NRGBA, thickness int) {
	steps := int(math.Ceil(math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y))))
	if steps == 0 {
		stamp(dst, int(math.Round(a.X)), int(math.Round(a.Y)), c, thickness)
		return
	}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(a.X + (b.X-a.X)*t))
		y := int(math.Round(a.Y + (b.Y-a.Y)*t))
		stamp(dst, x, y, c, thickness)
	}
}

func stamp(dst *image.NRGBA, x, y int, c color.NRGBA, thickness int) {
	r := thickness / 2
	bounds := dst.Bounds()
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			px, py := x+dx, y+dy
			if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
				dst.SetNRGBA(px, py, c)
			}
		}
	}
}
