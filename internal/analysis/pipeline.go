package analysis

import (
	"log/slog"
	"sync"

	"github.com/trichoscope/trichogram/internal/geometry"
	"github.com/trichoscope/trichogram/internal/ingest"
	"github.com/trichoscope/trichogram/internal/triangle"
)

// Outcome is the geometry result for one detection. Triangle and the arrow
// endpoints are nil when the polygon was too degenerate to triangulate.
type Outcome struct {
	DetectionID       string             `json:"detection_id"`
	Class             string             `json:"class"`
	Confidence        float64            `json:"confidence"`
	Triangle          *geometry.Triangle `json:"triangle_vertices,omitempty"`
	ArrowStart        *geometry.Point    `json:"arrow_start,omitempty"`
	ArrowEnd          *geometry.Point    `json:"arrow_end,omitempty"`
	VerifiedEnclosing bool               `json:"verified_enclosing"`
}

// HasOrientation reports whether the detection produced a triangle and the
// arrow derived from it.
func (o Outcome) HasOrientation() bool {
	return o.Triangle != nil && o.ArrowStart != nil && o.ArrowEnd != nil
}

// Pipeline runs the triangle and orientation pass over detection batches.
type Pipeline struct {
	solver  *triangle.Solver
	log     *slog.Logger
	workers int
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithWorkers sets the number of detections processed concurrently.
// Values below 2 keep processing sequential.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		p.workers = n
	}
}

// WithLogger sets the pipeline logger.
func WithLogger(log *slog.Logger) Option {
	return func(p *Pipeline) {
		p.log = log
	}
}

// NewPipeline builds a Pipeline. Without options it runs sequentially and
// discards logs.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{workers: 1}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = slog.New(slog.DiscardHandler)
	}
	p.solver = triangle.NewSolver(p.log)
	return p
}

// Process computes an Outcome for every detection. The returned slice is
// index-aligned with the input regardless of worker count.
func (p *Pipeline) Process(dets []ingest.Detection) []Outcome {
	outcomes := make([]Outcome, len(dets))

	if p.workers < 2 || len(dets) < 2 {
		for i, d := range dets {
			outcomes[i] = p.processOne(d)
		}
		return outcomes
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	workers := p.workers
	if workers > len(dets) {
		workers = len(dets)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcomes[i] = p.processOne(dets[i])
			}
		}()
	}
	for i := range dets {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return outcomes
}

func (p *Pipeline) processOne(d ingest.Detection) Outcome {
	out := Outcome{
		DetectionID: d.ID,
		Class:       d.Class,
		Confidence:  d.Confidence,
	}

	if len(geometry.Dedupe(d.Polygon)) < geometry.MinPolygonPoints {
		p.log.Debug("skipping degenerate polygon",
			"detection_id", d.ID, "points", len(d.Polygon))
		return out
	}

	res, err := p.solver.MinimumEnclosing(d.Polygon)
	if err != nil {
		p.log.Warn("enclosing triangle failed",
			"detection_id", d.ID, "error", err)
		return out
	}

	tri := res.Vertices
	orient := triangle.Orient(tri)

	out.Triangle = &tri
	out.ArrowStart = &orient.Start
	out.ArrowEnd = &orient.Apex
	out.VerifiedEnclosing = res.VerifiedEnclosing

	props := triangle.Describe(tri)
	p.log.Debug("detection analyzed",
		"detection_id", d.ID,
		"class", d.Class,
		"area", props.Area,
		"perimeter", props.Perimeter,
		"verified", res.VerifiedEnclosing)

	return out
}
