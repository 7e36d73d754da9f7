package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/trichoscope/trichogram/internal/analysis"
)

// Class is a normalized detection class.
type Class string

const (
	ClassStrong  Class = "strong"
	ClassMedium  Class = "medium"
	ClassWeak    Class = "weak"
	ClassUnknown Class = "unknown"
)

// classOrder is the substring match priority. A label containing several
// class substrings resolves to the first match.
var classOrder = []Class{ClassStrong, ClassMedium, ClassWeak}

// Classify maps a raw class label to a normalized class by case-insensitive
// substring match.
func Classify(label string) Class {
	lower := strings.ToLower(label)
	for _, c := range classOrder {
		if strings.Contains(lower, string(c)) {
			return c
		}
	}
	return ClassUnknown
}

// ConfidenceStats summarizes a list of confidence values. Std is the
// population standard deviation and is 0 for fewer than 2 samples.
type ConfidenceStats struct {
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Std     float64 `json:"std"`
	Count   int     `json:"count"`
}

// Ratios holds the clinical class ratios. The a:b strings render a zero
// denominator literally (e.g. "1:0").
type Ratios struct {
	TerminalVellus   string  `json:"terminal_vellus"`
	StrongMedium     string  `json:"strong_medium"`
	StrongPercentage float64 `json:"strong_percentage"`
	MediumPercentage float64 `json:"medium_percentage"`
	WeakPercentage   float64 `json:"weak_percentage"`
}

// TriangleAnalysis reports how many detections produced an enclosing
// triangle.
type TriangleAnalysis struct {
	SuccessfulTriangles int     `json:"successful_triangles"`
	SuccessRate         float64 `json:"success_rate"`
}

// Report is the aggregate analysis of one detection batch.
//
// For an empty batch only TotalCount, ClassDistribution, ConfidenceStats,
// and Error are emitted, matching the legacy report shape; the omitzero and
// omitempty tags carry that distinction.
type Report struct {
	TotalCount        int                        `json:"total_count"`
	ClassCounts       map[Class]int              `json:"class_counts,omitzero"`
	ClassPercentages  map[Class]float64          `json:"class_percentages,omitzero"`
	ClassDistribution map[Class]int              `json:"class_distribution,omitzero"`
	ConfidenceStats   map[string]ConfidenceStats `json:"confidence_stats"`
	Ratios            *Ratios                    `json:"ratios,omitempty"`
	TriangleAnalysis  *TriangleAnalysis          `json:"triangle_analysis,omitempty"`
	Error             string                     `json:"error,omitempty"`
}

// Generate aggregates analysis outcomes into a Report. An empty batch
// returns the legacy zeroed shape with an error marker; this is a defined
// success path, not a failure.
func Generate(outcomes []analysis.Outcome) Report {
	if len(outcomes) == 0 {
		return Report{
			ClassDistribution: map[Class]int{},
			ConfidenceStats:   map[string]ConfidenceStats{},
			Error:             "No detections found",
		}
	}

	counts := map[Class]int{ClassStrong: 0, ClassMedium: 0, ClassWeak: 0}
	classConfidences := map[Class][]float64{}
	var overall []float64
	total := 0
	successes := 0

	for _, o := range outcomes {
		class := Classify(o.Class)
		overall = append(overall, o.Confidence)
		if o.HasOrientation() {
			successes++
		}
		if class == ClassUnknown {
			continue
		}
		total++
		counts[class]++
		classConfidences[class] = append(classConfidences[class], o.Confidence)
	}

	percentages := map[Class]float64{}
	for _, c := range classOrder {
		percentages[c] = percentage(counts[c], total)
	}

	// Every class gets a stats entry; classes without samples are zeroed.
	stats := map[string]ConfidenceStats{
		"overall": summarize(overall),
	}
	for _, c := range classOrder {
		stats[string(c)] = summarize(classConfidences[c])
	}

	return Report{
		TotalCount:       total,
		ClassCounts:      counts,
		ClassPercentages: percentages,
		ConfidenceStats:  stats,
		Ratios: &Ratios{
			TerminalVellus:   fmt.Sprintf("%d:%d", counts[ClassStrong], counts[ClassWeak]),
			StrongMedium:     fmt.Sprintf("%d:%d", counts[ClassStrong], counts[ClassMedium]),
			StrongPercentage: percentages[ClassStrong],
			MediumPercentage: percentages[ClassMedium],
			WeakPercentage:   percentages[ClassWeak],
		},
		TriangleAnalysis: &TriangleAnalysis{
			SuccessfulTriangles: successes,
			SuccessRate:         percentage(successes, total),
		},
	}
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// summarize computes confidence statistics with population standard
// deviation; fewer than 2 samples yield std 0.
func summarize(samples []float64) ConfidenceStats {
	if len(samples) == 0 {
		return ConfidenceStats{}
	}

	s := ConfidenceStats{
		Min:   samples[0],
		Max:   samples[0],
		Count: len(samples),
	}
	sum := 0.0
	for _, v := range samples {
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Average = sum / float64(len(samples))

	if len(samples) >= 2 {
		variance := 0.0
		for _, v := range samples {
			d := v - s.Average
			variance += d * d
		}
		s.Std = math.Sqrt(variance / float64(len(samples)))
	}

	return s
}
