package ingest

import (
	"errors"
	"fmt"

	"github.com/antonholmquist/jason"

	"github.com/trichoscope/trichogram/internal/geometry"
)

// ErrInvalidPayload is returned when the top level of a prediction payload
// is not a list (or a workflow envelope containing one). This is the only
// batch-level contract violation; every other problem is isolated to the
// prediction that carries it.
var ErrInvalidPayload = errors.New("prediction payload is not a list")

// Detection is one upstream prediction resolved to a uniform shape: an
// identifier, its raw class label, a confidence in [0,1], and a polygon in
// pixel space. When the prediction carried only a bounding box, Polygon
// holds the four synthesized rectangle corners.
type Detection struct {
	ID         string
	Class      string
	Confidence float64
	Polygon    []geometry.Point
}

// ParsePayload parses an upstream prediction payload.
//
// Accepted top-level shapes:
//   - a bare list of prediction objects
//   - the workflow envelope [{"predictions": {"predictions": [...]}}]
//
// Predictions that yield neither polygon points nor a usable bounding box
// are dropped. Entries that are not objects are dropped. Missing identifiers
// are synthesized as "det_<n>" with n the position among kept detections.
func ParsePayload(data []byte) ([]Detection, error) {
	root, err := jason.NewValueFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode predictions: %w", err)
	}

	items, err := root.Array()
	if err != nil {
		return nil, ErrInvalidPayload
	}

	preds := items
	if len(items) > 0 {
		if envelope, err := items[0].Object(); err == nil {
			if inner, err := envelope.GetValueArray("predictions", "predictions"); err == nil {
				preds = inner
			}
		}
	}

	detections := make([]Detection, 0, len(preds))
	for _, v := range preds {
		obj, err := v.Object()
		if err != nil {
			continue
		}
		if d, ok := parsePrediction(obj, len(detections)); ok {
			detections = append(detections, d)
		}
	}

	return detections, nil
}

func parsePrediction(obj *jason.Object, index int) (Detection, bool) {
	id, err := obj.GetString("detection_id")
	if err != nil || id == "" {
		id, err = obj.GetString("id")
		if err != nil || id == "" {
			id = fmt.Sprintf("det_%d", index)
		}
	}

	class, err := obj.GetString("class")
	if err != nil {
		class = "unknown"
	}

	confidence, err := obj.GetFloat64("confidence")
	if err != nil {
		confidence = 0
	}

	polygon := extractPolygon(obj)
	if len(polygon) == 0 {
		polygon = boundingBoxPolygon(obj)
	}
	if len(polygon) == 0 {
		// No coordinate data at all: drop the entry.
		return Detection{}, false
	}

	return Detection{
		ID:         id,
		Class:      class,
		Confidence: confidence,
		Polygon:    polygon,
	}, true
}

// extractPolygon pulls polygon points out of a prediction, trying the known
// upstream encodings in order.
func extractPolygon(obj *jason.Object) []geometry.Point {
	// Points as a list of {x,y} objects or [x,y] pairs.
	if vals, err := obj.GetValueArray("points"); err == nil {
		if pts := parsePointList(vals); len(pts) > 0 {
			return pts
		}
	}

	// Flat polygon list [x1, y1, x2, y2, ...]; at least three points.
	for _, key := range []string{"polygon", "poly"} {
		vals, err := obj.GetValueArray(key)
		if err != nil || len(vals) < 6 {
			continue
		}
		if pts := parseFlatList(vals); len(pts) > 0 {
			return pts
		}
	}

	// Segmentation object with nested points.
	for _, key := range []string{"segmentation", "mask", "points_polygon"} {
		seg, err := obj.GetObject(key)
		if err != nil {
			continue
		}
		for _, inner := range []string{"points", "polygon"} {
			if vals, err := seg.GetValueArray(inner); err == nil {
				if pts := parsePointList(vals); len(pts) > 0 {
					return pts
				}
			}
		}
	}

	// Multiple segments: pick the longest polygon.
	for _, key := range []string{"segments", "polygons"} {
		vals, err := obj.GetValueArray(key)
		if err != nil {
			continue
		}
		var best []geometry.Point
		for _, seg := range vals {
			inner, err := seg.Array()
			if err != nil {
				continue
			}
			if pts := parsePointList(inner); len(pts) > len(best) {
				best = pts
			}
		}
		if len(best) > 0 {
			return best
		}
	}

	return nil
}

// parsePointList reads point values that are either {x,y} objects or [x,y]
// pairs, skipping malformed entries.
func parsePointList(vals []*jason.Value) []geometry.Point {
	pts := make([]geometry.Point, 0, len(vals))
	for _, v := range vals {
		if o, err := v.Object(); err == nil {
			x, errX := o.GetFloat64("x")
			y, errY := o.GetFloat64("y")
			if errX == nil && errY == nil {
				pts = append(pts, geometry.Point{X: x, Y: y})
			}
			continue
		}
		if pair, err := v.Array(); err == nil && len(pair) >= 2 {
			x, errX := pair[0].Float64()
			y, errY := pair[1].Float64()
			if errX == nil && errY == nil {
				pts = append(pts, geometry.Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// parseFlatList reads [x1, y1, x2, y2, ...] into points. A trailing
// unpaired coordinate is ignored.
func parseFlatList(vals []*jason.Value) []geometry.Point {
	pts := make([]geometry.Point, 0, len(vals)/2)
	for i := 0; i+1 < len(vals); i += 2 {
		x, errX := vals[i].Float64()
		y, errY := vals[i+1].Float64()
		if errX != nil || errY != nil {
			return nil
		}
		pts = append(pts, geometry.Point{X: x, Y: y})
	}
	return pts
}

// boundingBoxPolygon synthesizes the four corners of a center-based
// bounding box {x, y, width, height}. Returns nil when width or height is
// missing or non-positive.
func boundingBoxPolygon(obj *jason.Object) []geometry.Point {
	w, errW := obj.GetFloat64("width")
	h, errH := obj.GetFloat64("height")
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return nil
	}

	x, err := obj.GetFloat64("x")
	if err != nil {
		x = 0
	}
	y, err := obj.GetFloat64("y")
	if err != nil {
		y = 0
	}

	halfW, halfH := w/2, h/2
	return []geometry.Point{
		{X: x - halfW, Y: y - halfH},
		{X: x + halfW, Y: y - halfH},
		{X: x + halfW, Y: y + halfH},
		{X: x - halfW, Y: y + halfH},
	}
}
