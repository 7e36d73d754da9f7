// Package ingest parses prediction payloads produced by the upstream
// detection service into uniform polygon-backed detections.
//
// The upstream contract is loose: predictions arrive either as a bare JSON
// list or wrapped in a workflow envelope, and the polygon for a prediction
// can be encoded half a dozen ways (point objects, coordinate pairs, flat
// polygon lists, nested segmentation objects, or multiple segments).
// Predictions without any polygon carry a center-based bounding box instead.
// All of that variance is resolved here, once, so downstream packages only
// ever see a Detection with a plain point slice.
//
// Per-entry failures are isolated: a malformed prediction is dropped and the
// rest of the batch parses normally. The only batch-level error is a payload
// whose top level is not a list at all.
package ingest
