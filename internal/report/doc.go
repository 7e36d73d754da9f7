// Package report aggregates per-detection analysis outcomes into a single
// analysis report: class distribution, confidence statistics, terminal/vellus
// ratios, and triangle success rates.
//
// Raw class labels are normalized to strong, medium, weak, or unknown by
// case-insensitive substring match. Unknown detections do not contribute to
// counts, percentages, or ratios, but their confidences still feed the
// overall statistics and their triangulations still count as successes. An
// empty batch yields a reduced legacy report shape with an explicit error
// marker rather than a failure.
package report
