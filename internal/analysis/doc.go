// Package analysis runs the per-detection geometry pass: each detection's
// polygon gets a minimum enclosing triangle and, from that triangle, an
// orientation arrow pointing from the shortest edge toward the opposite
// vertex.
//
// Detections whose polygons collapse below three distinct points are kept in
// the output with no triangle rather than failing the batch. Batches can be
// processed sequentially or fanned out across a fixed worker pool; either
// way the output order matches the input order.
package analysis
