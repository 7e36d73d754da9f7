// Package overlay renders analysis outcomes onto trichogram images: the
// enclosing triangle of each detection and a fixed-length growth-direction
// ray from the triangle's shortest edge toward its apex.
//
// Annotations are drawn on a transparent layer that is alpha-composited over
// a copy of the source image, so the input image is never modified. Ray
// colors encode the normalized detection class.
package overlay
