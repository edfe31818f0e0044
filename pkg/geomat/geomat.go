// Package geomat builds the affine matrices that place 2D shapes on the faces
// of an axis-aligned box and remap their texture coordinates.
//
// Face matrices are 3x4 (2D shape space to world space), UV matrices are 2x3
// (unit texture space to a rotated sub-rectangle of the texture). Both are
// immutable values built once per geometry call.
package geomat

import "errors"

// Errors shared by the geometry builders.
var (
	ErrInvalidParameter = errors.New("invalid geometry parameter")
	ErrTriangulation    = errors.New("triangulation failed")
)
