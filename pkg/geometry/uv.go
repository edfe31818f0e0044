package geometry

import (
	"fmt"

	"github.com/Faultbox/hlot/pkg/geomat"
)

// UVSpec assigns texture coordinates to the four corners of a box face.
// It holds either four corners (bottom-left, bottom-right, top-left,
// top-right) or two (bottom-left, top-right) that span an axis-aligned
// rectangle. An empty spec covers the whole texture.
type UVSpec [][2]float64

// UVFlipH mirrors the whole texture horizontally.
var UVFlipH = UVSpec{{1, 0}, {0, 0}, {1, 1}, {0, 1}}

// UVRect returns the two-corner spec for the rectangle (u0,v0)-(u1,v1).
func UVRect(u0, v0, u1, v1 float64) UVSpec {
	return UVSpec{{u0, v0}, {u1, v1}}
}

// Corners expands the spec to bottom-left, bottom-right, top-left and
// top-right coordinates.
func (s UVSpec) Corners() ([4][2]float64, error) {
	switch len(s) {
	case 0:
		return [4][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, nil
	case 2:
		x0, y0 := s[0][0], s[0][1]
		x1, y1 := s[1][0], s[1][1]
		return [4][2]float64{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}}, nil
	case 4:
		return [4][2]float64{s[0], s[1], s[2], s[3]}, nil
	default:
		return [4][2]float64{}, fmt.Errorf("%w: uv spec has %d corners, want 2 or 4", geomat.ErrInvalidParameter, len(s))
	}
}

// BoxUV holds one UV spec per box face. Missing faces use the full texture.
type BoxUV map[geomat.Face]UVSpec
