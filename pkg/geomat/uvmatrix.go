package geomat

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotation is a texture rotation in 90 degree counter-clockwise steps.
type Rotation int

// Texture rotations turn about the centre of the bounds, so under Rot90
// the point (0,0) maps to (u0+du, v0).
const (
	Rot0 Rotation = iota
	Rot90
	Rot180
	Rot270
)

// Valid reports whether r is one of the four supported steps.
func (r Rotation) Valid() bool {
	return r >= Rot0 && r <= Rot270
}

// UVMatrix is a 2x3 affine texture transform:
//
//	u' = a*u + b*v + c
//	v' = d*u + e*v + f
type UVMatrix mgl64.Mat2x3

// uvTemplates maps the unit square onto the rectangle at (u0, v0) with
// extent (du, dv), rotated about the rectangle's centre. Rows are
// [a b c] and [d e f].
var uvTemplates = [...]func(u0, v0, du, dv float64) (mgl64.Vec3, mgl64.Vec3){
	Rot0: func(u0, v0, du, dv float64) (mgl64.Vec3, mgl64.Vec3) {
		return mgl64.Vec3{du, 0, u0}, mgl64.Vec3{0, dv, v0}
	},
	Rot90: func(u0, v0, du, dv float64) (mgl64.Vec3, mgl64.Vec3) {
		return mgl64.Vec3{0, -du, u0 + du}, mgl64.Vec3{dv, 0, v0}
	},
	Rot180: func(u0, v0, du, dv float64) (mgl64.Vec3, mgl64.Vec3) {
		return mgl64.Vec3{-du, 0, u0 + du}, mgl64.Vec3{0, -dv, v0 + dv}
	},
	Rot270: func(u0, v0, du, dv float64) (mgl64.Vec3, mgl64.Vec3) {
		return mgl64.Vec3{0, du, u0}, mgl64.Vec3{-dv, 0, v0 + dv}
	},
}

// IdentityUV returns the transform that leaves texture coordinates unchanged.
func IdentityUV() UVMatrix {
	return UVMatrix(mgl64.Mat2x3FromRows(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}))
}

// UnitBounds covers the whole texture.
var UnitBounds = [4]float64{0, 0, 1, 1}

// BuildUVMatrix returns the transform that maps unit texture space into
// bounds (u0, v0, u1, v1), rotated by rot. When flip is set the result is
// mirrored horizontally inside bounds.
func BuildUVMatrix(bounds [4]float64, rot Rotation, flip bool) (UVMatrix, error) {
	if !rot.Valid() {
		return UVMatrix{}, fmt.Errorf("%w: rotation step %d not in 0..3", ErrInvalidParameter, int(rot))
	}

	u0, v0, u1, v1 := bounds[0], bounds[1], bounds[2], bounds[3]
	rowU, rowV := uvTemplates[rot](u0, v0, u1-u0, v1-v0)

	if flip {
		rowU = rowU.Mul(-1)
		rowU[2] += u0 + u1
	}

	return UVMatrix(mgl64.Mat2x3FromRows(rowU, rowV)), nil
}

// Apply transforms the texture coordinate (u, v).
func (m UVMatrix) Apply(u, v float64) (float64, float64) {
	r := mgl64.Mat2x3(m).Mul3x1(mgl64.Vec3{u, v, 1})
	return r[0], r[1]
}

// Mul returns the transform that applies other first, then m.
func (m UVMatrix) Mul(other UVMatrix) UVMatrix {
	a := m.Coefficients()
	b := other.Coefficients()
	return UVMatrix(mgl64.Mat2x3FromRows(
		mgl64.Vec3{
			a[0]*b[0] + a[1]*b[3],
			a[0]*b[1] + a[1]*b[4],
			a[0]*b[2] + a[1]*b[5] + a[2],
		},
		mgl64.Vec3{
			a[3]*b[0] + a[4]*b[3],
			a[3]*b[1] + a[4]*b[4],
			a[3]*b[2] + a[4]*b[5] + a[5],
		},
	))
}

// Coefficients returns [a b c d e f] in row-major order.
func (m UVMatrix) Coefficients() [6]float64 {
	mm := mgl64.Mat2x3(m)
	r0, r1 := mm.Row(0), mm.Row(1)
	return [6]float64{r0[0], r0[1], r0[2], r1[0], r1[1], r1[2]}
}
