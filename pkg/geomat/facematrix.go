package geomat

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FaceMatrix is a 3x4 affine transform from shape space to world space.
// The x and y columns span the face; the z column is the face's outward
// normal.
type FaceMatrix mgl64.Mat3x4

// faceTemplates places a w x h shape on each side of a box anchored at o.
// Each template returns the three rows of the matrix.
var faceTemplates = [...]func(w, h float64, o [3]float64) (mgl64.Vec4, mgl64.Vec4, mgl64.Vec4){
	FaceFront: func(w, h float64, o [3]float64) (mgl64.Vec4, mgl64.Vec4, mgl64.Vec4) {
		return mgl64.Vec4{1, 0, 0, o[0]},
			mgl64.Vec4{0, 1, 0, o[1]},
			mgl64.Vec4{0, 0, 1, o[2]}
	},
	// Mirror of front, shifted right by the width.
	FaceBack: func(w, h float64, o [3]float64) (mgl64.Vec4, mgl64.Vec4, mgl64.Vec4) {
		return mgl64.Vec4{-1, 0, 0, o[0] + w},
			mgl64.Vec4{0, 1, 0, o[1]},
			mgl64.Vec4{0, 0, -1, o[2]}
	},
	// Shape y runs along world z.
	FaceBottom: func(w, h float64, o [3]float64) (mgl64.Vec4, mgl64.Vec4, mgl64.Vec4) {
		return mgl64.Vec4{1, 0, 0, o[0]},
			mgl64.Vec4{0, 0, -1, o[1]},
			mgl64.Vec4{0, 1, 0, o[2]}
	},
	FaceTop: func(w, h float64, o [3]float64) (mgl64.Vec4, mgl64.Vec4, mgl64.Vec4) {
		return mgl64.Vec4{1, 0, 0, o[0]},
			mgl64.Vec4{0, 0, 1, o[1]},
			mgl64.Vec4{0, -1, 0, o[2] + h}
	},
	// Shape x runs along world z.
	FaceLeft: func(w, h float64, o [3]float64) (mgl64.Vec4, mgl64.Vec4, mgl64.Vec4) {
		return mgl64.Vec4{0, 0, -1, o[0]},
			mgl64.Vec4{0, 1, 0, o[1]},
			mgl64.Vec4{1, 0, 0, o[2]}
	},
	FaceRight: func(w, h float64, o [3]float64) (mgl64.Vec4, mgl64.Vec4, mgl64.Vec4) {
		return mgl64.Vec4{0, 0, 1, o[0]},
			mgl64.Vec4{0, 1, 0, o[1]},
			mgl64.Vec4{-1, 0, 0, o[2] + w}
	},
}

// BuildFaceMatrix returns the transform that places a width x height shape
// on the given face of a box anchored at origin.
func BuildFaceMatrix(face Face, width, height float64, origin [3]float64) (FaceMatrix, error) {
	if !face.Valid() {
		return FaceMatrix{}, fmt.Errorf("%w: unknown face %d", ErrInvalidParameter, int(face))
	}
	if !positive(width) || !positive(height) {
		return FaceMatrix{}, fmt.Errorf("%w: face size %gx%g must be positive", ErrInvalidParameter, width, height)
	}

	r0, r1, r2 := faceTemplates[face](width, height, origin)
	return FaceMatrix(mgl64.Mat3x4FromRows(r0, r1, r2)), nil
}

// Apply transforms the point (x, y, z). Shape points use z = 0.
func (m FaceMatrix) Apply(x, y, z float64) (float64, float64, float64) {
	r := mgl64.Mat3x4(m).Mul4x1(mgl64.Vec4{x, y, z, 1})
	return r[0], r[1], r[2]
}

// Normal returns the outward unit normal of the face.
func (m FaceMatrix) Normal() [3]float64 {
	x1, y1, z1 := m.Apply(0, 0, 1)
	x0, y0, z0 := m.Apply(0, 0, 0)
	return [3]float64{x1 - x0, y1 - y0, z1 - z0}
}

// Coefficients returns the twelve entries in row-major order.
func (m FaceMatrix) Coefficients() [12]float64 {
	mm := mgl64.Mat3x4(m)
	var c [12]float64
	for row := 0; row < 3; row++ {
		r := mm.Row(row)
		copy(c[row*4:], r[:])
	}
	return c
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
