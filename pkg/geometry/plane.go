package geometry

import (
	"fmt"
	"math"

	"github.com/Faultbox/hlot/pkg/geomat"
	earcut "github.com/rclancey/go-earcut"
)

// NoExtrusion disables the back copy of a plane.
const NoExtrusion = -1.0

// maxDeviation bounds the relative area error accepted from the
// triangulator before the input is treated as self-intersecting.
const maxDeviation = 1e-6

type planeOptions struct {
	origin [3]float64
	depth  float64
	uv     geomat.UVMatrix
}

// PlaneOption configures BuildPlane.
type PlaneOption func(*planeOptions)

// WithOrigin anchors the face at origin (default zero).
func WithOrigin(origin [3]float64) PlaneOption {
	return func(o *planeOptions) {
		o.origin = origin
	}
}

// WithDepth extrudes the plane by depth against its normal. Negative
// values (the default) disable extrusion; zero produces a double-sided
// plane.
func WithDepth(depth float64) PlaneOption {
	return func(o *planeOptions) {
		o.depth = depth
	}
}

// WithUVMatrix remaps the normalized texture coordinates (default identity).
func WithUVMatrix(m geomat.UVMatrix) PlaneOption {
	return func(o *planeOptions) {
		o.uv = m
	}
}

// BuildPlane triangulates the polygon outer (flat x,y pairs,
// counter-clockwise) minus holes and places it on face of a width x height
// box side. width and height only normalize texture coordinates
// (u = x/width, v = y/height); points outside that rectangle get
// coordinates outside [0,1] and tile with a repeating texture.
//
// The result is indexed. With extrusion the vertex set is duplicated,
// offset by -normal*depth with a flipped normal, and the back copy's
// triangles are wound the other way.
func BuildPlane(outer []float64, holes [][]float64, width, height float64, face geomat.Face, opts ...PlaneOption) (*MeshBuffers, error) {
	o := planeOptions{depth: NoExtrusion, uv: geomat.IdentityUV()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := checkRing("outer ring", outer); err != nil {
		return nil, err
	}
	for i, h := range holes {
		if err := checkRing(fmt.Sprintf("hole %d", i), h); err != nil {
			return nil, err
		}
	}
	if err := checkPositive("width", width); err != nil {
		return nil, err
	}
	if err := checkPositive("height", height); err != nil {
		return nil, err
	}

	fm, err := geomat.BuildFaceMatrix(face, width, height, o.origin)
	if err != nil {
		return nil, err
	}

	vertices, holeIndices := flatten(outer, holes)
	tris, err := triangulate(vertices, holeIndices)
	if err != nil {
		return nil, err
	}

	n := len(vertices) / 2
	normal := fm.Normal()
	extrude := o.depth >= 0

	verts := n
	idxCount := len(tris)
	if extrude {
		verts *= 2
		idxCount *= 2
	}
	m := &MeshBuffers{
		Positions: make([]float32, 0, verts*3),
		Normals:   make([]float32, 0, verts*3),
		UVs:       make([]float32, 0, verts*2),
		Indices:   make([]uint32, 0, idxCount),
	}

	for i := 0; i < n; i++ {
		x, y := vertices[i*2], vertices[i*2+1]
		px, py, pz := fm.Apply(x, y, 0)
		u, v := o.uv.Apply(x/width, y/height)
		m.appendVertex([3]float64{px, py, pz}, normal, u, v)
	}
	for _, idx := range tris {
		m.Indices = append(m.Indices, uint32(idx))
	}

	if !extrude {
		return m, nil
	}

	back := [3]float64{-normal[0], -normal[1], -normal[2]}
	offset := [3]float64{back[0] * o.depth, back[1] * o.depth, back[2] * o.depth}
	for i := 0; i < n; i++ {
		p := m.Position(i)
		m.Positions = append(m.Positions,
			p[0]+float32(offset[0]), p[1]+float32(offset[1]), p[2]+float32(offset[2]))
		m.Normals = append(m.Normals, float32(back[0]), float32(back[1]), float32(back[2]))
	}
	m.UVs = append(m.UVs, m.UVs[:n*2]...)

	// The reversed list flips every triangle's winding for the back side.
	for i := len(tris) - 1; i >= 0; i-- {
		m.Indices = append(m.Indices, uint32(tris[i]+n))
	}
	return m, nil
}

func checkRing(name string, ring []float64) error {
	if len(ring)%2 != 0 {
		return fmt.Errorf("%w: %s has odd coordinate count %d", geomat.ErrInvalidParameter, name, len(ring))
	}
	if len(ring) < 6 {
		return fmt.Errorf("%w: %s has %d points, need at least 3", geomat.ErrInvalidParameter, name, len(ring)/2)
	}
	for i, v := range ring {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s coordinate %d is %v", geomat.ErrInvalidParameter, name, i, v)
		}
	}
	return nil
}

// flatten joins the outer ring and holes into one coordinate list and
// returns the vertex index at which each hole starts.
func flatten(outer []float64, holes [][]float64) ([]float64, []int) {
	total := len(outer)
	for _, h := range holes {
		total += len(h)
	}

	vertices := make([]float64, 0, total)
	vertices = append(vertices, outer...)

	var holeIndices []int
	for _, h := range holes {
		holeIndices = append(holeIndices, len(vertices)/2)
		vertices = append(vertices, h...)
	}
	return vertices, holeIndices
}

func triangulate(vertices []float64, holeIndices []int) ([]int, error) {
	tris, err := earcut.Earcut(vertices, holeIndices, 2)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", geomat.ErrTriangulation, err)
	}

	// Degenerate rings come back as an empty list.
	if len(tris) == 0 || trianglesArea(vertices, tris) == 0 {
		return nil, fmt.Errorf("%w: polygon has zero area", geomat.ErrTriangulation)
	}

	// Self-intersecting rings or holes crossing the boundary do not cover
	// the polygon's area exactly.
	d := earcut.Deviation(vertices, holeIndices, 2, tris)
	if !(d <= maxDeviation) {
		return nil, fmt.Errorf("%w: triangles deviate from polygon area by %.3g", geomat.ErrTriangulation, d)
	}
	return tris, nil
}

// trianglesArea sums the unsigned areas of the triangles over 2D vertices.
func trianglesArea(vertices []float64, tris []int) float64 {
	var sum float64
	for i := 0; i+2 < len(tris); i += 3 {
		a, b, c := tris[i]*2, tris[i+1]*2, tris[i+2]*2
		sum += math.Abs((vertices[b]-vertices[a])*(vertices[c+1]-vertices[a+1]) -
			(vertices[c]-vertices[a])*(vertices[b+1]-vertices[a+1]))
	}
	return sum / 2
}
