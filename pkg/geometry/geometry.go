// Package geometry builds renderer-ready mesh buffers for boxes and for
// planar polygons (optionally extruded) placed on the faces of a box.
package geometry

import (
	"fmt"
	"math"

	"github.com/Faultbox/hlot/pkg/geomat"
)

// MeshBuffers holds flat vertex attribute arrays ready for GPU upload.
// Positions and Normals carry 3 floats per vertex, UVs 2 floats per vertex.
// Indices lists triangle vertices in groups of three; it is nil for
// non-indexed meshes, which are drawn as consecutive vertex triples.
type MeshBuffers struct {
	Positions []float32 `json:"positions"`
	Normals   []float32 `json:"normals"`
	UVs       []float32 `json:"uvs"`
	Indices   []uint32  `json:"indices,omitempty"`
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// VertexCount returns the number of vertices.
func (m *MeshBuffers) VertexCount() int {
	return len(m.Positions) / 3
}

// Indexed reports whether the mesh uses an index list.
func (m *MeshBuffers) Indexed() bool {
	return m.Indices != nil
}

// TriangleCount returns the number of triangles.
func (m *MeshBuffers) TriangleCount() int {
	if m.Indexed() {
		return len(m.Indices) / 3
	}
	return m.VertexCount() / 3
}

// Triangle returns the vertex indices of triangle i.
func (m *MeshBuffers) Triangle(i int) [3]int {
	if m.Indexed() {
		return [3]int{int(m.Indices[i*3]), int(m.Indices[i*3+1]), int(m.Indices[i*3+2])}
	}
	return [3]int{i * 3, i*3 + 1, i*3 + 2}
}

// Position returns the position of vertex i.
func (m *MeshBuffers) Position(i int) [3]float32 {
	return [3]float32{m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2]}
}

// Normal returns the normal of vertex i.
func (m *MeshBuffers) Normal(i int) [3]float32 {
	return [3]float32{m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2]}
}

// UV returns the texture coordinate of vertex i.
func (m *MeshBuffers) UV(i int) [2]float32 {
	return [2]float32{m.UVs[i*2], m.UVs[i*2+1]}
}

// Validate checks that all attribute arrays describe the same number of
// vertices and that every index references an existing vertex.
func (m *MeshBuffers) Validate() error {
	if len(m.Positions)%3 != 0 {
		return fmt.Errorf("positions length %d is not a multiple of 3", len(m.Positions))
	}
	n := m.VertexCount()
	if len(m.Normals) != n*3 {
		return fmt.Errorf("normals describe %d vertices, positions %d", len(m.Normals)/3, n)
	}
	if len(m.UVs) != n*2 {
		return fmt.Errorf("uvs describe %d vertices, positions %d", len(m.UVs)/2, n)
	}
	if !m.Indexed() {
		if n%3 != 0 {
			return fmt.Errorf("non-indexed mesh has %d vertices, not a multiple of 3", n)
		}
		return nil
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("index %d at %d out of range (%d vertices)", idx, i, n)
		}
	}
	return nil
}

// Bounds returns the bounding box of all positions. An empty mesh has
// zero bounds.
func (m *MeshBuffers) Bounds() Bounds {
	if m.VertexCount() == 0 {
		return Bounds{}
	}
	b := Bounds{
		Min: [3]float32{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: [3]float32{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
	for i := 0; i < len(m.Positions); i += 3 {
		for k := 0; k < 3; k++ {
			v := m.Positions[i+k]
			b.Min[k] = min(b.Min[k], v)
			b.Max[k] = max(b.Max[k], v)
		}
	}
	return b
}

func (m *MeshBuffers) appendVertex(p [3]float64, n [3]float64, u, v float64) {
	m.Positions = append(m.Positions, float32(p[0]), float32(p[1]), float32(p[2]))
	m.Normals = append(m.Normals, float32(n[0]), float32(n[1]), float32(n[2]))
	m.UVs = append(m.UVs, float32(u), float32(v))
}

func checkPositive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return fmt.Errorf("%w: %s %g must be positive and finite", geomat.ErrInvalidParameter, name, v)
	}
	return nil
}
