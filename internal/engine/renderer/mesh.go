package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/hlot/pkg/geometry"
)

// Attribute locations shared with the vertex shader.
const (
	locPosition = 0
	locNormal   = 1
	locUV       = 2
)

// Mesh is MeshBuffers uploaded to the GPU.
type Mesh struct {
	vao     uint32
	vbos    [3]uint32
	ebo     uint32
	count   int32
	indexed bool
}

// UploadMesh copies m into vertex buffers, one per attribute, plus an
// element buffer when m is indexed.
func UploadMesh(m *geometry.MeshBuffers) (*Mesh, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	out := &Mesh{indexed: m.Indexed()}
	gl.GenVertexArrays(1, &out.vao)
	gl.BindVertexArray(out.vao)

	gl.GenBuffers(3, &out.vbos[0])
	attribute(out.vbos[0], locPosition, 3, m.Positions)
	attribute(out.vbos[1], locNormal, 3, m.Normals)
	attribute(out.vbos[2], locUV, 2, m.UVs)

	if out.indexed {
		gl.GenBuffers(1, &out.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, out.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)
		out.count = int32(len(m.Indices))
	} else {
		out.count = int32(m.VertexCount())
	}

	// The element buffer binding is part of the VAO, unbind the VAO first.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return out, nil
}

func attribute(vbo, loc uint32, size int32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(loc, size, gl.FLOAT, false, size*4, 0)
	gl.EnableVertexAttribArray(loc)
}

// Draw issues the draw call. The program must be bound.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	if m.indexed {
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers.
func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	gl.DeleteBuffers(3, &m.vbos[0])
	gl.DeleteVertexArrays(1, &m.vao)
}
