package geometry

import (
	"fmt"

	"github.com/Faultbox/hlot/pkg/geomat"
)

// boxFace describes how one side of a box is emitted: six corner indices
// (two triangles, counter-clockwise seen from outside) and the normal.
type boxFace struct {
	face    geomat.Face
	corners [6]int
	normal  [3]float64
}

// Corner indices encode (x, y, z) as bits (4, 2, 1), 0 = low side.
var boxFaces = [...]boxFace{
	{geomat.FaceFront, [6]int{1, 5, 3, 3, 5, 7}, [3]float64{0, 0, 1}},
	{geomat.FaceRight, [6]int{5, 4, 7, 7, 4, 6}, [3]float64{1, 0, 0}},
	{geomat.FaceBack, [6]int{4, 0, 6, 6, 0, 2}, [3]float64{0, 0, -1}},
	{geomat.FaceLeft, [6]int{0, 1, 2, 2, 1, 3}, [3]float64{-1, 0, 0}},
	{geomat.FaceTop, [6]int{3, 7, 2, 2, 7, 6}, [3]float64{0, 1, 0}},
	{geomat.FaceBottom, [6]int{0, 4, 1, 1, 4, 5}, [3]float64{0, -1, 0}},
}

// UV corner (BL, BR, TL, TR) used by each of a face's six vertices.
var boxFaceUVCorners = [6]int{0, 1, 2, 2, 1, 3}

// BoxVertexCount is the number of vertices emitted by BuildBox.
const BoxVertexCount = 36

// BuildBox returns a non-indexed closed box of the given size. origin is
// the low x, low y corner on the front plane: the box spans
// [ox, ox+dx] x [oy, oy+dy] x [oz-dz, oz].
func BuildBox(size, origin [3]float64, uv BoxUV) (*MeshBuffers, error) {
	for i, name := range [3]string{"size x", "size y", "size z"} {
		if err := checkPositive(name, size[i]); err != nil {
			return nil, err
		}
	}

	var faceUV [len(boxFaces)][4][2]float64
	for i, bf := range boxFaces {
		corners, err := uv[bf.face].Corners()
		if err != nil {
			return nil, fmt.Errorf("%s face: %w", bf.face, err)
		}
		faceUV[i] = corners
	}

	x0, y0, z1 := origin[0], origin[1], origin[2]
	x1, y1, z0 := x0+size[0], y0+size[1], z1-size[2]

	var verts [8][3]float64
	for i := range verts {
		verts[i] = [3]float64{x0, y0, z0}
		if i&4 != 0 {
			verts[i][0] = x1
		}
		if i&2 != 0 {
			verts[i][1] = y1
		}
		if i&1 != 0 {
			verts[i][2] = z1
		}
	}

	m := &MeshBuffers{
		Positions: make([]float32, 0, BoxVertexCount*3),
		Normals:   make([]float32, 0, BoxVertexCount*3),
		UVs:       make([]float32, 0, BoxVertexCount*2),
	}
	for i, bf := range boxFaces {
		for k, c := range bf.corners {
			t := faceUV[i][boxFaceUVCorners[k]]
			m.appendVertex(verts[c], bf.normal, t[0], t[1])
		}
	}
	return m, nil
}
