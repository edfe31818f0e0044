package export

import (
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/hlot/internal/config"
	"github.com/Faultbox/hlot/internal/lot"
	"github.com/Faultbox/hlot/pkg/geomat"
	"github.com/Faultbox/hlot/pkg/geometry"
)

// Binary STL: 80 byte header, uint32 count, 50 bytes per triangle.
const (
	stlHeaderSize   = 84
	stlTriangleSize = 50
)

func unitSquare(t *testing.T) *geometry.MeshBuffers {
	t.Helper()
	m, err := geometry.BuildPlane([]float64{0, 0, 1, 0, 1, 1, 0, 1}, nil, 1, 1, geomat.FaceFront)
	if err != nil {
		t.Fatalf("BuildPlane failed: %v", err)
	}
	return m
}

func TestTrianglesFollowIndices(t *testing.T) {
	m := unitSquare(t)
	tris := Triangles(m)
	if len(tris) != 2 {
		t.Fatalf("expected 2 triangles, got %d", len(tris))
	}
	for i, tri := range tris {
		idx := m.Triangle(i)
		for k := 0; k < 3; k++ {
			p := m.Position(idx[k])
			if tri[k].X != float64(p[0]) || tri[k].Y != float64(p[1]) || tri[k].Z != float64(p[2]) {
				t.Errorf("triangle %d vertex %d: expected %v, got %v", i, k, p, tri[k])
			}
		}
	}
}

func TestTrianglesNonIndexed(t *testing.T) {
	m, err := geometry.BuildBox([3]float64{1, 1, 1}, [3]float64{0, 0, 1}, nil)
	if err != nil {
		t.Fatalf("BuildBox failed: %v", err)
	}
	if got := len(Triangles(m)); got != 12 {
		t.Errorf("expected 12 triangles, got %d", got)
	}
}

func TestWriteSTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.stl")
	if err := WriteSTL(path, unitSquare(t)); err != nil {
		t.Fatalf("WriteSTL failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read stl: %v", err)
	}
	if len(data) != stlHeaderSize+2*stlTriangleSize {
		t.Fatalf("expected %d bytes, got %d", stlHeaderSize+2*stlTriangleSize, len(data))
	}
	if n := binary.LittleEndian.Uint32(data[80:84]); n != 2 {
		t.Errorf("expected triangle count 2, got %d", n)
	}
}

func TestWriteInvalidMesh(t *testing.T) {
	bad := &geometry.MeshBuffers{Positions: []float32{0, 0, 0}}
	if err := WriteSTL(filepath.Join(t.TempDir(), "bad.stl"), bad); err == nil {
		t.Error("expected error for invalid mesh")
	}
	if err := WriteJSON(filepath.Join(t.TempDir(), "bad.json"), bad); err == nil {
		t.Error("expected error for invalid mesh")
	}
}

func TestWriteParts(t *testing.T) {
	parts, err := lot.Build(config.Default().Lot)
	if err != nil {
		t.Fatalf("lot.Build failed: %v", err)
	}

	tests := []struct {
		format Format
		check  func(t *testing.T, path string, p lot.Part)
	}{
		{
			format: FormatSTL,
			check: func(t *testing.T, path string, p lot.Part) {
				info, err := os.Stat(path)
				if err != nil {
					t.Fatalf("stat %s: %v", path, err)
				}
				want := int64(stlHeaderSize + p.Mesh.TriangleCount()*stlTriangleSize)
				if info.Size() != want {
					t.Errorf("%s: expected %d bytes, got %d", path, want, info.Size())
				}
			},
		},
		{
			format: FormatJSON,
			check: func(t *testing.T, path string, p lot.Part) {
				data, err := os.ReadFile(path)
				if err != nil {
					t.Fatalf("read %s: %v", path, err)
				}
				var m geometry.MeshBuffers
				if err := json.Unmarshal(data, &m); err != nil {
					t.Fatalf("decode %s: %v", path, err)
				}
				if m.VertexCount() != p.Mesh.VertexCount() || len(m.Indices) != len(p.Mesh.Indices) {
					t.Errorf("%s: buffers differ from source mesh", path)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "out")
			paths, err := WriteParts(dir, parts, tt.format)
			if err != nil {
				t.Fatalf("WriteParts failed: %v", err)
			}
			if len(paths) != len(parts) {
				t.Fatalf("expected %d files, got %d", len(parts), len(paths))
			}
			for i, p := range parts {
				if filepath.Base(paths[i]) != p.Name+"."+string(tt.format) {
					t.Errorf("unexpected file name %s", paths[i])
				}
				tt.check(t, paths[i], p)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"stl", "STL", "json"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q): %v", s, err)
		}
	}
	if _, err := ParseFormat("obj"); err == nil {
		t.Error("expected error for obj")
	}
}
