// Package export writes lot meshes to files for use in other tools.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"go.uber.org/zap"

	"github.com/Faultbox/hlot/internal/logger"
	"github.com/Faultbox/hlot/internal/lot"
	"github.com/Faultbox/hlot/pkg/geometry"
)

// Format selects the output encoding.
type Format string

const (
	FormatSTL  Format = "stl"
	FormatJSON Format = "json"
)

// ParseFormat accepts "stl" or "json" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatSTL, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Triangles converts m to sdfx triangles, following the index buffer
// when present.
func Triangles(m *geometry.MeshBuffers) []*sdf.Triangle3 {
	n := m.TriangleCount()
	tris := make([]*sdf.Triangle3, 0, n)
	for i := 0; i < n; i++ {
		var t sdf.Triangle3
		for k, idx := range m.Triangle(i) {
			p := m.Position(idx)
			t[k] = v3.Vec{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])}
		}
		tris = append(tris, &t)
	}
	return tris
}

// WriteSTL writes m as a binary STL file.
func WriteSTL(path string, m *geometry.MeshBuffers) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := render.SaveSTL(path, Triangles(m)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteJSON writes the raw mesh buffers as JSON.
func WriteJSON(path string, m *geometry.MeshBuffers) error {
	if err := m.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// WriteParts writes one file per part into dir, named after the part, and
// returns the paths written.
func WriteParts(dir string, parts []lot.Part, format Format) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	write := WriteSTL
	if format == FormatJSON {
		write = WriteJSON
	}

	paths := make([]string, 0, len(parts))
	for _, p := range parts {
		path := filepath.Join(dir, p.Name+"."+string(format))
		if err := write(path, p.Mesh); err != nil {
			return paths, fmt.Errorf("part %q: %w", p.Name, err)
		}
		logger.Info("part exported",
			zap.String("part", p.Name),
			zap.String("path", path),
			zap.Int("triangles", p.Mesh.TriangleCount()))
		paths = append(paths, path)
	}
	return paths, nil
}
