// Package lot turns the configured lot layout into renderable meshes.
package lot

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/hlot/internal/config"
	"github.com/Faultbox/hlot/internal/logger"
	"github.com/Faultbox/hlot/pkg/geomat"
	"github.com/Faultbox/hlot/pkg/geometry"
)

// Part is one named mesh of the lot with its surface.
type Part struct {
	Name    string
	Mesh    *geometry.MeshBuffers
	Texture string // empty: untextured
	Color   [3]float32
}

// Build generates every box and plane in cfg, boxes first.
func Build(cfg config.LotConfig) ([]Part, error) {
	parts := make([]Part, 0, len(cfg.Boxes)+len(cfg.Planes))

	for _, b := range cfg.Boxes {
		mesh, err := buildBox(b)
		if err != nil {
			return nil, fmt.Errorf("box %q: %w", b.Name, err)
		}
		parts = append(parts, newPart(b.Name, mesh, b.Texture, b.Color))
	}

	for _, p := range cfg.Planes {
		mesh, err := buildPlane(p)
		if err != nil {
			return nil, fmt.Errorf("plane %q: %w", p.Name, err)
		}
		parts = append(parts, newPart(p.Name, mesh, p.Texture, p.Color))
	}

	logger.Info("lot built", zap.Int("parts", len(parts)))
	return parts, nil
}

func newPart(name string, mesh *geometry.MeshBuffers, texture string, color [3]float32) Part {
	logger.Debug("part built",
		zap.String("part", name),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Bool("indexed", mesh.Indexed()))
	return Part{Name: name, Mesh: mesh, Texture: texture, Color: color}
}

func buildBox(b config.BoxConfig) (*geometry.MeshBuffers, error) {
	var uv geometry.BoxUV
	if len(b.UV) > 0 {
		uv = make(geometry.BoxUV, len(b.UV))
		for name, corners := range b.UV {
			face, err := geomat.ParseFace(name)
			if err != nil {
				return nil, err
			}
			uv[face] = geometry.UVSpec(corners)
		}
	}
	return geometry.BuildBox(b.Size, b.Origin, uv)
}

func buildPlane(p config.PlaneConfig) (*geometry.MeshBuffers, error) {
	face, err := geomat.ParseFace(p.Face)
	if err != nil {
		return nil, err
	}

	opts := []geometry.PlaneOption{geometry.WithOrigin(p.Origin)}
	if p.Depth != nil {
		opts = append(opts, geometry.WithDepth(*p.Depth))
	}
	if p.UV != nil {
		m, err := uvMatrix(*p.UV)
		if err != nil {
			return nil, err
		}
		opts = append(opts, geometry.WithUVMatrix(m))
	}

	return geometry.BuildPlane(p.Outline, p.Holes, p.Width, p.Height, face, opts...)
}

func uvMatrix(t config.UVTransformConfig) (geomat.UVMatrix, error) {
	bounds := t.Bounds
	if bounds == ([4]float64{}) {
		bounds = geomat.UnitBounds
	}
	return geomat.BuildUVMatrix(bounds, geomat.Rotation(t.Rotation), t.Flip)
}
