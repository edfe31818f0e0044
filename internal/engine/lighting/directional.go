// Package lighting prepares light parameters for the shaders.
package lighting

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/hlot/internal/config"
)

// MaxDirectional is the size of the light arrays in the fragment shader.
const MaxDirectional = 4

// Directional is a light at infinity. Dir points from the scene towards
// the light.
type Directional struct {
	Dir      mgl32.Vec3
	Radiance mgl32.Vec3 // color scaled by intensity
}

// FromConfig converts configured lights. A light's position is taken as
// a direction from the origin.
func FromConfig(lights []config.LightConfig) ([]Directional, error) {
	if len(lights) > MaxDirectional {
		return nil, fmt.Errorf("%d lights configured, at most %d supported", len(lights), MaxDirectional)
	}

	out := make([]Directional, 0, len(lights))
	for i, l := range lights {
		pos := mgl32.Vec3(l.Position)
		if pos.Len() == 0 {
			return nil, fmt.Errorf("light %d is at the origin and has no direction", i)
		}
		out = append(out, Directional{
			Dir:      pos.Normalize(),
			Radiance: mgl32.Vec3(l.Color).Mul(l.Intensity),
		})
	}
	return out, nil
}

// Diffuse returns the Lambert term the shader computes for normal n, with
// ambient added and each channel clamped to 1.
func Diffuse(lights []Directional, ambient float32, n mgl32.Vec3) mgl32.Vec3 {
	n = n.Normalize()
	sum := mgl32.Vec3{ambient, ambient, ambient}
	for _, l := range lights {
		if d := n.Dot(l.Dir); d > 0 {
			sum = sum.Add(l.Radiance.Mul(d))
		}
	}
	for i := range sum {
		sum[i] = min(sum[i], 1)
	}
	return sum
}
