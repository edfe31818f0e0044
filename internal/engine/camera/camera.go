// Package camera provides the viewer's key-driven fly camera.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/hlot/internal/config"
)

// Controls is the set of movement keys held during a tick.
type Controls struct {
	Forward bool // arrow up
	Back    bool // arrow down
	Left    bool // arrow left, turns
	Right   bool // arrow right, turns
	Shift   bool // forward/back move vertically instead
}

// FlyCamera moves in the view direction and turns about the world y axis.
type FlyCamera struct {
	Position mgl32.Vec3
	Yaw      float32 // radians, 0 looks down -z

	FOV    float32 // vertical field of view, degrees
	Near   float32
	Far    float32
	Aspect float32

	MoveSpeed float32 // units per second
	TurnSpeed float32 // radians per second
}

// New creates a camera from config.
func New(cfg config.CameraConfig, aspect float32) *FlyCamera {
	return &FlyCamera{
		Position:  mgl32.Vec3(cfg.Position),
		Yaw:       cfg.Yaw,
		FOV:       cfg.FOV,
		Near:      cfg.Near,
		Far:       cfg.Far,
		Aspect:    aspect,
		MoveSpeed: cfg.MoveSpeed,
		TurnSpeed: cfg.TurnSpeed,
	}
}

// Direction returns the unit view direction.
func (c *FlyCamera) Direction() mgl32.Vec3 {
	sin, cos := gomath.Sincos(float64(c.Yaw))
	return mgl32.Vec3{float32(-sin), 0, float32(-cos)}
}

// Tick advances the camera by dt seconds. Zero or negative dt is ignored.
func (c *FlyCamera) Tick(dt float32, in Controls) {
	if dt <= 0 {
		return
	}

	var move float32
	switch {
	case in.Forward:
		move = 1
	case in.Back:
		move = -1
	}
	if move != 0 {
		step := move * dt * c.MoveSpeed
		if in.Shift {
			c.Position[1] += step
		} else {
			c.Position = c.Position.Add(c.Direction().Mul(step))
		}
	}

	var turn float32
	switch {
	case in.Left:
		turn = 1
	case in.Right:
		turn = -1
	}
	if turn != 0 {
		c.Yaw += turn * dt * c.TurnSpeed
	}
}

// ViewMatrix returns the world to camera transform.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Direction()), mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the perspective projection.
func (c *FlyCamera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// SetAspect updates the aspect ratio after a resize.
func (c *FlyCamera) SetAspect(width, height int) {
	if height > 0 {
		c.Aspect = float32(width) / float32(height)
	}
}
