// Package app runs the interactive lot viewer.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/hlot/internal/config"
	"github.com/Faultbox/hlot/internal/engine/camera"
	"github.com/Faultbox/hlot/internal/engine/debug"
	"github.com/Faultbox/hlot/internal/engine/input"
	"github.com/Faultbox/hlot/internal/engine/renderer"
	"github.com/Faultbox/hlot/internal/engine/window"
	"github.com/Faultbox/hlot/internal/logger"
	"github.com/Faultbox/hlot/internal/lot"
)

// maxFrameTime caps dt so a stalled frame does not teleport the camera.
const maxFrameTime = 0.1

// App owns the window, GPU state and camera.
type App struct {
	cfg      *config.Config
	log      *zap.Logger
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.FlyCamera
	shots    *debug.Screenshots
	capture  bool
}

// New builds the lot, opens the window and uploads every part.
func New(cfg *config.Config) (*App, error) {
	log := logger.Named("app")

	// Geometry errors are reported before a window appears.
	parts, err := lot.Build(cfg.Lot)
	if err != nil {
		return nil, fmt.Errorf("building lot: %w", err)
	}

	a := &App{cfg: cfg, log: log, shots: debug.NewScreenshots(cfg.Render.ScreenshotDir, "hlot")}

	a.window, err = window.New(cfg.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the OpenGL context from the window.
	a.renderer, err = renderer.New(cfg.Render)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	for _, p := range parts {
		if err := a.renderer.Add(p.Name, p.Mesh, p.Texture, p.Color); err != nil {
			a.Close()
			return nil, err
		}
	}

	w, h := a.window.Size()
	a.renderer.Resize(w, h)
	a.camera = camera.New(cfg.Camera, float32(cfg.Window.Width)/float32(cfg.Window.Height))
	a.camera.SetAspect(w, h)
	a.input = input.New()

	log.Info("viewer initialized", zap.Int("parts", len(parts)))
	return a, nil
}

// Run drives the loop until the window closes or Escape is pressed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	a.log.Info("starting render loop")

	for a.running {
		now := time.Now()
		dt := min(now.Sub(lastTime).Seconds(), maxFrameTime)
		lastTime = now

		if a.input.Update() {
			break
		}
		a.handleEvents()

		a.camera.Tick(float32(dt), controls(a.input))
		a.renderer.Render(a.camera)
		if a.capture {
			a.screenshot()
		}
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float32s("position", a.camera.Position[:]),
				zap.Float32("yaw", a.camera.Yaw))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	a.running = false
	return nil
}

func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.renderer.Resize(event.Width, event.Height)
			a.camera.SetAspect(event.Width, event.Height)
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				a.running = false
			case sdl.SCANCODE_F:
				a.renderer.SetWireframe(!a.renderer.Wireframe())
				a.log.Info("wireframe toggled", zap.Bool("on", a.renderer.Wireframe()))
			case sdl.SCANCODE_F12:
				a.capture = true
			}
		}
	}
}

// screenshot saves the frame just rendered, before it is swapped out.
func (a *App) screenshot() {
	a.capture = false
	w, h := a.window.Size()
	path, err := a.shots.SavePixels(a.renderer.ReadPixels(w, h), w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

func controls(in *input.Input) camera.Controls {
	return camera.Controls{
		Forward: in.IsKeyDown(sdl.SCANCODE_UP),
		Back:    in.IsKeyDown(sdl.SCANCODE_DOWN),
		Left:    in.IsKeyDown(sdl.SCANCODE_LEFT),
		Right:   in.IsKeyDown(sdl.SCANCODE_RIGHT),
		Shift:   in.IsShiftDown(),
	}
}

// Close releases GPU resources and the window.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}
