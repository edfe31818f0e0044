// Package config handles viewer and lot configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Render  RenderConfig  `yaml:"render"`
	Lot     LotConfig     `yaml:"lot"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds the fly camera's start state and projection.
type CameraConfig struct {
	Position  [3]float32 `yaml:"position"`
	Yaw       float32    `yaml:"yaw"`        // radians, 0 looks down -Z
	FOV       float32    `yaml:"fov"`        // vertical, degrees
	Near      float32    `yaml:"near"`
	Far       float32    `yaml:"far"`
	MoveSpeed float32    `yaml:"move_speed"` // units per second
	TurnSpeed float32    `yaml:"turn_speed"` // radians per second
}

// RenderConfig holds rendering settings.
type RenderConfig struct {
	Wireframe     bool          `yaml:"wireframe"`
	ClearColor    [3]float32    `yaml:"clear_color"`
	Ambient       float32       `yaml:"ambient"`
	Lights        []LightConfig `yaml:"lights"`
	ScreenshotDir string        `yaml:"screenshot_dir"` // F12 captures
}

// LightConfig is a directional light shining from Position towards the origin.
type LightConfig struct {
	Position  [3]float32 `yaml:"position"`
	Color     [3]float32 `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
}

// LotConfig describes the geometry of the lot.
type LotConfig struct {
	Boxes  []BoxConfig   `yaml:"boxes"`
	Planes []PlaneConfig `yaml:"planes"`
}

// BoxConfig describes an axis-aligned box. Origin is the low x, low y
// corner on the front (high z) plane.
type BoxConfig struct {
	Name    string                  `yaml:"name"`
	Size    [3]float64              `yaml:"size"`
	Origin  [3]float64              `yaml:"origin"`
	Texture string                  `yaml:"texture,omitempty"`
	Color   [3]float32              `yaml:"color"`
	UV      map[string][][2]float64 `yaml:"uv,omitempty"` // face name -> 2 or 4 corners
}

// PlaneConfig describes a polygon with holes placed on a box face.
type PlaneConfig struct {
	Name    string             `yaml:"name"`
	Face    string             `yaml:"face"`
	Outline []float64          `yaml:"outline"`
	Holes   [][]float64        `yaml:"holes,omitempty"`
	Width   float64            `yaml:"width"`
	Height  float64            `yaml:"height"`
	Origin  [3]float64         `yaml:"origin"`
	Depth   *float64           `yaml:"depth,omitempty"` // nil: no extrusion
	Texture string             `yaml:"texture,omitempty"`
	Color   [3]float32         `yaml:"color"`
	UV      *UVTransformConfig `yaml:"uv,omitempty"`
}

// UVTransformConfig selects a texture sub-rectangle, rotation and mirror.
type UVTransformConfig struct {
	Bounds   [4]float64 `yaml:"bounds"`   // u0, v0, u1, v1; zero means the whole texture
	Rotation int        `yaml:"rotation"` // quarter turns, 0..3
	Flip     bool       `yaml:"flip"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// GroundTexture is the default texture of the ground level.
const GroundTexture = "images/ground_level.png"

// Default returns a Config with sensible default values.
func Default() *Config {
	wallDepth := 0.2

	return &Config{
		Window: WindowConfig{
			Title:      "hlot",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			Position:  [3]float32{5.4, 1.6, 5},
			Yaw:       0,
			FOV:       75,
			Near:      0.1,
			Far:       1000,
			MoveSpeed: 4,
			TurnSpeed: 1,
		},
		Render: RenderConfig{
			Wireframe:  false,
			ClearColor: [3]float32{0, 0, 0},
			Ambient:    0.2,
			Lights: []LightConfig{
				{Position: [3]float32{100, 100, 100}, Color: [3]float32{1, 1, 1}, Intensity: 1},
				{Position: [3]float32{-100, 100, -100}, Color: [3]float32{1, 1, 1}, Intensity: 1},
			},
			ScreenshotDir: "screenshots",
		},
		Lot: LotConfig{
			Boxes: []BoxConfig{
				{
					Name:    "foundation",
					Size:    [3]float64{7.7, 0.4, 10},
					Origin:  [3]float64{0, 0, 10},
					Texture: GroundTexture,
					Color:   [3]float32{1, 1, 1},
				},
			},
			Planes: []PlaneConfig{
				{
					Name:    "ground",
					Face:    "top",
					Outline: []float64{0, 0, 10.8, 0, 10.8, 15, 0, 15},
					Width:   10.8,
					Height:  15,
					Texture: GroundTexture,
					Color:   [3]float32{1, 1, 1},
				},
				{
					Name:    "front-wall",
					Face:    "front",
					Outline: []float64{0, 0, 7.7, 0, 7.7, 2.6, 0, 2.6},
					Holes: [][]float64{
						{1, 0.1, 1, 2.1, 2, 2.1, 2, 0.1},
						{4, 1, 4, 2, 6, 2, 6, 1},
					},
					Width:  7.7,
					Height: 2.6,
					Origin: [3]float64{0, 0.4, 10},
					Depth:  &wallDepth,
					Color:  [3]float32{0.8, 0.8, 0.75},
				},
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
