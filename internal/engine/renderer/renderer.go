// Package renderer draws lot meshes with a lit, textured OpenGL pipeline.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/hlot/internal/config"
	"github.com/Faultbox/hlot/internal/engine/camera"
	"github.com/Faultbox/hlot/internal/engine/lighting"
	"github.com/Faultbox/hlot/internal/engine/shader"
	"github.com/Faultbox/hlot/internal/logger"
	"github.com/Faultbox/hlot/pkg/geometry"
)

// Object is an uploaded mesh with its surface.
type Object struct {
	Name    string
	Mesh    *Mesh
	Texture uint32
	Color   mgl32.Vec3
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	cfg     config.RenderConfig
	log     *zap.Logger
	program *shader.Program
	lights  []lighting.Directional

	white    uint32
	textures map[string]uint32
	objects  []Object
}

// New creates a new renderer. Must be called after the OpenGL context
// is created.
func New(cfg config.RenderConfig) (*Renderer, error) {
	lights, err := lighting.FromConfig(cfg.Lights)
	if err != nil {
		return nil, err
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r := &Renderer{
		cfg:      cfg,
		log:      logger.Named("renderer"),
		lights:   lights,
		textures: make(map[string]uint32),
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], 1.0)

	r.program, err = shader.New(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.log.Debug("shader program created", zap.Uint32("program", r.program.ID))

	r.white = uploadTexture(whiteImage())
	r.SetWireframe(cfg.Wireframe)
	return r, nil
}

// Add uploads mesh and queues it for drawing. An empty texture path draws
// the flat color; a texture that fails to load falls back to white.
func (r *Renderer) Add(name string, mesh *geometry.MeshBuffers, texturePath string, color [3]float32) error {
	m, err := UploadMesh(mesh)
	if err != nil {
		return fmt.Errorf("uploading %s: %w", name, err)
	}

	r.objects = append(r.objects, Object{
		Name:    name,
		Mesh:    m,
		Texture: r.texture(texturePath),
		Color:   mgl32.Vec3(color),
	})
	r.log.Debug("object added",
		zap.String("name", name),
		zap.Int32("count", m.count),
		zap.Bool("indexed", m.indexed),
	)
	return nil
}

// texture returns the cached GL texture for path.
func (r *Renderer) texture(path string) uint32 {
	if path == "" {
		return r.white
	}
	if id, ok := r.textures[path]; ok {
		return id
	}

	id := r.white
	img, err := loadImage(path)
	if err != nil {
		r.log.Warn("texture unavailable, using white", zap.String("path", path), zap.Error(err))
	} else {
		id = uploadTexture(img)
		r.log.Info("texture loaded",
			zap.String("path", path),
			zap.Int("width", img.Bounds().Dx()),
			zap.Int("height", img.Bounds().Dy()),
		)
	}
	r.textures[path] = id
	return id
}

// SetWireframe toggles line rendering of all polygons.
func (r *Renderer) SetWireframe(on bool) {
	r.cfg.Wireframe = on
	if on {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// Wireframe reports whether wireframe rendering is on.
func (r *Renderer) Wireframe() bool {
	return r.cfg.Wireframe
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Render clears the frame and draws every object from cam.
func (r *Renderer) Render(cam *camera.FlyCamera) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	p := r.program
	p.Use()
	p.SetMat4("uView", cam.ViewMatrix())
	p.SetMat4("uProjection", cam.ProjectionMatrix())
	p.SetMat4("uModel", mgl32.Ident4())
	p.SetFloat("uAmbient", r.cfg.Ambient)
	p.SetInt("uLightCount", int32(len(r.lights)))
	for i, l := range r.lights {
		p.SetVec3(fmt.Sprintf("uLightDir[%d]", i), l.Dir)
		p.SetVec3(fmt.Sprintf("uLightColor[%d]", i), l.Radiance)
	}
	p.SetInt("uTexture", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	for _, o := range r.objects {
		gl.BindTexture(gl.TEXTURE_2D, o.Texture)
		p.SetVec3("uColor", o.Color)
		o.Mesh.Draw()
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// ReadPixels returns the current back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

// Close releases every GPU resource.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for _, o := range r.objects {
		o.Mesh.Delete()
	}
	r.objects = nil

	deleted := map[uint32]bool{r.white: true}
	gl.DeleteTextures(1, &r.white)
	for _, id := range r.textures {
		if !deleted[id] {
			deleted[id] = true
			gl.DeleteTextures(1, &id)
		}
	}
	if r.program != nil {
		r.program.Delete()
	}
}
