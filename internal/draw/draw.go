// Package draw executes composed scene frames against a Renderer.
package draw

import (
	"fmt"
	"image"

	"github.com/ThatOtherAndrew/portalfx/internal/models"
	"github.com/ThatOtherAndrew/portalfx/internal/scene"
	"github.com/ThatOtherAndrew/portalfx/internal/shaders/glsl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog/log"
)

// Renderer is the GPU capability the drawer consumes. Only program
// compilation is expected to fail in practice.
type Renderer interface {
	CompileShaderProgram(vertex, fragment string) (models.Program, error)
	UploadMesh(mesh *models.Mesh) (models.Buffer, error)
	UploadTexture(img image.Image) (models.Texture, error)
	Begin(clear mgl32.Vec4, depth, additive bool)
	Draw(program models.Program, buf models.Buffer, u models.Uniforms)
	DrawSprites(program models.Program, sprites []models.Sprite, u models.Uniforms)
	Viewport(width, height int)
}

type Drawer struct {
	r        Renderer
	programs map[string]models.Program
	meshes   map[string]models.Buffer
	textures map[string]models.Texture
	missing  map[string]bool
	sprites  []models.Sprite
	width    int
	height   int
}

func New(r Renderer) *Drawer {
	return &Drawer{
		r:        r,
		programs: make(map[string]models.Program),
		meshes:   make(map[string]models.Buffer),
		textures: make(map[string]models.Texture),
		missing:  make(map[string]bool),
	}
}

// Init compiles the built-in programs.
func (d *Drawer) Init() error {
	for _, p := range glsl.Programs() {
		prog, err := d.r.CompileShaderProgram(p.Vertex, p.Fragment)
		if err != nil {
			return fmt.Errorf("building %s program: %w", p.Name, err)
		}
		d.programs[p.Name] = prog
	}
	return nil
}

func (d *Drawer) AddMesh(name string, mesh *models.Mesh) error {
	buf, err := d.r.UploadMesh(mesh)
	if err != nil {
		return fmt.Errorf("uploading mesh %s: %w", name, err)
	}
	d.meshes[name] = buf
	return nil
}

func (d *Drawer) AddTexture(name string, img image.Image) error {
	tex, err := d.r.UploadTexture(img)
	if err != nil {
		return fmt.Errorf("uploading texture %s: %w", name, err)
	}
	d.textures[name] = tex
	return nil
}

func (d *Drawer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	d.width, d.height = width, height
	d.r.Viewport(width, height)
}

// Render issues every draw call of f, then its sprites. Calls naming an
// unknown mesh or program are skipped with a single warning.
func (d *Drawer) Render(f scene.Frame) {
	d.r.Begin(f.Clear, f.Depth, f.Additive)

	for _, call := range f.Calls {
		prog, ok := d.program(call.Program)
		if !ok {
			continue
		}
		buf, ok := d.meshes[call.Mesh]
		if !ok {
			d.warnOnce("mesh", call.Mesh)
			continue
		}
		d.r.Draw(prog, buf, d.uniforms(f, call))
	}

	if len(f.Sprites) == 0 {
		return
	}
	prog, ok := d.program("sprite")
	if !ok {
		return
	}
	d.sprites = d.sprites[:0]
	for _, s := range f.Sprites {
		d.sprites = append(d.sprites, models.Sprite{Position: s.Position, Color: s.Color, Size: s.Size})
	}
	d.r.DrawSprites(prog, d.sprites, models.Uniforms{Persp: f.Persp})
}

func (d *Drawer) uniforms(f scene.Frame, call scene.DrawCall) models.Uniforms {
	u := models.Uniforms{
		ModelView:  f.View.Mul4(call.Model),
		Persp:      f.Persp,
		Color:      call.Color,
		UVScale:    call.UVScale,
		Lights:     f.Lights,
		Resolution: mgl32.Vec2{float32(d.width), float32(d.height)},
		Time:       f.Time,
	}
	switch call.Style {
	case scene.Flat:
		u.UseFlatColor = true
		u.UseNormal = call.Lit
	case scene.Faceted:
		u.UseFlatColor = true
		u.UseNormal = true
		u.Faceted = true
	case scene.Textured:
		tex, ok := d.textures[call.Texture]
		if ok {
			u.UseTexture = true
			u.Texture = tex
		} else {
			d.warnOnce("texture", call.Texture)
			u.UseFlatColor = true
		}
		u.UseNormal = call.Lit
	default:
		u.UseNormal = call.Lit
	}
	return u
}

func (d *Drawer) program(name string) (models.Program, bool) {
	prog, ok := d.programs[name]
	if !ok {
		d.warnOnce("program", name)
	}
	return prog, ok
}

func (d *Drawer) warnOnce(kind, name string) {
	key := kind + ":" + name
	if d.missing[key] {
		return
	}
	d.missing[key] = true
	log.Warn().Str(kind, name).Msgf("skipping draw call with unknown %s", kind)
}
