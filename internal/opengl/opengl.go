package opengl

import (
	"errors"
	"fmt"
	"image"

	"github.com/ThatOtherAndrew/portalfx/internal/draw"
	"github.com/ThatOtherAndrew/portalfx/internal/models"
	"github.com/ThatOtherAndrew/portalfx/internal/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog/log"
	imagedraw "golang.org/x/image/draw"
)

const maxLights = 4

// attribs fixes attribute locations across every program, so a VAO built
// from a layout works with any program that declares those inputs.
var attribs = []string{"point", "color", "normal", "uv", "size"}

func location(name string) uint32 {
	for i, a := range attribs {
		if a == name {
			return uint32(i)
		}
	}
	panic("opengl: no location for attribute " + name)
}

// Renderer draws through an OpenGL 4.1 core context that must be current on
// the calling goroutine.
type Renderer struct {
	spriteVAO uint32
	spriteVBO uint32
}

var _ draw.Renderer = (*Renderer)(nil)

func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) InitGL() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("initialising GL: %w", err)
	}
	log.Info().
		Str("version", gl.GoStr(gl.GetString(gl.VERSION))).
		Str("renderer", gl.GoStr(gl.GetString(gl.RENDERER))).
		Msg("OpenGL ready")

	gl.GenVertexArrays(1, &r.spriteVAO)
	gl.GenBuffers(1, &r.spriteVBO)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	bindLayout(models.SpriteLayout)
	gl.BindVertexArray(0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	return nil
}

func bindLayout(layout models.Layout) {
	for _, a := range layout.Attributes {
		loc := location(a.Name)
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointerWithOffset(loc, a.Components, gl.FLOAT, false, layout.Stride, a.Offset)
	}
}

func (r *Renderer) CompileShaderProgram(vertex, fragment string) (models.Program, error) {
	prog, err := shaders.BuildProgram(vertex, fragment, attribs...)
	if err != nil {
		return 0, err
	}
	return models.Program(prog), nil
}

func (r *Renderer) UploadMesh(mesh *models.Mesh) (models.Buffer, error) {
	if len(mesh.Vertices) == 0 {
		return models.Buffer{}, errors.New("mesh has no vertices")
	}
	buf := models.Buffer{Primitive: mesh.Primitive}

	gl.GenVertexArrays(1, &buf.VAO)
	gl.GenBuffers(1, &buf.VBO)
	gl.BindVertexArray(buf.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.VBO)
	gl.BufferData(
		gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(models.VertexLayout.Stride),
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW,
	)
	bindLayout(models.VertexLayout)

	if len(mesh.Indices) > 0 {
		gl.GenBuffers(1, &buf.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)
		buf.Indexed = true
		buf.Count = int32(len(mesh.Indices))
	} else {
		buf.Count = int32(len(mesh.Vertices))
	}

	gl.BindVertexArray(0)
	return buf, nil
}

func (r *Renderer) UploadTexture(img image.Image) (models.Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return 0, errors.New("empty texture image")
	}
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != b.Dx()*4 {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		imagedraw.Draw(rgba, rgba.Bounds(), img, b.Min, imagedraw.Src)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return models.Texture(tex), nil
}

func (r *Renderer) Begin(clear mgl32.Vec4, depth, additive bool) {
	gl.ClearColor(clear[0], clear[1], clear[2], clear[3])
	if depth {
		gl.Enable(gl.DEPTH_TEST)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	} else {
		gl.Disable(gl.DEPTH_TEST)
		gl.Clear(gl.COLOR_BUFFER_BIT)
	}
	if additive {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
}

func (r *Renderer) Draw(program models.Program, buf models.Buffer, u models.Uniforms) {
	p := uint32(program)
	gl.UseProgram(p)

	setMat4(p, "modelview", u.ModelView)
	setMat4(p, "persp", u.Persp)
	gl.Uniform4f(uniform(p, "color"), u.Color[0], u.Color[1], u.Color[2], u.Color[3])
	setBool(p, "useFlatColor", u.UseFlatColor)
	setBool(p, "useNormal", u.UseNormal)
	setBool(p, "faceted", u.Faceted)
	setBool(p, "useTexture", u.UseTexture)
	gl.Uniform1f(uniform(p, "uvScale"), u.UVScale)
	gl.Uniform2f(uniform(p, "resolution"), u.Resolution[0], u.Resolution[1])
	gl.Uniform1f(uniform(p, "time"), u.Time)

	lights := u.Lights
	if len(lights) > maxLights {
		lights = lights[:maxLights]
	}
	gl.Uniform1i(uniform(p, "nLights"), int32(len(lights)))
	if len(lights) > 0 {
		gl.Uniform3fv(uniform(p, "lights"), int32(len(lights)), &lights[0][0])
	}

	if u.UseTexture {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, uint32(u.Texture))
		gl.Uniform1i(uniform(p, "textureImage"), 0)
	}

	gl.BindVertexArray(buf.VAO)
	if buf.Indexed {
		gl.DrawElements(primitive(buf.Primitive), buf.Count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(primitive(buf.Primitive), 0, buf.Count)
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) DrawSprites(program models.Program, sprites []models.Sprite, u models.Uniforms) {
	if len(sprites) == 0 {
		return
	}
	p := uint32(program)
	gl.UseProgram(p)
	setMat4(p, "persp", u.Persp)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.BufferData(
		gl.ARRAY_BUFFER,
		len(sprites)*int(models.SpriteLayout.Stride),
		gl.Ptr(sprites),
		gl.DYNAMIC_DRAW,
	)

	gl.DepthMask(false)
	gl.BindVertexArray(r.spriteVAO)
	gl.DrawArrays(gl.POINTS, 0, int32(len(sprites)))
	gl.BindVertexArray(0)
	gl.DepthMask(true)
}

func (r *Renderer) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func uniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func setMat4(program uint32, name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(uniform(program, name), 1, false, &m[0])
}

func setBool(program uint32, name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	gl.Uniform1i(uniform(program, name), i)
}

func primitive(p models.Primitive) uint32 {
	switch p {
	case models.TriangleStrip:
		return gl.TRIANGLE_STRIP
	case models.Points:
		return gl.POINTS
	default:
		return gl.TRIANGLES
	}
}
