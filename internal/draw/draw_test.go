package draw

import (
	"errors"
	"image"
	"testing"

	"github.com/ThatOtherAndrew/portalfx/internal/models"
	"github.com/ThatOtherAndrew/portalfx/internal/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawn struct {
	program models.Program
	buf     models.Buffer
	u       models.Uniforms
}

type fakeRenderer struct {
	compileErr error
	compiled   int
	uploads    []*models.Mesh
	textures   int
	begins     int
	additive   bool
	draws      []drawn
	sprites    []models.Sprite
	viewport   [2]int
}

func (f *fakeRenderer) CompileShaderProgram(vertex, fragment string) (models.Program, error) {
	if f.compileErr != nil {
		return 0, f.compileErr
	}
	f.compiled++
	return models.Program(f.compiled), nil
}

func (f *fakeRenderer) UploadMesh(mesh *models.Mesh) (models.Buffer, error) {
	f.uploads = append(f.uploads, mesh)
	return models.Buffer{VAO: uint32(len(f.uploads)), Count: int32(len(mesh.Indices))}, nil
}

func (f *fakeRenderer) UploadTexture(img image.Image) (models.Texture, error) {
	f.textures++
	return models.Texture(f.textures), nil
}

func (f *fakeRenderer) Begin(clear mgl32.Vec4, depth, additive bool) {
	f.begins++
	f.additive = additive
}

func (f *fakeRenderer) Draw(program models.Program, buf models.Buffer, u models.Uniforms) {
	f.draws = append(f.draws, drawn{program, buf, u})
}

func (f *fakeRenderer) DrawSprites(program models.Program, sprites []models.Sprite, u models.Uniforms) {
	f.sprites = append(f.sprites, sprites...)
}

func (f *fakeRenderer) Viewport(width, height int) {
	f.viewport = [2]int{width, height}
}

func newDrawer(t *testing.T) (*Drawer, *fakeRenderer) {
	t.Helper()
	r := &fakeRenderer{}
	d := New(r)
	require.NoError(t, d.Init())
	require.NoError(t, d.AddMesh("cube", &models.Mesh{Name: "cube", Indices: make([]uint32, 36)}))
	return d, r
}

func TestInitFailsOnCompileError(t *testing.T) {
	boom := errors.New("boom")
	d := New(&fakeRenderer{compileErr: boom})
	err := d.Init()
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "mesh program")
}

func TestRenderComposesModelView(t *testing.T) {
	d, r := newDrawer(t)
	view := scene.Translate(mgl32.Vec3{0, 0, -10})
	model := scene.Translate(mgl32.Vec3{2, 0, 0})

	var f scene.Frame
	f.View = view
	f.Add(scene.DrawCall{Mesh: "cube", Model: model, Color: mgl32.Vec4{0, 0, 1, 1}, Style: scene.Flat})
	d.Render(f)

	require.Len(t, r.draws, 1)
	got := r.draws[0]
	assert.Equal(t, int32(36), got.buf.Count)
	assert.True(t, got.u.ModelView.ApproxEqual(view.Mul4(model)))
	assert.True(t, got.u.UseFlatColor)
	assert.False(t, got.u.UseNormal)
	assert.Equal(t, float32(1), got.u.UVScale)
	assert.Equal(t, 1, r.begins)
}

func TestRenderStyles(t *testing.T) {
	d, r := newDrawer(t)
	require.NoError(t, d.AddTexture("checker", image.NewRGBA(image.Rect(0, 0, 2, 2))))

	var f scene.Frame
	f.Add(scene.DrawCall{Mesh: "cube", Style: scene.Faceted})
	f.Add(scene.DrawCall{Mesh: "cube", Style: scene.Textured, Texture: "checker", Lit: true})
	f.Add(scene.DrawCall{Mesh: "cube", Style: scene.Textured, Texture: "nope"})
	f.Add(scene.DrawCall{Mesh: "cube", Lit: true})
	d.Render(f)

	require.Len(t, r.draws, 4)
	assert.True(t, r.draws[0].u.Faceted)
	assert.True(t, r.draws[0].u.UseNormal)

	assert.True(t, r.draws[1].u.UseTexture)
	assert.Equal(t, models.Texture(1), r.draws[1].u.Texture)
	assert.True(t, r.draws[1].u.UseNormal)

	assert.False(t, r.draws[2].u.UseTexture, "missing texture falls back to flat color")
	assert.True(t, r.draws[2].u.UseFlatColor)

	assert.False(t, r.draws[3].u.UseFlatColor)
	assert.True(t, r.draws[3].u.UseNormal)
}

func TestRenderSkipsUnknownNames(t *testing.T) {
	d, r := newDrawer(t)
	var f scene.Frame
	f.Add(scene.DrawCall{Mesh: "teapot"})
	f.Add(scene.DrawCall{Mesh: "cube", Program: "nope"})
	f.Add(scene.DrawCall{Mesh: "cube"})
	d.Render(f)
	d.Render(f)
	assert.Len(t, r.draws, 2)
}

func TestRenderSprites(t *testing.T) {
	d, r := newDrawer(t)
	f := scene.Frame{
		Additive: true,
		Sprites: []scene.Sprite{
			{Position: mgl32.Vec3{1, 2, 3}, Color: mgl32.Vec4{1, 0, 0, 1}, Size: 4},
			{Position: mgl32.Vec3{4, 5, 6}, Color: mgl32.Vec4{0, 1, 0, 1}, Size: 2},
		},
	}
	d.Render(f)

	assert.True(t, r.additive)
	assert.Empty(t, r.draws)
	require.Len(t, r.sprites, 2)
	assert.Equal(t, models.Sprite{Position: mgl32.Vec3{4, 5, 6}, Color: mgl32.Vec4{0, 1, 0, 1}, Size: 2}, r.sprites[1])
}

func TestResize(t *testing.T) {
	d, r := newDrawer(t)
	d.Resize(0, 10)
	assert.Equal(t, [2]int{}, r.viewport)
	d.Resize(800, 600)
	assert.Equal(t, [2]int{800, 600}, r.viewport)

	var f scene.Frame
	f.Add(scene.DrawCall{Mesh: "cube"})
	d.Render(f)
	assert.Equal(t, mgl32.Vec2{800, 600}, r.draws[0].u.Resolution)
}
