package demo

import (
	"github.com/ThatOtherAndrew/portalfx/internal/clock"
	"github.com/ThatOtherAndrew/portalfx/internal/mesh"
	"github.com/ThatOtherAndrew/portalfx/internal/models"
	"github.com/ThatOtherAndrew/portalfx/internal/scene"
	"github.com/ThatOtherAndrew/portalfx/internal/texture"
	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	Register("planet", func() Demo { return &Planet{} })
}

var green = mgl32.Vec4{0, 1, 0, 1}

// Planet is a slowly turning textured sphere with two tumbling moons, one
// wearing the texture at four times the frequency and one plain green.
type Planet struct {
	env *Env
}

func (p *Planet) Name() string { return "planet" }

func (p *Planet) Usage() string {
	return `LEFT-CLICK + DRAG          adjust view
SHIFT + LEFT-CLICK + DRAG  move objects
SCROLL                     rotate view
SHIFT + SCROLL             zoom in and out
F, SHIFT + F               adjust field of view`
}

func (p *Planet) Setup(env *Env) error {
	p.env = env
	env.State().Toggles = scene.Toggles(scene.Shading | scene.Texture)
	if err := env.addMeshes(map[string]*models.Mesh{"sphere": mesh.Sphere(32, 64)}); err != nil {
		return err
	}
	return env.addTexture("planet", texture.OrChecker(env.App.Settings.Textures.Planet))
}

func (p *Planet) Update(clock.Frame) {}

func (p *Planet) Compose(frame clock.Frame) scene.Frame {
	st := p.env.State()
	t := frame.Time
	f := scene.NewFrame(st, black)
	f.Time = t
	// the light rides with the eye, just to its right
	f.Lights = append(f.Lights, mgl32.Vec3{1, 0, 0})

	lit := st.Toggles.On(scene.Shading)
	style := scene.Flat
	if st.Toggles.On(scene.Texture) {
		style = scene.Textured
	}
	center, textured, plain := PlanetModels(t)
	f.Add(scene.DrawCall{Mesh: "sphere", Texture: "planet", Model: center, Color: green, Style: style, Lit: lit})
	f.Add(scene.DrawCall{Mesh: "sphere", Texture: "planet", Model: textured, Color: green, Style: style, Lit: lit, UVScale: 4})
	f.Add(scene.DrawCall{Mesh: "sphere", Model: plain, Color: green, Style: scene.Flat, Lit: lit})
	return f
}

// PlanetModels returns the planet and its two moons at time t.
func PlanetModels(t float32) (center, textured, plain mgl32.Mat4) {
	spin := scene.RotateY(90 * t)
	small := scene.ScaleUniform(0.5)
	center = scene.RotateY(10 * t)
	textured = scene.Chain(
		scene.RotateY(-90*t),
		scene.RotateZ(-180-90*t),
		scene.Translate(mgl32.Vec3{0, 0, 2.5}),
		spin,
		small,
	)
	plain = scene.Chain(
		scene.RotateY(-90*t),
		scene.RotateZ(-90*t),
		scene.Translate(mgl32.Vec3{0, 0, -2.5}),
		spin,
		small,
	)
	return center, textured, plain
}
