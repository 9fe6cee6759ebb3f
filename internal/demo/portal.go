package demo

import (
	"math"

	"github.com/ThatOtherAndrew/portalfx/internal/clock"
	"github.com/ThatOtherAndrew/portalfx/internal/config"
	"github.com/ThatOtherAndrew/portalfx/internal/mesh"
	"github.com/ThatOtherAndrew/portalfx/internal/models"
	"github.com/ThatOtherAndrew/portalfx/internal/particle"
	"github.com/ThatOtherAndrew/portalfx/internal/scene"
	"github.com/ThatOtherAndrew/portalfx/internal/spawn"
	"github.com/ThatOtherAndrew/portalfx/internal/texture"
	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	Register("portal", func() Demo { return &Portal{} })
}

var (
	black  = mgl32.Vec4{0, 0, 0, 1}
	blue   = mgl32.Vec4{0, 0, 1, 1}
	red    = mgl32.Vec4{1, 0, 0, 1}
	orange = mgl32.Vec4{1, 0.5, 0, 1}
)

// Portal is the portal illusion: a companion cube slides into one portal
// and out of the other, with particle streams flowing while it crosses.
type Portal struct {
	env    *Env
	layout scene.Portal

	// blue flows out of B, red out of A
	blue, red    *particle.Pool
	emitA, emitB *spawn.Emitter
	pointSize    float32
}

func (p *Portal) Name() string { return "portal" }

func (p *Portal) Usage() string {
	return `LEFT-CLICK + DRAG          adjust view
SHIFT + LEFT-CLICK + DRAG  move objects
SCROLL                     rotate view
SHIFT + SCROLL             zoom in and out
F, SHIFT + F               adjust field of view
L                          toggle shading
P                          toggle particles
M                          toggle music
T                          toggle texture
O                          toggle oscillation`
}

// PortalLayout builds the portal geometry from settings.
func PortalLayout(s config.Portal) scene.Portal {
	l := scene.DefaultPortal()
	l.AnchorA = mgl32.Vec3{-s.Anchor, 0, 0}
	l.AnchorB = mgl32.Vec3{s.Anchor, 0, 0}
	l.FrameOffset = s.FrameOffset
	l.Amplitude = s.Amplitude
	l.Rate = s.Rate
	l.Epsilon = s.Epsilon
	l.RingCount = s.RingCount
	return l
}

func (p *Portal) Setup(env *Env) error {
	p.env = env
	settings := env.App.Settings
	p.layout = PortalLayout(settings.Portal)
	p.pointSize = settings.Particles.PointSize

	env.State().Toggles = scene.Toggles(scene.Shading)

	if err := env.addMeshes(map[string]*models.Mesh{"cube": mesh.Cube()}); err != nil {
		return err
	}
	if err := env.addTexture("companion", texture.OrChecker(settings.Textures.Cube)); err != nil {
		return err
	}
	if err := env.addTexture("album", texture.OrChecker(settings.Textures.Album)); err != nil {
		return err
	}

	cfg := env.ParticleConfig()
	cfg.Shade = particle.ShiftGreen
	cfg.BaseColor = blue
	p.blue = env.NewPool(cfg)
	cfg.BaseColor = red
	p.red = env.NewPool(cfg)

	perTick := settings.Particles.PerTick
	p.emitA = spawn.New(p.red, mgl32.Vec3{}, perTick)
	p.emitB = spawn.New(p.blue, mgl32.Vec3{}, perTick)
	return nil
}

// Update emits into both streams while the cube is inside the portal plane.
func (p *Portal) Update(frame clock.Frame) {
	on := p.layout.Crossing(frame.Time) && p.env.State().Toggles.On(scene.Particles)
	ticks := p.env.Ticks(frame)
	p.emitA.EmitIf(on, ticks)
	p.emitB.EmitIf(on, ticks)
}

func (p *Portal) Compose(frame clock.Frame) scene.Frame {
	st := p.env.State()
	t := frame.Time
	osc := st.Toggles.On(scene.Oscillation)
	lit := st.Toggles.On(scene.Shading)

	f := scene.NewFrame(st, black)
	f.Time = t

	ea, eb := p.layout.Entrances()
	f.AddLight(ea)
	f.AddLight(eb)

	fa, fb := p.layout.Frames(t, osc)
	f.Add(scene.DrawCall{Mesh: "cube", Model: fa, Color: black, Style: scene.Flat})
	f.Add(scene.DrawCall{Mesh: "cube", Model: fb, Color: black, Style: scene.Flat})

	if st.Toggles.On(scene.Music) {
		f.Add(scene.DrawCall{Mesh: "cube", Texture: "album", Model: albumModel(t), Style: scene.Textured})
	}

	ra, rb := p.layout.Rings(t, osc)
	for _, m := range ra {
		f.Add(scene.DrawCall{Mesh: "cube", Model: m, Color: orange, Style: scene.Flat})
	}
	for _, m := range rb {
		f.Add(scene.DrawCall{Mesh: "cube", Model: m, Color: blue, Style: scene.Flat})
	}

	style := scene.VertexColor
	if st.Toggles.On(scene.Texture) {
		style = scene.Textured
	}
	spin := travelerSpin(t)
	ta, tb := p.layout.Travelers(t)
	for _, pos := range []mgl32.Vec3{ta, tb} {
		f.Add(scene.DrawCall{
			Mesh:    "cube",
			Texture: "companion",
			Model:   scene.Translate(pos).Mul4(spin),
			Style:   style,
			Lit:     lit,
		})
	}

	// the particle toggle gates emission only, so live particles fade out
	ma, mb := p.layout.Emitters()
	f.AddParticles(p.blue, mb, p.pointSize)
	f.AddParticles(p.red, ma, p.pointSize)
	return f
}

func travelerSpin(t float32) mgl32.Mat4 {
	return scene.Chain(scene.RotateX(30*t), scene.RotateX(45), scene.RotateY(45), scene.ScaleUniform(0.2))
}

// albumModel is the thin album-art panel hovering behind the portals.
func albumModel(t float32) mgl32.Mat4 {
	y := 2.5 + 0.25*float32(math.Cos(float64(1.5*t)))
	return scene.Chain(
		scene.Translate(mgl32.Vec3{0, y, -3}),
		scene.RotateY(180),
		scene.Scale(mgl32.Vec3{1.5, 1.5, 0.005}),
	)
}
