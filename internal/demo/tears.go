package demo

import (
	"github.com/ThatOtherAndrew/portalfx/internal/clock"
	"github.com/ThatOtherAndrew/portalfx/internal/input"
	"github.com/ThatOtherAndrew/portalfx/internal/mesh"
	"github.com/ThatOtherAndrew/portalfx/internal/models"
	"github.com/ThatOtherAndrew/portalfx/internal/particle"
	"github.com/ThatOtherAndrew/portalfx/internal/scene"
	"github.com/ThatOtherAndrew/portalfx/internal/spawn"
	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	Register("tears", func() Demo { return &Tears{} })
}

const (
	tearColumns  = 6
	tearsPerTick = 5
)

// TearConfig is the pool behind both tear streams.
func TearConfig() particle.Config {
	return particle.Config{
		Capacity:      500,
		LifeDecrement: 0.005,
		HVariance:     0.01,
		VMin:          0.025,
		VMax:          0.05,
		Gravity:       mgl32.Vec3{0, -0.0025, 0},
		BaseColor:     mgl32.Vec4{0, 1, 1, 1},
		Shade:         particle.FadeToBlue,
	}
}

// Tears is a face of flat cubes. Holding space turns the smile into a frown
// and sends tears down from both eyes.
type Tears struct {
	env       *Env
	pool      *particle.Pool
	emitter   *spawn.Emitter
	pointSize float32
}

func (d *Tears) Name() string { return "tears" }

func (d *Tears) Usage() string {
	return `LEFT-CLICK + DRAG          adjust view
SHIFT + LEFT-CLICK + DRAG  move objects
SCROLL                     zoom in and out
SPACE (hold)               cry`
}

func (d *Tears) Setup(env *Env) error {
	d.env = env
	d.pointSize = env.App.Settings.Particles.PointSize
	env.State().Toggles = scene.Toggles(scene.Particles)
	env.UseCamera(func(cfg *scene.CameraConfig) {
		cfg.Translation = mgl32.Vec3{0, 0, -1}
		cfg.Scroll = scene.ScrollZoom
	})

	meshes := map[string]*models.Mesh{"cube": mesh.Cube(), "drop": mesh.Octahedron()}
	if err := env.addMeshes(meshes); err != nil {
		return err
	}
	d.pool = env.NewPool(TearConfig())
	d.emitter = spawn.New(d.pool, mgl32.Vec3{}, tearsPerTick)
	return nil
}

func (d *Tears) crying() bool {
	return d.env.App.Controller.Held(input.KeySpace)
}

func (d *Tears) Update(frame clock.Frame) {
	on := d.crying() && d.env.State().Toggles.On(scene.Particles)
	d.emitter.EmitIf(on, d.env.Ticks(frame))
}

func (d *Tears) Compose(frame clock.Frame) scene.Frame {
	st := d.env.State()
	f := scene.NewFrame(st, black)
	f.View = f.View.Mul4(scene.ScaleUniform(0.3))
	f.Additive = true
	f.Time = frame.Time

	crying := d.crying()
	for _, m := range FaceModels(crying) {
		f.Add(scene.DrawCall{Mesh: "cube", Model: m, Color: red, Style: scene.Flat})
	}
	if crying {
		drop := scene.Scale(mgl32.Vec3{0.03, 0.05, 0.03})
		for _, x := range []float32{-0.5, 0.5} {
			f.Add(scene.DrawCall{
				Mesh:  "drop",
				Model: scene.Translate(mgl32.Vec3{x, 0.2, 0.1}).Mul4(drop),
				Color: mgl32.Vec4{0, 0.5, 1, 1},
				Style: scene.Flat,
			})
		}
	}
	for _, m := range TearColumns() {
		f.AddParticles(d.pool, m, d.pointSize)
	}
	return f
}

// FaceModels returns the eyes, cheeks and mouth. Frowning swaps the cheek
// and mouth heights.
func FaceModels(frown bool) []mgl32.Mat4 {
	cheekY, mouthY := float32(-0.3), float32(-0.5)
	if frown {
		cheekY, mouthY = mouthY, cheekY
	}
	small := scene.ScaleUniform(0.1)
	return []mgl32.Mat4{
		scene.Translate(mgl32.Vec3{-0.5, 0.3, 0}).Mul4(small),
		scene.Translate(mgl32.Vec3{0.5, 0.3, 0}).Mul4(small),
		scene.Translate(mgl32.Vec3{-0.5, cheekY, 0}).Mul4(small),
		scene.Translate(mgl32.Vec3{0.5, cheekY, 0}).Mul4(small),
		scene.Translate(mgl32.Vec3{0, mouthY, 0}).Mul4(scene.Scale(mgl32.Vec3{0.4, 0.1, 0.1})),
	}
}

// TearColumns returns the transforms the tear pool is drawn through: a
// few columns just under each eye.
func TearColumns() []mgl32.Mat4 {
	out := make([]mgl32.Mat4, 0, 2*tearColumns)
	for _, x := range []float32{-0.5, 0.5} {
		eye := scene.Translate(mgl32.Vec3{x, 0.2, 0})
		for i := -tearColumns / 2; i < tearColumns/2; i++ {
			out = append(out, eye.Mul4(scene.Translate(mgl32.Vec3{float32(i) / 35, 0, 0.1})))
		}
	}
	return out
}
