package demo

import (
	"math"

	"github.com/ThatOtherAndrew/portalfx/internal/clock"
	"github.com/ThatOtherAndrew/portalfx/internal/mesh"
	"github.com/ThatOtherAndrew/portalfx/internal/scene"
	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	Register("orbit", func() Demo { return &Orbit{} })
}

const orbitRingSize = 30

// Orbit circles the letters around a bobbing cube inside two tilted,
// counter-rotating rings of mini cubes.
type Orbit struct {
	env *Env
}

func (o *Orbit) Name() string { return "orbit" }

func (o *Orbit) Usage() string {
	return `LEFT-CLICK + DRAG          adjust view
SHIFT + LEFT-CLICK + DRAG  move objects
SCROLL                     zoom in and out
F, SHIFT + F               adjust field of view`
}

func (o *Orbit) Setup(env *Env) error {
	o.env = env
	env.State().Toggles = 0
	env.UseCamera(func(cfg *scene.CameraConfig) {
		cfg.Translation = mgl32.Vec3{0, 0, -1}
		cfg.Scroll = scene.ScrollZoom
	})

	meshes := mesh.Letters()
	meshes["cube"] = mesh.Cube()
	return env.addMeshes(meshes)
}

func (o *Orbit) Update(clock.Frame) {}

func (o *Orbit) Compose(frame clock.Frame) scene.Frame {
	t := frame.Time
	f := scene.NewFrame(o.env.State(), gray)
	f.View = f.View.Mul4(scene.ScaleUniform(0.1))
	f.Time = t

	orbit := scene.RotateY(-30 * t)
	for k, name := range mesh.LetterNames {
		f.Add(scene.DrawCall{
			Mesh:  name,
			Model: scene.Chain(orbit, scene.RotateY(float32(k)*90), scene.Translate(mgl32.Vec3{0, 0, 2})),
		})
	}

	bob := 1.5 * float32(math.Cos(float64(t)))
	f.Add(scene.DrawCall{
		Mesh: "cube",
		Model: scene.Chain(
			scene.Translate(mgl32.Vec3{0, bob, 0}),
			scene.RotateX(60*t),
			scene.RotateY(-30*t),
			scene.ScaleUniform(0.75),
		),
	})

	for _, m := range OrbitRings(t) {
		f.Add(scene.DrawCall{Mesh: "cube", Model: m})
	}
	return f
}

// OrbitRings returns both rings of mini cubes at time t, the first tilted
// +45 degrees and tumbling forwards, the second mirrored.
func OrbitRings(t float32) []mgl32.Mat4 {
	place := scene.Chain(scene.RotateZ(360*t), scene.Translate(mgl32.Vec3{0, 0, 3}), scene.ScaleUniform(0.15))
	ring := scene.Ring(orbitRingSize, place)

	out := make([]mgl32.Mat4, 0, 2*len(ring))
	for _, sign := range []float32{1, -1} {
		tilt := scene.Chain(scene.RotateX(sign*60*t), scene.RotateZ(sign*45))
		for _, m := range ring {
			out = append(out, tilt.Mul4(m))
		}
	}
	return out
}
