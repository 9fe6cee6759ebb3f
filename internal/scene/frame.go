package scene

import (
	"github.com/ThatOtherAndrew/portalfx/internal/particle"
	"github.com/go-gl/mathgl/mgl32"
)

type Style int

const (
	VertexColor Style = iota
	Flat
	Faceted
	Textured
)

func (s Style) String() string {
	switch s {
	case Flat:
		return "flat"
	case Faceted:
		return "faceted"
	case Textured:
		return "textured"
	default:
		return "vertex-color"
	}
}

// DrawCall draws one named mesh. Model is relative to the frame's View.
type DrawCall struct {
	Mesh    string
	Program string
	Texture string
	Model   mgl32.Mat4
	Color   mgl32.Vec4
	Style   Style
	Lit     bool
	UVScale float32
}

type Sprite struct {
	Position mgl32.Vec3
	Color    mgl32.Vec4
	Size     float32
}

// Frame is everything the drawer needs for one presented image. Sprites are
// in view space; they are drawn after Calls.
type Frame struct {
	Clear    mgl32.Vec4
	Depth    bool
	Additive bool
	View     mgl32.Mat4
	Persp    mgl32.Mat4
	Lights   []mgl32.Vec3
	Calls    []DrawCall
	Sprites  []Sprite
	Time     float32
}

// NewFrame starts a frame from the camera in s.
func NewFrame(s *State, clear mgl32.Vec4) Frame {
	return Frame{
		Clear: clear,
		Depth: true,
		View:  s.Camera.View(),
		Persp: s.Camera.Persp(),
	}
}

func (f *Frame) Add(call DrawCall) {
	if call.Program == "" {
		call.Program = "mesh"
	}
	if call.UVScale == 0 {
		call.UVScale = 1
	}
	f.Calls = append(f.Calls, call)
}

// AddLight places a light given in world space.
func (f *Frame) AddLight(p mgl32.Vec3) {
	f.Lights = append(f.Lights, Apply(f.View, p))
}

// AddParticles emits a sprite for every alive particle in pool, placed
// through the world transform and then the view.
func (f *Frame) AddParticles(pool *particle.Pool, transform mgl32.Mat4, size float32) {
	m := f.View.Mul4(transform)
	for _, p := range pool.Alive() {
		f.Sprites = append(f.Sprites, Sprite{
			Position: Apply(m, p.Position),
			Color:    p.Color,
			Size:     size,
		})
	}
}
