package demo

import (
	"github.com/ThatOtherAndrew/portalfx/internal/clock"
	"github.com/ThatOtherAndrew/portalfx/internal/mesh"
	"github.com/ThatOtherAndrew/portalfx/internal/models"
	"github.com/ThatOtherAndrew/portalfx/internal/scene"
	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	Register("lollipop", func() Demo { return &Lollipop{} })
}

// Lollipop fills the window with concentric bands drifting outwards. All
// the work happens in the pattern fragment program.
type Lollipop struct{}

func (Lollipop) Name() string  { return "lollipop" }
func (Lollipop) Usage() string { return "ESC  quit" }

func (Lollipop) Setup(env *Env) error {
	env.State().Toggles = 0
	return env.addMeshes(map[string]*models.Mesh{"quad": mesh.Quad()})
}

func (Lollipop) Update(clock.Frame) {}

func (Lollipop) Compose(frame clock.Frame) scene.Frame {
	f := scene.Frame{
		Clear: black,
		View:  mgl32.Ident4(),
		Persp: mgl32.Ident4(),
		Time:  frame.Time,
	}
	f.Add(scene.DrawCall{Mesh: "quad", Program: "pattern", Model: mgl32.Ident4()})
	return f
}
