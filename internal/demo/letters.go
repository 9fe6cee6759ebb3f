package demo

import (
	"math"

	"github.com/ThatOtherAndrew/portalfx/internal/clock"
	"github.com/ThatOtherAndrew/portalfx/internal/input"
	"github.com/ThatOtherAndrew/portalfx/internal/mesh"
	"github.com/ThatOtherAndrew/portalfx/internal/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog/log"
)

func init() {
	Register("letters", func() Demo { return &Letters{} })
}

const (
	letterSpin  = 30 // degrees per second
	letterPulse = 1  // radians per second
)

var (
	gray      = mgl32.Vec4{0.5, 0.5, 0.5, 1}
	quadrants = [4]mgl32.Vec3{{-0.5, 0.5, 0}, {0.5, 0.5, 0}, {-0.5, -0.5, 0}, {0.5, -0.5, 0}}
)

// Letters spins and pulses one letter per screen quadrant. Rates change at
// runtime without the letters jumping.
type Letters struct {
	env   *Env
	spin  *clock.Phase
	pulse *clock.Phase
	now   float32
}

func (l *Letters) Name() string { return "letters" }

func (l *Letters) Usage() string {
	return `A  increase rotation speed
S  reset rotation speed
D  decrease rotation speed
R  reverse rotation direction
I  increase scaling rate
O  decrease scaling rate
P  reset scaling rate`
}

func (l *Letters) Setup(env *Env) error {
	l.env = env
	l.spin = clock.NewPhase(letterSpin)
	l.pulse = clock.NewPhase(letterPulse)
	env.State().Toggles = 0

	if err := env.addMeshes(mesh.Letters()); err != nil {
		return err
	}

	c := env.App.Controller
	c.Bind('A', l.spinBy(1.3))
	c.Bind('D', l.spinBy(0.7))
	c.Bind('R', l.spinBy(-1))
	c.Bind('S', func(input.Mods) {
		rate := float32(letterSpin)
		if l.spin.Rate() < 0 {
			rate = -rate
		}
		l.setRate(l.spin, "rotation", rate)
	})
	c.Bind('I', l.pulseBy(1.2))
	c.Bind('O', l.pulseBy(0.9))
	c.Bind('P', func(input.Mods) { l.setRate(l.pulse, "scaling", letterPulse) })
	return nil
}

func (l *Letters) spinBy(k float32) func(input.Mods) {
	return func(input.Mods) { l.setRate(l.spin, "rotation", l.spin.Rate()*k) }
}

func (l *Letters) pulseBy(k float32) func(input.Mods) {
	return func(input.Mods) { l.setRate(l.pulse, "scaling", l.pulse.Rate()*k) }
}

func (l *Letters) setRate(p *clock.Phase, what string, rate float32) {
	p.SetRate(l.now, rate)
	log.Debug().Float32("rate", rate).Msg(what + " rate")
}

func (l *Letters) Update(frame clock.Frame) {
	l.now = frame.Time
}

// Compose draws in clip space; the camera is not used.
func (l *Letters) Compose(frame clock.Frame) scene.Frame {
	t := frame.Time
	rot := scene.RotateZ(l.spin.Angle(t))
	s := 0.5 * (1 + float32(math.Sin(float64(l.pulse.Angle(t))))) / 2

	f := scene.Frame{
		Clear: gray,
		View:  mgl32.Ident4(),
		Persp: mgl32.Ident4(),
		Time:  t,
	}
	for i, name := range mesh.LetterNames {
		f.Add(scene.DrawCall{
			Mesh:  name,
			Model: scene.Chain(scene.Translate(quadrants[i]), rot, scene.ScaleUniform(s)),
		})
	}
	return f
}
