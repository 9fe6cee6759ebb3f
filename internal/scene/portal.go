package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Portal lays out the portal illusion. Two stationary frames sit beyond
// anchors A (negative side of Axis) and B (positive side). One traveler
// offset, a periodic function of time, is applied to both anchors, so the
// object seems to leave through one portal and come back out of the other.
type Portal struct {
	AnchorA, AnchorB mgl32.Vec3
	Axis             mgl32.Vec3
	FrameOffset      float32
	FrameScale       mgl32.Vec3
	Amplitude        float32
	Rate             float32 // radians per second
	Epsilon          float32
	OscAmplitude     float32
	RingCount        int
	RingRadius       float32
	RingScale        mgl32.Vec3
}

func DefaultPortal() Portal {
	return Portal{
		AnchorA:      mgl32.Vec3{-2, 0, 0},
		AnchorB:      mgl32.Vec3{2, 0, 0},
		Axis:         mgl32.Vec3{1, 0, 0},
		FrameOffset:  1.25,
		FrameScale:   mgl32.Vec3{1.25, 1.5, 1},
		Amplitude:    2,
		Rate:         1,
		Epsilon:      0.5,
		OscAmplitude: 1,
		RingCount:    60,
		RingRadius:   0.5,
		RingScale:    mgl32.Vec3{0.1, 0.05, 0.05},
	}
}

// Offset is the shared traveler displacement along Axis at time t.
func (p Portal) Offset(t float32) float32 {
	return p.Amplitude * float32(math.Cos(float64(t*p.Rate)))
}

// Displacement is the vector both travelers are moved by from their anchors.
func (p Portal) Displacement(t float32) mgl32.Vec3 {
	return p.Axis.Mul(p.Offset(t))
}

// Travelers returns the two render positions of the traveling object.
func (p Portal) Travelers(t float32) (a, b mgl32.Vec3) {
	d := p.Displacement(t)
	return p.AnchorA.Add(d), p.AnchorB.Add(d)
}

// Crossing reports whether the traveler is inside the portal plane, the
// moment particle emission is gated on.
func (p Portal) Crossing(t float32) bool {
	o := p.Offset(t)
	return o < p.Epsilon && o > -p.Epsilon
}

// Oscillation returns the vertical bob applied to each portal. The two
// portals move in opposite directions. Disabled, both are identity.
func (p Portal) Oscillation(t float32, on bool) (a, b mgl32.Mat4) {
	if !on {
		return mgl32.Ident4(), mgl32.Ident4()
	}
	y := p.OscAmplitude * float32(math.Cos(float64(t)))
	return Translate(mgl32.Vec3{0, -y, 0}), Translate(mgl32.Vec3{0, y, 0})
}

// Frames returns the model transforms of the two frame blocks.
func (p Portal) Frames(t float32, osc bool) (a, b mgl32.Mat4) {
	oa, ob := p.Oscillation(t, osc)
	pa := p.AnchorA.Sub(p.Axis.Mul(p.FrameOffset))
	pb := p.AnchorB.Add(p.Axis.Mul(p.FrameOffset))
	return Chain(oa, Translate(pa), Scale(p.FrameScale)),
		Chain(ob, Translate(pb), Scale(p.FrameScale))
}

// Entrances are the inner faces of the frames, where the lights sit.
func (p Portal) Entrances() (a, b mgl32.Vec3) {
	return p.AnchorA, p.AnchorB
}

// Rings returns the mini-block transforms outlining each entrance.
func (p Portal) Rings(t float32, osc bool) (a, b []mgl32.Mat4) {
	oa, ob := p.Oscillation(t, osc)
	place := Chain(Translate(mgl32.Vec3{0, 0, p.RingRadius}), Scale(p.RingScale))
	for _, m := range Ring(p.RingCount, place) {
		a = append(a, Chain(oa, Translate(p.AnchorA), m))
		b = append(b, Chain(ob, Translate(p.AnchorB), m))
	}
	return a, b
}

// Emitters return the transforms particle streams are drawn through. A
// particle rising along +Y in emitter space flows out of the entrance
// towards the other portal.
func (p Portal) Emitters() (a, b mgl32.Mat4) {
	stretch := Scale(mgl32.Vec3{p.FrameScale.X(), 1, 1})
	return Chain(Translate(p.AnchorA), stretch, RotateZ(-90)),
		Chain(Translate(p.AnchorB), stretch, RotateZ(90))
}

// RingAngles returns i*360/n for i in 1..n.
func RingAngles(n int) []float32 {
	if n <= 0 {
		return nil
	}
	angles := make([]float32, n)
	for i := 1; i <= n; i++ {
		angles[i-1] = float32(i) * 360 / float32(n)
	}
	return angles
}

// Ring evenly distributes n copies of place around the X axis.
func Ring(n int, place mgl32.Mat4) []mgl32.Mat4 {
	angles := RingAngles(n)
	out := make([]mgl32.Mat4, len(angles))
	for i, a := range angles {
		out[i] = RotateX(a).Mul4(place)
	}
	return out
}
