package scene

import (
	"math/rand/v2"
	"testing"

	"github.com/ThatOtherAndrew/portalfx/internal/particle"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDragAccumulatesOnCommittedBaseline(t *testing.T) {
	cfg := DefaultCameraConfig()
	c := NewCamera(cfg)

	c.MouseDown(100, 100)
	c.MouseDrag(150, 120, false)
	want := mgl32.Vec2{50, 20}.Mul(cfg.RotSpeed)
	assert.True(t, c.Rotation().ApproxEqual(want), "got %v", c.Rotation())

	c.MouseUp()
	assert.True(t, c.Rotation().ApproxEqual(want))

	c.MouseDown(100, 100)
	c.MouseDrag(150, 120, false)
	assert.True(t, c.Rotation().ApproxEqual(want.Mul(2)), "got %v", c.Rotation())
}

func TestDragWithoutReleaseDoesNotAccumulate(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	c.MouseDown(0, 0)
	c.MouseDrag(10, 0, false)
	c.MouseDrag(20, 0, false)
	assert.InDelta(t, 20*0.3, c.Rotation().X(), 1e-5)
}

func TestShiftDragTranslates(t *testing.T) {
	cfg := DefaultCameraConfig()
	c := NewCamera(cfg)
	c.MouseDown(0, 0)
	c.MouseDrag(400, 200, true)
	c.MouseUp()

	want := cfg.Translation.Add(mgl32.Vec3{400, -200, 0}.Mul(cfg.TranSpeed))
	assert.True(t, c.Translation().ApproxEqual(want), "got %v", c.Translation())
	assert.Equal(t, mgl32.Vec2{}, c.Rotation())
}

func TestWheel(t *testing.T) {
	cfg := DefaultCameraConfig()
	cfg.Scroll = ScrollZoom
	c := NewCamera(cfg)

	c.Wheel(true, false)
	assert.InDelta(t, -10.1, c.Translation().Z(), 1e-5)
	c.Wheel(false, false)
	c.Wheel(false, false)
	assert.InDelta(t, -9.9, c.Translation().Z(), 1e-5)

	c.Wheel(true, true)
	assert.Equal(t, cfg.WheelDegrees, c.Roll())

	// zoom commits, so a later drag starts from the zoomed baseline
	c.MouseDown(0, 0)
	c.MouseDrag(0, 0, true)
	assert.InDelta(t, -9.9, c.Translation().Z(), 1e-5)
}

func TestFOVIsClamped(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	tests := []struct {
		in, want float32
	}{
		{40, 40},
		{1, MinFOV},
		{-30, MinFOV},
		{200, MaxFOV},
		{150, 150},
	}
	for _, tt := range tests {
		c.SetFOV(tt.in)
		assert.Equal(t, tt.want, c.FOV(), "SetFOV(%v)", tt.in)
	}

	c.SetFOV(MaxFOV)
	c.StepFOV(false)
	assert.Equal(t, float32(MaxFOV), c.FOV())
	c.SetFOV(MinFOV)
	c.StepFOV(true)
	assert.Equal(t, float32(MinFOV), c.FOV())
	c.StepFOV(false)
	assert.Equal(t, float32(MinFOV+FOVStep), c.FOV())
}

func TestResizeIgnoresEmptyWindow(t *testing.T) {
	s := NewState(DefaultCameraConfig(), 800, 400, 0)
	assert.InDelta(t, 2, s.Camera.Aspect(), 1e-6)
	s.Resize(0, 300)
	assert.Equal(t, 800, s.Width)
	assert.InDelta(t, 2, s.Camera.Aspect(), 1e-6)
}

func TestTravelersShareOffset(t *testing.T) {
	p := DefaultPortal()
	for _, tm := range []float32{0, 0.3, 1, 1.5707964, 2.9, 10, 123.4} {
		a, b := p.Travelers(tm)
		d := p.Displacement(tm)
		assert.Equal(t, p.AnchorA.Add(d), a, "t=%v", tm)
		assert.Equal(t, p.AnchorB.Add(d), b, "t=%v", tm)
		assert.InDelta(t, p.Offset(tm), d.Dot(p.Axis), 1e-6)
	}
}

func TestCrossing(t *testing.T) {
	p := DefaultPortal()
	assert.False(t, p.Crossing(0), "offset is at full amplitude")
	assert.True(t, p.Crossing(1.5707964), "offset passes zero at pi/2")
	assert.False(t, p.Crossing(3.1415927))
}

func TestOscillationMovesPortalsApart(t *testing.T) {
	p := DefaultPortal()
	a, b := p.Oscillation(0, false)
	assert.Equal(t, mgl32.Ident4(), a)
	assert.Equal(t, mgl32.Ident4(), b)

	a, b = p.Oscillation(0, true)
	assert.InDelta(t, -1, a.Col(3).Y(), 1e-6)
	assert.InDelta(t, 1, b.Col(3).Y(), 1e-6)
}

func TestFramesSitOutsideAnchors(t *testing.T) {
	p := DefaultPortal()
	a, b := p.Frames(0, false)
	assert.InDelta(t, -3.25, a.Col(3).X(), 1e-6)
	assert.InDelta(t, 3.25, b.Col(3).X(), 1e-6)
}

func TestRingAnglesCloseTheLoop(t *testing.T) {
	for _, n := range []int{1, 3, 30, 60} {
		angles := RingAngles(n)
		require.Len(t, angles, n)
		for i, a := range angles {
			assert.InDelta(t, float32(i+1)*360/float32(n), a, 1e-4)
		}
		assert.InDelta(t, 360, angles[n-1], 1e-4, "last angle is a full turn")
	}
	assert.Empty(t, RingAngles(0))
}

func TestRingPlacesOnCircle(t *testing.T) {
	ms := Ring(4, Translate(mgl32.Vec3{0, 0, 3}))
	require.Len(t, ms, 4)
	for _, m := range ms {
		p := Apply(m, mgl32.Vec3{})
		assert.InDelta(t, 3, p.Len(), 1e-5)
		assert.InDelta(t, 0, p.X(), 1e-6)
	}
	last := Apply(ms[3], mgl32.Vec3{})
	assert.InDelta(t, 0, last.X(), 1e-5)
	assert.InDelta(t, 0, last.Y(), 1e-5)
	assert.InDelta(t, 3, last.Z(), 1e-5)
}

func TestPortalRings(t *testing.T) {
	p := DefaultPortal()
	a, b := p.Rings(0, false)
	require.Len(t, a, p.RingCount)
	require.Len(t, b, p.RingCount)
	for i := range a {
		ca := Apply(a[i], mgl32.Vec3{})
		cb := Apply(b[i], mgl32.Vec3{})
		assert.InDelta(t, -2, ca.X(), 1e-5)
		assert.InDelta(t, 2, cb.X(), 1e-5)
		assert.InDelta(t, p.RingRadius, mgl32.Vec2{ca.Y(), ca.Z()}.Len(), 1e-5)
	}
}

func TestToggles(t *testing.T) {
	var s Toggles
	assert.False(t, s.On(Particles))
	assert.True(t, s.Flip(Particles))
	assert.True(t, s.On(Particles))
	s.Set(Music, true)
	assert.Equal(t, "particles|music", s.String())
	assert.False(t, s.Flip(Particles))
	assert.Equal(t, "music", s.String())
	assert.Equal(t, "none", Toggles(0).String())
}

func TestFrameAddParticles(t *testing.T) {
	cfg := particle.DefaultConfig()
	cfg.Capacity = 4
	pool := particle.New(cfg, rand.New(rand.NewPCG(1, 2)))
	pool.Spawn(mgl32.Vec3{}, 3)

	f := Frame{View: Translate(mgl32.Vec3{0, 0, -10})}
	f.AddParticles(pool, Translate(mgl32.Vec3{2, 0, 0}), 4)

	require.Len(t, f.Sprites, 3)
	for _, s := range f.Sprites {
		assert.True(t, s.Position.ApproxEqual(mgl32.Vec3{2, 0, -10}), "got %v", s.Position)
		assert.Equal(t, float32(4), s.Size)
	}
}

func TestFrameAddDefaults(t *testing.T) {
	var f Frame
	f.Add(DrawCall{Mesh: "cube"})
	require.Len(t, f.Calls, 1)
	assert.Equal(t, "mesh", f.Calls[0].Program)
	assert.Equal(t, float32(1), f.Calls[0].UVScale)
}
