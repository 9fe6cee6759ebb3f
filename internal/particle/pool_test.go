package particle

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func testConfig(capacity int, decrement float32) Config {
	cfg := DefaultConfig()
	cfg.Capacity = capacity
	cfg.LifeDecrement = decrement
	return cfg
}

func TestNewPoolIsAllDead(t *testing.T) {
	p := New(testConfig(8, 0.1), seeded())
	assert.Equal(t, 8, p.Capacity())
	assert.Equal(t, 0, p.Cursor())
	assert.Equal(t, 0, p.AliveCount())
}

func TestSpawnBeyondCapacityRecyclesSlotZero(t *testing.T) {
	for _, capacity := range []int{1, 2, 3, 7, 64} {
		p := New(testConfig(capacity, 0.1), seeded())
		for range capacity {
			p.Spawn(mgl32.Vec3{}, 1)
		}
		require.Equal(t, capacity, p.AliveCount())
		assert.Equal(t, capacity-1, p.Cursor())

		p.Spawn(mgl32.Vec3{1, 2, 3}, 1)
		assert.Equal(t, capacity, p.AliveCount(), "capacity %d", capacity)
		assert.Equal(t, 0, p.Cursor(), "capacity %d", capacity)

		var first Particle
		for i, pt := range p.Alive() {
			if i == 0 {
				first = pt
			}
		}
		assert.Equal(t, mgl32.Vec3{1, 2, 3}, first.Position)
		assert.Equal(t, float32(1), first.Life)
	}
}

func TestSpawnScansFromCursorThenWraps(t *testing.T) {
	p := New(testConfig(4, 0.1), seeded())
	p.Spawn(mgl32.Vec3{}, 4)
	require.Equal(t, 3, p.Cursor())

	p.slots[1].Life = 0
	p.slots[3].Life = 0

	p.Spawn(mgl32.Vec3{}, 1)
	assert.Equal(t, 3, p.Cursor(), "dead slot at cursor is taken first")

	p.Spawn(mgl32.Vec3{}, 1)
	assert.Equal(t, 1, p.Cursor(), "search wraps to the start")
	assert.Equal(t, 4, p.AliveCount())
}

func TestSpawnOnEmptyPoolIsNoop(t *testing.T) {
	p := New(testConfig(0, 0.1), seeded())
	assert.NotPanics(t, func() {
		p.Spawn(mgl32.Vec3{}, 5)
		p.StepAll()
	})
	assert.Equal(t, 0, p.AliveCount())
}

func TestStepDecreasesLifeUntilDeadThenInert(t *testing.T) {
	cfg := testConfig(2, 0.3)
	cfg.Gravity = mgl32.Vec3{0, -0.01, 0}
	p := New(cfg, seeded())
	p.Spawn(mgl32.Vec3{}, 1)

	last := float32(1)
	for p.AliveCount() > 0 {
		p.StepAll()
		life := p.slots[0].Life
		assert.Less(t, life, last)
		last = life
	}
	assert.LessOrEqual(t, p.slots[0].Life, float32(0))

	pos, vel := p.slots[0].Position, p.slots[0].Velocity
	for range 5 {
		p.StepAll()
	}
	assert.Equal(t, pos, p.slots[0].Position)
	assert.Equal(t, vel, p.slots[0].Velocity)
}

func TestTwoTicksAtHalfDecrementFreesSlot(t *testing.T) {
	p := New(testConfig(3, 0.5), seeded())
	p.Spawn(mgl32.Vec3{}, 1)
	p.StepAll()
	assert.Equal(t, 1, p.AliveCount())
	p.StepAll()
	assert.Equal(t, 0, p.AliveCount())
	assert.LessOrEqual(t, p.slots[0].Life, float32(0))

	p.Spawn(mgl32.Vec3{5, 5, 5}, 1)
	assert.Equal(t, 0, p.Cursor())
	assert.Equal(t, mgl32.Vec3{5, 5, 5}, p.slots[0].Position)
}

func TestStepIntegratesVelocity(t *testing.T) {
	p := New(testConfig(1, 0.1), seeded())
	p.Spawn(mgl32.Vec3{}, 1)
	v := p.slots[0].Velocity

	p.Step(2)
	assert.InDelta(t, 2*v.X(), p.slots[0].Position.X(), 1e-6)
	assert.InDelta(t, 2*v.Y(), p.slots[0].Position.Y(), 1e-6)
	assert.InDelta(t, 0.8, p.slots[0].Life, 1e-6)
}

func TestRevivedVelocityWithinVariance(t *testing.T) {
	cfg := testConfig(100, 0.1)
	p := New(cfg, seeded())
	p.Spawn(mgl32.Vec3{}, 100)
	p.ForEachAlive(func(_ int, pt *Particle) {
		assert.GreaterOrEqual(t, pt.Velocity.X(), -cfg.HVariance)
		assert.LessOrEqual(t, pt.Velocity.X(), cfg.HVariance)
		assert.GreaterOrEqual(t, pt.Velocity.Y(), cfg.VMin)
		assert.LessOrEqual(t, pt.Velocity.Y(), cfg.VMax)
		assert.GreaterOrEqual(t, pt.Velocity.Z(), -cfg.HVariance)
		assert.LessOrEqual(t, pt.Velocity.Z(), cfg.HVariance)
	})
}

func TestAliveIsRepeatable(t *testing.T) {
	p := New(testConfig(10, 0.2), seeded())
	p.Spawn(mgl32.Vec3{}, 3)
	p.StepAll()
	p.Spawn(mgl32.Vec3{1, 0, 0}, 2)

	collect := func() ([]int, []Particle) {
		var idx []int
		var pts []Particle
		for i, pt := range p.Alive() {
			idx = append(idx, i)
			pts = append(pts, pt)
		}
		return idx, pts
	}
	i1, p1 := collect()
	i2, p2 := collect()
	assert.Equal(t, i1, i2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, i1)
}

func TestAliveStopsEarly(t *testing.T) {
	p := New(testConfig(5, 0.1), seeded())
	p.Spawn(mgl32.Vec3{}, 5)
	n := 0
	for range p.Alive() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestShadeFunctions(t *testing.T) {
	tests := []struct {
		name  string
		shade ColorFunc
		base  mgl32.Vec4
		life  float32
		want  mgl32.Vec4
	}{
		{"shift green fresh", ShiftGreen, mgl32.Vec4{0, 0, 1, 1}, 1, mgl32.Vec4{0, 0, 1, 1}},
		{"shift green half", ShiftGreen, mgl32.Vec4{1, 0, 0, 1}, 0.5, mgl32.Vec4{1, 0.5, 0, 1}},
		{"fade to blue", FadeToBlue, mgl32.Vec4{1, 1, 1, 0.5}, 0.25, mgl32.Vec4{0, 0.25, 1, 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shade(tt.base, tt.life))
		})
	}
}

func TestStepAppliesShade(t *testing.T) {
	cfg := testConfig(1, 0.5)
	cfg.BaseColor = mgl32.Vec4{0, 0, 1, 1}
	p := New(cfg, seeded())
	p.Spawn(mgl32.Vec3{}, 1)
	p.StepAll()
	assert.Equal(t, mgl32.Vec4{0, 0.5, 1, 1}, p.slots[0].Color)
}
