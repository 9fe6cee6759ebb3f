package spawn

import (
	"math/rand/v2"
	"testing"

	"github.com/ThatOtherAndrew/portalfx/internal/particle"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func newPool(capacity int) *particle.Pool {
	cfg := particle.DefaultConfig()
	cfg.Capacity = capacity
	return particle.New(cfg, rand.New(rand.NewPCG(3, 4)))
}

func TestEmitCarriesFractions(t *testing.T) {
	pool := newPool(100)
	e := New(pool, mgl32.Vec3{}, 1)

	total := 0
	for range 4 {
		total += e.Emit(0.5)
	}
	assert.Equal(t, 2, total)
	assert.Equal(t, 2, pool.AliveCount())

	assert.Equal(t, 3, e.Emit(3))
	assert.Equal(t, 5, pool.AliveCount())
}

func TestEmitIfGates(t *testing.T) {
	pool := newPool(10)
	e := New(pool, mgl32.Vec3{1, 2, 3}, 5)

	assert.Equal(t, 0, e.EmitIf(false, 1))
	assert.Equal(t, 5, e.EmitIf(true, 1))
	for _, p := range pool.Alive() {
		assert.Equal(t, mgl32.Vec3{1, 2, 3}, p.Position)
	}
}

func TestEmitIfDropsCarryWhenClosed(t *testing.T) {
	pool := newPool(10)
	e := New(pool, mgl32.Vec3{}, 1)
	assert.Equal(t, 0, e.EmitIf(true, 0.75))
	e.EmitIf(false, 1)
	assert.Equal(t, 0, e.EmitIf(true, 0.5))
}

func TestEmitIgnoresNonPositiveInput(t *testing.T) {
	pool := newPool(10)
	assert.Equal(t, 0, New(pool, mgl32.Vec3{}, 1).Emit(-1))
	assert.Equal(t, 0, New(pool, mgl32.Vec3{}, 0).Emit(1))
	assert.Equal(t, 0, New(nil, mgl32.Vec3{}, 1).Emit(1))
	assert.Zero(t, pool.AliveCount())
}
