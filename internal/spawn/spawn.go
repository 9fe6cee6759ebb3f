// Package spawn feeds particle pools at a time-scaled rate.
package spawn

import (
	"github.com/ThatOtherAndrew/portalfx/internal/particle"
	"github.com/go-gl/mathgl/mgl32"
)

// Emitter spawns PerTick particles per tick at Origin. Fractional spawns
// carry over between calls so the rate holds at any frame rate.
type Emitter struct {
	Pool    *particle.Pool
	Origin  mgl32.Vec3
	PerTick float32

	carry float32
}

func New(pool *particle.Pool, origin mgl32.Vec3, perTick float32) *Emitter {
	return &Emitter{Pool: pool, Origin: origin, PerTick: perTick}
}

// Emit spawns for the given number of ticks and reports how many particles
// it revived.
func (e *Emitter) Emit(ticks float32) int {
	if ticks <= 0 || e.PerTick <= 0 || e.Pool == nil {
		return 0
	}
	e.carry += e.PerTick * ticks
	n := int(e.carry)
	e.carry -= float32(n)
	if n > 0 {
		e.Pool.Spawn(e.Origin, n)
	}
	return n
}

// EmitIf emits only while cond holds. Leftover fractions are dropped when
// the gate closes.
func (e *Emitter) EmitIf(cond bool, ticks float32) int {
	if !cond {
		e.carry = 0
		return 0
	}
	return e.Emit(ticks)
}
