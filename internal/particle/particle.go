package particle

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// Particle is one pool slot. A slot with Life <= 0 is free.
type Particle struct {
	Position  mgl32.Vec3
	Velocity  mgl32.Vec3
	BaseColor mgl32.Vec4
	Color     mgl32.Vec4
	Life      float32
}

func (p *Particle) Alive() bool {
	return p.Life > 0
}

// ColorFunc derives the display color from the emitter's base color and the
// remaining life.
type ColorFunc func(base mgl32.Vec4, life float32) mgl32.Vec4

// ShiftGreen adds green as the particle ages, so a blue stream drifts to
// cyan and a red one to yellow.
func ShiftGreen(base mgl32.Vec4, life float32) mgl32.Vec4 {
	return base.Add(mgl32.Vec4{0, 1 - life, 0, 0})
}

// FadeToBlue keeps blue and fades green out with life.
func FadeToBlue(base mgl32.Vec4, life float32) mgl32.Vec4 {
	return mgl32.Vec4{0, life, 1, base.W()}
}

func (p *Particle) revive(pos mgl32.Vec3, base mgl32.Vec4, cfg *Config, rng *rand.Rand) {
	p.Life = 1
	p.Position = pos
	p.Velocity = mgl32.Vec3{
		between(rng, -cfg.HVariance, cfg.HVariance),
		between(rng, cfg.VMin, cfg.VMax),
		between(rng, -cfg.HVariance, cfg.HVariance),
	}
	p.BaseColor = base
	p.Color = base
}

func (p *Particle) step(ticks float32, cfg *Config) {
	if p.Life <= 0 {
		return
	}
	p.Life -= cfg.LifeDecrement * ticks
	p.Position = p.Position.Add(p.Velocity.Mul(ticks))
	p.Velocity = p.Velocity.Add(cfg.Gravity.Mul(ticks))
	if cfg.Shade != nil {
		p.Color = cfg.Shade(p.BaseColor, p.Life)
	}
}

func between(rng *rand.Rand, lo, hi float32) float32 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float32()*(hi-lo)
}
