// Package particle implements a fixed-capacity particle pool with slot
// recycling. Pools are not safe for concurrent use; the render loop owns them.
package particle

import (
	"iter"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

type Config struct {
	Capacity      int
	LifeDecrement float32
	HVariance     float32
	VMin, VMax    float32
	Gravity       mgl32.Vec3
	BaseColor     mgl32.Vec4
	Shade         ColorFunc
}

func DefaultConfig() Config {
	return Config{
		Capacity:      250,
		LifeDecrement: 0.0075,
		HVariance:     0.005,
		VMin:          0.001,
		VMax:          0.0025,
		BaseColor:     mgl32.Vec4{1, 1, 1, 1},
		Shade:         ShiftGreen,
	}
}

type Pool struct {
	cfg    Config
	slots  []Particle
	cursor int
	rng    *rand.Rand
}

// New allocates cfg.Capacity dead particles. A nil rng gets a randomly
// seeded one.
func New(cfg Config, rng *rand.Rand) *Pool {
	if cfg.Capacity < 0 {
		cfg.Capacity = 0
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Pool{
		cfg:   cfg,
		slots: make([]Particle, cfg.Capacity),
		rng:   rng,
	}
}

func (p *Pool) Capacity() int { return len(p.slots) }

func (p *Pool) Cursor() int { return p.cursor }

func (p *Pool) Config() Config { return p.cfg }

// Spawn revives count particles at position with the pool's base color.
func (p *Pool) Spawn(position mgl32.Vec3, count int) {
	p.SpawnColored(position, count, p.cfg.BaseColor)
}

func (p *Pool) SpawnColored(position mgl32.Vec3, count int, base mgl32.Vec4) {
	if len(p.slots) == 0 {
		return
	}
	for range count {
		i := p.next()
		p.slots[i].revive(position, base, &p.cfg, p.rng)
	}
}

// next finds the slot to recycle: the first dead slot at or after the
// cursor, then the first dead slot before it, else slot 0.
func (p *Pool) next() int {
	for i := p.cursor; i < len(p.slots); i++ {
		if p.slots[i].Life <= 0 {
			p.cursor = i
			return i
		}
	}
	for i := 0; i < p.cursor; i++ {
		if p.slots[i].Life <= 0 {
			p.cursor = i
			return i
		}
	}
	p.cursor = 0
	return 0
}

// StepAll advances every alive particle by one tick.
func (p *Pool) StepAll() {
	p.Step(1)
}

// Step advances every alive particle by a possibly fractional number of
// ticks. Dead particles are left untouched.
func (p *Pool) Step(ticks float32) {
	if ticks <= 0 {
		return
	}
	for i := range p.slots {
		p.slots[i].step(ticks, &p.cfg)
	}
}

// ForEachAlive calls visit for each alive particle in slot order.
func (p *Pool) ForEachAlive(visit func(i int, pt *Particle)) {
	for i := range p.slots {
		if p.slots[i].Life > 0 {
			visit(i, &p.slots[i])
		}
	}
}

// Alive yields copies of the alive particles in slot order.
func (p *Pool) Alive() iter.Seq2[int, Particle] {
	return func(yield func(int, Particle) bool) {
		for i := range p.slots {
			if p.slots[i].Life <= 0 {
				continue
			}
			if !yield(i, p.slots[i]) {
				return
			}
		}
	}
}

func (p *Pool) AliveCount() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Life > 0 {
			n++
		}
	}
	return n
}
