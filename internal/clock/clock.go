// Package clock provides the elapsed-time source every animation is a
// function of.
package clock

import "time"

type Clock interface {
	// Elapsed returns seconds since the clock started. It never decreases.
	Elapsed() float32
}

// Wall reads the monotonic system clock.
type Wall struct {
	start time.Time
}

func NewWall() *Wall {
	return &Wall{start: time.Now()}
}

func (w *Wall) Start() time.Time { return w.start }

func (w *Wall) Elapsed() float32 {
	return float32(time.Since(w.start).Seconds())
}

// Manual is advanced by hand. Tests drive animations with it.
type Manual struct {
	t float32
}

func (m *Manual) Elapsed() float32 { return m.t }

func (m *Manual) Set(t float32) {
	if t > m.t {
		m.t = t
	}
}

func (m *Manual) Advance(d float32) {
	if d > 0 {
		m.t += d
	}
}

// Frame is one tick of the render loop.
type Frame struct {
	Time  float32
	Delta float32
	Index uint64
}

// MaxDelta bounds the time step after a stall (window drag, breakpoint) so
// particle integration does not jump.
const MaxDelta = 0.25

type Ticker struct {
	clock Clock
	last  float32
	index uint64
	begun bool
}

func NewTicker(c Clock) *Ticker {
	return &Ticker{clock: c}
}

func (t *Ticker) Next() Frame {
	now := t.clock.Elapsed()
	var delta float32
	if t.begun {
		delta = now - t.last
	}
	if delta < 0 {
		delta = 0
	}
	if delta > MaxDelta {
		delta = MaxDelta
	}
	f := Frame{Time: now, Delta: delta, Index: t.index}
	t.last = now
	t.index++
	t.begun = true
	return f
}
