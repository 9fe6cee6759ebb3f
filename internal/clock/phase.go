package clock

// Phase is an angle that advances at a rate (degrees per second) which can
// change mid-animation. Changing the rate folds the angle reached so far into
// the base, so the angle is continuous.
type Phase struct {
	base  float32
	since float32
	rate  float32
}

func NewPhase(rate float32) *Phase {
	return &Phase{rate: rate}
}

func (p *Phase) Rate() float32 { return p.rate }

func (p *Phase) Angle(t float32) float32 {
	return p.base + p.rate*(t-p.since)
}

func (p *Phase) SetRate(t, rate float32) {
	p.base = p.Angle(t)
	p.since = t
	p.rate = rate
}
