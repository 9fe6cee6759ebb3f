package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Drone is an endless low chord with a slow swell, played when no track is
// configured.
type Drone struct {
	sr  beep.SampleRate
	pos int
}

func NewDrone(sr beep.SampleRate) *Drone {
	return &Drone{sr: sr}
}

var droneVoices = []struct {
	freq, amp float64
}{
	{55, 0.08},
	{82.5, 0.05},
	{110, 0.03},
	{164.8, 0.015},
}

func (d *Drone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(d.pos) / float64(d.sr)
		swell := 0.75 + 0.25*math.Sin(2*math.Pi*0.1*t)

		var v float64
		for _, voice := range droneVoices {
			v += voice.amp * math.Sin(2*math.Pi*voice.freq*t)
		}
		v *= swell
		// slight detune between channels widens the image
		r := v * (1 + 0.05*math.Sin(2*math.Pi*0.25*t))

		samples[i][0] = v
		samples[i][1] = r
		d.pos++
	}
	return len(samples), true
}

func (d *Drone) Err() error {
	return nil
}
