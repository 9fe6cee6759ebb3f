// Package audio plays the looping background track behind the music toggle.
package audio

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/ThatOtherAndrew/portalfx/internal/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/rs/zerolog/log"
)

const sampleRate = beep.SampleRate(44100)

var ErrNoDevice = errors.New("no audio device")

// Sink is where the player sends its stream.
type Sink interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Clear()
	Close()
}

type speakerSink struct{}

func (speakerSink) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

func (speakerSink) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerSink) Clear()               { speaker.Clear() }
func (speakerSink) Close()               { speaker.Close() }

type Player struct {
	mu          sync.Mutex
	sink        Sink
	track       string
	volume      float64
	source      beep.StreamSeekCloser
	initialized bool
	playing     bool
}

// NewPlayer plays through the system speaker. The device is opened on first
// Start.
func NewPlayer(cfg config.Audio) *Player {
	return NewPlayerWithSink(cfg, speakerSink{})
}

func NewPlayerWithSink(cfg config.Audio, sink Sink) *Player {
	return &Player{sink: sink, track: cfg.Track, volume: cfg.Volume}
}

func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Start begins looping the track, or the built-in drone when no track is
// configured.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.playing {
		return nil
	}
	if !p.initialized {
		if err := p.sink.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
			return fmt.Errorf("%w: %v", ErrNoDevice, err)
		}
		p.initialized = true
	}

	s, err := p.stream()
	if err != nil {
		return err
	}
	p.sink.Play(&effects.Volume{Streamer: s, Base: 2, Volume: p.volume})
	p.playing = true
	return nil
}

func (p *Player) stream() (beep.Streamer, error) {
	if p.track == "" {
		return NewDrone(sampleRate), nil
	}
	f, err := os.Open(p.track)
	if err != nil {
		return nil, fmt.Errorf("opening track: %w", err)
	}
	source, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding track %s: %w", p.track, err)
	}
	p.source = source

	var s beep.Streamer = beep.Loop(-1, source)
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, s)
	}
	return s, nil
}

func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stop()
}

func (p *Player) stop() {
	if !p.playing {
		return
	}
	p.sink.Clear()
	if p.source != nil {
		if err := p.source.Close(); err != nil {
			log.Debug().Err(err).Msg("closing track")
		}
		p.source = nil
	}
	p.playing = false
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stop()
	if p.initialized {
		p.sink.Close()
		p.initialized = false
	}
}
