package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ThatOtherAndrew/portalfx/internal/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	initErr error
	inits   int
	played  []beep.Streamer
	clears  int
	closed  bool
}

func (f *fakeSink) Init(sr beep.SampleRate, bufferSize int) error {
	f.inits++
	return f.initErr
}

func (f *fakeSink) Play(s beep.Streamer) { f.played = append(f.played, s) }
func (f *fakeSink) Clear()               { f.clears++ }
func (f *fakeSink) Close()               { f.closed = true }

func TestStartStopDrone(t *testing.T) {
	sink := &fakeSink{}
	p := NewPlayerWithSink(config.Audio{}, sink)

	require.NoError(t, p.Start())
	assert.True(t, p.Playing())
	require.Len(t, sink.played, 1)

	buf := make([][2]float64, 512)
	n, ok := sink.played[0].Stream(buf)
	assert.Equal(t, 512, n)
	assert.True(t, ok)

	p.Stop()
	assert.False(t, p.Playing())
	assert.Equal(t, 1, sink.clears)

	require.NoError(t, p.Start())
	assert.Equal(t, 1, sink.inits, "device opened once")

	p.Close()
	assert.True(t, sink.closed)
	assert.False(t, p.Playing())
}

func TestNoDevice(t *testing.T) {
	sink := &fakeSink{initErr: errors.New("no alsa")}
	p := NewPlayerWithSink(config.Audio{}, sink)

	err := p.Start()
	assert.ErrorIs(t, err, ErrNoDevice)
	assert.False(t, p.Playing())
	assert.Empty(t, sink.played)

	p.Close()
	assert.False(t, sink.closed)
}

func TestMissingTrack(t *testing.T) {
	p := NewPlayerWithSink(config.Audio{Track: filepath.Join(t.TempDir(), "nope.wav")}, &fakeSink{})
	assert.ErrorIs(t, p.Start(), os.ErrNotExist)
	assert.False(t, p.Playing())
}

func TestWavTrackLoops(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Take(100, NewDrone(sampleRate)), format))
	require.NoError(t, f.Close())

	sink := &fakeSink{}
	p := NewPlayerWithSink(config.Audio{Track: path}, sink)
	require.NoError(t, p.Start())
	require.Len(t, sink.played, 1)

	buf := make([][2]float64, 250)
	n, ok := sink.played[0].Stream(buf)
	assert.Equal(t, 250, n, "short track loops to fill the buffer")
	assert.True(t, ok)
	p.Stop()
}

func TestDroneIsBounded(t *testing.T) {
	d := NewDrone(sampleRate)
	buf := make([][2]float64, 4096)
	n, ok := d.Stream(buf)
	require.True(t, ok)
	for _, s := range buf[:n] {
		assert.LessOrEqual(t, s[0], 1.0)
		assert.GreaterOrEqual(t, s[0], -1.0)
		assert.LessOrEqual(t, s[1], 1.0)
		assert.GreaterOrEqual(t, s[1], -1.0)
	}
	assert.NoError(t, d.Err())
}
