// Package scene composes per-frame transforms from elapsed time and the
// interaction state the input controller mutates.
package scene

import "strings"

type Toggle uint8

const (
	Particles Toggle = 1 << iota
	Shading
	Texture
	Oscillation
	Music
)

var toggleNames = []struct {
	t    Toggle
	name string
}{
	{Particles, "particles"},
	{Shading, "shading"},
	{Texture, "texture"},
	{Oscillation, "oscillation"},
	{Music, "music"},
}

func (t Toggle) String() string {
	var parts []string
	for _, n := range toggleNames {
		if t&n.t != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Toggles is the set of enabled flags.
type Toggles Toggle

func (s Toggles) On(t Toggle) bool {
	return Toggle(s)&t == t
}

func (s *Toggles) Set(t Toggle, on bool) {
	if on {
		*s |= Toggles(t)
	} else {
		*s &^= Toggles(t)
	}
}

// Flip inverts t and reports the new state.
func (s *Toggles) Flip(t Toggle) bool {
	on := !s.On(t)
	s.Set(t, on)
	return on
}

func (s Toggles) String() string {
	return Toggle(s).String()
}

// State is the interaction state shared by the input controller (writer,
// between frames) and the composer (reader, once per frame). Both run on the
// render loop goroutine.
type State struct {
	Camera  *Camera
	Toggles Toggles
	Width   int
	Height  int
	Quit    bool
}

func NewState(cam CameraConfig, width, height int, initial Toggles) *State {
	c := NewCamera(cam)
	c.Resize(width, height)
	return &State{
		Camera:  c,
		Toggles: initial,
		Width:   width,
		Height:  height,
	}
}

func (s *State) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Width, s.Height = width, height
	s.Camera.Resize(width, height)
}
