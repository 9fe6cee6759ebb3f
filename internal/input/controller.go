package input

import (
	"github.com/ThatOtherAndrew/portalfx/internal/scene"
	"github.com/rs/zerolog/log"
)

// Controller applies events to a scene.State synchronously. Keys bound with
// Bind take precedence over the built-in bindings.
type Controller struct {
	state *scene.State

	dragging bool
	held     map[Key]bool
	press    map[Key]func(Mods)
	release  map[Key]func(Mods)
	toggled  []func(scene.Toggle, bool)
}

func NewController(state *scene.State) *Controller {
	return &Controller{
		state:   state,
		held:    make(map[Key]bool),
		press:   make(map[Key]func(Mods)),
		release: make(map[Key]func(Mods)),
	}
}

func (c *Controller) State() *scene.State { return c.state }

func (c *Controller) Bind(key Key, fn func(Mods)) {
	c.press[key] = fn
}

func (c *Controller) BindRelease(key Key, fn func(Mods)) {
	c.release[key] = fn
}

// OnToggle registers fn to run after any toggle flips.
func (c *Controller) OnToggle(fn func(t scene.Toggle, on bool)) {
	c.toggled = append(c.toggled, fn)
}

// Held reports whether key is currently down.
func (c *Controller) Held(key Key) bool {
	return c.held[key]
}

func (c *Controller) HandleAll(evs []Event) {
	for _, ev := range evs {
		c.Handle(ev)
	}
}

func (c *Controller) Handle(ev Event) {
	switch e := ev.(type) {
	case MouseDown:
		c.MouseDown(e.X, e.Y)
	case MouseDrag:
		c.MouseDrag(e.X, e.Y, e.Mods)
	case MouseUp:
		c.MouseUp()
	case Scroll:
		c.Scroll(e.Delta, e.Mods)
	case KeyPress:
		c.KeyPress(e.Key, e.Mods)
	case KeyRelease:
		c.KeyRelease(e.Key, e.Mods)
	case Resize:
		c.Resize(e.Width, e.Height)
	}
}

func (c *Controller) MouseDown(x, y float32) {
	c.dragging = true
	c.state.Camera.MouseDown(x, y)
}

// MouseDrag is ignored unless a button went down first.
func (c *Controller) MouseDrag(x, y float32, mods Mods) {
	if !c.dragging {
		return
	}
	c.state.Camera.MouseDrag(x, y, mods.Shift())
}

func (c *Controller) MouseUp() {
	if !c.dragging {
		return
	}
	c.dragging = false
	c.state.Camera.MouseUp()
}

func (c *Controller) Scroll(delta float32, mods Mods) {
	if delta == 0 {
		return
	}
	c.state.Camera.Wheel(delta > 0, mods.Shift())
}

func (c *Controller) KeyPress(key Key, mods Mods) {
	c.held[key] = true
	if fn, ok := c.press[key]; ok {
		fn(mods)
		return
	}
	switch key {
	case KeyEscape:
		c.state.Quit = true
	case 'F':
		c.state.Camera.StepFOV(mods.Shift())
		log.Debug().Float32("fov", c.state.Camera.FOV()).Msg("field of view")
	case 'L':
		c.Flip(scene.Shading)
	case 'P':
		c.Flip(scene.Particles)
	case 'M':
		c.Flip(scene.Music)
	case 'T':
		c.Flip(scene.Texture)
	case 'O':
		c.Flip(scene.Oscillation)
	}
}

func (c *Controller) KeyRelease(key Key, mods Mods) {
	delete(c.held, key)
	if fn, ok := c.release[key]; ok {
		fn(mods)
	}
}

func (c *Controller) Resize(width, height int) {
	c.state.Resize(width, height)
}

// Flip inverts a toggle and notifies observers.
func (c *Controller) Flip(t scene.Toggle) bool {
	on := c.state.Toggles.Flip(t)
	c.notify(t, on)
	return on
}

// Set forces a toggle, notifying observers only when it changes.
func (c *Controller) Set(t scene.Toggle, on bool) {
	if c.state.Toggles.On(t) == on {
		return
	}
	c.state.Toggles.Set(t, on)
	c.notify(t, on)
}

func (c *Controller) notify(t scene.Toggle, on bool) {
	msg := t.String() + " disabled"
	if on {
		msg = t.String() + " enabled"
	}
	log.Info().Str("toggle", t.String()).Bool("on", on).Msg(msg)
	for _, fn := range c.toggled {
		fn(t, on)
	}
}
