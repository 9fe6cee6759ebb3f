// Package window opens a GLFW window with an OpenGL 4.1 core context and
// turns its callbacks into input events. All methods must be called from
// the goroutine locked to the main OS thread.
package window

import (
	"errors"
	"fmt"

	"github.com/ThatOtherAndrew/portalfx/internal/input"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var ErrInit = errors.New("window initialisation failed")

type Config struct {
	Title   string
	Width   int
	Height  int
	Samples int
	VSync   bool
}

type Window struct {
	win    *glfw.Window
	queue  input.Queue
	button bool
}

func New(cfg Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, cfg.Samples)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{win: win}
	win.SetMouseButtonCallback(w.onMouseButton)
	win.SetCursorPosCallback(w.onCursorPos)
	win.SetScrollCallback(w.onScroll)
	win.SetKeyCallback(w.onKey)
	win.SetFramebufferSizeCallback(w.onResize)
	return w, nil
}

func (w *Window) onMouseButton(win *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	switch action {
	case glfw.Press:
		x, y := w.GetCursorPos()
		w.button = true
		w.queue.Push(input.MouseDown{X: float32(x), Y: float32(y)})
	case glfw.Release:
		w.button = false
		w.queue.Push(input.MouseUp{})
	}
}

func (w *Window) onCursorPos(win *glfw.Window, x, y float64) {
	if !w.button {
		return
	}
	w.queue.Push(input.MouseDrag{X: float32(x), Y: float32(y), Mods: w.heldMods()})
}

func (w *Window) onScroll(win *glfw.Window, xoff, yoff float64) {
	w.queue.Push(input.Scroll{Delta: float32(yoff), Mods: w.heldMods()})
}

func (w *Window) onKey(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := translateKey(key)
	if k == input.KeyUnknown {
		return
	}
	switch action {
	case glfw.Press:
		w.queue.Push(input.KeyPress{Key: k, Mods: translateMods(mods)})
	case glfw.Release:
		w.queue.Push(input.KeyRelease{Key: k, Mods: translateMods(mods)})
	}
}

func (w *Window) onResize(win *glfw.Window, width, height int) {
	w.queue.Push(input.Resize{Width: width, Height: height})
}

// heldMods reads modifier state for callbacks that do not carry it.
func (w *Window) heldMods() input.Mods {
	var m input.Mods
	if w.win.GetKey(glfw.KeyLeftShift) == glfw.Press || w.win.GetKey(glfw.KeyRightShift) == glfw.Press {
		m |= input.ModShift
	}
	if w.win.GetKey(glfw.KeyLeftControl) == glfw.Press || w.win.GetKey(glfw.KeyRightControl) == glfw.Press {
		m |= input.ModControl
	}
	if w.win.GetKey(glfw.KeyLeftAlt) == glfw.Press || w.win.GetKey(glfw.KeyRightAlt) == glfw.Press {
		m |= input.ModAlt
	}
	return m
}

func translateMods(mods glfw.ModifierKey) input.Mods {
	var m input.Mods
	if mods&glfw.ModShift != 0 {
		m |= input.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= input.ModControl
	}
	if mods&glfw.ModAlt != 0 {
		m |= input.ModAlt
	}
	return m
}

func translateKey(key glfw.Key) input.Key {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return input.Key('A' + rune(key-glfw.KeyA))
	case key >= glfw.Key0 && key <= glfw.Key9:
		return input.Key('0' + rune(key-glfw.Key0))
	}
	switch key {
	case glfw.KeySpace:
		return input.KeySpace
	case glfw.KeyEscape:
		return input.KeyEscape
	case glfw.KeyEnter:
		return input.KeyEnter
	case glfw.KeyUp:
		return input.KeyUp
	case glfw.KeyDown:
		return input.KeyDown
	case glfw.KeyLeft:
		return input.KeyLeft
	case glfw.KeyRight:
		return input.KeyRight
	}
	return input.KeyUnknown
}

// Events returns the input gathered since the last call.
func (w *Window) Events() []input.Event {
	return w.queue.Drain()
}

func (w *Window) GetSize() (int, int) {
	return w.win.GetFramebufferSize()
}

func (w *Window) GetCursorPos() (float64, float64) {
	return w.win.GetCursorPos()
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.win.SetShouldClose(v)
}

func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}
