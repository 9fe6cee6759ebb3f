// Package input turns device events into interaction-state mutations.
package input

type Mods uint8

const (
	ModShift Mods = 1 << iota
	ModControl
	ModAlt
)

func (m Mods) Shift() bool { return m&ModShift != 0 }

// Key is an upper-case ASCII letter, digit or space, or one of the named
// keys below.
type Key rune

const (
	KeySpace Key = ' '

	KeyEscape Key = iota + 0x100
	KeyEnter
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyUnknown
)

func (k Key) String() string {
	switch k {
	case KeySpace:
		return "space"
	case KeyEscape:
		return "escape"
	case KeyEnter:
		return "enter"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	}
	if k > ' ' && k < 0x7f {
		return string(rune(k))
	}
	return "unknown"
}

type Event interface {
	isEvent()
}

type MouseDown struct{ X, Y float32 }

type MouseDrag struct {
	X, Y float32
	Mods Mods
}

type MouseUp struct{}

// Scroll carries the vertical wheel offset; positive is away from the user.
type Scroll struct {
	Delta float32
	Mods  Mods
}

type KeyPress struct {
	Key  Key
	Mods Mods
}

type KeyRelease struct {
	Key  Key
	Mods Mods
}

type Resize struct{ Width, Height int }

func (MouseDown) isEvent()  {}
func (MouseDrag) isEvent()  {}
func (MouseUp) isEvent()    {}
func (Scroll) isEvent()     {}
func (KeyPress) isEvent()   {}
func (KeyRelease) isEvent() {}
func (Resize) isEvent()     {}

// Queue buffers events between device callbacks and the next frame. Both
// sides run on the render loop goroutine.
type Queue struct {
	events []Event
}

func (q *Queue) Push(ev Event) {
	q.events = append(q.events, ev)
}

func (q *Queue) Len() int { return len(q.events) }

// Drain returns the buffered events in arrival order and empties the queue.
func (q *Queue) Drain() []Event {
	evs := q.events
	q.events = nil
	return evs
}
