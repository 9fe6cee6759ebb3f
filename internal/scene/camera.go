package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinFOV  = 5
	MaxFOV  = 150
	FOVStep = 5
)

type ScrollMode int

const (
	ScrollZoom ScrollMode = iota
	ScrollRotate
)

type CameraConfig struct {
	FOV          float32
	RotSpeed     float32 // degrees per pixel dragged
	TranSpeed    float32 // units per pixel dragged with shift
	WheelStep    float32 // units per scroll notch
	WheelDegrees float32 // degrees per scroll notch
	Near, Far    float32
	Translation  mgl32.Vec3
	Scroll       ScrollMode
}

func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		FOV:          30,
		RotSpeed:     0.3,
		TranSpeed:    0.0025,
		WheelStep:    0.1,
		WheelDegrees: 5,
		Near:         0.001,
		Far:          500,
		Translation:  mgl32.Vec3{0, 0, -10},
		Scroll:       ScrollRotate,
	}
}

// Camera accumulates drag input on top of a committed baseline. A drag
// computes its delta from the mouse-down point; releasing the button commits
// the result as the new baseline.
type Camera struct {
	cfg    CameraConfig
	fov    float32
	aspect float32

	down             mgl32.Vec2
	rotOld, rotNew   mgl32.Vec2 // x about Y, y about X, in degrees
	tranOld, tranNew mgl32.Vec3
	roll             float32
}

func NewCamera(cfg CameraConfig) *Camera {
	c := &Camera{
		cfg:     cfg,
		aspect:  1,
		tranOld: cfg.Translation,
		tranNew: cfg.Translation,
	}
	c.SetFOV(cfg.FOV)
	return c
}

func (c *Camera) MouseDown(x, y float32) {
	c.down = mgl32.Vec2{x, y}
}

func (c *Camera) MouseDrag(x, y float32, shift bool) {
	dif := mgl32.Vec2{x, y}.Sub(c.down)
	if shift {
		c.tranNew = c.tranOld.Add(mgl32.Vec3{dif.X(), -dif.Y(), 0}.Mul(c.cfg.TranSpeed))
		return
	}
	c.rotNew = c.rotOld.Add(dif.Mul(c.cfg.RotSpeed))
}

func (c *Camera) MouseUp() {
	c.rotOld = c.rotNew
	c.tranOld = c.tranNew
}

// Wheel zooms or rolls the view depending on the scroll mode; shift selects
// the other one.
func (c *Camera) Wheel(up, shift bool) {
	mode := c.cfg.Scroll
	if shift {
		if mode == ScrollZoom {
			mode = ScrollRotate
		} else {
			mode = ScrollZoom
		}
	}
	switch mode {
	case ScrollZoom:
		step := c.cfg.WheelStep
		if up {
			step = -step
		}
		c.tranNew[2] += step
		c.tranOld = c.tranNew
	case ScrollRotate:
		deg := c.cfg.WheelDegrees
		if !up {
			deg = -deg
		}
		c.roll += deg
	}
}

func (c *Camera) FOV() float32 { return c.fov }

// SetFOV clamps to [MinFOV, MaxFOV].
func (c *Camera) SetFOV(fov float32) {
	c.fov = mgl32.Clamp(fov, MinFOV, MaxFOV)
}

// StepFOV widens the field of view by FOVStep, or narrows it with shift.
func (c *Camera) StepFOV(shift bool) {
	if shift {
		c.SetFOV(c.fov - FOVStep)
	} else {
		c.SetFOV(c.fov + FOVStep)
	}
}

func (c *Camera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.aspect = float32(width) / float32(height)
}

func (c *Camera) Aspect() float32 { return c.aspect }

func (c *Camera) Rotation() mgl32.Vec2 { return c.rotNew }

func (c *Camera) Translation() mgl32.Vec3 { return c.tranNew }

func (c *Camera) Roll() float32 { return c.roll }

func (c *Camera) View() mgl32.Mat4 {
	return Translate(c.tranNew).
		Mul4(RotateZ(c.roll)).
		Mul4(RotateY(c.rotNew.X())).
		Mul4(RotateX(c.rotNew.Y()))
}

func (c *Camera) Persp() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.fov), c.aspect, c.cfg.Near, c.cfg.Far)
}
