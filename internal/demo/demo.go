// Package demo holds the runnable scenes. Each demo builds its assets once,
// advances its own state per frame and composes a scene.Frame for the
// drawer.
package demo

import (
	"errors"
	"fmt"
	"image"
	"math/rand/v2"
	"slices"

	"github.com/ThatOtherAndrew/portalfx/internal/clock"
	"github.com/ThatOtherAndrew/portalfx/internal/config"
	"github.com/ThatOtherAndrew/portalfx/internal/models"
	"github.com/ThatOtherAndrew/portalfx/internal/particle"
	"github.com/ThatOtherAndrew/portalfx/internal/scene"
	"github.com/rs/zerolog/log"
)

var ErrUnknownDemo = errors.New("unknown demo")

type Demo interface {
	Name() string
	Usage() string
	Setup(env *Env) error
	Update(frame clock.Frame)
	Compose(frame clock.Frame) scene.Frame
}

// Assets receives the meshes and textures a demo draws by name.
type Assets interface {
	AddMesh(name string, mesh *models.Mesh) error
	AddTexture(name string, img image.Image) error
}

type Music interface {
	Start() error
	Stop()
	Playing() bool
}

type Env struct {
	App    *models.App
	Assets Assets
	Music  Music
	Rand   *rand.Rand
}

// NewEnv ties the music toggle to m. A nil m leaves the toggle purely visual.
func NewEnv(app *models.App, assets Assets, m Music, rng *rand.Rand) *Env {
	e := &Env{App: app, Assets: assets, Music: m, Rand: rng}
	app.Controller.OnToggle(e.onToggle)
	return e
}

func (e *Env) onToggle(t scene.Toggle, on bool) {
	if t != scene.Music || e.Music == nil {
		return
	}
	if !on {
		e.Music.Stop()
		return
	}
	if err := e.Music.Start(); err != nil {
		log.Warn().Err(err).Msg("music unavailable")
		e.App.Controller.Set(scene.Music, false)
	}
}

func (e *Env) State() *scene.State { return e.App.State }

// CameraConfig is the camera configuration from settings.
func CameraConfig(s config.Camera) scene.CameraConfig {
	cfg := scene.DefaultCameraConfig()
	cfg.FOV = s.FOV
	cfg.RotSpeed = s.RotSpeed
	cfg.TranSpeed = s.TranSpeed
	cfg.WheelStep = s.WheelStep
	cfg.WheelDegrees = s.WheelDegrees
	return cfg
}

// UseCamera replaces the camera with one built from settings and adjusted
// by the demo. The window size carries over.
func (e *Env) UseCamera(adjust func(cfg *scene.CameraConfig)) {
	cfg := CameraConfig(e.App.Settings.Camera)
	if adjust != nil {
		adjust(&cfg)
	}
	st := e.App.State
	st.Camera = scene.NewCamera(cfg)
	st.Camera.Resize(st.Width, st.Height)
}

// ParticleConfig is the pool configuration from settings.
func (e *Env) ParticleConfig() particle.Config {
	s := e.App.Settings.Particles
	cfg := particle.DefaultConfig()
	cfg.Capacity = s.Capacity
	cfg.LifeDecrement = s.LifeDecrement
	cfg.HVariance = s.HVariance
	cfg.VMin, cfg.VMax = s.VMin, s.VMax
	cfg.Gravity = s.Gravity
	return cfg
}

// NewPool registers a pool so the update loop steps it every frame.
func (e *Env) NewPool(cfg particle.Config) *particle.Pool {
	p := particle.New(cfg, e.Rand)
	e.App.Pools = append(e.App.Pools, p)
	return p
}

// Ticks converts a frame's elapsed time into particle ticks.
func (e *Env) Ticks(frame clock.Frame) float32 {
	return frame.Delta * e.App.Settings.Particles.TickRate
}

func (e *Env) addMeshes(meshes map[string]*models.Mesh) error {
	names := make([]string, 0, len(meshes))
	for name := range meshes {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := e.Assets.AddMesh(name, meshes[name]); err != nil {
			return fmt.Errorf("uploading %s mesh: %w", name, err)
		}
	}
	return nil
}

func (e *Env) addTexture(name string, img image.Image) error {
	if err := e.Assets.AddTexture(name, img); err != nil {
		return fmt.Errorf("uploading %s texture: %w", name, err)
	}
	return nil
}

var registry = map[string]func() Demo{}

// Register makes a demo available by name. Registering a name twice panics.
func Register(name string, factory func() Demo) {
	if _, dup := registry[name]; dup {
		panic("demo: Register called twice for " + name)
	}
	registry[name] = factory
}

// Lookup returns a fresh instance of the named demo.
func Lookup(name string) (Demo, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownDemo, name, Names())
	}
	return factory(), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
