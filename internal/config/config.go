package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Window struct {
	Width   int  `yaml:"width"`
	Height  int  `yaml:"height"`
	Samples int  `yaml:"samples"`
	VSync   bool `yaml:"vsync"`
}

type Camera struct {
	FOV          float32 `yaml:"fov"`
	RotSpeed     float32 `yaml:"rot_speed"`
	TranSpeed    float32 `yaml:"tran_speed"`
	WheelStep    float32 `yaml:"wheel_step"`
	WheelDegrees float32 `yaml:"wheel_degrees"`
}

type Particles struct {
	Capacity      int        `yaml:"capacity"`
	LifeDecrement float32    `yaml:"life_decrement"`
	HVariance     float32    `yaml:"h_variance"`
	VMin          float32    `yaml:"v_min"`
	VMax          float32    `yaml:"v_max"`
	Gravity       mgl32.Vec3 `yaml:"gravity"`
	TickRate      float32    `yaml:"tick_rate"` // ticks per second
	PerTick       float32    `yaml:"per_tick"`
	PointSize     float32    `yaml:"point_size"`
}

type Portal struct {
	Anchor      float32 `yaml:"anchor"`
	FrameOffset float32 `yaml:"frame_offset"`
	Amplitude   float32 `yaml:"amplitude"`
	Rate        float32 `yaml:"rate"`
	Epsilon     float32 `yaml:"epsilon"`
	RingCount   int     `yaml:"ring_count"`
}

type Audio struct {
	Track  string  `yaml:"track"`  // WAV file; empty plays the built-in drone
	Volume float64 `yaml:"volume"` // base-2 gain, 0 is unchanged
}

type Textures struct {
	Cube   string `yaml:"cube"`
	Album  string `yaml:"album"`
	Planet string `yaml:"planet"`
}

type Settings struct {
	Window    Window    `yaml:"window"`
	Camera    Camera    `yaml:"camera"`
	Particles Particles `yaml:"particles"`
	Portal    Portal    `yaml:"portal"`
	Audio     Audio     `yaml:"audio"`
	Textures  Textures  `yaml:"textures"`
	LogLevel  string    `yaml:"log_level"`
}

func Default() *Settings {
	return &Settings{
		Window: Window{Width: 750, Height: 750, Samples: 4, VSync: true},
		Camera: Camera{
			FOV:          40,
			RotSpeed:     0.3,
			TranSpeed:    0.0025,
			WheelStep:    0.1,
			WheelDegrees: 5,
		},
		Particles: Particles{
			Capacity:      250,
			LifeDecrement: 0.0075,
			HVariance:     0.005,
			VMin:          0.001,
			VMax:          0.0025,
			TickRate:      60,
			PerTick:       1,
			PointSize:     6,
		},
		Portal: Portal{
			Anchor:      2,
			FrameOffset: 1.25,
			Amplitude:   2,
			Rate:        1,
			Epsilon:     0.5,
			RingCount:   60,
		},
		LogLevel: "info",
	}
}

// GetSettingsPath returns $XDG_CONFIG_HOME/portalfx/settings.yaml, falling
// back to ~/.config when XDG_CONFIG_HOME is unset.
func GetSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "portalfx", "settings.yaml"), nil
}

// LoadSettings reads the settings file at path. A missing file is created
// with defaults. A malformed file, unknown keys and out-of-range values are
// logged and replaced by defaults; only an unreadable file is an error.
func LoadSettings(path string) (*Settings, error) {
	defaults := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Info().Str("path", path).Msg("creating default settings file")
			if err := Save(path, defaults); err != nil {
				log.Warn().Err(err).Msg("failed to create default settings file")
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("invalid settings file, using defaults")
		return defaults, nil
	}
	for _, key := range unknownKeys(raw, reflect.TypeOf(Settings{}), "") {
		log.Warn().Str("key", key).Msg("unrecognised setting key")
	}

	settings := Default()
	if err := yaml.Unmarshal(data, settings); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("invalid settings file, using defaults")
		return defaults, nil
	}
	settings.validate(defaults)
	return settings, nil
}

func Save(path string, s *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func (s *Settings) validate(d *Settings) {
	replace := func(key string, bad any, def any) {
		log.Warn().Str("key", key).Interface("value", bad).Interface("default", def).
			Msg("invalid setting value, using default")
	}

	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		replace("window", [2]int{s.Window.Width, s.Window.Height}, [2]int{d.Window.Width, d.Window.Height})
		s.Window.Width, s.Window.Height = d.Window.Width, d.Window.Height
	}
	if s.Window.Samples < 0 {
		replace("window.samples", s.Window.Samples, d.Window.Samples)
		s.Window.Samples = d.Window.Samples
	}
	if s.Camera.FOV < 5 || s.Camera.FOV > 150 {
		replace("camera.fov", s.Camera.FOV, d.Camera.FOV)
		s.Camera.FOV = d.Camera.FOV
	}
	if s.Particles.Capacity < 0 {
		replace("particles.capacity", s.Particles.Capacity, d.Particles.Capacity)
		s.Particles.Capacity = d.Particles.Capacity
	}
	if s.Particles.LifeDecrement <= 0 || s.Particles.LifeDecrement > 1 {
		replace("particles.life_decrement", s.Particles.LifeDecrement, d.Particles.LifeDecrement)
		s.Particles.LifeDecrement = d.Particles.LifeDecrement
	}
	if s.Particles.VMin > s.Particles.VMax {
		replace("particles.v_min", s.Particles.VMin, d.Particles.VMin)
		s.Particles.VMin, s.Particles.VMax = d.Particles.VMin, d.Particles.VMax
	}
	if s.Particles.TickRate <= 0 {
		replace("particles.tick_rate", s.Particles.TickRate, d.Particles.TickRate)
		s.Particles.TickRate = d.Particles.TickRate
	}
	if s.Particles.PerTick < 0 {
		replace("particles.per_tick", s.Particles.PerTick, d.Particles.PerTick)
		s.Particles.PerTick = d.Particles.PerTick
	}
	if s.Particles.PointSize <= 0 {
		replace("particles.point_size", s.Particles.PointSize, d.Particles.PointSize)
		s.Particles.PointSize = d.Particles.PointSize
	}
	if s.Portal.Epsilon <= 0 {
		replace("portal.epsilon", s.Portal.Epsilon, d.Portal.Epsilon)
		s.Portal.Epsilon = d.Portal.Epsilon
	}
	if s.Portal.RingCount < 0 {
		replace("portal.ring_count", s.Portal.RingCount, d.Portal.RingCount)
		s.Portal.RingCount = d.Portal.RingCount
	}
	if _, err := zerolog.ParseLevel(s.LogLevel); err != nil || s.LogLevel == "" {
		replace("log_level", s.LogLevel, d.LogLevel)
		s.LogLevel = d.LogLevel
	}
}

// unknownKeys lists keys in raw that have no yaml field in t, descending
// into nested sections.
func unknownKeys(raw map[string]any, t reflect.Type, prefix string) []string {
	fields := make(map[string]reflect.Type)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := strings.Split(f.Tag.Get("yaml"), ",")[0]
		if tag != "" && tag != "-" {
			fields[tag] = f.Type
		}
	}

	var unknown []string
	for key, val := range raw {
		ft, ok := fields[key]
		if !ok {
			unknown = append(unknown, prefix+key)
			continue
		}
		if sub, isMap := val.(map[string]any); isMap && ft.Kind() == reflect.Struct {
			unknown = append(unknown, unknownKeys(sub, ft, prefix+key+".")...)
		}
	}
	slices.Sort(unknown)
	return unknown
}
