package cmd

import (
	"fmt"
	"runtime"
	"time"

	"github.com/ThatOtherAndrew/portalfx/internal/audio"
	"github.com/ThatOtherAndrew/portalfx/internal/clock"
	"github.com/ThatOtherAndrew/portalfx/internal/demo"
	"github.com/ThatOtherAndrew/portalfx/internal/draw"
	"github.com/ThatOtherAndrew/portalfx/internal/input"
	"github.com/ThatOtherAndrew/portalfx/internal/models"
	"github.com/ThatOtherAndrew/portalfx/internal/opengl"
	"github.com/ThatOtherAndrew/portalfx/internal/scene"
	"github.com/ThatOtherAndrew/portalfx/internal/update"
	"github.com/ThatOtherAndrew/portalfx/pkg/window"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [demo]",
	Short: "Run a demo (portal when none is given)",
	Args:  cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return demo.Names(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: Run,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runtime.LockOSThread()
}

func Run(cmd *cobra.Command, args []string) error {
	name := "portal"
	if len(args) > 0 {
		name = args[0]
	}
	return runDemo(name)
}

// runDemo owns the window and GL context for the lifetime of the demo. It
// must run on the main OS thread.
func runDemo(name string) error {
	d, err := demo.Lookup(name)
	if err != nil {
		return err
	}

	win, err := window.New(window.Config{
		Title:   "portalfx: " + name,
		Width:   settings.Window.Width,
		Height:  settings.Window.Height,
		Samples: settings.Window.Samples,
		VSync:   settings.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Destroy()

	renderer := opengl.New()
	if err := renderer.InitGL(); err != nil {
		return err
	}
	drawer := draw.New(renderer)
	if err := drawer.Init(); err != nil {
		return err
	}

	wall := clock.NewWall()
	width, height := win.GetSize()
	state := scene.NewState(demo.CameraConfig(settings.Camera), width, height, 0)
	app := &models.App{
		StartTime:  wall.Start(),
		Settings:   settings,
		State:      state,
		Controller: input.NewController(state),
	}
	drawer.Resize(width, height)

	player := audio.NewPlayer(settings.Audio)
	defer player.Close()

	env := demo.NewEnv(app, drawer, player, nil)
	if err := d.Setup(env); err != nil {
		return fmt.Errorf("setting up %s: %w", name, err)
	}
	log.Info().Str("demo", name).Int("pools", len(app.Pools)).Msg("running")
	fmt.Printf("Usage:\n%s\n", d.Usage())

	ticker := clock.NewTicker(wall)
	upd := update.New(app)
	for !win.ShouldClose() {
		win.PollEvents()
		upd.UpdateInput(win)
		if state.Quit {
			win.SetShouldClose(true)
			break
		}

		if state.Width != width || state.Height != height {
			width, height = state.Width, state.Height
			drawer.Resize(width, height)
		}

		frame := ticker.Next()
		d.Update(frame)
		upd.UpdateParticles(frame)
		drawer.Render(d.Compose(frame))
		win.SwapBuffers()
	}
	log.Info().Str("demo", name).Dur("uptime", time.Since(app.StartTime)).Msg("stopped")
	return nil
}
