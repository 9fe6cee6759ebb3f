package update

import (
	"github.com/ThatOtherAndrew/portalfx/internal/clock"
	"github.com/ThatOtherAndrew/portalfx/internal/input"
	"github.com/ThatOtherAndrew/portalfx/internal/models"
)

type EventSource interface {
	Events() []input.Event
}

type App struct {
	app *models.App
}

func New(app *models.App) *App {
	return &App{app: app}
}

// UpdateInput applies every pending device event to the interaction state.
func (a *App) UpdateInput(src EventSource) {
	a.app.Controller.HandleAll(src.Events())
}

// Ticks converts a frame's elapsed time into particle ticks.
func (a *App) Ticks(frame clock.Frame) float32 {
	return frame.Delta * a.app.Settings.Particles.TickRate
}

// UpdateParticles steps every registered pool by the frame's ticks.
func (a *App) UpdateParticles(frame clock.Frame) {
	ticks := a.Ticks(frame)
	for _, p := range a.app.Pools {
		p.Step(ticks)
	}
}
