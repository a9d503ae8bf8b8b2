package app

import (
	"log/slog"

	"launchdash/internal/appconf"
	"launchdash/internal/launches"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware. Launches is loaded once at startup and shared read-only.
type Application struct {
	Config       appconf.Config
	LaunchConfig launches.Config
	Logger       *slog.Logger
	Launches     *launches.Manager
}

// Dataset is a shortcut for the shared launch dataset.
func (app *Application) Dataset() *launches.Dataset {
	return app.Launches.Dataset()
}
