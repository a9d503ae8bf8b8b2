package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/spf13/cobra"

	"launchdash/internal/app"
	"launchdash/internal/appconf"
	"launchdash/internal/launches"
	"launchdash/internal/logging"
	"launchdash/internal/restapi"
	"launchdash/internal/webui"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Load the launch records and serve the dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}
}

func runServe(cmd *cobra.Command, opts *cliOptions) error {
	cfg, err := opts.resolve(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cfg, cmd.OutOrStdout())

	application, err := newApplication(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler, shutdown := buildHandler(application)
	defer shutdown()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serveUntilDone(ctx, srv, logger, cfg.Env)
}

// newApplication loads the dataset. Load failures are logged with their
// classification and returned; the server never starts without data.
func newApplication(cfg appconf.Config, logger *slog.Logger) (*app.Application, error) {
	launchConfig := launches.Config{
		DataPath: cfg.DataPath,
		Verbose:  cfg.Verbose,
	}

	manager, err := launches.InitManager(launchConfig)
	if err != nil {
		logStartupFailure(logger, err)
		return nil, err
	}
	manager.LogStatistics(logger)

	return &app.Application{
		Config:       cfg,
		LaunchConfig: launchConfig,
		Logger:       logger,
		Launches:     manager,
	}, nil
}

func logStartupFailure(logger *slog.Logger, err error) {
	var malformed *launches.MalformedRecordError
	var startup *launches.StartupError

	switch {
	case errors.As(err, &malformed):
		logging.LogError(logger, "malformed launch record", err,
			slog.Int("row", malformed.Row),
			slog.String("column", malformed.Column))
	case errors.As(err, &startup):
		logging.LogError(logger, "failed to load launch data", err,
			slog.String("path", startup.Path))
	default:
		logging.LogError(logger, "failed to initialize launch data", err)
	}
}

// buildHandler wires the dashboard page and the REST API behind the shared
// middleware. The returned func releases the API's background resources.
func buildHandler(application *app.Application) (http.Handler, func()) {
	router := httprouter.New()

	api := restapi.NewRestAPI(application)
	api.SetRoutes(router)

	webUI := &webui.WebUI{Application: application}
	webUI.SetWebUIRoutes(router)

	return api.Handler(router), api.Shutdown
}

// serveUntilDone runs srv until ctx is cancelled, then drains in-flight
// requests.
func serveUntilDone(ctx context.Context, srv *http.Server, logger *slog.Logger, env appconf.Environment) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", env.String())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
