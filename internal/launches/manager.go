package launches

import (
	"fmt"
	"log/slog"
	"time"

	"launchdash/internal/logging"
)

// Manager owns the launch Dataset for the lifetime of the process.
type Manager struct {
	source   string
	dataset  *Dataset
	loadedAt time.Time
	config   Config
}

// InitManager loads the dataset named by config.DataPath. Any error is fatal for
// the caller: there is no partially loaded state.
func InitManager(config Config) (*Manager, error) {
	if config.DataPath == "" {
		return nil, &StartupError{Path: config.DataPath, Err: fmt.Errorf("no data path configured")}
	}

	dataset, err := LoadDataset(config.DataPath)
	if err != nil {
		return nil, err
	}

	return &Manager{
		source:   config.DataPath,
		dataset:  dataset,
		loadedAt: time.Now(),
		config:   config,
	}, nil
}

// Dataset returns the shared read-only dataset.
func (manager *Manager) Dataset() *Dataset {
	return manager.dataset
}

func (manager *Manager) Source() string {
	return manager.source
}

func (manager *Manager) LoadedAt() time.Time {
	return manager.loadedAt
}

// LogStatistics writes a one-line summary of the loaded dataset.
func (manager *Manager) LogStatistics(logger *slog.Logger) {
	logging.LogOperation(logger, "launch_data_loaded",
		slog.String("source", manager.source),
		slog.Time("loaded_at", manager.loadedAt),
		slog.Int("records", manager.dataset.Len()),
		slog.Int("sites", len(manager.dataset.sites)),
		slog.Float64("min_payload_kg", manager.dataset.minPayload),
		slog.Float64("max_payload_kg", manager.dataset.maxPayload),
		slog.Bool("verbose", manager.config.Verbose))

	if !manager.config.Verbose {
		return
	}
	for _, site := range manager.dataset.sites {
		logger.Debug("launch_site", slog.String("site", site))
	}
}
