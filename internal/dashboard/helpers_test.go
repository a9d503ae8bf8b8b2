package dashboard

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"launchdash/internal/launches"
)

// scenarioDataset is the three-launch fixture: two at site A, one at site B.
func scenarioDataset(t *testing.T) *launches.Dataset {
	t.Helper()
	ds, err := launches.NewDataset([]launches.LaunchRecord{
		{LaunchSite: "A", PayloadMassKg: 2000, Class: 1, BoosterVersion: "F9 FT B1019"},
		{LaunchSite: "A", PayloadMassKg: 6000, Class: 0, BoosterVersion: "F9 B5 B1046"},
		{LaunchSite: "B", PayloadMassKg: 3000, Class: 1, BoosterVersion: "F9 FT B1021"},
	})
	require.NoError(t, err)
	return ds
}

func fileDataset(t *testing.T) *launches.Dataset {
	t.Helper()
	ds, err := launches.LoadDataset(filepath.Join("../../testdata", "spacex_launch_dash.csv"))
	require.NoError(t, err)
	return ds
}
