package appconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvFlagToEnvironment(t *testing.T) {
	assert.Equal(t, Development, EnvFlagToEnvironment("development"))
	assert.Equal(t, Development, EnvFlagToEnvironment(""))
	assert.Equal(t, Development, EnvFlagToEnvironment("unknown"))
	assert.Equal(t, Test, EnvFlagToEnvironment("test"))
	assert.Equal(t, Production, EnvFlagToEnvironment("Production"))
	assert.Equal(t, Production, EnvFlagToEnvironment("staging"))

	assert.Equal(t, "production", Production.String())
	assert.Equal(t, "test", Test.String())
	assert.Equal(t, "development", Development.String())
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 8060, cfg.Port)
	assert.Equal(t, "spacex_launch_dash.csv", cfg.DataPath)
	assert.Equal(t, Development, cfg.Env)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnvironment(t *testing.T) {
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvEnv, "production")
	t.Setenv(EnvDataPath, "/data/launches.xlsx")
	t.Setenv(EnvRateLimit, "5")
	t.Setenv(EnvVerbose, "true")

	cfg, err := FromEnvironment(Default())
	require.NoError(t, err)

	assert.Equal(t, Config{
		Port:      9090,
		Env:       Production,
		DataPath:  "/data/launches.xlsx",
		RateLimit: 5,
		Verbose:   true,
	}, cfg)
}

func TestFromEnvironmentRejectsBadNumbers(t *testing.T) {
	t.Setenv(EnvPort, "eighty")

	cfg, err := FromEnvironment(Default())
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("LAUNCHDASH_DATA_PATH=from-dotenv.csv\n"), 0o600))

	// t.Setenv registers cleanup; unset so godotenv is free to populate it.
	t.Setenv(EnvDataPath, "")
	require.NoError(t, os.Unsetenv(EnvDataPath))

	require.NoError(t, LoadDotEnv(path))
	cfg, err := FromEnvironment(Default())
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.csv", cfg.DataPath)
}

func TestLoadDotEnvIgnoresMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.DataPath = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.RateLimit = -1
	assert.Error(t, cfg.Validate())
}
