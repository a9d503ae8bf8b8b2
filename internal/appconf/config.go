package appconf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps a --env flag value to an Environment. Unknown
// values fall back to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod", "staging":
		return Production
	default:
		return Development
	}
}

// Config holds all the configuration settings for the dashboard server.
type Config struct {
	Port      int
	Env       Environment
	DataPath  string
	RateLimit int
	Verbose   bool
}

// Environment variable names read by FromEnvironment.
const (
	EnvPort      = "LAUNCHDASH_PORT"
	EnvEnv       = "LAUNCHDASH_ENV"
	EnvDataPath  = "LAUNCHDASH_DATA_PATH"
	EnvRateLimit = "LAUNCHDASH_RATE_LIMIT"
	EnvVerbose   = "LAUNCHDASH_VERBOSE"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:      8060,
		Env:       Development,
		DataPath:  "spacex_launch_dash.csv",
		RateLimit: 100,
	}
}

// LoadDotEnv loads variables from the given .env files (".env" when none are
// given) without overriding variables already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", file, err)
		}
	}
	return nil
}

// FromEnvironment overlays LAUNCHDASH_* variables on base. Unparseable numeric
// or boolean values are reported rather than ignored.
func FromEnvironment(base Config) (Config, error) {
	cfg := base

	if value := os.Getenv(EnvPort); value != "" {
		port, err := strconv.Atoi(value)
		if err != nil {
			return base, fmt.Errorf("%s: %w", EnvPort, err)
		}
		cfg.Port = port
	}
	if value := os.Getenv(EnvEnv); value != "" {
		cfg.Env = EnvFlagToEnvironment(value)
	}
	if value := os.Getenv(EnvDataPath); value != "" {
		cfg.DataPath = value
	}
	if value := os.Getenv(EnvRateLimit); value != "" {
		limit, err := strconv.Atoi(value)
		if err != nil {
			return base, fmt.Errorf("%s: %w", EnvRateLimit, err)
		}
		cfg.RateLimit = limit
	}
	if value := os.Getenv(EnvVerbose); value != "" {
		verbose, err := strconv.ParseBool(value)
		if err != nil {
			return base, fmt.Errorf("%s: %w", EnvVerbose, err)
		}
		cfg.Verbose = verbose
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail late, at listen time.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.DataPath == "" {
		return errors.New("data path is required")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit %d must not be negative", c.RateLimit)
	}
	return nil
}
