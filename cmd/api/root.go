package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"launchdash/internal/appconf"
	"launchdash/internal/logging"
)

// cliOptions holds flag values. A flag only overrides the environment when it
// was set on the command line.
type cliOptions struct {
	port      int
	env       string
	dataPath  string
	rateLimit int
	verbose   bool
	envFile   string
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(&cliOptions{})
}

func buildRootCmd(opts *cliOptions) *cobra.Command {
	defaults := appconf.Default()

	rootCmd := &cobra.Command{
		Use:   "launchdash",
		Short: "Interactive dashboard for historical launch records",
		Long: "launchdash loads a launch records file once at startup and serves a\n" +
			"dashboard with a success pie chart and a payload vs. outcome scatter plot.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&opts.port, "port", defaults.Port, "HTTP server port")
	flags.StringVar(&opts.env, "env", defaults.Env.String(), "Environment (development|staging|production)")
	flags.StringVar(&opts.dataPath, "data", defaults.DataPath, "Launch records file (.csv or .xlsx)")
	flags.IntVar(&opts.rateLimit, "rate-limit", defaults.RateLimit, "Requests per second per client, 0 disables limiting")
	flags.BoolVar(&opts.verbose, "verbose", defaults.Verbose, "Enable debug logging")
	flags.StringVar(&opts.envFile, "env-file", ".env", "Optional dotenv file with LAUNCHDASH_* variables")

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newSummaryCmd(opts))
	rootCmd.Version = version

	return rootCmd
}

// resolve builds the configuration from defaults, the dotenv file, the
// environment and finally any flags set explicitly on cmd.
func (opts *cliOptions) resolve(cmd *cobra.Command) (appconf.Config, error) {
	if err := appconf.LoadDotEnv(opts.envFile); err != nil {
		return appconf.Config{}, err
	}

	cfg, err := appconf.FromEnvironment(appconf.Default())
	if err != nil {
		return appconf.Config{}, fmt.Errorf("reading environment: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = opts.port
	}
	if flags.Changed("env") {
		cfg.Env = appconf.EnvFlagToEnvironment(opts.env)
	}
	if flags.Changed("data") {
		cfg.DataPath = opts.dataPath
	}
	if flags.Changed("rate-limit") {
		cfg.RateLimit = opts.rateLimit
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}

	if err := cfg.Validate(); err != nil {
		return appconf.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger returns a text logger for local development and JSON elsewhere.
func newLogger(cfg appconf.Config, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	if cfg.Env == appconf.Development {
		return logging.NewTextLogger(w, level)
	}
	return logging.NewStructuredLogger(w, level)
}
