package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/incredifont/incredifont/pkg/config"
	"github.com/incredifont/incredifont/pkg/logging"
)

var (
	configPath string
	debug      bool
	logFile    string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "incredifont [text]",
	Short: "Render text as a block-letter terminal banner",
	Long: `Incredifont renders short text as a four-row block-letter banner.

The banner can be painted with a truecolor drip effect and followed by a
subtitle line. The rendered banner is copied to the clipboard.

With no text argument, incredifont prompts for it.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default ~/.incredifont/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log diagnostics to stderr at debug level")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write diagnostics to a rotated log file")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Diagnostic log format: text or json")

	addRenderFlags(rootCmd)

	rootCmd.AddCommand(glyphsCmd)
	rootCmd.AddCommand(watchCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads .env from the working directory, then the config file.
// An explicit --config must exist; the default path is optional.
func loadConfig() (*config.Config, string, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("loading .env: %w", err)
	}

	path := configPath
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		path = config.DefaultPath()
		cfg, err = config.LoadOptional(path)
	}
	if err != nil {
		return nil, path, err
	}
	if err := applyLogFlags(cfg); err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// applyLogFlags overrides cfg.Log with --log-format and --log-file.
func applyLogFlags(cfg *config.Config) error {
	if logFormat != "" {
		if err := config.ValidateLogFormat("--log-format", logFormat); err != nil {
			return err
		}
		cfg.Log.Format = logFormat
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	return nil
}

// newLogger builds the diagnostic logger. Diagnostics are dropped unless
// --debug or a log file asks for them, so they never mix with the banner.
func newLogger(cfg *config.Config) *slog.Logger {
	lc := logging.DefaultConfig()
	lc.Level = logging.ParseLevel(cfg.Log.Level)
	lc.Format = logging.ParseFormat(cfg.Log.Format)
	lc.File = cfg.Log.File
	lc.Component = "cli"

	if debug {
		lc.Level = slog.LevelDebug
	}

	if lc.File == "" && !debug {
		return logging.NewDiscardLogger()
	}
	return logging.NewStructuredLogger(lc)
}
