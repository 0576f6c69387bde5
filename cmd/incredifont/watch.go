package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/incredifont/incredifont/pkg/config"
	"github.com/incredifont/incredifont/pkg/logging"
	"github.com/incredifont/incredifont/pkg/output"
	"github.com/incredifont/incredifont/pkg/reload"
)

var watchCmd = &cobra.Command{
	Use:   "watch <text>",
	Short: "Re-render a banner whenever the config file changes",
	Long: `Renders the banner, then watches the config file and draws it again each
time the file is saved. Useful for tuning colors, rule width and subtitle.

Stop with Ctrl+C.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd, strings.Join(args, " "))
	},
}

func init() {
	addRenderFlags(watchCmd)
}

func runWatch(cmd *cobra.Command, text string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("watch needs a config file: %w", err)
	}
	logger := newLogger(cfg)
	printer := output.New()

	render := func(c *config.Config) (string, error) {
		opts, err := resolveOptions(cmd, c, printer.IsTTY())
		if err != nil {
			return "", err
		}
		b, err := buildBanner(text, opts)
		if err != nil {
			return "", err
		}
		if printer.IsTTY() {
			return clearScreen + b.Render(), nil
		}
		return b.Render(), nil
	}

	first, err := render(cfg)
	if err != nil {
		return fmt.Errorf("creating banner: %w", err)
	}
	printer.Print("%s", first)

	preview := reload.NewPreview(path, cfg, render, printer.Writer())
	preview.SetLogger(logging.WithComponent(logger, "reload"))

	watcher := reload.NewWatcher(path, func() error {
		if err := preview.OnChange(); err != nil {
			printer.Warn("Keeping previous banner", "error", err)
			return err
		}
		return nil
	})
	watcher.SetLogger(logging.WithComponent(logger, "watcher"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printer.Info("Watching config", "path", path)
	if err := watcher.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watching config: %w", err)
	}
	return nil
}

// clearScreen homes the cursor and clears the terminal.
const clearScreen = "\033[H\033[2J"
