package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/incredifont/incredifont/pkg/banner"
	"github.com/incredifont/incredifont/pkg/clipboard"
	"github.com/incredifont/incredifont/pkg/config"
	"github.com/incredifont/incredifont/pkg/output"
	"github.com/incredifont/incredifont/pkg/prompt"
)

var (
	renderSubtitle   string
	renderLineLength int
	renderColor      bool
	renderNoColor    bool
	renderNoCopy     bool
)

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&renderSubtitle, "subtitle", "s", "", "Line printed under the banner")
	cmd.Flags().IntVarP(&renderLineLength, "line-length", "l", 0, "Width of the rule above the subtitle (default 80)")
	cmd.Flags().BoolVar(&renderColor, "color", false, "Always paint the banner")
	cmd.Flags().BoolVar(&renderNoColor, "no-color", false, "Never paint the banner")
	cmd.Flags().BoolVar(&renderNoCopy, "no-copy", false, "Do not copy the banner to the clipboard")
	cmd.MarkFlagsMutuallyExclusive("color", "no-color")
}

// renderOptions are the banner settings after merging config and flags.
type renderOptions struct {
	colors     bool
	subtitle   string
	lineLength int
	copy       bool
}

// resolveOptions applies flags that were set on top of cfg. Flag values are
// held to the same bounds as the config file.
func resolveOptions(cmd *cobra.Command, cfg *config.Config, isTTY bool) (renderOptions, error) {
	opts := renderOptions{
		colors:     cfg.ColorsFor(isTTY),
		subtitle:   cfg.Subtitle,
		lineLength: cfg.LineLength,
		copy:       cfg.CopyToClipboard(),
	}

	flags := cmd.Flags()
	if flags.Changed("subtitle") {
		opts.subtitle = renderSubtitle
	}
	if flags.Changed("line-length") {
		if err := config.ValidateLineLength("--line-length", renderLineLength); err != nil {
			return renderOptions{}, err
		}
		opts.lineLength = renderLineLength
	}
	if renderColor {
		opts.colors = true
	}
	if renderNoColor {
		opts.colors = false
	}
	if renderNoCopy {
		opts.copy = false
	}
	return opts, nil
}

// buildBanner validates text against opts.
func buildBanner(text string, opts renderOptions) (*banner.Banner, error) {
	b := banner.New(text).WithLineLength(opts.lineLength)
	if opts.colors {
		b.WithColors()
	}
	if opts.subtitle != "" {
		b.WithSubtitle(opts.subtitle)
	}
	return b.Build()
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	printer := output.New()
	printer.SetDebug(debug)

	text, err := inputText(args)
	if err != nil {
		return err
	}

	opts, err := resolveOptions(cmd, cfg, printer.IsTTY())
	if err != nil {
		return err
	}
	b, err := buildBanner(text, opts)
	if err != nil {
		logger.Warn("banner rejected", "error", err)
		return fmt.Errorf("creating banner: %w", err)
	}

	rendered := b.Render()
	logger.Debug("banner rendered", "text", b.Text(), "colors", b.Colorized(), "bytes", len(rendered))
	printer.Banner(rendered)

	if opts.copy {
		copyRendered(printer, logger, rendered)
	}
	return nil
}

// inputText joins the arguments, or prompts when there are none.
func inputText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return prompt.Line("Enter text for banner: ", os.Stdin, os.Stdout)
}

// copyRendered copies the banner, reporting failure without failing the run.
func copyRendered(printer *output.Printer, logger *slog.Logger, rendered string) {
	writers := []clipboard.Writer{clipboard.System{}}
	if printer.IsTTY() {
		writers = append(writers, clipboard.OSC52{Out: printer.Writer()})
	}

	copier := clipboard.New(writers...)
	copier.SetLogger(logger)

	if _, err := copier.Copy(rendered); err != nil {
		printer.Warn("Failed to copy to clipboard", "error", err)
		return
	}
	printer.Copied()
}
