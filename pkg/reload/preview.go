// Package reload re-renders a banner whenever its config file changes.
package reload

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/incredifont/incredifont/pkg/config"
	"github.com/incredifont/incredifont/pkg/logging"
)

// RenderFunc turns a config into banner output.
type RenderFunc func(cfg *config.Config) (string, error)

// Result describes one reload.
type Result struct {
	Changes []Change
	Output  string
}

// Preview holds the last good config and redraws on demand.
type Preview struct {
	mu         sync.Mutex
	configPath string
	current    *config.Config
	render     RenderFunc
	out        io.Writer
	logger     *slog.Logger
}

// NewPreview creates a Preview for the config at configPath. current is the
// config already rendered once.
func NewPreview(configPath string, current *config.Config, render RenderFunc, out io.Writer) *Preview {
	return &Preview{
		configPath: configPath,
		current:    current,
		render:     render,
		out:        out,
		logger:     logging.NewDiscardLogger(),
	}
}

// SetLogger sets the logger for reload events.
func (p *Preview) SetLogger(logger *slog.Logger) {
	if logger != nil {
		p.logger = logger
	}
}

// Current returns the config last rendered.
func (p *Preview) Current() *config.Config {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Reload reads the config again and, if anything changed, renders and writes
// the banner. A config that fails to load or render leaves the previous one
// in place.
func (p *Preview) Reload() (*Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next, err := config.Load(p.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	changes := Diff(p.current, next)
	if len(changes) == 0 {
		p.logger.Debug("config unchanged, skipping render")
		return &Result{}, nil
	}
	for _, c := range changes {
		p.logger.Info("config field changed", "field", c.Field, "old", c.Old, "new", c.New)
	}

	rendered, err := p.render(next)
	if err != nil {
		return nil, fmt.Errorf("rendering banner: %w", err)
	}
	if _, err := io.WriteString(p.out, rendered); err != nil {
		return nil, fmt.Errorf("writing banner: %w", err)
	}

	p.current = next
	return &Result{Changes: changes, Output: rendered}, nil
}

// OnChange adapts Reload for Watcher.
func (p *Preview) OnChange() error {
	_, err := p.Reload()
	return err
}
