// Package clipboard copies rendered banners to the user's clipboard.
//
// Copying is best effort. A Copier walks a chain of Writers and stops at the
// first that succeeds; callers report a final failure but never treat it as
// fatal.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	sysclip "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/incredifont/incredifont/pkg/logging"
)

//go:generate mockgen -destination=mock_writer_test.go -package=clipboard . Writer

// Writer places text on a clipboard.
type Writer interface {
	// Name identifies the writer in logs.
	Name() string
	// WriteText replaces the clipboard contents with text.
	WriteText(text string) error
}

// ErrUnavailable is returned by a Writer that cannot work in this environment.
var ErrUnavailable = errors.New("clipboard unavailable")

// System writes to the operating system clipboard (pbcopy, xclip, xsel,
// wl-copy or the Windows API).
type System struct{}

// Name implements Writer.
func (System) Name() string { return "system" }

// WriteText implements Writer.
func (System) WriteText(text string) error {
	if sysclip.Unsupported {
		return ErrUnavailable
	}
	return sysclip.WriteAll(text)
}

// OSC52 asks the terminal to set the clipboard with an OSC 52 escape. It
// works over SSH as long as the terminal honors the sequence.
type OSC52 struct {
	Out io.Writer
}

// Name implements Writer.
func (OSC52) Name() string { return "osc52" }

// WriteText implements Writer.
func (o OSC52) WriteText(text string) error {
	if o.Out == nil {
		return ErrUnavailable
	}
	seq := osc52.New(text)
	if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	} else if os.Getenv("STY") != "" {
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(o.Out)
	return err
}

// Copier tries each Writer in order.
type Copier struct {
	writers []Writer
	logger  *slog.Logger
}

// New creates a Copier over writers.
func New(writers ...Writer) *Copier {
	return &Copier{
		writers: writers,
		logger:  logging.NewDiscardLogger(),
	}
}

// SetLogger sets the logger for copy attempts.
func (c *Copier) SetLogger(logger *slog.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// Copy writes text with the first Writer that succeeds and returns its name.
// When every Writer fails the errors are joined.
func (c *Copier) Copy(text string) (string, error) {
	if len(c.writers) == 0 {
		return "", ErrUnavailable
	}

	var errs []error
	for _, w := range c.writers {
		if err := w.WriteText(text); err != nil {
			c.logger.Debug("clipboard writer failed", "writer", w.Name(), "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", w.Name(), err))
			continue
		}
		c.logger.Debug("copied to clipboard", "writer", w.Name(), "bytes", len(text))
		return w.Name(), nil
	}
	return "", errors.Join(errs...)
}
