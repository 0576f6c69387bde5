// Package banner builds and renders block-art text banners.
//
// A banner is configured through a Builder and validated by Build:
//
//	b, err := banner.New("hello").
//		WithColors().
//		WithSubtitle("a subtitle").
//		WithLineLength(80).
//		Build()
//	if err != nil {
//		return err
//	}
//	fmt.Print(b.Render())
//
// A built Banner is immutable and safe to render from many goroutines.
package banner

import (
	"strings"
	"unicode"

	"github.com/incredifont/incredifont/pkg/glyph"
)

// DefaultLineLength is the rule width used when none is configured.
const DefaultLineLength = 80

// Builder accumulates banner options until Build validates them.
type Builder struct {
	text        string
	colors      bool
	subtitle    string
	hasSubtitle bool
	lineLength  int
}

// New starts a banner for text.
func New(text string) *Builder {
	return &Builder{text: text}
}

// WithColors enables the truecolor drip effect.
func (b *Builder) WithColors() *Builder {
	b.colors = true
	return b
}

// WithSubtitle sets a line printed verbatim under the banner. It is not drawn
// with glyphs.
func (b *Builder) WithSubtitle(subtitle string) *Builder {
	b.subtitle = subtitle
	b.hasSubtitle = true
	return b
}

// WithLineLength sets the width of the rule drawn above the subtitle.
// Non-positive values leave the default in place.
func (b *Builder) WithLineLength(n int) *Builder {
	b.lineLength = n
	return b
}

// Build validates the configuration. Text must be non-empty and every
// character, after upper-casing, must have a glyph. Errors are *ConfigError
// and match ErrInvalidConfig with errors.Is.
func (b *Builder) Build() (*Banner, error) {
	if b.text == "" {
		return nil, emptyTextError()
	}

	var upper strings.Builder
	upper.Grow(len(b.text))
	for _, r := range b.text {
		u := unicode.ToUpper(r)
		if !glyph.Supported(u) {
			return nil, unsupportedCharError(r)
		}
		upper.WriteRune(u)
	}

	lineLength := b.lineLength
	if lineLength <= 0 {
		lineLength = DefaultLineLength
	}

	return &Banner{
		text:        upper.String(),
		colors:      b.colors,
		subtitle:    b.subtitle,
		hasSubtitle: b.hasSubtitle,
		lineLength:  lineLength,
	}, nil
}

// Banner is a validated, renderable banner.
type Banner struct {
	text        string
	colors      bool
	subtitle    string
	hasSubtitle bool
	lineLength  int
}

// Text returns the upper-cased banner text.
func (b *Banner) Text() string { return b.text }

// Colorized reports whether Render emits color escapes.
func (b *Banner) Colorized() bool { return b.colors }

// Subtitle returns the subtitle and whether one was set.
func (b *Banner) Subtitle() (string, bool) { return b.subtitle, b.hasSubtitle }

// LineLength returns the rule width.
func (b *Banner) LineLength() int { return b.lineLength }

// String renders the banner.
func (b *Banner) String() string { return b.Render() }
