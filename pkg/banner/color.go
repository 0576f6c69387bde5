package banner

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/incredifont/incredifont/pkg/glyph"
)

// RGB is a 24-bit terminal color.
type RGB struct {
	R, G, B uint8
}

// ANSI returns the truecolor foreground escape for c.
func (c RGB) ANSI() string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Block returns one block painted in c followed by a reset.
func (c RGB) Block() string {
	return c.ANSI() + glyph.Block + reset
}

const reset = "\x1b[0m"

// Drip effect parameters. Block i of n in a row sits at position i/n. Blocks
// before the row's rainbow start are painted Base; the rest sample Rainbow
// across the remaining span. Each lower row starts its rainbow DripStep later.
const (
	RainbowStart = 0.75
	DripStep     = 0.05
)

// Base is the fill color of blocks outside the rainbow zone.
var Base = RGB{230, 230, 230}

// Rainbow runs indigo to red.
var Rainbow = mustPalette(
	"#3F51B5", // indigo
	"#2196F3", // blue
	"#03A9F4", // light blue
	"#009688", // teal
	"#4CAF50", // green
	"#CDDC39", // lime
	"#FFC107", // amber
	"#FF9800", // orange
	"#FF5722", // deep orange
	"#F44336", // red
)

func mustPalette(hexes ...string) []RGB {
	out := make([]RGB, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("banner: bad palette color %q: %v", h, err))
		}
		r, g, b := c.RGB255()
		out[i] = RGB{r, g, b}
	}
	return out
}

// BlockColor returns the color of block i out of n blocks in glyph row row.
// The result depends on nothing else.
func BlockColor(row, i, n int) RGB {
	if n <= 0 || i < 0 {
		return Base
	}
	pos := float64(i) / float64(n)
	start := RainbowStart + float64(row)*DripStep
	if start >= 1 || pos < start {
		return Base
	}
	idx := int((pos - start) / (1 - start) * float64(len(Rainbow)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(Rainbow) {
		idx = len(Rainbow) - 1
	}
	return Rainbow[idx]
}
