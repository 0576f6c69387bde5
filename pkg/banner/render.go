package banner

import (
	"math"
	"strings"

	"github.com/incredifont/incredifont/pkg/glyph"
)

// RuleChar is repeated LineLength times above the subtitle.
const RuleChar = "━"

// Output bytes reserved per character per glyph row. A painted block costs
// about 30 bytes with its escape and reset.
const (
	plainRowBytes   = 32
	paintedRowBytes = 160
)

// Render draws the banner: Height glyph rows, then the rule and subtitle when
// a subtitle is set. Every line ends in a newline.
func (b *Banner) Render() string {
	chars := []rune(b.text)

	var out strings.Builder
	out.Grow(b.sizeHint(len(chars)))

	for row := 0; row < glyph.Height; row++ {
		line := composeRow(chars, row)
		if b.colors {
			paintRow(&out, line, row)
		} else {
			out.WriteString(line)
		}
		out.WriteByte('\n')
	}

	if b.hasSubtitle {
		out.WriteString(strings.Repeat(RuleChar, b.lineLength))
		out.WriteByte('\n')
		out.WriteString(b.subtitle)
		out.WriteByte('\n')
	}

	return out.String()
}

// sizeHint estimates the rendered length. The rule is counted only when it
// is drawn, and only while the total stays representable.
func (b *Banner) sizeHint(chars int) int {
	per := plainRowBytes
	if b.colors {
		per = paintedRowBytes
	}
	size := chars * glyph.Height * per
	if !b.hasSubtitle {
		return size
	}
	extra := len(b.subtitle) + 2
	if b.lineLength > (math.MaxInt-size-extra)/len(RuleChar) {
		return size
	}
	return size + b.lineLength*len(RuleChar) + extra
}

// Render draws b. See (*Banner).Render.
func Render(b *Banner) string {
	return b.Render()
}

func composeRow(chars []rune, row int) string {
	var sb strings.Builder
	for _, c := range chars {
		sb.WriteString(glyph.Row(c, row))
	}
	return sb.String()
}

// paintRow writes line with each block wrapped in its color. Anything that
// is not a block passes through untouched.
func paintRow(out *strings.Builder, line string, row int) {
	total := strings.Count(line, glyph.Block)
	rest := line
	n := 0
	for rest != "" {
		if strings.HasPrefix(rest, glyph.Block) {
			out.WriteString(BlockColor(row, n, total).Block())
			rest = rest[len(glyph.Block):]
			n++
			continue
		}
		i := strings.Index(rest, glyph.Block)
		if i < 0 {
			out.WriteString(rest)
			break
		}
		out.WriteString(rest[:i])
		rest = rest[i:]
	}
}
