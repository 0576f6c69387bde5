// Package glyph holds the block-art alphabet used to draw banners.
//
// Every glyph is exactly Height rows tall and drawn with the two-cell block
// "██" and spaces. Widths differ per character and rows are not padded to a
// common width, so callers concatenating rows must accept a ragged edge.
package glyph

import (
	"github.com/mattn/go-runewidth"
)

// Height is the number of rows in every glyph.
const Height = 4

// Block is the two-cell unit glyph rows are drawn with.
const Block = "██"

// Glyph is the block-art representation of one character.
type Glyph struct {
	Char rune
	Rows [Height]string
}

// Width returns the glyph's widest row in terminal cells.
func (g Glyph) Width() int {
	w := 0
	for _, row := range g.Rows {
		if n := cells.StringWidth(row); n > w {
			w = n
		}
	}
	return w
}

// cells measures widths with East Asian ambiguous runes (the full block
// included) counted as one cell regardless of locale.
var cells = &runewidth.Condition{EastAsianWidth: false}

var index = buildIndex()

func buildIndex() map[rune]Glyph {
	m := make(map[rune]Glyph, len(table))
	for _, g := range table {
		m[g.Char] = g
	}
	return m
}

// Lookup returns the glyph for r. Characters outside the alphabet resolve to
// Fallback rather than failing.
func Lookup(r rune) Glyph {
	if g, ok := index[r]; ok {
		return g
	}
	return Fallback()
}

// Row returns row i of r's glyph. Out-of-range rows are empty.
func Row(r rune, i int) string {
	if i < 0 || i >= Height {
		return ""
	}
	return Lookup(r).Rows[i]
}

// Supported reports whether r has its own glyph. Lookup is case-sensitive;
// letters are keyed in upper case.
func Supported(r rune) bool {
	_, ok := index[r]
	return ok
}

// Fallback is the glyph used for unsupported characters: the last entry of
// the table.
func Fallback() Glyph {
	return table[len(table)-1]
}

// Alphabet returns the supported characters in definition order.
func Alphabet() []rune {
	out := make([]rune, len(table))
	for i, g := range table {
		out[i] = g.Char
	}
	return out
}

// All returns a copy of every glyph in definition order.
func All() []Glyph {
	out := make([]Glyph, len(table))
	copy(out, table)
	return out
}
