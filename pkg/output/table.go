package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// GlyphSummary describes one supported character for the glyph listing.
type GlyphSummary struct {
	Char    string
	Width   int
	Preview string // first glyph row
}

// Glyphs prints the supported alphabet as a table.
func (p *Printer) Glyphs(glyphs []GlyphSummary) {
	if len(glyphs) == 0 {
		return
	}

	p.Section("GLYPHS")

	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(p.tableStyle())

	t.AppendHeader(table.Row{"Char", "Width", "Top Row"})

	for _, g := range glyphs {
		t.AppendRow(table.Row{quoteChar(g.Char), g.Width, g.Preview})
	}

	t.SetCaption("%d characters", len(glyphs))
	t.Render()
	p.Println()
}

// quoteChar makes whitespace visible in the listing.
func quoteChar(c string) string {
	if c == " " {
		return "space"
	}
	return c
}

// tableStyle returns the standard table style.
func (p *Printer) tableStyle() table.Style {
	style := table.StyleRounded
	if p.isTTY {
		style.Color.Header = text.Colors{text.FgHiYellow, text.Bold}
		style.Color.Border = text.Colors{text.FgHiBlack}
	}
	style.Options.SeparateRows = false
	return style
}

// Section prints a section header.
func (p *Printer) Section(title string) {
	if p.isTTY {
		style := lipgloss.NewStyle().Foreground(ColorAmber).Bold(true)
		p.Println(style.Render(title))
	} else {
		p.Println(title)
	}
}
