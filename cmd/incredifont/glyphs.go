package main

import (
	"github.com/spf13/cobra"

	"github.com/incredifont/incredifont/pkg/glyph"
	"github.com/incredifont/incredifont/pkg/output"
)

var glyphsCmd = &cobra.Command{
	Use:   "glyphs",
	Short: "List the characters incredifont can draw",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		output.NewWithWriter(cmd.OutOrStdout()).Glyphs(glyphSummaries())
	},
}

func glyphSummaries() []output.GlyphSummary {
	all := glyph.All()
	out := make([]output.GlyphSummary, len(all))
	for i, g := range all {
		out[i] = output.GlyphSummary{
			Char:    string(g.Char),
			Width:   g.Width(),
			Preview: g.Rows[0],
		}
	}
	return out
}
