package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/incredifont/incredifont/pkg/banner"
	"github.com/incredifont/incredifont/pkg/output"
)

// Set by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		printer := output.NewWithWriter(cmd.OutOrStdout())
		printer.Print("%s", logo(printer.IsTTY()))
		printer.Print("  version: %s\n", version)
		printer.Print("  commit:  %s\n", commit)
		printer.Print("  built:   %s\n", date)
	},
}

// logo renders the program name with its own renderer.
func logo(colors bool) string {
	b := banner.New("incredifont").WithLineLength(60)
	if colors {
		b.WithColors()
	}
	logo, err := b.Build()
	if err != nil {
		return fmt.Sprintf("incredifont (%v)\n", err)
	}
	return logo.Render()
}
