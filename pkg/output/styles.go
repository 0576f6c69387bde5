package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Theme colors, taken from the banner rainbow.
var (
	ColorIndigo = lipgloss.Color("#3F51B5")
	ColorGreen  = lipgloss.Color("#4CAF50")
	ColorLime   = lipgloss.Color("#CDDC39")
	ColorAmber  = lipgloss.Color("#FFC107")
	ColorRed    = lipgloss.Color("#F44336")
	ColorWhite  = lipgloss.Color("#E6E6E6") // banner base fill
	ColorMuted  = lipgloss.Color("#78716c")
	ColorGray   = lipgloss.Color("#a8a29e")
)

// themeStyles returns charmbracelet/log styles in the banner palette.
func themeStyles() *log.Styles {
	styles := log.DefaultStyles()

	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Foreground(ColorGreen).
		Bold(true)

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Foreground(ColorAmber).
		Bold(true)

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Foreground(ColorRed).
		Bold(true)

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Foreground(ColorMuted)

	styles.Timestamp = lipgloss.NewStyle().
		Foreground(ColorMuted)

	styles.Key = lipgloss.NewStyle().
		Foreground(ColorIndigo)

	styles.Value = lipgloss.NewStyle().
		Foreground(ColorGray)

	return styles
}
