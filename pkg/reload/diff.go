package reload

import (
	"strconv"

	"github.com/incredifont/incredifont/pkg/config"
)

// Change is one config field that differs between two loads.
type Change struct {
	Field string
	Old   string
	New   string
}

// Diff lists the fields that differ between prev and next, in a fixed order.
// A nil prev config counts every set field of next as changed.
func Diff(prev, next *config.Config) []Change {
	if prev == nil {
		prev = &config.Config{}
	}
	if next == nil {
		next = &config.Config{}
	}

	var changes []Change
	add := func(field, a, b string) {
		if a != b {
			changes = append(changes, Change{Field: field, Old: a, New: b})
		}
	}

	add("version", prev.Version, next.Version)
	add("colors", formatBoolPtr(prev.Colors), formatBoolPtr(next.Colors))
	add("line_length", strconv.Itoa(prev.LineLength), strconv.Itoa(next.LineLength))
	add("subtitle", prev.Subtitle, next.Subtitle)
	add("clipboard", formatBoolPtr(prev.Clipboard), formatBoolPtr(next.Clipboard))
	add("log.level", prev.Log.Level, next.Log.Level)
	add("log.format", prev.Log.Format, next.Log.Format)
	add("log.file", prev.Log.File, next.Log.File)

	return changes
}

func formatBoolPtr(b *bool) string {
	if b == nil {
		return "auto"
	}
	return strconv.FormatBool(*b)
}
