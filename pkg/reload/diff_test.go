package reload

import (
	"testing"

	"github.com/incredifont/incredifont/pkg/config"
)

func TestDiff_NoChanges(t *testing.T) {
	a := config.Default()
	b := config.Default()
	if changes := Diff(a, b); len(changes) != 0 {
		t.Errorf("expected no changes, got %v", changes)
	}
}

func TestDiff_Fields(t *testing.T) {
	on := true
	off := false
	old := config.Default()
	next := config.Default()
	next.Colors = &on
	next.Clipboard = &off
	next.LineLength = 40
	next.Subtitle = "hello"

	changes := Diff(old, next)

	want := []Change{
		{Field: "colors", Old: "auto", New: "true"},
		{Field: "line_length", Old: "80", New: "40"},
		{Field: "subtitle", Old: "", New: "hello"},
		{Field: "clipboard", Old: "true", New: "false"},
	}
	if len(changes) != len(want) {
		t.Fatalf("expected %d changes, got %d: %v", len(want), len(changes), changes)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d = %+v, want %+v", i, changes[i], want[i])
		}
	}
}

func TestDiff_NilOld(t *testing.T) {
	changes := Diff(nil, config.Default())
	if len(changes) == 0 {
		t.Fatal("expected changes against nil config")
	}
	if changes[0].Field != "version" {
		t.Errorf("first change = %q, want version", changes[0].Field)
	}
}
