package prompt

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"newline terminated", "hello\n", "hello"},
		{"trims whitespace", "  spaced out \r\n", "spaced out"},
		{"no trailing newline", "last", "last"},
		{"only first line", "one\ntwo\n", "one"},
		{"blank line", "\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := ReadLine("Enter text for banner: ", strings.NewReader(tt.input), &out)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadLine() = %q, want %q", got, tt.want)
			}
			if out.String() != "Enter text for banner: " {
				t.Errorf("prompt = %q", out.String())
			}
		})
	}
}

func TestReadLine_EmptyInput(t *testing.T) {
	var out bytes.Buffer
	_, err := ReadLine("> ", strings.NewReader(""), &out)
	if !errors.Is(err, ErrCanceled) {
		t.Errorf("expected ErrCanceled, got %v", err)
	}
}

func TestLine_NonTerminal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("from file\n"), 0644); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening input: %v", err)
	}
	defer f.Close()

	var out bytes.Buffer
	got, err := Line("> ", f, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from file" {
		t.Errorf("Line() = %q, want %q", got, "from file")
	}
}
