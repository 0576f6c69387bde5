package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinter_Glyphs_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewWithWriter(&buf)

	p.Glyphs(nil)

	if buf.Len() != 0 {
		t.Errorf("Glyphs(nil) should output nothing, got %q", buf.String())
	}
}

func TestPrinter_Glyphs_WithData(t *testing.T) {
	var buf bytes.Buffer
	p := NewWithWriter(&buf)

	glyphs := []GlyphSummary{
		{Char: "A", Width: 9, Preview: "██████"},
		{Char: " ", Width: 3, Preview: "   "},
	}
	p.Glyphs(glyphs)

	got := buf.String()
	if !strings.Contains(got, "GLYPHS") {
		t.Error("Glyphs() should contain section header")
	}
	// go-pretty uppercases headers
	for _, header := range []string{"CHAR", "WIDTH", "TOP ROW"} {
		if !strings.Contains(got, header) {
			t.Errorf("Glyphs() should contain %s header", header)
		}
	}
	if !strings.Contains(got, "space") {
		t.Error("Glyphs() should show the space character by name")
	}
	if !strings.Contains(got, "2 characters") {
		t.Error("Glyphs() should contain the character count caption")
	}
}

func TestQuoteChar(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{" ", "space"},
		{"A", "A"},
		{"\\", "\\"},
	}
	for _, tt := range tests {
		if got := quoteChar(tt.in); got != tt.want {
			t.Errorf("quoteChar(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrinter_Section(t *testing.T) {
	var buf bytes.Buffer
	p := NewWithWriter(&buf)

	p.Section("TEST SECTION")

	if got := buf.String(); got != "TEST SECTION\n" {
		t.Errorf("Section() = %q, want %q", got, "TEST SECTION\n")
	}
}
