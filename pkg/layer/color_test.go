package layer

import (
	"image/color"
	"testing"

	"golang.org/x/image/colornames"
)

func TestColorFromInt(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		expected color.RGBA
	}{
		{"black", 0x000000, color.RGBA{A: 0xFF}},
		{"white", 0xFFFFFF, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
		{"red", 0xFF0000, color.RGBA{R: 0xFF, A: 0xFF}},
		{"mixed", 0x123456, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorFromInt(tt.value); got != tt.expected {
				t.Errorf("ColorFromInt(%#x) = %v, expected %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestColorToIntRoundTrip(t *testing.T) {
	for _, v := range []int{0x000000, 0xFFFFFF, 0x123456, 0x00FF00} {
		if got := ColorToInt(ColorFromInt(v)); got != v {
			t.Errorf("Round trip of %#x gave %#x", v, got)
		}
	}
}

func TestColorByName(t *testing.T) {
	c, ok := ColorByName("steelblue")
	if !ok {
		t.Fatal("Expected steelblue to resolve")
	}
	if c != colornames.Steelblue {
		t.Errorf("Expected %v, got %v", colornames.Steelblue, c)
	}

	if c, ok := ColorByName("  SteelBlue "); !ok || c != colornames.Steelblue {
		t.Error("Expected lookup to ignore case and whitespace")
	}

	if _, ok := ColorByName("not-a-color"); ok {
		t.Error("Expected unknown name to report false")
	}
}

func TestColorHex(t *testing.T) {
	if got := ColorHex(color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}); got != "#123456" {
		t.Errorf("Expected #123456, got %q", got)
	}
	if got := ColorHex(DefaultColor); got != "#000000" {
		t.Errorf("Expected #000000, got %q", got)
	}
}
