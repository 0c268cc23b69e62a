package layer

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ColorFromInt converts a packed 24-bit RGB value (0xRRGGBB) to an opaque
// RGBA color:
// - Bits 16-23: Red component
// - Bits 8-15: Green component
// - Bits 0-7: Blue component
func ColorFromInt(v int) color.RGBA {
	return color.RGBA{
		R: uint8((v >> 16) & 0xFF),
		G: uint8((v >> 8) & 0xFF),
		B: uint8(v & 0xFF),
		A: 0xFF,
	}
}

// ColorToInt converts a color to the packed 0xRRGGBB format, discarding
// alpha.
func ColorToInt(c color.Color) int {
	r, g, b, _ := c.RGBA()
	// RGBA() returns 16-bit values, so shift right by 8 to get 8-bit values
	return int(r>>8)<<16 | int(g>>8)<<8 | int(b>>8)
}

// ColorByName looks up an SVG 1.1 color name such as "steelblue". Matching is
// case-insensitive and ignores surrounding whitespace.
func ColorByName(name string) (color.RGBA, bool) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// ColorHex formats c as "#rrggbb" for display.
func ColorHex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
