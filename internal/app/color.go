package app

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a RGBA color as stored in the settings.
type Color struct {
	R, G, B, A uint8
}

// ColorFromRGB returns an opaque color from a 0xRRGGBB value.
func ColorFromRGB(rgb uint32) Color {
	return Color{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: 0xff,
	}
}

// Named colors used by the default settings.
var (
	ColorAccent = ColorFromRGB(0xff8c00)
	ColorBlack  = ColorFromRGB(0x000000)
	ColorWhite  = ColorFromRGB(0xffffff)
	ColorYellow = ColorFromRGB(0xffcc00)
)

// Hex returns the color in the format #rrggbbaa.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c Color) String() string {
	return c.Hex()
}

// ParseColor parses a color in the format #rrggbb or #rrggbbaa.
func ParseColor(s string) (Color, error) {
	x := strings.TrimPrefix(s, "#")
	if len(x) != 6 && len(x) != 8 {
		return Color{}, fmt.Errorf("parse color %q: %w", s, ErrInvalid)
	}
	v, err := strconv.ParseUint(x, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, ErrInvalid)
	}
	if len(x) == 6 {
		return ColorFromRGB(uint32(v)), nil
	}
	c := Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
	return c, nil
}

// GameboyPalette is a four color palette for Game Boy games.
type GameboyPalette struct {
	Name   string
	Colors [4]Color
}

var (
	PaletteStudio = GameboyPalette{
		Name:   "studio",
		Colors: [4]Color{ColorFromRGB(0xe0f8d0), ColorFromRGB(0x88c070), ColorFromRGB(0x346856), ColorFromRGB(0x081820)},
	}
	PaletteMinty = GameboyPalette{
		Name:   "minty",
		Colors: [4]Color{ColorFromRGB(0xc4f0c2), ColorFromRGB(0x5ab9a8), ColorFromRGB(0x1e606e), ColorFromRGB(0x2d1b00)},
	}
	PaletteSpacehaze = GameboyPalette{
		Name:   "spacehaze",
		Colors: [4]Color{ColorFromRGB(0xf8e3c4), ColorFromRGB(0xcc3495), ColorFromRGB(0x6b1fb1), ColorFromRGB(0x0b0630)},
	}
)
