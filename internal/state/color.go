package state

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var ErrInvalidHex = errors.New("invalid hex color")

// RGBA holds normalized color channels, each in [0, 1].
type RGBA struct {
	R, G, B, A float32
}

var (
	White = RGBA{1, 1, 1, 1}
	Black = RGBA{0, 0, 0, 1}
)

// NRGBA converts to an 8-bit non-premultiplied color for image drawing.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: channel8(c.R),
		G: channel8(c.G),
		B: channel8(c.B),
		A: channel8(c.A),
	}
}

func channel8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// ParseHex parses "#rrggbb" (the leading # is optional) into normalized
// channels with alpha fixed at 1.
func ParseHex(s string) (RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return RGBA{}, fmt.Errorf("%w: %q must have 6 hex digits", ErrInvalidHex, s)
	}
	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidHex, s, err)
	}
	return RGBA{
		R: float32(val>>16) / 255,
		G: float32((val>>8)&0xFF) / 255,
		B: float32(val&0xFF) / 255,
		A: 1,
	}, nil
}

// Colors is the fixed swatch palette.
var Colors = []string{
	"#e74c3c", "#e67e22", "#f1c40f", "#2ecc71",
	"#3498db", "#9b59b6", "#34495e", "#ecf0f1",
	"#1abc9c", "#d35400", "#c0392b", "#7f8c8d",
}

// BrushSize is one of the preset brush sizes.
type BrushSize struct {
	Value float32
	Label string
}

var BrushSizes = []BrushSize{
	{Value: 5, Label: "Small"},
	{Value: 10, Label: "Medium"},
	{Value: 20, Label: "Large"},
}
