package state

import "log"

// Point is a single paint dab. X and Y are normalized device coordinates in
// [-1, 1], Size is the dab diameter in pixels.
type Point struct {
	X, Y  float32
	Color RGBA
	Size  float32
}

type Tool int

const (
	ToolBrush Tool = iota
	ToolEraser
)

// Tools lists the tools in toolbar order.
var Tools = []Tool{ToolBrush, ToolEraser}

func (t Tool) String() string {
	switch t {
	case ToolBrush:
		return "brush"
	case ToolEraser:
		return "eraser"
	}
	return "unknown"
}

// Label is the text shown on the tool's toolbar button.
func (t Tool) Label() string {
	switch t {
	case ToolBrush:
		return "Brush"
	case ToolEraser:
		return "Eraser"
	}
	return "?"
}

// ParseTool maps a tool name back to its Tool.
func ParseTool(name string) (Tool, bool) {
	for _, t := range Tools {
		if t.String() == name {
			return t, true
		}
	}
	return ToolBrush, false
}

// Selection is the user's current tool, color and brush size.
type Selection struct {
	Tool      Tool
	Color     string // hex, "#rrggbb"
	BrushSize float32
}

// PointColor returns the color a new point gets under this selection.
// The eraser paints opaque white over the white background.
func (s Selection) PointColor() RGBA {
	if s.Tool == ToolEraser {
		return White
	}
	c, err := ParseHex(s.Color)
	if err != nil {
		log.Printf("[STATE] Bad brush color %q, using black: %v", s.Color, err)
		return Black
	}
	return c
}

// NewPoint captures the selection at this instant into a point at x, y.
func (s Selection) NewPoint(x, y float32) Point {
	return Point{
		X:     x,
		Y:     y,
		Color: s.PointColor(),
		Size:  s.BrushSize,
	}
}
