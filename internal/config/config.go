package config

import (
	"errors"
	"fmt"
	"strings"

	"LocalPaint/internal/state"
)

// Config holds the application settings. There is no config file: every
// launch starts from Default.
type Config struct {
	Title         string
	SurfaceWidth  int
	SurfaceHeight int
	Background    string // hex
	Selection     state.Selection
}

// Default returns the stock settings: an 800x600 white surface and a medium
// red brush.
func Default() *Config {
	return &Config{
		Title:         "Paint App",
		SurfaceWidth:  800,
		SurfaceHeight: 600,
		Background:    "#ffffff",
		Selection: state.Selection{
			Tool:      state.ToolBrush,
			Color:     state.Colors[0],
			BrushSize: 10,
		},
	}
}

// Validate reports every problem with the settings at once.
func (c *Config) Validate() error {
	var errs []error
	if c.SurfaceWidth <= 0 || c.SurfaceHeight <= 0 {
		errs = append(errs, fmt.Errorf("surface size %dx%d must be positive", c.SurfaceWidth, c.SurfaceHeight))
	}
	if _, err := state.ParseHex(c.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	if _, ok := state.ParseTool(c.Selection.Tool.String()); !ok {
		errs = append(errs, fmt.Errorf("unknown default tool %d", c.Selection.Tool))
	}
	if _, err := state.ParseHex(c.Selection.Color); err != nil {
		errs = append(errs, fmt.Errorf("default color: %w", err))
	}
	if c.Selection.BrushSize <= 0 {
		errs = append(errs, fmt.Errorf("default brush size %v must be positive", c.Selection.BrushSize))
	}
	return errors.Join(errs...)
}

// BackgroundColor is the parsed background, white if it does not parse.
func (c *Config) BackgroundColor() state.RGBA {
	bg, err := state.ParseHex(c.Background)
	if err != nil {
		return state.White
	}
	return bg
}

func (c *Config) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "title = %s\n", c.Title)
	fmt.Fprintf(&sb, "surface = %dx%d\n", c.SurfaceWidth, c.SurfaceHeight)
	fmt.Fprintf(&sb, "background = %s\n", c.Background)
	fmt.Fprintf(&sb, "tool = %s\n", c.Selection.Tool)
	fmt.Fprintf(&sb, "color = %s\n", c.Selection.Color)
	fmt.Fprintf(&sb, "brush_size = %v\n", c.Selection.BrushSize)
	return sb.String()
}
