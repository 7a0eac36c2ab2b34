package ui

import (
	"errors"
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalPaint/internal/config"
	"LocalPaint/internal/render"
	"LocalPaint/internal/state"
)

type deadBackend struct {
	render.RasterBackend
}

func (deadBackend) Name() string { return "dead" }

func (deadBackend) Init(int, int) error { return errors.New("no graphics context") }

func mouse(x, y float32, button desktop.MouseButton) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     button,
	}
}

func TestToolbarDispatch(t *testing.T) {
	test.NewTempApp(t)

	var gotTool state.Tool
	var gotColor string
	var gotSize float32
	tb := NewToolbar(ToolbarActions{
		SetTool:      func(tool state.Tool) { gotTool = tool },
		SetColor:     func(hex string) { gotColor = hex },
		SetBrushSize: func(size float32) { gotSize = size },
	})

	require.Len(t, tb.tools.buttons, 2)
	require.Len(t, tb.colors.swatches, 12)
	require.Len(t, tb.sizes.buttons, 3)

	test.Tap(tb.tools.buttons[state.ToolEraser])
	assert.Equal(t, state.ToolEraser, gotTool)

	test.Tap(tb.colors.swatches[4])
	assert.Equal(t, "#3498db", gotColor)

	test.Tap(tb.sizes.buttons[2])
	assert.Equal(t, float32(20), gotSize)
}

func TestToolbarHighlightsSelection(t *testing.T) {
	test.NewTempApp(t)
	noop := ToolbarActions{SetTool: func(state.Tool) {}, SetColor: func(string) {}, SetBrushSize: func(float32) {}}
	tb := NewToolbar(noop)

	tb.SetSelection(state.Selection{Tool: state.ToolEraser, Color: "#ecf0f1", BrushSize: 5})
	assert.Equal(t, widget.HighImportance, tb.tools.buttons[state.ToolEraser].Importance)
	assert.Equal(t, widget.MediumImportance, tb.tools.buttons[state.ToolBrush].Importance)
	assert.Equal(t, widget.HighImportance, tb.sizes.buttons[0].Importance)
	assert.Equal(t, widget.MediumImportance, tb.sizes.buttons[1].Importance)
	for _, sw := range tb.colors.swatches {
		if sw.Hex == "#ecf0f1" {
			assert.Equal(t, float32(3), sw.border.StrokeWidth)
		} else {
			assert.Equal(t, float32(1), sw.border.StrokeWidth)
		}
	}
}

func TestSurfaceWidgetGesture(t *testing.T) {
	test.NewTempApp(t)
	sel := state.Selection{Tool: state.ToolBrush, Color: "#e74c3c", BrushSize: 10}
	w := NewSurfaceWidget(render.NewRasterBackend(), 800, 600, state.White, func() state.Selection { return sel })
	w.Resize(fyne.NewSize(800, 600))

	assert.Equal(t, desktop.CrosshairCursor, w.Cursor())

	w.MouseDown(mouse(400, 300, desktop.MouseButtonSecondary))
	assert.Empty(t, w.Surface().Points())

	w.MouseDown(mouse(400, 300, desktop.MouseButtonPrimary))
	w.MouseMoved(mouse(600, 300, desktop.MouseButtonPrimary))
	w.MouseUp(mouse(600, 300, desktop.MouseButtonPrimary))
	assert.Len(t, w.Surface().Points(), 52)

	w.MouseMoved(mouse(700, 300, 0))
	assert.Len(t, w.Surface().Points(), 52)

	w.MouseDown(mouse(100, 100, desktop.MouseButtonPrimary))
	w.MouseOut()
	w.MouseMoved(mouse(200, 100, desktop.MouseButtonPrimary))
	assert.Len(t, w.Surface().Points(), 53)

	sel.Tool = state.ToolEraser
	assert.Equal(t, desktop.PointerCursor, w.Cursor())

	w.Clear()
	assert.Empty(t, w.Surface().Points())
}

func TestSurfaceWidgetStatusBar(t *testing.T) {
	test.NewTempApp(t)
	sel := state.Selection{Tool: state.ToolBrush, Color: "#e74c3c", BrushSize: 10}
	w := NewSurfaceWidget(render.NewRasterBackend(), 800, 600, state.White, func() state.Selection { return sel })
	w.Resize(fyne.NewSize(800, 600))

	first := w.Surface().Session()
	assert.Equal(t, first.Summary(), w.StatusBar().Text)
	assert.Contains(t, w.StatusBar().Text, "Session "+first.ID[:8]+" · 0 points")

	w.MouseDown(mouse(400, 300, desktop.MouseButtonPrimary))
	assert.Contains(t, w.StatusBar().Text, "· 1 points")
	w.MouseMoved(mouse(600, 300, desktop.MouseButtonPrimary))
	w.MouseUp(mouse(600, 300, desktop.MouseButtonPrimary))
	assert.Contains(t, w.StatusBar().Text, "· 52 points")
	assert.Equal(t, uint64(52), first.Points())

	w.Clear()
	next := w.Surface().Session()
	assert.NotEqual(t, first.ID, next.ID)
	assert.Contains(t, w.StatusBar().Text, "Session "+next.ID[:8]+" · 0 points")
}

func TestSurfaceWidgetResizeRemapsPointer(t *testing.T) {
	test.NewTempApp(t)
	sel := state.Selection{Tool: state.ToolBrush, Color: "#e74c3c", BrushSize: 10}
	w := NewSurfaceWidget(render.NewRasterBackend(), 800, 600, state.White, func() state.Selection { return sel })
	w.Resize(fyne.NewSize(400, 300))

	w.MouseDown(mouse(400, 300, desktop.MouseButtonPrimary))
	points := w.Surface().Points()
	require.Len(t, points, 1)
	assert.Equal(t, float32(1), points[0].X)
	assert.Equal(t, float32(-1), points[0].Y)
}

func TestSurfaceWidgetBrokenBackend(t *testing.T) {
	test.NewTempApp(t)
	sel := state.Selection{Tool: state.ToolBrush, Color: "#e74c3c", BrushSize: 10}
	w := NewSurfaceWidget(&deadBackend{}, 800, 600, state.White, func() state.Selection { return sel })
	w.Resize(fyne.NewSize(800, 600))

	w.MouseDown(mouse(400, 300, desktop.MouseButtonPrimary))
	w.MouseUp(mouse(400, 300, desktop.MouseButtonPrimary))
	w.Clear()

	p := w.Surface().Pipeline()
	assert.False(t, p.Ready())
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, color.RGBAModel.Convert(p.Image().At(400, 300)))
	assert.Contains(t, w.StatusBar().Text, "drawing disabled")
}

func TestPaintAppEndToEnd(t *testing.T) {
	test.NewTempApp(t)
	a := NewPaintApp(config.Default(), render.NewRasterBackend())
	win := test.NewWindow(a.Content())
	defer win.Close()

	assert.Equal(t, state.Selection{Tool: state.ToolBrush, Color: "#e74c3c", BrushSize: 10}, a.Selection())
	assert.Equal(t, fyne.NewSize(800, 600), a.surface.Size())

	test.Tap(a.toolbar.colors.swatches[3])
	test.Tap(a.toolbar.sizes.buttons[2])
	assert.Equal(t, "#2ecc71", a.Selection().Color)
	assert.Equal(t, float32(20), a.Selection().BrushSize)

	a.surface.MouseDown(mouse(400, 300, desktop.MouseButtonPrimary))
	a.surface.MouseUp(mouse(400, 300, desktop.MouseButtonPrimary))
	points := a.surface.Surface().Points()
	require.Len(t, points, 1)
	green, _ := state.ParseHex("#2ecc71")
	assert.Equal(t, green, points[0].Color)
	assert.Equal(t, float32(20), points[0].Size)

	img := a.surface.Surface().Pipeline().Image()
	assert.Equal(t, color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 255}, color.RGBAModel.Convert(img.At(400, 300)))

	test.Tap(a.toolbar.tools.buttons[state.ToolEraser])
	a.surface.MouseDown(mouse(400, 300, desktop.MouseButtonPrimary))
	assert.Equal(t, state.White, a.surface.Surface().Points()[1].Color)

	assert.Contains(t, a.surface.StatusBar().Text, "· 2 points")

	test.Tap(a.clearBtn)
	assert.Empty(t, a.surface.Surface().Points())
	assert.Contains(t, a.surface.StatusBar().Text, "· 0 points")
	assert.Equal(t, 0, a.surface.Surface().Pipeline().Submitted())
}
