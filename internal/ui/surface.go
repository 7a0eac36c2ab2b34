package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/paint"
	"LocalPaint/internal/render"
	"LocalPaint/internal/state"
)

// SurfaceWidget puts a paint.Surface on screen and feeds it mouse events.
type SurfaceWidget struct {
	widget.BaseWidget
	surface   *paint.Surface
	raster    *canvas.Raster
	selection paint.SelectionSource
	size      fyne.Size
	statusBar *widget.Label
}

var _ fyne.Widget = (*SurfaceWidget)(nil)
var _ desktop.Mouseable = (*SurfaceWidget)(nil)
var _ desktop.Hoverable = (*SurfaceWidget)(nil)
var _ desktop.Cursorable = (*SurfaceWidget)(nil)
var _ paint.Clearer = (*SurfaceWidget)(nil)

// NewSurfaceWidget builds a width x height surface drawing through backend.
// A backend that fails to initialize leaves the widget blank and inert.
func NewSurfaceWidget(backend render.Backend, width, height int, background state.RGBA, sel paint.SelectionSource) *SurfaceWidget {
	w := &SurfaceWidget{
		selection: sel,
		size:      fyne.NewSize(float32(width), float32(height)),
		statusBar: widget.NewLabel("Ready"),
	}
	pipeline := render.NewPipeline(backend, width, height, background)
	vp := paint.Viewport{Width: float32(width), Height: float32(height)}
	s, err := paint.NewSurface(pipeline, vp, sel)
	if err != nil {
		fyne.LogError("Drawing surface unavailable", err)
	}
	w.surface = s
	w.raster = canvas.NewRaster(func(int, int) image.Image {
		return pipeline.Image()
	})
	w.raster.SetMinSize(w.size)
	w.ExtendBaseWidget(w)
	w.updateStatus()
	return w
}

func (w *SurfaceWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.raster)
}

// Resize keeps the pointer mapping in step with the stretched raster.
func (w *SurfaceWidget) Resize(size fyne.Size) {
	if size.Width > 0 && size.Height > 0 {
		w.surface.SetViewport(paint.Viewport{Width: size.Width, Height: size.Height})
	}
	w.BaseWidget.Resize(size)
}

func (w *SurfaceWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.surface.PointerDown(e.Position.X, e.Position.Y)
	w.raster.Refresh()
	w.updateStatus()
}

func (w *SurfaceWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.surface.PointerUp()
}

func (w *SurfaceWidget) MouseIn(*desktop.MouseEvent) {}

func (w *SurfaceWidget) MouseMoved(e *desktop.MouseEvent) {
	if !w.surface.Drawing() {
		return
	}
	w.surface.PointerMove(e.Position.X, e.Position.Y)
	w.raster.Refresh()
	w.updateStatus()
}

func (w *SurfaceWidget) MouseOut() {
	w.surface.PointerLeave()
}

// Cursor is a crosshair for the brush and a pointer for the eraser.
func (w *SurfaceWidget) Cursor() desktop.Cursor {
	if w.selection().Tool == state.ToolEraser {
		return desktop.PointerCursor
	}
	return desktop.CrosshairCursor
}

// Clear empties the surface.
func (w *SurfaceWidget) Clear() {
	w.surface.Clear()
	w.raster.Refresh()
	w.updateStatus()
}

// StatusBar shows the current session and how many points it holds.
func (w *SurfaceWidget) StatusBar() *widget.Label {
	return w.statusBar
}

func (w *SurfaceWidget) updateStatus() {
	text := w.surface.Session().Summary()
	if !w.surface.Pipeline().Ready() {
		text += " · drawing disabled"
	}
	w.statusBar.SetText(text)
}

func (w *SurfaceWidget) Surface() *paint.Surface {
	return w.surface
}
