package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/config"
	"LocalPaint/internal/paint"
	"LocalPaint/internal/render"
	"LocalPaint/internal/state"
)

// PaintApp owns the selection and wires the toolbar to the surface.
type PaintApp struct {
	selection state.Selection
	toolbar   *Toolbar
	surface   *SurfaceWidget
	clearer   paint.Clearer
	clearBtn  *widget.Button
	content   fyne.CanvasObject
}

// NewPaintApp builds the UI. A fyne app must already exist.
func NewPaintApp(cfg *config.Config, backend render.Backend) *PaintApp {
	a := &PaintApp{selection: cfg.Selection}

	a.toolbar = NewToolbar(ToolbarActions{
		SetTool:      a.SetTool,
		SetColor:     a.SetColor,
		SetBrushSize: a.SetBrushSize,
	})
	a.surface = NewSurfaceWidget(backend, cfg.SurfaceWidth, cfg.SurfaceHeight, cfg.BackgroundColor(), a.Selection)
	a.clearer = a.surface

	title := widget.NewLabelWithStyle(cfg.Title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	a.clearBtn = widget.NewButton("Clear canvas", a.Clear)
	a.content = container.NewVBox(
		title,
		a.toolbar.Object(),
		container.NewCenter(a.surface),
		a.surface.StatusBar(),
		container.NewCenter(a.clearBtn),
	)
	a.toolbar.SetSelection(a.selection)
	return a
}

func (a *PaintApp) Selection() state.Selection {
	return a.selection
}

func (a *PaintApp) SetTool(t state.Tool) {
	a.selection.Tool = t
	a.selectionChanged()
}

func (a *PaintApp) SetColor(hex string) {
	a.selection.Color = hex
	a.selectionChanged()
}

func (a *PaintApp) SetBrushSize(size float32) {
	a.selection.BrushSize = size
	a.selectionChanged()
}

func (a *PaintApp) selectionChanged() {
	a.toolbar.SetSelection(a.selection)
	log.Printf("[APP] Selection: tool=%s color=%s size=%v", a.selection.Tool, a.selection.Color, a.selection.BrushSize)
}

// Clear tells the surface to drop everything drawn so far.
func (a *PaintApp) Clear() {
	a.clearer.Clear()
}

func (a *PaintApp) Content() fyne.CanvasObject {
	return a.content
}

// RunApp opens the paint window and blocks until it is closed.
func RunApp(cfg *config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Title)

	paintApp := NewPaintApp(cfg, render.NewRasterBackend())
	myWindow.SetContent(paintApp.Content())
	myWindow.SetFixedSize(true)
	myWindow.ShowAndRun()
}
