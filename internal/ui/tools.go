package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/state"
)

var (
	swatchBorder       = color.Gray{Y: 150}
	swatchBorderActive = color.Gray{Y: 40}
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Hex      string
	OnTapped func(string)

	rect   *canvas.Rectangle
	border *canvas.Rectangle
}

func newColorSwatch(hex string, tapped func(string)) *colorSwatch {
	c, err := state.ParseHex(hex)
	if err != nil {
		fyne.LogError("Bad swatch color "+hex, err)
	}
	s := &colorSwatch{Hex: hex, OnTapped: tapped}
	s.rect = canvas.NewRectangle(c.NRGBA())
	s.rect.SetMinSize(fyne.NewSize(28, 28))
	s.border = canvas.NewRectangle(color.Transparent)
	s.border.StrokeColor = swatchBorder
	s.border.StrokeWidth = 1
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(s.rect, s.border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Hex)
	}
}

func (s *colorSwatch) setActive(active bool) {
	if active {
		s.border.StrokeColor = swatchBorderActive
		s.border.StrokeWidth = 3
	} else {
		s.border.StrokeColor = swatchBorder
		s.border.StrokeWidth = 1
	}
	s.border.Refresh()
}

// --- Selectors ---
// Each selector shows a fixed option set and reports taps upward. Which
// option is highlighted comes from the selection passed down.

type toolSelector struct {
	buttons map[state.Tool]*widget.Button
	box     *fyne.Container
}

func newToolSelector(onSelect func(state.Tool)) *toolSelector {
	ts := &toolSelector{buttons: make(map[state.Tool]*widget.Button), box: container.NewHBox()}
	for _, tool := range state.Tools {
		btn := widget.NewButton(tool.Label(), func() { onSelect(tool) })
		ts.buttons[tool] = btn
		ts.box.Add(btn)
	}
	return ts
}

func (ts *toolSelector) show(current state.Tool) {
	for tool, btn := range ts.buttons {
		setActiveButton(btn, tool == current)
	}
}

type colorSelector struct {
	swatches []*colorSwatch
	box      *fyne.Container
}

func newColorSelector(onSelect func(string)) *colorSelector {
	cs := &colorSelector{box: container.NewHBox()}
	for _, hex := range state.Colors {
		sw := newColorSwatch(hex, onSelect)
		cs.swatches = append(cs.swatches, sw)
		cs.box.Add(sw)
	}
	return cs
}

func (cs *colorSelector) show(current string) {
	for _, sw := range cs.swatches {
		sw.setActive(sw.Hex == current)
	}
}

type sizeSelector struct {
	buttons []*widget.Button
	box     *fyne.Container
}

func newSizeSelector(onSelect func(float32)) *sizeSelector {
	ss := &sizeSelector{box: container.NewHBox()}
	for _, s := range state.BrushSizes {
		size := s.Value
		btn := widget.NewButton(s.Label, func() { onSelect(size) })
		ss.buttons = append(ss.buttons, btn)
		ss.box.Add(btn)
	}
	return ss
}

func (ss *sizeSelector) show(current float32) {
	for i, btn := range ss.buttons {
		setActiveButton(btn, state.BrushSizes[i].Value == current)
	}
}

func setActiveButton(btn *widget.Button, active bool) {
	want := widget.MediumImportance
	if active {
		want = widget.HighImportance
	}
	if btn.Importance != want {
		btn.Importance = want
		btn.Refresh()
	}
}

// --- The Main Toolbar ---

// ToolbarActions are the setters the toolbar reports choices to.
type ToolbarActions struct {
	SetTool      func(state.Tool)
	SetColor     func(string)
	SetBrushSize func(float32)
}

type Toolbar struct {
	tools  *toolSelector
	colors *colorSelector
	sizes  *sizeSelector
	object fyne.CanvasObject
}

func NewToolbar(actions ToolbarActions) *Toolbar {
	tb := &Toolbar{
		tools:  newToolSelector(actions.SetTool),
		colors: newColorSelector(actions.SetColor),
		sizes:  newSizeSelector(actions.SetBrushSize),
	}
	tb.object = container.NewHBox(
		widget.NewLabel("Tool:"),
		tb.tools.box,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		tb.colors.box,
		widget.NewSeparator(),
		widget.NewLabel("Brush size:"),
		tb.sizes.box,
	)
	return tb
}

// SetSelection highlights the options matching sel.
func (tb *Toolbar) SetSelection(sel state.Selection) {
	tb.tools.show(sel.Tool)
	tb.colors.show(sel.Color)
	tb.sizes.show(sel.BrushSize)
}

func (tb *Toolbar) Object() fyne.CanvasObject {
	return tb.object
}
