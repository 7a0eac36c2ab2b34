// Package paint is the drawing surface: it turns pointer gestures into
// points and keeps the render pipeline in sync with the point list.
package paint

import (
	"errors"
	"log"

	"LocalPaint/internal/render"
	"LocalPaint/internal/state"
)

// Clearer is the command a surface exposes to its owner.
type Clearer interface {
	Clear()
}

// SelectionSource reports the selection in effect right now.
type SelectionSource func() state.Selection

// Surface owns the point list, the pipeline and the gesture state. Every
// mutation re-renders the whole list.
type Surface struct {
	points    *state.PointList
	pipeline  *render.Pipeline
	viewport  Viewport
	selection SelectionSource

	drawing bool
	last    *Vec
	warned  bool
}

var _ Clearer = (*Surface)(nil)

// NewSurface initializes the pipeline. If that fails the failure is logged
// and returned, and the surface keeps recording points without rendering.
func NewSurface(p *render.Pipeline, vp Viewport, sel SelectionSource) (*Surface, error) {
	s := &Surface{
		points:    state.NewPointList(),
		pipeline:  p,
		viewport:  vp,
		selection: sel,
	}
	if err := p.Init(); err != nil {
		log.Printf("[SURFACE] Drawing disabled: %v", err)
		s.warned = true
		return s, err
	}
	log.Printf("[SURFACE] Session %s started", s.points.Session().ID)
	return s, nil
}

// PointerDown starts a gesture and drops one point under the pointer.
func (s *Surface) PointerDown(x, y float32) {
	pos := s.viewport.ToNDC(x, y)
	s.drawing = true
	s.last = &pos
	s.points.Append(s.selection().NewPoint(float32(pos.X), float32(pos.Y)))
	s.redraw()
}

// PointerMove extends an active gesture with an interpolated line from the
// last position.
func (s *Surface) PointerMove(x, y float32) {
	if !s.drawing {
		return
	}
	pos := s.viewport.ToNDC(x, y)
	sel := s.selection()
	if s.last == nil {
		s.points.Append(sel.NewPoint(float32(pos.X), float32(pos.Y)))
	} else {
		line := Interpolate(*s.last, pos)
		points := make([]state.Point, 0, len(line))
		for _, v := range line {
			points = append(points, sel.NewPoint(float32(v.X), float32(v.Y)))
		}
		s.points.Append(points...)
	}
	s.last = &pos
	s.redraw()
}

// SetViewport changes how screen positions map to the surface. Points
// already recorded keep their coordinates.
func (s *Surface) SetViewport(vp Viewport) {
	s.viewport = vp
}

func (s *Surface) PointerUp() {
	s.endGesture()
}

func (s *Surface) PointerLeave() {
	s.endGesture()
}

func (s *Surface) endGesture() {
	s.drawing = false
	s.last = nil
}

// Clear empties the point list and blanks the surface.
func (s *Surface) Clear() {
	s.points.Clear()
	s.redraw()
}

func (s *Surface) redraw() {
	err := s.pipeline.Render(s.points.Snapshot())
	if err == nil {
		return
	}
	if errors.Is(err, render.ErrDisabled) && s.warned {
		return
	}
	s.warned = true
	log.Printf("[SURFACE] Redraw failed: %v", err)
}

// Points returns the points recorded in the current session.
func (s *Surface) Points() []state.Point {
	return s.points.Snapshot()
}

func (s *Surface) Session() *state.Session {
	return s.points.Session()
}

// Drawing reports whether a gesture is in progress.
func (s *Surface) Drawing() bool {
	return s.drawing
}

func (s *Surface) Pipeline() *render.Pipeline {
	return s.pipeline
}
