package render

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"log"
	"sync"

	"LocalPaint/internal/state"
)

var (
	// ErrBackendInit is wrapped by every initialization failure.
	ErrBackendInit = errors.New("render: backend initialization failed")
	// ErrDisabled is returned when drawing on a pipeline that never initialized.
	ErrDisabled = errors.New("render: pipeline disabled")
)

// Backend is a point-primitive graphics target.
//
// Init sets up the drawing context and whatever program the backend needs
// to rasterize points; a backend whose Init fails must not be drawn to.
type Backend interface {
	Name() string
	Init(width, height int) error
	// Clear fills the whole target with bg.
	Clear(bg state.RGBA)
	// DrawPoints draws every vertex of the batch in order, blending each
	// source-alpha over the destination.
	DrawPoints(b *Batch)
	Image() image.Image
	Close()
}

// Pipeline resubmits the full point list to a Backend on every render.
type Pipeline struct {
	backend    Backend
	width      int
	height     int
	background state.RGBA

	mu        sync.Mutex
	ready     bool
	blank     *image.RGBA
	submitted int
	frames    int
}

func NewPipeline(b Backend, width, height int, background state.RGBA) *Pipeline {
	return &Pipeline{
		backend:    b,
		width:      width,
		height:     height,
		background: background,
	}
}

// Init initializes the backend and blanks it. On failure the pipeline stays
// disabled for good.
func (p *Pipeline) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		return nil
	}
	if p.backend == nil {
		return fmt.Errorf("%w: no backend", ErrBackendInit)
	}
	if err := p.backend.Init(p.width, p.height); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrBackendInit, p.backend.Name(), err)
	}
	p.ready = true
	p.backend.Clear(p.background)
	log.Printf("[RENDER] %s backend ready (%dx%d)", p.backend.Name(), p.width, p.height)
	return nil
}

func (p *Pipeline) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Render clears the target and draws every point in one batch.
func (p *Pipeline) Render(points []state.Point) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return ErrDisabled
	}
	p.backend.Clear(p.background)
	p.frames++
	p.submitted = 0
	if len(points) == 0 {
		return nil
	}
	batch := NewBatch(points)
	p.backend.DrawPoints(batch)
	p.submitted = batch.Len()
	return nil
}

// Submitted is the number of primitives sent by the last Render.
func (p *Pipeline) Submitted() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.submitted
}

// Frames counts Render calls that reached the backend.
func (p *Pipeline) Frames() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frames
}

// Image is a copy of the current frame, taken under the lock so later
// renders never show through. A disabled pipeline shows a plain background.
func (p *Pipeline) Image() image.Image {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		src := p.backend.Image()
		frame := image.NewRGBA(src.Bounds())
		draw.Draw(frame, frame.Bounds(), src, src.Bounds().Min, draw.Src)
		return frame
	}
	if p.blank == nil {
		w, h := p.width, p.height
		if w <= 0 || h <= 0 {
			w, h = 1, 1
		}
		p.blank = image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(p.blank, p.blank.Bounds(), image.NewUniform(p.background.NRGBA()), image.Point{}, draw.Src)
	}
	return p.blank
}

func (p *Pipeline) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		p.backend.Close()
		p.ready = false
	}
}
