package render

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"LocalPaint/internal/state"
)

// Bézier handle length for a quarter circle.
const kappa = 0.5522847498

// RasterBackend draws point primitives in software as anti-aliased discs.
type RasterBackend struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

var _ Backend = (*RasterBackend)(nil)

func NewRasterBackend() *RasterBackend {
	return &RasterBackend{}
}

func (rb *RasterBackend) Name() string { return "raster" }

func (rb *RasterBackend) Init(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid viewport %dx%d", width, height)
	}
	rb.img = image.NewRGBA(image.Rect(0, 0, width, height))
	rb.z = vector.NewRasterizer(width, height)
	return nil
}

func (rb *RasterBackend) Clear(bg state.RGBA) {
	draw.Draw(rb.img, rb.img.Bounds(), image.NewUniform(bg.NRGBA()), image.Point{}, draw.Src)
}

func (rb *RasterBackend) DrawPoints(b *Batch) {
	for i := 0; i < b.Len(); i++ {
		x, y, c, size := b.Vertex(i)
		px, py := rb.toPixel(x, y)
		rb.dab(px, py, size/2, c)
	}
}

// toPixel maps normalized device coordinates to pixel space, Y down.
func (rb *RasterBackend) toPixel(x, y float32) (float32, float32) {
	w, h := float32(rb.img.Rect.Dx()), float32(rb.img.Rect.Dy())
	return (x + 1) / 2 * w, (1 - y) / 2 * h
}

// dab fills a disc of radius r centred on (cx, cy). Only the disc's bounding
// box is rasterized.
func (rb *RasterBackend) dab(cx, cy, r float32, c state.RGBA) {
	if r < 0.5 {
		r = 0.5
	}
	box := image.Rect(
		int(math.Floor(float64(cx-r))), int(math.Floor(float64(cy-r))),
		int(math.Ceil(float64(cx+r))), int(math.Ceil(float64(cy+r))),
	).Intersect(rb.img.Bounds())
	if box.Empty() {
		return
	}

	ox, oy := cx-float32(box.Min.X), cy-float32(box.Min.Y)
	k := r * kappa
	rb.z.Reset(box.Dx(), box.Dy())
	rb.z.DrawOp = draw.Over
	rb.z.MoveTo(ox+r, oy)
	rb.z.CubeTo(ox+r, oy+k, ox+k, oy+r, ox, oy+r)
	rb.z.CubeTo(ox-k, oy+r, ox-r, oy+k, ox-r, oy)
	rb.z.CubeTo(ox-r, oy-k, ox-k, oy-r, ox, oy-r)
	rb.z.CubeTo(ox+k, oy-r, ox+r, oy-k, ox+r, oy)
	rb.z.ClosePath()
	rb.z.Draw(rb.img, box, image.NewUniform(c.NRGBA()), image.Point{})
}

func (rb *RasterBackend) Image() image.Image {
	return rb.img
}

func (rb *RasterBackend) Close() {
	rb.img = nil
	rb.z = nil
}
