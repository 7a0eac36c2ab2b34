package render

import "LocalPaint/internal/state"

// Batch is a point-primitive draw submission: one vertex per point, with
// position, color and size uploaded as parallel attribute arrays.
type Batch struct {
	Positions []float32 // x, y per vertex
	Colors    []float32 // r, g, b, a per vertex
	Sizes     []float32 // one per vertex
}

// NewBatch lays out points in list order.
func NewBatch(points []state.Point) *Batch {
	b := &Batch{
		Positions: make([]float32, 0, len(points)*2),
		Colors:    make([]float32, 0, len(points)*4),
		Sizes:     make([]float32, 0, len(points)),
	}
	for _, p := range points {
		b.Positions = append(b.Positions, p.X, p.Y)
		b.Colors = append(b.Colors, p.Color.R, p.Color.G, p.Color.B, p.Color.A)
		b.Sizes = append(b.Sizes, p.Size)
	}
	return b
}

// Len is the number of vertices in the batch.
func (b *Batch) Len() int {
	return len(b.Sizes)
}

// Vertex returns the attributes of vertex i.
func (b *Batch) Vertex(i int) (x, y float32, c state.RGBA, size float32) {
	x, y = b.Positions[i*2], b.Positions[i*2+1]
	c = state.RGBA{R: b.Colors[i*4], G: b.Colors[i*4+1], B: b.Colors[i*4+2], A: b.Colors[i*4+3]}
	return x, y, c, b.Sizes[i]
}
