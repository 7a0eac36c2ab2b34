package paint

import "math"

// Vec is a position in normalized device coordinates. Geometry stays in
// float64; points narrow to float32 only when they are recorded.
type Vec struct {
	X, Y float64
}

// Viewport places the drawing surface in screen space.
type Viewport struct {
	OriginX, OriginY float32
	Width, Height    float32
}

// ToNDC maps a screen position into the surface's normalized device
// coordinates: top-left is (-1, 1) and bottom-right is (1, -1).
func (v Viewport) ToNDC(sx, sy float32) Vec {
	return Vec{
		X: (float64(sx)-float64(v.OriginX))/float64(v.Width)*2 - 1,
		Y: -((float64(sy)-float64(v.OriginY))/float64(v.Height)*2 - 1),
	}
}

// Steps is the interpolation step count for a segment of the given NDC
// length. Longer segments get proportionally more samples.
func Steps(distance float64) int {
	steps := int(math.Floor(distance * 100))
	if steps < 2 {
		return 2
	}
	return steps
}

// Interpolate samples the segment from..to at Steps(|to-from|)+1 evenly
// spaced positions, both ends included.
func Interpolate(from, to Vec) []Vec {
	dx := to.X - from.X
	dy := to.Y - from.Y
	steps := Steps(math.Sqrt(dx*dx + dy*dy))

	out := make([]Vec, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		out = append(out, Vec{
			X: from.X + dx*t,
			Y: from.Y + dy*t,
		})
	}
	return out
}
