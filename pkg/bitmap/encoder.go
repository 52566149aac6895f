package bitmap

import (
	"image"
)

// Encode quantizes every pixel of src into a new grid with the same bounds.
// Pixels are visited row by row so the grid keeps scan order.
func Encode(src image.Image) *Grid {
	b := src.Bounds()
	d := NewGrid(b)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			d.Set(x, y, src.At(x, y))
		}
	}

	return d
}
