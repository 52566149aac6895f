package bitmap

import (
	"image"
	"image/color"
)

// Pixel is one RGB565 triple: R and B hold 5 bits, G holds 6 bits.
type Pixel struct {
	R, G, B uint8
}

// Quantized converts an 8-bit RGB triple.
func Quantized(r, g, b uint8) Pixel {
	return Pixel{
		R: Quantize(r, RedBits),
		G: Quantize(g, GreenBits),
		B: Quantize(b, BlueBits),
	}
}

// Packed returns the 16-bit word laid out as
//
//	bit 76543210  76543210
//	    RRRRRGGG  GGGBBBBB
//	   high byte  low byte
func (p Pixel) Packed() uint16 {
	return uint16(p.R&0x1F)<<11 | uint16(p.G&0x3F)<<5 | uint16(p.B&0x1F)
}

// RGBA implements the color.Color interface. Each channel goes back to
// 8 bits through Expand and is then widened to 16 bits, so the minimum and
// maximum channel values map to 0 and 0xFFFF. Alpha is always opaque.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r = uint32(Expand(p.R, RedBits))
	g = uint32(Expand(p.G, GreenBits))
	b = uint32(Expand(p.B, BlueBits))
	r |= r << 8
	g |= g << 8
	b |= b << 8
	a = 0xFFFF
	return
}

// Model converts any color to a Pixel using Quantize. Non-premultiplied
// colors keep their raw channels, alpha is dropped.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	switch c := c.(type) {
	case Pixel:
		return c
	case color.NRGBA:
		return Quantized(c.R, c.G, c.B)
	}
	r, g, b, _ := c.RGBA()
	return Quantized(uint8(r>>8), uint8(g>>8), uint8(b>>8))
})

func NewGrid(r image.Rectangle) *Grid {
	return &Grid{
		pixels: make([]Pixel, r.Dx()*r.Dy()),
		stride: r.Dx(),
		bounds: r,
	}
}

// Grid is a row-major RGB565 pixel buffer. It implements the draw.Image
// interface.
type Grid struct {
	pixels []Pixel
	stride int
	bounds image.Rectangle
}

// Bounds implements the image.Image (and draw.Image) interface.
func (g *Grid) Bounds() image.Rectangle {
	return g.bounds
}

// ColorModel implements the image.Image (and draw.Image) interface.
func (g *Grid) ColorModel() color.Model {
	return Model
}

// At implements the image.Image (and draw.Image) interface.
func (g *Grid) At(x, y int) color.Color {
	return g.PixelAt(x, y)
}

// PixelAt returns the pixel at (x, y), or the zero Pixel outside bounds.
func (g *Grid) PixelAt(x, y int) Pixel {
	if !(image.Point{X: x, Y: y}.In(g.bounds)) {
		return Pixel{}
	}
	return g.pixels[g.offset(x, y)]
}

// Set implements the draw.Image interface.
func (g *Grid) Set(x, y int, c color.Color) {
	g.SetPixel(x, y, Model.Convert(c).(Pixel))
}

func (g *Grid) SetPixel(x, y int, p Pixel) {
	if !(image.Point{X: x, Y: y}.In(g.bounds)) {
		return
	}
	g.pixels[g.offset(x, y)] = p
}

func (g *Grid) offset(x, y int) int {
	return (y-g.bounds.Min.Y)*g.stride + (x - g.bounds.Min.X)
}

// Len is the number of pixels in the grid.
func (g *Grid) Len() int {
	return len(g.pixels)
}

// Pixels returns the pixels in row-major scan order. The slice is shared
// with the grid.
func (g *Grid) Pixels() []Pixel {
	return g.pixels
}

// Channels splits the grid into three flat per-channel slices, each in
// row-major scan order.
func (g *Grid) Channels() (r, gr, b []uint8) {
	r = make([]uint8, len(g.pixels))
	gr = make([]uint8, len(g.pixels))
	b = make([]uint8, len(g.pixels))
	for i, p := range g.pixels {
		r[i], gr[i], b[i] = p.R, p.G, p.B
	}
	return
}
