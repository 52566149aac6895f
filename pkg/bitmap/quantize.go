package bitmap

import "math"

const (
	RedBits   = 5
	GreenBits = 6
	BlueBits  = 5
)

// Quantize scales an 8-bit channel onto bits bits as floor(v/255*(2^bits-1)).
// This is a linear scale, not a shift: 255 always maps to the full maximum.
func Quantize(v uint8, bits uint) uint8 {
	top := float64(uint(1)<<bits - 1)
	return uint8(math.Floor(float64(v) / 255.0 * top))
}

// Expand maps a quantized channel back onto 8 bits. It returns the smallest
// 8-bit value that Quantize maps back to v.
func Expand(v uint8, bits uint) uint8 {
	top := uint(1)<<bits - 1
	if uint(v) >= top {
		return 0xFF
	}
	return uint8((uint(v)*255 + top - 1) / top)
}
