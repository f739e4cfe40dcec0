// Package canvas rasterizes the handful of anti-aliased primitives the tray
// glyphs are built from into small square ARGB buffers.
package canvas

import (
	"image"
	"math"
)

// Size is the side length of every tray bitmap.
const Size = 32

// edge is the half-width of the anti-aliasing band around a shape boundary.
const edge = 0.7

// RGB is a solid, opaque colour.
type RGB struct {
	R, G, B uint8
}

// Buffer is a square raster of premultiplied ARGB texels in row-major order.
// A texel with zero alpha always has zero colour channels.
type Buffer struct {
	Size int
	Pix  []uint32
}

// NewBuffer returns a fully transparent buffer.
func NewBuffer(size int) *Buffer {
	return &Buffer{Size: size, Pix: make([]uint32, size*size)}
}

// At returns the texel at (x, y), or 0 outside the buffer.
func (b *Buffer) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= b.Size || y >= b.Size {
		return 0
	}
	return b.Pix[y*b.Size+x]
}

// Alpha returns the alpha channel of the texel at (x, y).
func (b *Buffer) Alpha(x, y int) uint8 {
	return uint8(b.At(x, y) >> 24)
}

// Equal reports whether two buffers hold identical texels.
func (b *Buffer) Equal(o *Buffer) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.Size != o.Size {
		return false
	}
	for i, p := range b.Pix {
		if o.Pix[i] != p {
			return false
		}
	}
	return true
}

// Image converts the buffer into an *image.RGBA. Both are premultiplied, so
// texels are copied channel for channel.
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Size, b.Size))
	for i, p := range b.Pix {
		o := i * 4
		img.Pix[o+0] = uint8(p >> 16)
		img.Pix[o+1] = uint8(p >> 8)
		img.Pix[o+2] = uint8(p)
		img.Pix[o+3] = uint8(p >> 24)
	}
	return img
}

// Coverage maps a signed distance to the shape boundary (positive inside)
// onto an alpha value in [0, 1].
func Coverage(d float64) float64 {
	switch {
	case d > edge:
		return 1
	case d > -edge:
		a := (d + edge) / (2 * edge)
		return math.Max(0, math.Min(1, a))
	default:
		return 0
	}
}

// Composite draws s into b. Coordinates outside the buffer are clipped.
// Where s overlaps existing coverage the texel keeps the larger alpha; the
// colour channels are always s.Color.
func Composite(b *Buffer, s Shape) {
	for py := 0; py < b.Size; py++ {
		for px := 0; px < b.Size; px++ {
			fx := float64(px) + 0.5
			fy := float64(py) + 0.5

			d, ok := s.distance(fx, fy)
			if !ok {
				continue
			}
			a := Coverage(d)
			if a <= 0 {
				continue
			}
			b.plot(px, py, a, s.Color)
		}
	}
}

func (b *Buffer) plot(x, y int, a float64, c RGB) {
	i := y*b.Size + x
	alpha := uint8(math.Min(255, a*255))
	if old := uint8(b.Pix[i] >> 24); old > alpha {
		alpha = old
	}
	if alpha == 0 {
		return
	}
	b.Pix[i] = uint32(alpha)<<24 |
		premultiply(c.R, alpha)<<16 |
		premultiply(c.G, alpha)<<8 |
		premultiply(c.B, alpha)
}

func premultiply(c, a uint8) uint32 {
	return (uint32(c)*uint32(a) + 127) / 255
}
