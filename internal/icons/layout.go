package icons

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/clickplay/clickplay/internal/canvas"
)

// Compose places bufs side by side at full size, in order. A single bitmap
// is returned unchanged. Compose returns nil for an empty slice.
func Compose(bufs []*canvas.Buffer) *image.RGBA {
	switch len(bufs) {
	case 0:
		return nil
	case 1:
		return bufs[0].Image()
	}

	size := bufs[0].Size
	dst := image.NewRGBA(image.Rect(0, 0, size*len(bufs), size))
	for i, b := range bufs {
		r := image.Rect(i*size, 0, (i+1)*size, size)
		draw.Draw(dst, r, b.Image(), image.Point{}, draw.Src)
	}
	return dst
}

// Template returns a copy of img with every texel black, keeping coverage
// in alpha. macOS recolours such images to suit the menu bar.
func Template(img *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(img.Bounds())
	for i := 0; i+3 < len(img.Pix); i += 4 {
		dst.Pix[i+3] = img.Pix[i+3]
	}
	return dst
}
