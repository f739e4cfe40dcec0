// Package glyph holds the fixed drawing recipes for the tray icons.
package glyph

import (
	"github.com/clickplay/clickplay/internal/canvas"
)

// Glyph is one of the five icon designs.
type Glyph int

const (
	Default Glyph = iota // music note, shown when no controls are enabled
	Previous
	Play
	Pause
	Next
)

// All lists every glyph in declaration order.
var All = []Glyph{Default, Previous, Play, Pause, Next}

func (g Glyph) String() string {
	switch g {
	case Default:
		return "default"
	case Previous:
		return "previous"
	case Play:
		return "play"
	case Pause:
		return "pause"
	case Next:
		return "next"
	default:
		return "unknown"
	}
}

// Palette selects the single foreground colour.
type Palette struct {
	DarkForeground bool
}

var (
	black = canvas.RGB{R: 0, G: 0, B: 0}
	white = canvas.RGB{R: 255, G: 255, B: 255}
)

// Color returns black for a dark foreground and white otherwise.
func (p Palette) Color() canvas.RGB {
	if p.DarkForeground {
		return black
	}
	return white
}

func (p Palette) String() string {
	if p.DarkForeground {
		return "black"
	}
	return "white"
}

// Shapes returns the ordered primitives that make up g on a 32x32 canvas.
// Later shapes composite over earlier ones.
func Shapes(g Glyph) []canvas.Shape {
	switch g {
	case Default:
		return []canvas.Shape{
			// head and stem
			canvas.Circle(10, 23, 7),
			canvas.RoundRect(13, 5, 17, 23, 2),
			// flag curl
			canvas.RoundRect(14, 5, 25, 8, 2),
			canvas.RoundRect(22, 7.5, 24.5, 13, 1.5),
			canvas.RoundRect(21, 12, 23, 16, 1),
		}
	case Previous:
		return []canvas.Shape{
			canvas.RoundRect(5, 6, 10, 26, 1.5),
			canvas.TriangleLeft(27, 16, 19, 20),
		}
	case Play:
		return []canvas.Shape{
			canvas.TriangleRight(7, 16, 21, 20),
		}
	case Pause:
		return []canvas.Shape{
			canvas.RoundRect(6, 6, 12, 26, 1.5),
			canvas.RoundRect(20, 6, 26, 26, 1.5),
		}
	case Next:
		return []canvas.Shape{
			canvas.TriangleRight(5, 16, 19, 20),
			canvas.RoundRect(22, 6, 27, 26, 1.5),
		}
	default:
		return nil
	}
}

// Render draws g in the palette's colour into a fresh buffer. The result is
// a pure function of its arguments.
func Render(g Glyph, p Palette) *canvas.Buffer {
	b := canvas.NewBuffer(canvas.Size)
	c := p.Color()
	for _, s := range Shapes(g) {
		canvas.Composite(b, s.WithColor(c))
	}
	return b
}
