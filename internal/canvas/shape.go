package canvas

import "math"

// Kind identifies a primitive.
type Kind int

const (
	KindCircle Kind = iota
	KindRoundRect
	KindTriangleLeft
	KindTriangleRight
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRoundRect:
		return "round-rect"
	case KindTriangleLeft:
		return "triangle-left"
	case KindTriangleRight:
		return "triangle-right"
	default:
		return "unknown"
	}
}

// Shape is a single primitive draw call in sub-pixel coordinates.
//
//	circle:          (X1, Y1) centre, R radius
//	round-rect:      (X1, Y1)-(X2, Y2) corners, R corner radius
//	triangle-left:   X1 right-hand base, Y1 centre line, W width, H height
//	triangle-right:  X1 left-hand base, Y1 centre line, W width, H height
type Shape struct {
	Kind   Kind
	X1, Y1 float64
	X2, Y2 float64
	R      float64
	W, H   float64
	Color  RGB
}

// Circle returns a filled circle.
func Circle(cx, cy, r float64) Shape {
	return Shape{Kind: KindCircle, X1: cx, Y1: cy, R: r}
}

// RoundRect returns a filled rectangle with rounded corners.
func RoundRect(x1, y1, x2, y2, r float64) Shape {
	return Shape{Kind: KindRoundRect, X1: x1, Y1: y1, X2: x2, Y2: y2, R: r}
}

// TriangleLeft returns an isosceles triangle whose base is the vertical line
// x = right and whose apex points left.
func TriangleLeft(right, cy, w, h float64) Shape {
	return Shape{Kind: KindTriangleLeft, X1: right, Y1: cy, W: w, H: h}
}

// TriangleRight returns an isosceles triangle whose base is the vertical line
// x = left and whose apex points right.
func TriangleRight(left, cy, w, h float64) Shape {
	return Shape{Kind: KindTriangleRight, X1: left, Y1: cy, W: w, H: h}
}

// WithColor returns a copy of s filled with c.
func (s Shape) WithColor(c RGB) Shape {
	s.Color = c
	return s
}

// distance returns the signed distance from (fx, fy) to the boundary,
// positive inside. ok is false when the point is trivially outside.
func (s Shape) distance(fx, fy float64) (float64, bool) {
	switch s.Kind {
	case KindCircle:
		return s.R - math.Hypot(fx-s.X1, fy-s.Y1), true
	case KindRoundRect:
		return s.roundRectDistance(fx, fy)
	case KindTriangleLeft, KindTriangleRight:
		return s.triangleDistance(fx, fy)
	default:
		return 0, false
	}
}

func (s Shape) roundRectDistance(fx, fy float64) (float64, bool) {
	x1, y1, x2, y2 := s.X1, s.Y1, s.X2, s.Y2
	if fx < x1-edge || fx > x2+edge || fy < y1-edge || fy > y2+edge {
		return 0, false
	}

	cr := math.Min(s.R, math.Min((x2-x1)/2, (y2-y1)/2))

	inLeft := fx < x1+cr
	inRight := fx > x2-cr
	inTop := fy < y1+cr
	inBottom := fy > y2-cr

	var ccx, ccy float64
	switch {
	case inLeft && inTop:
		ccx, ccy = x1+cr, y1+cr
	case inRight && inTop:
		ccx, ccy = x2-cr, y1+cr
	case inLeft && inBottom:
		ccx, ccy = x1+cr, y2-cr
	case inRight && inBottom:
		ccx, ccy = x2-cr, y2-cr
	default:
		return math.Min(math.Min(fx-x1, x2-fx), math.Min(fy-y1, y2-fy)), true
	}
	return cr - math.Hypot(fx-ccx, fy-ccy), true
}

// triangleDistance approximates the distance to the slanted edges by
// interpolating the edge position along each scanline.
func (s Shape) triangleDistance(fx, fy float64) (float64, bool) {
	half := s.H / 2
	dy := math.Abs(fy - s.Y1)
	if half <= 0 || dy > half+1 {
		return 0, false
	}
	progress := dy / half
	tb := half - dy

	if s.Kind == KindTriangleRight {
		left := s.X1
		slant := left + s.W - progress*s.W
		if fx < left-edge || fx > slant+edge {
			return 0, false
		}
		return math.Min(math.Min(fx-left, slant-fx), tb), true
	}

	right := s.X1
	slant := right - s.W + progress*s.W
	if fx > right+edge || fx < slant-edge {
		return 0, false
	}
	return math.Min(math.Min(fx-slant, right-fx), tb), true
}
