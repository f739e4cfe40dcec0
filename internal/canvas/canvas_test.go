package canvas

import "testing"

var black = RGB{0, 0, 0}
var white = RGB{255, 255, 255}

func TestNewBufferIsTransparent(t *testing.T) {
	b := NewBuffer(Size)
	if len(b.Pix) != Size*Size {
		t.Fatalf("len(Pix) = %d, want %d", len(b.Pix), Size*Size)
	}
	for i, p := range b.Pix {
		if p != 0 {
			t.Fatalf("texel %d = %#x, want 0", i, p)
		}
	}
}

func TestCoverage(t *testing.T) {
	tests := []struct {
		name string
		d    float64
		want float64
	}{
		{"deep inside", 5, 1},
		{"just past band", 0.71, 1},
		{"on boundary", 0, 0.5},
		{"inner band edge", 0.7, 1},
		{"outer band edge", -0.7, 0},
		{"outside", -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Coverage(tt.d)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Coverage(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestCoverageMonotonic(t *testing.T) {
	prev := Coverage(2)
	for d := 2.0; d >= -2; d -= 0.01 {
		a := Coverage(d)
		if a < 0 || a > 1 {
			t.Fatalf("Coverage(%v) = %v, out of [0,1]", d, a)
		}
		if a > prev {
			t.Fatalf("Coverage increased moving outward at d=%v: %v > %v", d, a, prev)
		}
		prev = a
	}
}

func TestCircle(t *testing.T) {
	b := NewBuffer(Size)
	Composite(b, Circle(16, 16, 5).WithColor(white))

	if got := b.Alpha(16, 16); got != 255 {
		t.Errorf("centre alpha = %d, want 255", got)
	}
	if got := b.At(0, 0); got != 0 {
		t.Errorf("corner texel = %#x, want 0", got)
	}
	if got := b.Alpha(21, 16); got == 0 || got == 255 {
		t.Errorf("boundary alpha = %d, want partial coverage", got)
	}

	// Alpha never increases walking outward along the centre row.
	prev := b.Alpha(16, 16)
	for x := 17; x < Size; x++ {
		a := b.Alpha(x, 16)
		if a > prev {
			t.Fatalf("alpha at x=%d is %d, greater than %d", x, a, prev)
		}
		prev = a
	}
}

func TestRoundRect(t *testing.T) {
	b := NewBuffer(Size)
	Composite(b, RoundRect(4, 4, 20, 12, 2).WithColor(black))

	if got := b.Alpha(10, 8); got != 255 {
		t.Errorf("interior alpha = %d, want 255", got)
	}
	if got := b.Alpha(4, 4); got == 0 || got == 255 {
		t.Errorf("rounded corner alpha = %d, want partial coverage", got)
	}
	if got := b.At(25, 8); got != 0 {
		t.Errorf("texel right of rect = %#x, want 0", got)
	}
}

func TestRoundRectClampsRadius(t *testing.T) {
	wide := NewBuffer(Size)
	Composite(wide, RoundRect(4, 4, 8, 28, 50).WithColor(black))
	clamped := NewBuffer(Size)
	Composite(clamped, RoundRect(4, 4, 8, 28, 2).WithColor(black))

	if !wide.Equal(clamped) {
		t.Error("corner radius larger than half the width should clamp to half the width")
	}
}

func TestTriangles(t *testing.T) {
	tests := []struct {
		name    string
		shape   Shape
		inside  [2]int
		outside [][2]int
	}{
		{
			name:    "right",
			shape:   TriangleRight(7, 16, 21, 20),
			inside:  [2]int{10, 16},
			outside: [][2]int{{3, 16}, {30, 16}, {10, 2}, {10, 29}},
		},
		{
			name:    "left",
			shape:   TriangleLeft(27, 16, 19, 20),
			inside:  [2]int{24, 16},
			outside: [][2]int{{29, 16}, {2, 16}, {24, 2}, {24, 29}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(Size)
			Composite(b, tt.shape.WithColor(black))
			if got := b.Alpha(tt.inside[0], tt.inside[1]); got != 255 {
				t.Errorf("alpha at %v = %d, want 255", tt.inside, got)
			}
			for _, p := range tt.outside {
				if got := b.At(p[0], p[1]); got != 0 {
					t.Errorf("texel at %v = %#x, want 0", p, got)
				}
			}
		})
	}
}

func TestCompositeKeepsMaxAlpha(t *testing.T) {
	b := NewBuffer(Size)
	Composite(b, RoundRect(4, 4, 21, 20, 0).WithColor(black))
	before := b.Alpha(19, 10)
	if before != 255 {
		t.Fatalf("setup: alpha = %d, want 255", before)
	}

	// The second shape's anti-aliased band crosses the first shape's interior.
	Composite(b, RoundRect(20, 4, 28, 20, 0).WithColor(black))
	if got := b.Alpha(19, 10); got != 255 {
		t.Errorf("overlapping band lowered alpha to %d", got)
	}

	again := NewBuffer(Size)
	Composite(again, RoundRect(4, 4, 20, 20, 0).WithColor(black))
	Composite(again, RoundRect(4, 4, 20, 20, 0).WithColor(black))
	single := NewBuffer(Size)
	Composite(single, RoundRect(4, 4, 20, 20, 0).WithColor(black))
	if !again.Equal(single) {
		t.Error("compositing the same shape twice changed the buffer")
	}
}

func TestCompositeClipsOutOfRange(t *testing.T) {
	b := NewBuffer(Size)
	Composite(b, Circle(-4, 40, 10).WithColor(white))
	Composite(b, RoundRect(-50, -50, 100, 2, 1).WithColor(white))

	if got := b.Alpha(0, 31); got == 0 {
		t.Error("visible part of clipped circle was not drawn")
	}
}

func TestPremultipliedInvariant(t *testing.T) {
	b := NewBuffer(Size)
	Composite(b, Circle(16, 16, 9).WithColor(white))

	for i, p := range b.Pix {
		a := p >> 24
		r, g, bl := (p>>16)&0xff, (p>>8)&0xff, p&0xff
		if a == 0 && (r|g|bl) != 0 {
			t.Fatalf("texel %d transparent with colour %#x", i, p)
		}
		if r > a || g > a || bl > a {
			t.Fatalf("texel %d colour exceeds alpha: %#x", i, p)
		}
		if a > 0 && r != a {
			t.Fatalf("white texel %d: r = %d, want %d", i, r, a)
		}
	}
}

func TestImage(t *testing.T) {
	b := NewBuffer(Size)
	Composite(b, Circle(16, 16, 5).WithColor(RGB{255, 255, 255}))

	img := b.Image()
	if img.Bounds().Dx() != Size || img.Bounds().Dy() != Size {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	c := img.RGBAAt(16, 16)
	if c.R != 255 || c.A != 255 {
		t.Errorf("centre colour = %+v, want opaque white", c)
	}
	if c := img.RGBAAt(0, 0); c.A != 0 {
		t.Errorf("corner colour = %+v, want transparent", c)
	}
}
