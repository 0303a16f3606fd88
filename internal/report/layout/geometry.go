// Package layout draws the single-page SPT boring log: the page frame, the
// stratigraphy table, the depth scale, the blow-count chart, the
// observations box and the footer grid.
//
// All coordinates are millimetres with the origin at the top-left corner of
// the page and y growing downward. Every panel that plots against depth
// receives the same Scale value; no panel derives its own.
package layout

// Rect is an axis-aligned rectangle in page coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// Inset shrinks the rectangle by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// SplitX divides the rectangle into vertical strips whose widths are the
// given fractions of the total width. The fractions are used as-is; callers
// pass proportions that sum to 1.
func (r Rect) SplitX(fractions ...float64) []Rect {
	out := make([]Rect, len(fractions))
	x := r.X
	for i, f := range fractions {
		w := r.W * f
		out[i] = Rect{X: x, Y: r.Y, W: w, H: r.H}
		x += w
	}
	return out
}

// SplitY divides the rectangle into n rows of equal height.
func (r Rect) SplitY(n int) []Rect {
	out := make([]Rect, n)
	h := r.H / float64(n)
	for i := range out {
		out[i] = Rect{X: r.X, Y: r.Y + float64(i)*h, W: r.W, H: h}
	}
	return out
}

// Rows returns a copy of the rectangle restricted to the vertical span of v.
func (r Rect) Rows(v Rect) Rect {
	return Rect{X: r.X, Y: v.Y, W: r.W, H: v.H}
}
