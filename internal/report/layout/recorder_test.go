package layout

import "math"

type recLine struct {
	X1, Y1, X2, Y2 float64
	Pen            Pen
}

type recCircle struct {
	X, Y, R float64
	Fill    Color
}

type recText struct {
	X, Y float64
	S    string
	Font Font
}

// recorder is a Surface that keeps every primitive for inspection. Text is
// measured at 0.2 mm per rune per point of font size.
type recorder struct {
	lines   []recLine
	rects   []Rect
	circles []recCircle
	texts   []recText
	images  []string
}

func (r *recorder) Line(x1, y1, x2, y2 float64, pen Pen) {
	r.lines = append(r.lines, recLine{x1, y1, x2, y2, pen})
}

func (r *recorder) Rect(rc Rect, pen Pen) { r.rects = append(r.rects, rc) }

func (r *recorder) Circle(x, y, radius float64, fill Color) {
	r.circles = append(r.circles, recCircle{x, y, radius, fill})
}

func (r *recorder) Text(x, y float64, s string, font Font) {
	r.texts = append(r.texts, recText{x, y, s, font})
}

func (r *recorder) TextWidth(s string, font Font) float64 {
	return float64(len([]rune(s))) * font.Size * 0.2
}

func (r *recorder) Image(path string, rc Rect) error {
	r.images = append(r.images, path)
	return nil
}

func (r *recorder) horizontalAt(y float64) []recLine {
	var out []recLine
	for _, l := range r.lines {
		if almostEqual(l.Y1, y) && almostEqual(l.Y2, y) {
			out = append(out, l)
		}
	}
	return out
}

func (r *recorder) dashed() []recLine {
	var out []recLine
	for _, l := range r.lines {
		if l.Pen.Dash != nil {
			out = append(out, l)
		}
	}
	return out
}

func (r *recorder) hasText(s string) bool {
	for _, t := range r.texts {
		if t.S == s {
			return true
		}
	}
	return false
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
