package layout

// Color is an RGB triple, 0-255 per channel.
type Color struct {
	R, G, B int
}

var (
	Black    = Color{0, 0, 0}
	Red      = Color{200, 0, 0}
	Blue     = Color{0, 0, 200}
	GridGray = Color{190, 190, 190}
)

// Pen describes a stroke. A nil Dash draws a solid line.
type Pen struct {
	Color Color
	Width float64
	Dash  []float64
}

// Font describes how a string is set. Size is in points.
type Font struct {
	Family string
	Style  string
	Size   float64
	Color  Color
}

var (
	thinPen   = Pen{Color: Black, Width: 0.2}
	borderPen = Pen{Color: Black, Width: 0.4}
	gridPen   = Pen{Color: GridGray, Width: 0.1}

	bodyFont  = Font{Family: "Helvetica", Size: 8, Color: Black}
	smallFont = Font{Family: "Helvetica", Size: 6, Color: Black}
	labelFont = Font{Family: "Helvetica", Style: "B", Size: 7, Color: Black}
	titleFont = Font{Family: "Helvetica", Style: "B", Size: 14, Color: Black}
)

// Surface is the drawing target. Every call carries its full pen or font
// state; implementations must not let one call's state leak into the next.
type Surface interface {
	Line(x1, y1, x2, y2 float64, pen Pen)
	Rect(r Rect, pen Pen)
	Circle(x, y, radius float64, fill Color)
	// Text draws s with its baseline starting at (x, y).
	Text(x, y float64, s string, font Font)
	TextWidth(s string, font Font) float64
	Image(path string, r Rect) error
}

func textCentered(s Surface, cx, y float64, text string, font Font) {
	s.Text(cx-s.TextWidth(text, font)/2, y, text, font)
}

// lineHeight converts a font size in points to a line advance in mm.
func lineHeight(font Font) float64 {
	return font.Size * 0.3528 * 1.25
}
