package layout

// Page geometry, mm.
const (
	A4Width  = 210.0
	A4Height = 297.0

	borderMargin  = 10.0
	contentMargin = 15.0

	titleHeight        = 10.0
	headerHeight       = 20.0
	observationsHeight = 25.0
	footerHeight       = 38.0
	bandGap            = 3.0
)

// Column proportions of the table block, left to right.
const (
	strataFraction = 0.35
	scaleFraction  = 0.10
	sampleFraction = 0.05
	chartFraction  = 0.50

	depthLabelFraction  = 0.20
	waterTableFraction  = 0.10
	descriptionFraction = 0.70
)

// Frame is the static page template. Header and Plot together form the
// table block; Plot is the area drawn against the depth scale.
type Frame struct {
	Page         Rect
	Border       Rect
	Content      Rect
	Title        Rect
	Header       Rect
	Plot         Rect
	Observations Rect
	Footer       Rect
}

// Columns are the vertical strips of the table block, spanning header and
// plot.
type Columns struct {
	Strata Rect
	Scale  Rect
	Sample Rect
	Chart  Rect
}

// StrataColumns are the sub-columns of the stratigraphy panel.
type StrataColumns struct {
	Depth       Rect
	WaterTable  Rect
	Description Rect
}

// NewFrame lays out a page of the given size.
func NewFrame(width, height float64) Frame {
	f := Frame{
		Page:    Rect{W: width, H: height},
		Border:  Rect{X: borderMargin, Y: borderMargin, W: width - 2*borderMargin, H: height - 2*borderMargin},
		Content: Rect{X: contentMargin, Y: contentMargin, W: width - 2*contentMargin, H: height - 2*contentMargin},
	}
	c := f.Content

	f.Title = Rect{X: c.X, Y: c.Y, W: c.W, H: titleHeight}
	f.Header = Rect{X: c.X, Y: f.Title.Bottom() + bandGap, W: c.W, H: headerHeight}
	f.Footer = Rect{X: c.X, Y: c.Bottom() - footerHeight, W: c.W, H: footerHeight}
	f.Observations = Rect{X: c.X, Y: f.Footer.Y - bandGap - observationsHeight, W: c.W, H: observationsHeight}

	plotTop := f.Header.Bottom()
	f.Plot = Rect{X: c.X, Y: plotTop, W: c.W, H: f.Observations.Y - bandGap - plotTop}
	return f
}

// A4 returns the portrait A4 frame.
func A4() Frame {
	return NewFrame(A4Width, A4Height)
}

// Table is the rectangle enclosing header and plot.
func (f Frame) Table() Rect {
	return Rect{X: f.Header.X, Y: f.Header.Y, W: f.Header.W, H: f.Plot.Bottom() - f.Header.Y}
}

func (f Frame) Columns() Columns {
	cols := f.Table().SplitX(strataFraction, scaleFraction, sampleFraction, chartFraction)
	return Columns{Strata: cols[0], Scale: cols[1], Sample: cols[2], Chart: cols[3]}
}

func splitStrata(r Rect) StrataColumns {
	cols := r.SplitX(depthLabelFraction, waterTableFraction, descriptionFraction)
	return StrataColumns{Depth: cols[0], WaterTable: cols[1], Description: cols[2]}
}

// Draw renders the border, title and the table block's rules and headings.
func (f Frame) Draw(s Surface) {
	s.Rect(f.Border, borderPen)

	textCentered(s, f.Title.CenterX(), f.Title.Y+f.Title.H*0.7, "PERFIL GEOTÉCNICO", titleFont)

	table := f.Table()
	s.Rect(table, borderPen)
	cols := f.Columns()
	for _, c := range []Rect{cols.Scale, cols.Sample, cols.Chart} {
		s.Line(c.X, table.Y, c.X, table.Bottom(), thinPen)
	}
	s.Line(table.X, f.Plot.Y, table.Right(), f.Plot.Y, thinPen)

	h := f.Header
	row1 := h.Y + 4.5
	row2 := h.Y + 11
	split := h.Y + 7

	strata := splitStrata(cols.Strata)
	textCentered(s, cols.Strata.CenterX(), row1, "CAMADAS DETECTADAS", labelFont)
	s.Line(cols.Strata.X, split, cols.Strata.Right(), split, thinPen)
	for _, c := range []Rect{strata.WaterTable, strata.Description} {
		s.Line(c.X, split, c.X, table.Bottom(), thinPen)
	}
	textCentered(s, strata.Depth.CenterX(), row2, "PROF. (m)", labelFont)
	textCentered(s, strata.WaterTable.CenterX(), row2, "N.A.", labelFont)
	textCentered(s, strata.Description.CenterX(), row2, "CLASSIFICAÇÃO", labelFont)

	textCentered(s, cols.Scale.CenterX(), row1, "ESCALA", labelFont)
	textCentered(s, cols.Scale.CenterX(), row2, "PROF.", labelFont)
	textCentered(s, cols.Sample.CenterX(), row1, "AM.", labelFont)
	textCentered(s, cols.Sample.CenterX(), row2, "Nº", labelFont)

	chart := cols.Chart
	half := chart.SplitX(0.5, 0.5)
	textCentered(s, chart.CenterX(), row1, "GOLPES P/30cm", labelFont)
	s.Line(chart.X, split, chart.Right(), split, thinPen)
	initial, final := labelFont, labelFont
	initial.Color, final.Color = Red, Blue
	textCentered(s, half[0].CenterX(), row2, "(INICIAL)", initial)
	textCentered(s, half[1].CenterX(), row2, "(FINAL)", final)
}
