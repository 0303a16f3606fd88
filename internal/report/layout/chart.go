package layout

import (
	"strconv"

	"Sondagem/internal/spt"
)

const markerRadius = 1.0

// Series is one blow-count series of the chart.
type Series struct {
	Name   string
	Color  Color
	Blows  func(spt.Sample) int
	Points []Point
}

type Point struct {
	X, Y  float64
	Blows int
}

// ChartPanel plots initial and final blow counts against depth.
type ChartPanel struct {
	Area Rect
}

// ChartSeries projects samples onto the scale. Samples are expected in
// depth order; points keep that order.
func ChartSeries(scale Scale, samples []spt.Sample) []Series {
	series := []Series{
		{Name: "inicial", Color: Red, Blows: func(s spt.Sample) int { return s.BlowsInitial }},
		{Name: "final", Color: Blue, Blows: func(s spt.Sample) int { return s.BlowsFinal }},
	}
	for i := range series {
		pts := make([]Point, 0, len(samples))
		for _, sample := range samples {
			b := series[i].Blows(sample)
			pts = append(pts, Point{X: scale.X(float64(b)), Y: scale.Y(sample.Depth), Blows: b})
		}
		series[i].Points = pts
	}
	return series
}

func (p ChartPanel) Draw(s Surface, scale Scale, samples []spt.Sample) {
	p.drawGrid(s, scale)

	series := ChartSeries(scale, samples)
	for _, ser := range series {
		pen := Pen{Color: ser.Color, Width: 0.5}
		for i := 1; i < len(ser.Points); i++ {
			a, b := ser.Points[i-1], ser.Points[i]
			s.Line(a.X, a.Y, b.X, b.Y, pen)
		}
	}
	for _, ser := range series {
		font := smallFont
		font.Color = ser.Color
		for _, pt := range ser.Points {
			s.Circle(pt.X, pt.Y, markerRadius, ser.Color)
			s.Text(pt.X+markerRadius+0.6, pt.Y-0.6, strconv.Itoa(pt.Blows), font)
		}
	}
}

func (p ChartPanel) drawGrid(s Surface, scale Scale) {
	for _, b := range BlowTicks() {
		x := scale.X(float64(b))
		s.Line(x, scale.Top, x, scale.Bottom(), gridPen)
		textCentered(s, x, scale.Top-1.5, strconv.Itoa(b), smallFont)
	}
	for _, d := range scale.DepthTicks() {
		depth := float64(d)
		if !scale.Visible(depth) {
			continue
		}
		y := scale.Y(depth)
		s.Line(p.Area.X, y, p.Area.Right(), y, gridPen)
	}
}
