package layout

import (
	"math"

	"Sondagem/internal/spt"
)

const (
	// DefaultMaxDepth is used when there is nothing to measure.
	DefaultMaxDepth = 15.0
	// MaxBlows is the right edge of the blow-count axis.
	MaxBlows = 50
	// BlowStep is the spacing of the chart's vertical gridlines.
	BlowStep = 5
)

// Scale maps depth to y and blow counts to x. It is resolved once per
// document and shared by every panel.
type Scale struct {
	MaxDepth float64

	// Vertical span of the plot area; depth 0 sits at Top.
	Top, Height float64

	// Horizontal span of the chart column; zero blows sits at Left.
	Left, Width float64
}

// ResolveScale computes the document scale from every layer end depth and
// every sample depth. plot is the depth-plotting area, chart the blow-count
// column.
func ResolveScale(layers []spt.SoilLayer, samples []spt.Sample, plot, chart Rect) Scale {
	return Scale{
		MaxDepth: MaxDepth(layers, samples),
		Top:      plot.Y,
		Height:   plot.H,
		Left:     chart.X,
		Width:    chart.W,
	}
}

// MaxDepth returns the deepest layer end or sample depth, or DefaultMaxDepth
// when there is none.
func MaxDepth(layers []spt.SoilLayer, samples []spt.Sample) float64 {
	deepest := 0.0
	for _, l := range layers {
		deepest = math.Max(deepest, l.EndDepth)
	}
	for _, s := range samples {
		deepest = math.Max(deepest, s.Depth)
	}
	if deepest <= 0 {
		return DefaultMaxDepth
	}
	return deepest
}

// Factor is millimetres per metre of depth.
func (s Scale) Factor() float64 {
	return s.Height / s.MaxDepth
}

// Y returns the page y of a depth in metres.
func (s Scale) Y(depth float64) float64 {
	return s.Top + depth*s.Factor()
}

// X returns the page x of a blow count. Counts above MaxBlows land past the
// last gridline; they are not clamped.
func (s Scale) X(blows float64) float64 {
	return s.Left + blows*(s.Width/MaxBlows)
}

// Bottom is the y of the plot area's lower edge.
func (s Scale) Bottom() float64 {
	return s.Top + s.Height
}

// DepthTicks returns every whole metre from 0 to ceil(MaxDepth).
func (s Scale) DepthTicks() []int {
	n := int(math.Ceil(s.MaxDepth))
	ticks := make([]int, 0, n+1)
	for d := 0; d <= n; d++ {
		ticks = append(ticks, d)
	}
	return ticks
}

// Visible reports whether a depth falls inside the plot area.
func (s Scale) Visible(depth float64) bool {
	return depth >= 0 && depth <= s.MaxDepth+1e-9
}

// BlowTicks returns the gridline positions 0, 5, ..., 50.
func BlowTicks() []int {
	ticks := make([]int, 0, MaxBlows/BlowStep+1)
	for b := 0; b <= MaxBlows; b += BlowStep {
		ticks = append(ticks, b)
	}
	return ticks
}
