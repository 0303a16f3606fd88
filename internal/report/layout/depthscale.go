package layout

import (
	"fmt"

	"Sondagem/internal/spt"
)

// DepthScalePanel is the ruled depth axis plus the sample number column.
type DepthScalePanel struct {
	Scale  Rect
	Sample Rect
}

func (p DepthScalePanel) Draw(s Surface, scale Scale, samples []spt.Sample) {
	lh := lineHeight(bodyFont)
	for _, d := range scale.DepthTicks() {
		depth := float64(d)
		if !scale.Visible(depth) {
			continue
		}
		y := scale.Y(depth)
		s.Line(p.Scale.X, y, p.Scale.Right(), y, thinPen)
		textCentered(s, p.Scale.CenterX(), labelBaseline(scale, y, lh), fmt.Sprintf("%.1f", depth), bodyFont)
	}

	for _, sample := range samples {
		y := scale.Y(sample.Depth)
		s.Line(p.Sample.X, y, p.Sample.Right(), y, thinPen)
		textCentered(s, p.Sample.CenterX(), labelBaseline(scale, y, lh), sample.ID, smallFont)
	}
}

// labelBaseline puts a label just below the rule at y, or just above it
// when below would leave the plot area.
func labelBaseline(scale Scale, y, lh float64) float64 {
	if y+lh > scale.Bottom() {
		return y - 0.8
	}
	return y + lh
}
