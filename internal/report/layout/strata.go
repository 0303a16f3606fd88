package layout

import (
	"fmt"
	"math"

	"Sondagem/internal/spt"
)

var waterPen = Pen{Color: Blue, Width: 0.3, Dash: []float64{1, 1}}

// StrataPanel is the soil layer table: depth label, water table marker and
// wrapped classification text per layer.
type StrataPanel struct {
	Area Rect
}

// Draw places each layer at its start depth. Labels are not centred in the
// layer's span. Text never runs past the next layer's rule or the bottom of
// the plot; description lines that do not fit are dropped.
func (p StrataPanel) Draw(s Surface, scale Scale, layers []spt.SoilLayer, samples []spt.Sample) {
	cols := splitStrata(p.Area)
	lh := lineHeight(bodyFont)
	textWidth := cols.Description.W * 0.9
	measure := func(t string) float64 { return s.TextWidth(t, bodyFont) }

	for i, layer := range layers {
		y := scale.Y(layer.StartDepth)
		if i > 0 {
			s.Line(p.Area.X, y, p.Area.Right(), y, thinPen)
		}
		first := labelBaseline(scale, y, lh)
		s.Text(cols.Depth.X+1.5, first, fmt.Sprintf("%.2f", layer.StartDepth), bodyFont)

		limit := scale.Bottom()
		if i+1 < len(layers) {
			next := scale.Y(layers[i+1].StartDepth)
			if nb := labelBaseline(scale, next, lh); nb < next {
				// the next label sits above its rule; stop a line earlier
				next = nb - lh
			}
			limit = math.Min(limit, next)
		}
		if first < y {
			limit = math.Min(limit, first)
		}

		for j, line := range Wrap(layer.Description, textWidth, measure) {
			baseline := first + lh*float64(j)
			if baseline > limit+1e-9 {
				break
			}
			s.Text(cols.Description.X+2, baseline, line, bodyFont)
		}
	}
	if n := len(layers); n > 0 {
		end := layers[n-1].EndDepth
		y := scale.Y(end)
		if y < scale.Bottom()-0.01 {
			s.Line(p.Area.X, y, p.Area.Right(), y, thinPen)
		}
	}

	if w, ok := spt.FirstWaterTable(samples); ok {
		p.drawWaterTable(s, scale, cols, w.Depth)
	}
}

// drawWaterTable rules the water level across the panel and sets "N.A." over
// the depth in the narrow water column, above the rule unless that would
// leave the plot.
func (p StrataPanel) drawWaterTable(s Surface, scale Scale, cols StrataColumns, depth float64) {
	y := scale.Y(depth)
	s.Line(p.Area.X, y, p.Area.Right(), y, waterPen)

	font := smallFont
	font.Color = Blue
	small := font
	small.Size = 5

	var value string
	var valueFont Font
	room := cols.WaterTable.W - 0.5
	for _, c := range []struct {
		text string
		font Font
	}{
		{fmt.Sprintf("%.2f m", depth), font},
		{fmt.Sprintf("%.2f m", depth), small},
		{fmt.Sprintf("%.2f", depth), font},
		{fmt.Sprintf("%.2f", depth), small},
	} {
		value, valueFont = c.text, c.font
		if s.TextWidth(c.text, c.font) <= room {
			break
		}
	}

	lh := lineHeight(font)
	top := y - 0.8 - lh
	if top-lh < scale.Top {
		top = y + lh
	}
	cx := cols.WaterTable.CenterX()
	textCentered(s, cx, top, "N.A.", font)
	textCentered(s, cx, top+lh, value, valueFont)
}
