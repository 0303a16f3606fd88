package layout

import (
	"fmt"
	"math"

	"Sondagem/internal/spt"
)

// DepthReached is the deepest layer end. Caller-supplied "depth reached"
// text is not consulted.
func DepthReached(layers []spt.SoilLayer) float64 {
	deepest := 0.0
	for _, l := range layers {
		deepest = math.Max(deepest, l.EndDepth)
	}
	return deepest
}

// Observations returns the summary lines printed under the table.
func Observations(p spt.Payload) []string {
	lines := []string{
		"- Limite de sondagem ao S.P.T.",
		fmt.Sprintf("- Profundidade atingida: %.2fm", DepthReached(p.Layers)),
	}
	if w, ok := spt.FirstWaterTable(p.Samples); ok {
		lines = append(lines, fmt.Sprintf("- Água com %.2fm de profundidade", w.Depth))
	} else {
		lines = append(lines, "- Não foi encontrado nível d'água")
	}
	return lines
}

// ObservationsPanel is the boxed summary under the table.
type ObservationsPanel struct {
	Area Rect
}

func (p ObservationsPanel) Draw(s Surface, payload spt.Payload) {
	s.Rect(p.Area, thinPen)

	lh := lineHeight(bodyFont)
	x := p.Area.X + 3
	y := p.Area.Y + 4
	s.Text(x, y, "Observação:", labelFont)

	lines := Observations(payload)
	if notes := payload.Form.Get(spt.FieldNotes); notes != "" {
		measure := func(t string) float64 { return s.TextWidth(t, bodyFont) }
		lines = append(lines, Wrap(notes, p.Area.W-6, measure)...)
	}
	for _, line := range lines {
		y += lh
		if y > p.Area.Bottom()-1 {
			break
		}
		s.Text(x, y, line, bodyFont)
	}
}
