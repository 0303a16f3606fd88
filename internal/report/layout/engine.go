package layout

import (
	"time"

	"Sondagem/internal/spt"
)

// Engine draws a complete report page.
type Engine struct {
	Frame    Frame
	LogoPath string
	Now      time.Time
}

func NewEngine(logoPath string, now time.Time) *Engine {
	return &Engine{Frame: A4(), LogoPath: logoPath, Now: now}
}

// Render draws the page in a fixed order and returns the scale every panel
// was drawn with. It stops at the first error.
func (e *Engine) Render(s Surface, p spt.Payload) (Scale, error) {
	cols := e.Frame.Columns()
	scale := ResolveScale(p.Layers, p.Samples, e.Frame.Plot, cols.Chart)

	e.Frame.Draw(s)
	StrataPanel{Area: cols.Strata.Rows(e.Frame.Plot)}.Draw(s, scale, p.Layers, p.Samples)
	DepthScalePanel{
		Scale:  cols.Scale.Rows(e.Frame.Plot),
		Sample: cols.Sample.Rows(e.Frame.Plot),
	}.Draw(s, scale, p.Samples)
	ChartPanel{Area: cols.Chart.Rows(e.Frame.Plot)}.Draw(s, scale, p.Samples)
	ObservationsPanel{Area: e.Frame.Observations}.Draw(s, p)

	footer := FooterPanel{Area: e.Frame.Footer, LogoPath: e.LogoPath, Now: e.Now}
	if err := footer.Draw(s, p.Form); err != nil {
		return scale, err
	}
	return scale, nil
}
