package report

import (
	"math"

	"Sondagem/internal/report/layout"

	"github.com/phpdave11/gofpdf"
)

// pdfSurface draws layout primitives onto a gofpdf document. Every call sets
// the full pen or font state it needs, so no call depends on what the
// previous one left behind.
type pdfSurface struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func newSurface(pdf *gofpdf.Fpdf) *pdfSurface {
	return &pdfSurface{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (s *pdfSurface) pen(p layout.Pen) {
	s.pdf.SetDrawColor(p.Color.R, p.Color.G, p.Color.B)
	s.pdf.SetLineWidth(p.Width)
	if p.Dash != nil {
		s.pdf.SetDashPattern(p.Dash, 0)
	} else {
		s.pdf.SetDashPattern([]float64{}, 0)
	}
}

func (s *pdfSurface) font(f layout.Font) {
	s.pdf.SetFont(f.Family, f.Style, f.Size)
	s.pdf.SetTextColor(f.Color.R, f.Color.G, f.Color.B)
}

func (s *pdfSurface) Line(x1, y1, x2, y2 float64, pen layout.Pen) {
	s.pen(pen)
	s.pdf.Line(x1, y1, x2, y2)
}

func (s *pdfSurface) Rect(r layout.Rect, pen layout.Pen) {
	s.pen(pen)
	s.pdf.Rect(r.X, r.Y, r.W, r.H, "D")
}

func (s *pdfSurface) Circle(x, y, radius float64, fill layout.Color) {
	s.pen(layout.Pen{Color: fill, Width: 0.1})
	s.pdf.SetFillColor(fill.R, fill.G, fill.B)
	s.pdf.Circle(x, y, radius, "F")
}

func (s *pdfSurface) Text(x, y float64, text string, font layout.Font) {
	if text == "" {
		return
	}
	s.font(font)
	s.pdf.Text(x, y, s.tr(text))
}

func (s *pdfSurface) TextWidth(text string, font layout.Font) float64 {
	s.pdf.SetFont(font.Family, font.Style, font.Size)
	return s.pdf.GetStringWidth(s.tr(text))
}

// Image fits the picture inside r, keeping its aspect ratio, centred.
func (s *pdfSurface) Image(path string, r layout.Rect) error {
	opts := gofpdf.ImageOptions{ReadDpi: true}
	info := s.pdf.RegisterImageOptions(path, opts)
	if err := s.pdf.Error(); err != nil {
		return err
	}
	w, h := info.Width(), info.Height()
	if w <= 0 || h <= 0 {
		return nil
	}
	k := math.Min(r.W/w, r.H/h)
	w, h = w*k, h*k
	s.pdf.ImageOptions(path, r.X+(r.W-w)/2, r.Y+(r.H-h)/2, w, h, false, opts, 0, "")
	return s.pdf.Error()
}
