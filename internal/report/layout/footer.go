package layout

import (
	"fmt"
	"os"
	"time"

	"Sondagem/internal/spt"
)

const (
	footerCols = 3
	footerRows = 5
)

// FooterCell is one labelled field of the signature block.
type FooterCell struct {
	Label string
	Value string
}

// FooterPanel is the 3x5 company/responsibility grid. The first cell holds
// the logo when one is available and the company name otherwise.
type FooterPanel struct {
	Area     Rect
	LogoPath string
	Now      time.Time
}

// Cells returns the grid contents row by row.
func (p FooterPanel) Cells(form spt.Metadata) [footerRows][footerCols]FooterCell {
	date := form.Get(spt.FieldDate)
	if date == "" {
		date = p.Now.Format("02/01/2006")
	}
	f := func(label, key string) FooterCell {
		return FooterCell{Label: label, Value: form.Get(key)}
	}
	return [footerRows][footerCols]FooterCell{
		{f("", spt.FieldCompany), f("LAUDO Nº", spt.FieldReportNumber), f("SPT Nº", spt.FieldSPTNumber)},
		{f("RESPONSÁVEL", spt.FieldEngineer), f("OBRA", spt.FieldProject), f("REL. Nº", spt.FieldRelNumber)},
		{f("CREA", spt.FieldLicense), f("CLIENTE", spt.FieldClient), f("FL. Nº", spt.FieldSheetNumber)},
		{f("ENDEREÇO", spt.FieldAddress), f("LOCAL", spt.FieldLocation), f("COTA", spt.FieldElevation)},
		{f("DES.", spt.FieldDrafter), f("SOND.", spt.FieldDriller), {Label: "DATA", Value: date}},
	}
}

// Draw renders the grid. A missing logo file is not an error; a logo that
// exists but cannot be embedded is.
func (p FooterPanel) Draw(s Surface, form spt.Metadata) error {
	s.Rect(p.Area, thinPen)
	rows := p.Area.SplitY(footerRows)
	cells := p.Cells(form)

	for r, row := range rows {
		if r > 0 {
			s.Line(row.X, row.Y, row.Right(), row.Y, thinPen)
		}
		cols := row.SplitX(0.34, 0.33, 0.33)
		for c, cell := range cols {
			if c > 0 && r == 0 {
				s.Line(cell.X, p.Area.Y, cell.X, p.Area.Bottom(), thinPen)
			}
			if r == 0 && c == 0 {
				if err := p.drawLogo(s, cell, cells[r][c].Value); err != nil {
					return err
				}
				continue
			}
			drawFooterCell(s, cell, cells[r][c])
		}
	}
	return nil
}

func (p FooterPanel) drawLogo(s Surface, cell Rect, company string) error {
	if p.LogoPath != "" {
		if _, err := os.Stat(p.LogoPath); err == nil {
			if err := s.Image(p.LogoPath, cell.Inset(0.6)); err != nil {
				return fmt.Errorf("logo %s: %w", p.LogoPath, err)
			}
			return nil
		}
	}
	font := labelFont
	font.Size = 8
	s.Text(cell.X+1.5, cell.Y+cell.H*0.7, company, font)
	return nil
}

func drawFooterCell(s Surface, cell Rect, fc FooterCell) {
	label := smallFont
	label.Style = "B"
	s.Text(cell.X+1.5, cell.Y+cell.H*0.7, fc.Label+":", label)
	x := cell.X + 1.5 + s.TextWidth(fc.Label+": ", label)
	s.Text(x, cell.Y+cell.H*0.7, fc.Value, smallFont)
}
