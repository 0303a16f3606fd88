// Package importer reads boring logs kept as spreadsheets into the same raw
// payload the web form posts.
//
// The workbook has up to three sheets, each with a header row:
//
//	Camadas  start depth | end depth | description
//	SPT      depth | sample id | blows (initial) | blows (final) | N.A.
//	Dados    field | value
//
// Cells are passed through as text; spt.Normalize does the coercion.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"Sondagem/internal/spt"

	"github.com/xuri/excelize/v2"
)

const (
	SheetLayers   = "Camadas"
	SheetSamples  = "SPT"
	SheetMetadata = "Dados"
)

var ErrNoData = errors.New("workbook has neither a Camadas nor an SPT sheet")

// ParseWorkbook reads an XLSX workbook from r.
func ParseWorkbook(r io.Reader) (spt.RawPayload, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return spt.RawPayload{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	layers, okLayers, err := rows(f, SheetLayers)
	if err != nil {
		return spt.RawPayload{}, err
	}
	samples, okSamples, err := rows(f, SheetSamples)
	if err != nil {
		return spt.RawPayload{}, err
	}
	if !okLayers && !okSamples {
		return spt.RawPayload{}, ErrNoData
	}
	meta, _, err := rows(f, SheetMetadata)
	if err != nil {
		return spt.RawPayload{}, err
	}

	out := spt.RawPayload{FormData: spt.Metadata{}}
	for _, row := range meta {
		if len(row) < 2 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		out.FormData[strings.TrimSpace(row[0])] = row[1]
	}
	for _, row := range layers {
		if len(row) < 2 {
			continue
		}
		out.SoilLayers = append(out.SoilLayers, spt.RawLayer{
			StartDepth:  row[0],
			EndDepth:    row[1],
			Description: cell(row, 2),
		})
	}
	for _, row := range samples {
		if len(row) < 3 {
			continue
		}
		out.SptData = append(out.SptData, spt.RawSample{
			Depth:         row[0],
			Amostra:       row[1],
			GolpesInicial: row[2],
			GolpesFinal:   cell(row, 3),
			HasWaterLevel: flag(cell(row, 4)),
		})
	}
	return out, nil
}

// rows returns the data rows of sheet, without its header. ok is false when
// the sheet does not exist.
func rows(f *excelize.File, sheet string) (data [][]string, ok bool, err error) {
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		return nil, false, nil
	}
	all, err := f.GetRows(sheet)
	if err != nil {
		return nil, true, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(all) < 2 {
		return nil, true, nil
	}
	return all[1:], true, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func flag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x", "s", "sim", "true", "1", "n.a.", "na":
		return true
	}
	return false
}
