package spt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SoilLayer is one stratigraphic interval, depths in metres.
type SoilLayer struct {
	StartDepth  float64 `json:"start_depth"`
	EndDepth    float64 `json:"end_depth"`
	Description string  `json:"description"`
}

// Sample is one blow-count measurement. BlowsInitial and BlowsFinal are the
// counts for the first and second 15 cm increments.
type Sample struct {
	Depth        float64 `json:"depth"`
	ID           string  `json:"amostra"`
	BlowsInitial int     `json:"golpes_inicial"`
	BlowsFinal   int     `json:"golpes_final"`
	WaterTable   bool    `json:"has_water_level"`
}

// Metadata holds the free-form project fields posted by the form.
type Metadata map[string]any

// Get returns the field as display text. Absent fields render as "".
func (m Metadata) Get(key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// Payload is a normalized report request, ready for layout.
type Payload struct {
	Form    Metadata    `json:"formData"`
	Layers  []SoilLayer `json:"soilLayers"`
	Samples []Sample    `json:"sptData"`
}

// Form field keys used by the report.
const (
	FieldReportNumber = "laudo_numero"
	FieldProject      = "obra"
	FieldClient       = "cliente"
	FieldLocation     = "local"
	FieldAddress      = "endereco"
	FieldDate         = "data"
	FieldDriller      = "sondador"
	FieldDrafter      = "desenhista"
	FieldScale        = "escala"
	FieldElevation    = "cota"
	FieldRelNumber    = "rel_numero"
	FieldSPTNumber    = "spt_numero"
	FieldSheetNumber  = "folha_numero"
	FieldCompany      = "company_name"
	FieldEngineer     = "responsavel"
	FieldLicense      = "crea"
	FieldNotes        = "observacoes"
)

// FirstWaterTable returns the first sample flagged with the water table.
// Later flags are ignored.
func FirstWaterTable(samples []Sample) (Sample, bool) {
	for _, s := range samples {
		if s.WaterTable {
			return s, true
		}
	}
	return Sample{}, false
}

// ReportNumber returns the report number with path separators replaced,
// suitable for use in a file name.
func ReportNumber(form Metadata) string {
	n := form.Get(FieldReportNumber)
	return strings.NewReplacer("/", "-", "\\", "-").Replace(n)
}

// FileName derives the output name from the report number, falling back to
// the generation timestamp.
func FileName(form Metadata, now time.Time) string {
	id := ReportNumber(form)
	if id == "" {
		id = now.Format("20060102150405")
	}
	return "Laudo_SPT_" + id + ".pdf"
}
