package spt

import (
	"encoding/json"
	"math"
	"testing"
	"time"
)

func TestNormalizeLayerContiguity(t *testing.T) {
	raw := RawPayload{
		SoilLayers: []RawLayer{
			{StartDepth: 0.0, EndDepth: 2.0, Description: "A"},
			{StartDepth: 2.0, EndDepth: 5.0, Description: "B"},
			{StartDepth: 99.0, EndDepth: 5.0, Description: ""},
		},
	}
	got := Normalize(raw)
	if len(got.Layers) != 3 {
		t.Fatalf("len(Layers) = %d, want 3", len(got.Layers))
	}
	want := []SoilLayer{
		{StartDepth: 0, EndDepth: 2, Description: "A"},
		{StartDepth: 2, EndDepth: 5, Description: "B"},
		{StartDepth: 5, EndDepth: 5, Description: ""},
	}
	for i := range want {
		if got.Layers[i] != want[i] {
			t.Errorf("Layers[%d] = %+v, want %+v", i, got.Layers[i], want[i])
		}
	}
}

func TestNormalizeSampleDepthFromLayers(t *testing.T) {
	raw := RawPayload{
		SoilLayers: []RawLayer{
			{StartDepth: 0.0, EndDepth: 1.5},
			{StartDepth: 1.5, EndDepth: 3.0},
		},
		SptData: []RawSample{
			{Depth: 9.0},
			{Depth: 9.0},
			{Depth: 4.2},
		},
	}
	got := Normalize(raw)
	want := []float64{1.5, 3.0, 4.2}
	for i, d := range want {
		if got.Samples[i].Depth != d {
			t.Errorf("Samples[%d].Depth = %v, want %v", i, got.Samples[i].Depth, d)
		}
	}

	raw.SptData[2].Depth = nil
	got = Normalize(raw)
	if got.Samples[0].Depth != 0 {
		t.Errorf("sample without depth sorted to %v, want 0 first", got.Samples[0].Depth)
	}
}

func TestNormalizeSampleIDDefault(t *testing.T) {
	raw := RawPayload{
		SptData: []RawSample{
			{Depth: 1.0},
			{Depth: 2.0, Amostra: "X"},
			{Depth: 3.0, Amostra: ""},
		},
	}
	got := Normalize(raw)
	want := []string{"1", "X", "3"}
	for i, id := range want {
		if got.Samples[i].ID != id {
			t.Errorf("Samples[%d].ID = %q, want %q", i, got.Samples[i].ID, id)
		}
	}
}

func TestNormalizeCoercion(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"number", 3.5, 3.5},
		{"numeric string", "2.25", 2.25},
		{"decimal comma", "2,5", 2.5},
		{"blank", "", 0},
		{"garbage", "abc", 0},
		{"missing", nil, 0},
		{"bool", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toFloat(tt.in); got != tt.want {
				t.Errorf("toFloat(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBlowCountRange(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"truncates", "12.9", 12},
		{"negative", -4.0, 0},
		{"negative string", "-1", 0},
		{"huge", "1e300", math.MaxInt32},
		{"just above int32", float64(math.MaxInt32) + 10, math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toInt(tt.in); got != tt.want {
				t.Errorf("toInt(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}

	p := Normalize(RawPayload{SptData: []RawSample{{GolpesInicial: "1e300", GolpesFinal: "-7"}}})
	if s := p.Samples[0]; s.BlowsInitial != math.MaxInt32 || s.BlowsFinal != 0 {
		t.Errorf("sample = %+v", s)
	}
}

func TestNormalizeFromJSON(t *testing.T) {
	body := `{
		"formData": {"laudo_numero": "42", "cota": 101.5},
		"soilLayers": [{"start_depth": "", "end_depth": "3", "description": "Clay"}],
		"sptData": [{"depth": "", "golpes_inicial": "4", "golpes_final": 8, "has_water_level": true}]
	}`
	var raw RawPayload
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	p := Normalize(raw)

	if p.Form.Get(FieldReportNumber) != "42" {
		t.Errorf("report number = %q", p.Form.Get(FieldReportNumber))
	}
	if p.Form.Get(FieldElevation) != "101.5" {
		t.Errorf("elevation = %q", p.Form.Get(FieldElevation))
	}
	s := p.Samples[0]
	if s.Depth != 3 || s.BlowsInitial != 4 || s.BlowsFinal != 8 || !s.WaterTable || s.ID != "1" {
		t.Errorf("sample = %+v", s)
	}
}

func TestNormalizeSortsByDepth(t *testing.T) {
	raw := RawPayload{
		SptData: []RawSample{
			{Depth: 3.0, Amostra: "c"},
			{Depth: 1.0, Amostra: "a"},
			{Depth: 2.0, Amostra: "b"},
		},
	}
	got := Normalize(raw)
	for i, id := range []string{"a", "b", "c"} {
		if got.Samples[i].ID != id {
			t.Errorf("Samples[%d].ID = %q, want %q", i, got.Samples[i].ID, id)
		}
	}
}

func TestFirstWaterTable(t *testing.T) {
	samples := []Sample{
		{Depth: 1, ID: "1"},
		{Depth: 2, ID: "2", WaterTable: true},
		{Depth: 3, ID: "3", WaterTable: true},
	}
	got, ok := FirstWaterTable(samples)
	if !ok || got.ID != "2" {
		t.Errorf("FirstWaterTable = %+v, %v; want sample 2", got, ok)
	}
	if _, ok := FirstWaterTable(samples[:1]); ok {
		t.Error("FirstWaterTable found a flag in unflagged samples")
	}
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	tests := []struct {
		name string
		form Metadata
		want string
	}{
		{"report number", Metadata{FieldReportNumber: "42"}, "Laudo_SPT_42.pdf"},
		{"numeric report number", Metadata{FieldReportNumber: 7.0}, "Laudo_SPT_7.pdf"},
		{"slashes", Metadata{FieldReportNumber: "12/2024"}, "Laudo_SPT_12-2024.pdf"},
		{"timestamp", Metadata{}, "Laudo_SPT_20240309140507.pdf"},
		{"blank", Metadata{FieldReportNumber: "  "}, "Laudo_SPT_20240309140507.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileName(tt.form, now); got != tt.want {
				t.Errorf("FileName() = %q, want %q", got, tt.want)
			}
		})
	}
}
