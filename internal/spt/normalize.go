package spt

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
)

// RawLayer is a soil layer as posted by the web form. Numeric fields may
// arrive as numbers, strings, blanks or be missing.
type RawLayer struct {
	StartDepth  any `json:"start_depth"`
	EndDepth    any `json:"end_depth"`
	Description any `json:"description"`
}

// RawSample is an SPT row as posted by the web form.
type RawSample struct {
	Depth         any `json:"depth"`
	Amostra       any `json:"amostra"`
	GolpesInicial any `json:"golpes_inicial"`
	GolpesFinal   any `json:"golpes_final"`
	HasWaterLevel any `json:"has_water_level"`
}

type RawPayload struct {
	FormData   Metadata    `json:"formData"`
	SoilLayers []RawLayer  `json:"soilLayers"`
	SptData    []RawSample `json:"sptData"`
}

// Normalize coerces a raw request into clean layout input. It never fails:
// anything that is not a number becomes zero.
func Normalize(raw RawPayload) Payload {
	out := Payload{
		Form:    raw.FormData,
		Layers:  make([]SoilLayer, 0, len(raw.SoilLayers)),
		Samples: make([]Sample, 0, len(raw.SptData)),
	}
	if out.Form == nil {
		out.Form = Metadata{}
	}

	for i, rl := range raw.SoilLayers {
		layer := SoilLayer{
			StartDepth:  toFloat(rl.StartDepth),
			EndDepth:    toFloat(rl.EndDepth),
			Description: toString(rl.Description),
		}
		if i > 0 {
			layer.StartDepth = out.Layers[i-1].EndDepth
		}
		out.Layers = append(out.Layers, layer)
	}

	for i, rs := range raw.SptData {
		s := Sample{
			Depth:        toFloat(rs.Depth),
			ID:           toString(rs.Amostra),
			BlowsInitial: toInt(rs.GolpesInicial),
			BlowsFinal:   toInt(rs.GolpesFinal),
			WaterTable:   toBool(rs.HasWaterLevel),
		}
		if i < len(out.Layers) {
			s.Depth = out.Layers[i].EndDepth
		}
		if s.ID == "" {
			s.ID = strconv.Itoa(i + 1)
		}
		out.Samples = append(out.Samples, s)
	}

	sort.SliceStable(out.Layers, func(i, j int) bool {
		return out.Layers[i].StartDepth < out.Layers[j].StartDepth
	})
	sort.SliceStable(out.Samples, func(i, j int) bool {
		return out.Samples[i].Depth < out.Samples[j].Depth
	})
	return out
}

func toFloat(v any) float64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int:
		f = float64(t)
	case json.Number:
		f, _ = t.Float64()
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(t), ",", ".")
		if s == "" {
			return 0
		}
		var err error
		if f, err = strconv.ParseFloat(s, 64); err != nil {
			return 0
		}
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// toInt truncates to a blow count in [0, MaxInt32].
func toInt(v any) int {
	f := toFloat(v)
	switch {
	case f <= 0:
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	}
	return int(f)
}

func toBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(t))
		return b
	case float64:
		return t != 0
	default:
		return false
	}
}

func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return Metadata{"v": t}.Get("v")
	}
}
