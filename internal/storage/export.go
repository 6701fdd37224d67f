package storage

import (
	"encoding/json"
	"io"
	"math"

	"github.com/san-kum/lyapfrac/internal/analysis"
)

// ExportData is the JSON form of a probe run.
type ExportData struct {
	Run     RunMetadata `json:"run"`
	Params  []float64   `json:"params"`
	Lambdas []*float64  `json:"lambdas"` // null where λ is not finite
}

// ExportJSON writes meta and points as indented JSON.
func ExportJSON(w io.Writer, meta RunMetadata, points []analysis.Point) error {
	meta.Metrics = finiteMetrics(meta.Metrics)
	data := ExportData{
		Run:     meta,
		Params:  make([]float64, len(points)),
		Lambdas: make([]*float64, len(points)),
	}
	for i, p := range points {
		data.Params[i] = p.Param
		if !math.IsNaN(p.Lambda) && !math.IsInf(p.Lambda, 0) {
			l := p.Lambda
			data.Lambdas[i] = &l
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// encoding/json rejects NaN and ±Inf.
func finiteMetrics(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out[k] = v
	}
	return out
}
