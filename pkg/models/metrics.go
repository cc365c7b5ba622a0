package models

import "math"

// TotalsPath is the sentinel path carried by the project-wide totals record.
const TotalsPath = "TOTALS"

// riskVolumeScale converts Halstead volume into the risk score.
// The score is an unvalidated statistical proxy for defect density
// (volume over a fixed calibration constant), not a measured bug count.
const riskVolumeScale = 3000.0

// stroudRate is Halstead's Stroud number: mental discriminations per
// second, used to convert effort into an implementation time estimate.
const stroudRate = 18.0

// FileMetrics holds Halstead software science metrics for a single file,
// or for the whole project when Path is TotalsPath.
//
// The four raw counts are mutually exclusive tallies produced by token
// classification; every other field is derived from them at construction
// time and never mutated afterwards.
type FileMetrics struct {
	Path string `json:"path"`

	DistinctOperators uint32 `json:"distinct_operators"` // n1
	DistinctOperands  uint32 `json:"distinct_operands"`  // n2
	TotalOperators    uint32 `json:"total_operators"`    // N1
	TotalOperands     uint32 `json:"total_operands"`     // N2

	Vocabulary      uint32  `json:"vocabulary"`       // n = n1 + n2
	Length          uint32  `json:"length"`           // N = N1 + N2
	EstimatedLength float64 `json:"estimated_length"` // n1*log2(n1) + n2*log2(n2)
	Volume          float64 `json:"volume"`           // V = N * log2(n)
	Difficulty      float64 `json:"difficulty"`       // D = (n1/2) * (N2/n2)
	Effort          float64 `json:"effort"`           // E = D * V
	Time            float64 `json:"time"`             // T = E / 18 (seconds)
	RiskScore       float64 `json:"risk_score"`       // V / 3000
}

// NewFileMetrics creates a metrics record from raw counts and calculates
// all derived values. Every formula guards its own degenerate input, so
// zero counts produce zero metrics rather than NaN or Inf.
func NewFileMetrics(path string, distinctOperators, distinctOperands, totalOperators, totalOperands uint32) FileMetrics {
	m := FileMetrics{
		Path:              path,
		DistinctOperators: distinctOperators,
		DistinctOperands:  distinctOperands,
		TotalOperators:    totalOperators,
		TotalOperands:     totalOperands,
	}
	m.calculateDerived()
	return m
}

// calculateDerived computes all derived Halstead metrics from raw counts.
func (m *FileMetrics) calculateDerived() {
	m.Vocabulary = m.DistinctOperators + m.DistinctOperands
	m.Length = m.TotalOperators + m.TotalOperands

	// N^ = n1*log2(n1) + n2*log2(n2), zero when either side is empty
	if m.DistinctOperators > 0 && m.DistinctOperands > 0 {
		m.EstimatedLength = float64(m.DistinctOperators)*log2(float64(m.DistinctOperators)) +
			float64(m.DistinctOperands)*log2(float64(m.DistinctOperands))
	}

	// V = N * log2(n)
	if m.Length > 0 && m.Vocabulary > 0 {
		m.Volume = float64(m.Length) * log2(float64(m.Vocabulary))
	}

	// D = (n1/2) * (N2/n2)
	if m.DistinctOperands > 0 && m.TotalOperands > 0 {
		m.Difficulty = (float64(m.DistinctOperators) / 2.0) *
			(float64(m.TotalOperands) / float64(m.DistinctOperands))
	}

	// E = D * V, T = E / 18 (seconds)
	m.Effort = m.Difficulty * m.Volume
	m.Time = m.Effort / stroudRate

	m.RiskScore = m.Volume / riskVolumeScale
}

// log2 computes log base 2, returning 0 for non-positive input.
func log2(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Log2(x)
}
