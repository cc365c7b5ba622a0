package models

import (
	"math"
	"testing"
)

func TestNewFileMetrics(t *testing.T) {
	tests := []struct {
		name    string
		n1      uint32 // distinct operators
		n2      uint32 // distinct operands
		N1      uint32 // total operators
		N2      uint32 // total operands
		wantVoc uint32
		wantLen uint32
		zeroed  bool // every derived float must be exactly 0
	}{
		{
			name: "basic metrics",
			n1:   5, n2: 10, N1: 20, N2: 40,
			wantVoc: 15, wantLen: 60,
		},
		{
			name: "zero operators",
			n1:   0, n2: 10, N1: 0, N2: 20,
			wantVoc: 10, wantLen: 20,
		},
		{
			name: "all zeros",
			n1:   0, n2: 0, N1: 0, N2: 0,
			wantVoc: 0, wantLen: 0,
			zeroed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewFileMetrics("a.swift", tt.n1, tt.n2, tt.N1, tt.N2)

			if m.Path != "a.swift" {
				t.Errorf("Path = %q, want %q", m.Path, "a.swift")
			}
			if m.Vocabulary != tt.wantVoc {
				t.Errorf("Vocabulary = %d, want %d", m.Vocabulary, tt.wantVoc)
			}
			if m.Length != tt.wantLen {
				t.Errorf("Length = %d, want %d", m.Length, tt.wantLen)
			}
			if tt.zeroed {
				for name, v := range map[string]float64{
					"EstimatedLength": m.EstimatedLength,
					"Volume":          m.Volume,
					"Difficulty":      m.Difficulty,
					"Effort":          m.Effort,
					"Time":            m.Time,
					"RiskScore":       m.RiskScore,
				} {
					if v != 0 {
						t.Errorf("%s = %f, want 0", name, v)
					}
				}
			}
		})
	}
}

func TestFileMetrics_Formulas(t *testing.T) {
	n1, n2, N1, N2 := uint32(4), uint32(8), uint32(16), uint32(32)
	m := NewFileMetrics("a.swift", n1, n2, N1, N2)

	// n = 12, N = 48
	wantVol := 48 * math.Log2(12)
	if diff := math.Abs(m.Volume - wantVol); diff > 0.001 {
		t.Errorf("Volume = %f, want %f", m.Volume, wantVol)
	}

	// N^ = 4*log2(4) + 8*log2(8) = 8 + 24 = 32
	if diff := math.Abs(m.EstimatedLength - 32); diff > 0.001 {
		t.Errorf("EstimatedLength = %f, want 32", m.EstimatedLength)
	}

	// D = (4/2) * (32/8) = 8
	if diff := math.Abs(m.Difficulty - 8); diff > 0.001 {
		t.Errorf("Difficulty = %f, want 8", m.Difficulty)
	}

	wantEffort := 8 * wantVol
	if diff := math.Abs(m.Effort - wantEffort); diff > 0.001 {
		t.Errorf("Effort = %f, want %f", m.Effort, wantEffort)
	}

	wantTime := wantEffort / 18.0
	if diff := math.Abs(m.Time - wantTime); diff > 0.001 {
		t.Errorf("Time = %f, want %f", m.Time, wantTime)
	}

	wantRisk := wantVol / 3000.0
	if diff := math.Abs(m.RiskScore - wantRisk); diff > 0.001 {
		t.Errorf("RiskScore = %f, want %f", m.RiskScore, wantRisk)
	}
}

func TestFileMetrics_DegenerateInputs(t *testing.T) {
	// No combination of zero counts may produce NaN or Inf.
	cases := []struct {
		name           string
		n1, n2, N1, N2 uint32
	}{
		{"all zeros", 0, 0, 0, 0},
		{"only operators", 5, 0, 10, 0},
		{"only operands", 0, 5, 0, 10},
		{"distinct without totals", 5, 5, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewFileMetrics("z.swift", tc.n1, tc.n2, tc.N1, tc.N2)
			for name, v := range map[string]float64{
				"EstimatedLength": m.EstimatedLength,
				"Volume":          m.Volume,
				"Difficulty":      m.Difficulty,
				"Effort":          m.Effort,
				"Time":            m.Time,
				"RiskScore":       m.RiskScore,
			} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Errorf("%s = %f, want finite", name, v)
				}
			}
		})
	}
}

func TestLog2(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{1, 0},
		{2, 1},
		{8, 3},
		{0, 0},
		{-1, 0},
	}

	for _, tt := range tests {
		if got := log2(tt.input); math.Abs(got-tt.want) > 0.001 {
			t.Errorf("log2(%f) = %f, want %f", tt.input, got, tt.want)
		}
	}
}
