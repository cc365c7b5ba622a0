// Package threshold parses and evaluates metric threshold expressions
// like "volume>=800" against computed Halstead metrics.
package threshold

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/augur-dev/augur/pkg/models"
)

// Comparator is a threshold comparison operator.
type Comparator string

const (
	CompGE Comparator = ">="
	CompLE Comparator = "<="
	CompGT Comparator = ">"
	CompLT Comparator = "<"
	CompEQ Comparator = "=="
)

// comparators in parse precedence order: multi-character comparators
// must be tried before their single-character prefixes, or "volume>=800"
// would parse as ">" against the garbled value "=800".
var comparators = []Comparator{CompGE, CompLE, CompGT, CompLT, CompEQ}

// equalityTolerance is the absolute tolerance applied by the == comparator
// to accommodate floating point round-off.
const equalityTolerance = 0.01

// Threshold is one parsed pass/fail constraint. Immutable after parsing.
type Threshold struct {
	Metric     string     `json:"metric"` // canonical metric name
	Comparator Comparator `json:"comparator"`
	Value      float64    `json:"value"`
}

func (t Threshold) String() string {
	return fmt.Sprintf("%s%s%g", t.Metric, t.Comparator, t.Value)
}

// ParseError reports a threshold expression that does not match
// <metric><comparator><number>. Fatal for the run: thresholds gate the
// exit status and cannot be silently dropped.
type ParseError struct {
	Expr   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid threshold expression %q: %s", e.Expr, e.Reason)
}

// UnknownMetricError reports a threshold referencing a metric outside the
// recognized set. Rejected outright rather than defaulting to 0.0, since
// a silent default would produce violations against a meaningless value.
type UnknownMetricError struct {
	Name string
}

func (e *UnknownMetricError) Error() string {
	return fmt.Sprintf("unknown metric name %q", e.Name)
}

// metricNames maps lowercased user input to canonical metric names,
// including the n -> vocabulary and timeSeconds -> time aliases.
var metricNames = map[string]string{
	"n1":              "n1",
	"n2":              "n2",
	"n":               "vocabulary",
	"vocabulary":      "vocabulary",
	"length":          "length",
	"estimatedlength": "estimatedLength",
	"volume":          "volume",
	"difficulty":      "difficulty",
	"effort":          "effort",
	"time":            "time",
	"timeseconds":     "time",
	"riskscore":       "riskScore",
}

// Parse parses one threshold expression.
func Parse(expr string) (Threshold, error) {
	for _, comp := range comparators {
		idx := strings.Index(expr, string(comp))
		if idx < 0 {
			continue
		}

		name := strings.TrimSpace(expr[:idx])
		rawValue := strings.TrimSpace(expr[idx+len(comp):])

		if name == "" {
			return Threshold{}, &ParseError{Expr: expr, Reason: "missing metric name"}
		}
		value, err := strconv.ParseFloat(rawValue, 64)
		if err != nil {
			return Threshold{}, &ParseError{Expr: expr, Reason: fmt.Sprintf("invalid numeric value %q", rawValue)}
		}

		canonical, ok := metricNames[strings.ToLower(name)]
		if !ok {
			return Threshold{}, &UnknownMetricError{Name: name}
		}

		return Threshold{Metric: canonical, Comparator: comp, Value: value}, nil
	}

	return Threshold{}, &ParseError{Expr: expr, Reason: "no comparator found (expected >=, <=, >, <, or ==)"}
}

// ParseAll parses a list of expressions, failing on the first bad one.
func ParseAll(exprs []string) ([]Threshold, error) {
	thresholds := make([]Threshold, 0, len(exprs))
	for _, expr := range exprs {
		t, err := Parse(expr)
		if err != nil {
			return nil, err
		}
		thresholds = append(thresholds, t)
	}
	return thresholds, nil
}

// Violation records one failed comparison.
type Violation struct {
	Path       string     `json:"path"`
	Metric     string     `json:"metric"`
	Actual     float64    `json:"actual"`
	Comparator Comparator `json:"comparator"`
	Threshold  float64    `json:"threshold"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s is %.2f, want %s%g", v.Path, v.Metric, v.Actual, v.Comparator, v.Threshold)
}

// metricValue extracts the canonical metric from a record.
func metricValue(m models.FileMetrics, metric string) float64 {
	switch metric {
	case "n1":
		return float64(m.DistinctOperators)
	case "n2":
		return float64(m.DistinctOperands)
	case "vocabulary":
		return float64(m.Vocabulary)
	case "length":
		return float64(m.Length)
	case "estimatedLength":
		return m.EstimatedLength
	case "volume":
		return m.Volume
	case "difficulty":
		return m.Difficulty
	case "effort":
		return m.Effort
	case "time":
		return m.Time
	case "riskScore":
		return m.RiskScore
	default:
		return 0
	}
}

// holds reports whether the actual value satisfies the threshold.
func (t Threshold) holds(actual float64) bool {
	switch t.Comparator {
	case CompGE:
		return actual >= t.Value
	case CompLE:
		return actual <= t.Value
	case CompGT:
		return actual > t.Value
	case CompLT:
		return actual < t.Value
	case CompEQ:
		return math.Abs(actual-t.Value) <= equalityTolerance
	default:
		return false
	}
}

// Evaluate checks every threshold against every per-file record and the
// totals record. It never fails fast: all violations are accumulated and
// returned together, and an empty result means the run is clean.
func Evaluate(files []models.FileMetrics, totals models.FileMetrics, thresholds []Threshold) []Violation {
	var violations []Violation

	records := make([]models.FileMetrics, 0, len(files)+1)
	records = append(records, files...)
	records = append(records, totals)

	for _, record := range records {
		for _, t := range thresholds {
			actual := metricValue(record, t.Metric)
			if t.holds(actual) {
				continue
			}
			violations = append(violations, Violation{
				Path:       record.Path,
				Metric:     t.Metric,
				Actual:     actual,
				Comparator: t.Comparator,
				Threshold:  t.Value,
			})
		}
	}

	return violations
}
