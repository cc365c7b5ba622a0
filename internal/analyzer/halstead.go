package analyzer

import (
	"github.com/augur-dev/augur/pkg/lexer"
	"github.com/augur-dev/augur/pkg/models"
)

// FileResult couples one file's metrics record with the distinct symbol
// sets observed in it. The sets exist only to support union-based
// aggregation and are discarded once totals are computed.
type FileResult struct {
	Metrics   models.FileMetrics
	Operators map[string]struct{}
	Operands  map[string]struct{}
}

// AnalyzeTokens computes raw Halstead counts for one file's token stream.
// Tokens are consumed in source order, but accumulation is commutative,
// so ordering carries no significance beyond it.
func AnalyzeTokens(path string, tokens []lexer.Token) FileResult {
	operators := make(map[string]struct{})
	operands := make(map[string]struct{})
	var totalOperators, totalOperands uint32

	for _, tok := range tokens {
		switch Classify(tok.Text, tok.Kind) {
		case CategoryOperator:
			totalOperators++
			operators[tok.Text] = struct{}{}
		case CategoryOperand:
			totalOperands++
			operands[tok.Text] = struct{}{}
		case CategoryIgnored:
		}
	}

	return FileResult{
		Metrics: models.NewFileMetrics(path,
			uint32(len(operators)), uint32(len(operands)),
			totalOperators, totalOperands),
		Operators: operators,
		Operands:  operands,
	}
}

// Aggregate folds per-file results into the project totals record:
// distinct counts come from the union of the symbol sets, total counts
// from plain sums. Union and sum are commutative and associative, so any
// permutation or partial merge order of the inputs yields identical
// totals. Empty input produces an all-zero record, not an error.
func Aggregate(results []FileResult) models.FileMetrics {
	unionOperators := make(map[string]struct{})
	unionOperands := make(map[string]struct{})
	var totalOperators, totalOperands uint32

	for _, r := range results {
		for op := range r.Operators {
			unionOperators[op] = struct{}{}
		}
		for op := range r.Operands {
			unionOperands[op] = struct{}{}
		}
		totalOperators += r.Metrics.TotalOperators
		totalOperands += r.Metrics.TotalOperands
	}

	return models.NewFileMetrics(models.TotalsPath,
		uint32(len(unionOperators)), uint32(len(unionOperands)),
		totalOperators, totalOperands)
}
