package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/augur-dev/augur/pkg/lexer"
	"github.com/augur-dev/augur/pkg/models"
)

func TestAnalyzeTokens(t *testing.T) {
	// let x = 1
	tokens := []lexer.Token{
		{Text: "let", Kind: lexer.KindKeyword},
		{Text: "x", Kind: lexer.KindIdentifier},
		{Text: "=", Kind: lexer.KindSymbol},
		{Text: "1", Kind: lexer.KindIntegerLiteral},
	}

	result := AnalyzeTokens("a.swift", tokens)

	assert.Equal(t, uint32(2), result.Metrics.DistinctOperators, "let and =")
	assert.Equal(t, uint32(2), result.Metrics.DistinctOperands, "x and 1")
	assert.Equal(t, uint32(2), result.Metrics.TotalOperators)
	assert.Equal(t, uint32(2), result.Metrics.TotalOperands)
	assert.Equal(t, "a.swift", result.Metrics.Path)
}

func TestAnalyzeTokens_DuplicatesCountOnceDistinctly(t *testing.T) {
	// x + x + x: total counts grow, distinct counts do not.
	tokens := []lexer.Token{
		{Text: "x", Kind: lexer.KindIdentifier},
		{Text: "+", Kind: lexer.KindSymbol},
		{Text: "x", Kind: lexer.KindIdentifier},
		{Text: "+", Kind: lexer.KindSymbol},
		{Text: "x", Kind: lexer.KindIdentifier},
	}

	result := AnalyzeTokens("b.swift", tokens)

	assert.Equal(t, uint32(1), result.Metrics.DistinctOperators)
	assert.Equal(t, uint32(1), result.Metrics.DistinctOperands)
	assert.Equal(t, uint32(2), result.Metrics.TotalOperators)
	assert.Equal(t, uint32(3), result.Metrics.TotalOperands)
}

func TestAnalyzeTokens_IgnoredTokensContributeNothing(t *testing.T) {
	tokens := []lexer.Token{
		{Text: "// comment", Kind: lexer.KindComment},
		{Text: "{", Kind: lexer.KindDelimiter},
		{Text: "}", Kind: lexer.KindDelimiter},
		{Text: "@objc", Kind: lexer.KindAttribute},
	}

	result := AnalyzeTokens("c.swift", tokens)

	assert.Equal(t, uint32(0), result.Metrics.Length)
	assert.Equal(t, uint32(0), result.Metrics.Vocabulary)
	assert.Zero(t, result.Metrics.Volume)
}

func TestAnalyzeTokens_Empty(t *testing.T) {
	result := AnalyzeTokens("empty.swift", nil)

	assert.Equal(t, uint32(0), result.Metrics.Vocabulary)
	assert.Zero(t, result.Metrics.Volume)
	assert.Zero(t, result.Metrics.Difficulty)
	assert.Empty(t, result.Operators)
	assert.Empty(t, result.Operands)
}

func TestAggregate(t *testing.T) {
	a := AnalyzeTokens("a.swift", []lexer.Token{
		{Text: "let", Kind: lexer.KindKeyword},
		{Text: "x", Kind: lexer.KindIdentifier},
		{Text: "=", Kind: lexer.KindSymbol},
		{Text: "1", Kind: lexer.KindIntegerLiteral},
	})
	b := AnalyzeTokens("b.swift", []lexer.Token{
		{Text: "let", Kind: lexer.KindKeyword},
		{Text: "y", Kind: lexer.KindIdentifier},
		{Text: "=", Kind: lexer.KindSymbol},
		{Text: "1", Kind: lexer.KindIntegerLiteral},
	})

	totals := Aggregate([]FileResult{a, b})

	assert.Equal(t, models.TotalsPath, totals.Path)
	// "let" and "=" appear in both files: union keeps them once.
	assert.Equal(t, uint32(2), totals.DistinctOperators)
	// Operands: x, y, 1.
	assert.Equal(t, uint32(3), totals.DistinctOperands)
	// Totals are plain sums.
	assert.Equal(t, uint32(4), totals.TotalOperators)
	assert.Equal(t, uint32(4), totals.TotalOperands)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	results := []FileResult{
		AnalyzeTokens("a.swift", []lexer.Token{
			{Text: "x", Kind: lexer.KindIdentifier},
			{Text: "+", Kind: lexer.KindSymbol},
			{Text: "y", Kind: lexer.KindIdentifier},
		}),
		AnalyzeTokens("b.swift", []lexer.Token{
			{Text: "func", Kind: lexer.KindKeyword},
			{Text: "f", Kind: lexer.KindIdentifier},
		}),
		AnalyzeTokens("c.swift", []lexer.Token{
			{Text: "x", Kind: lexer.KindIdentifier},
			{Text: "*", Kind: lexer.KindSymbol},
			{Text: "2", Kind: lexer.KindIntegerLiteral},
		}),
	}

	forward := Aggregate(results)
	reversed := Aggregate([]FileResult{results[2], results[1], results[0]})
	rotated := Aggregate([]FileResult{results[1], results[2], results[0]})

	assert.Equal(t, forward, reversed)
	assert.Equal(t, forward, rotated)
}

func TestAggregate_Empty(t *testing.T) {
	totals := Aggregate(nil)

	assert.Equal(t, models.TotalsPath, totals.Path)
	assert.Equal(t, uint32(0), totals.Vocabulary)
	assert.Zero(t, totals.Volume)
	assert.Zero(t, totals.RiskScore)
}
