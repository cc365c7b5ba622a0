// Package analyzer implements the Halstead metrics engine: token
// classification, per-file calculation, cross-file aggregation, and the
// directory hotspot ranking.
package analyzer

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/augur-dev/augur/internal/cache"
	"github.com/augur-dev/augur/internal/fileproc"
	"github.com/augur-dev/augur/pkg/lexer"
	"github.com/augur-dev/augur/pkg/models"
)

// Analyzer runs the per-file pipeline across a corpus and folds the
// results into a single Analysis.
type Analyzer struct {
	cache   *cache.Cache
	workers int
}

// Option is a functional option for configuring an Analyzer.
type Option func(*Analyzer)

// WithCache attaches a result cache.
func WithCache(c *cache.Cache) Option {
	return func(a *Analyzer) {
		a.cache = c
	}
}

// WithWorkers caps the worker pool size. Zero means the fileproc default.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		a.workers = n
	}
}

// New creates an analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		opt(a)
	}
	if a.cache == nil {
		a.cache, _ = cache.New("", 0, false)
	}
	return a
}

// cachedResult is the JSON shape stored per file: the metrics record plus
// the symbol sets, so totals can still union over cache hits.
type cachedResult struct {
	Metrics   models.FileMetrics `json:"metrics"`
	Operators []string           `json:"operators"`
	Operands  []string           `json:"operands"`
}

func toCached(r FileResult) cachedResult {
	c := cachedResult{
		Metrics:   r.Metrics,
		Operators: make([]string, 0, len(r.Operators)),
		Operands:  make([]string, 0, len(r.Operands)),
	}
	for op := range r.Operators {
		c.Operators = append(c.Operators, op)
	}
	for op := range r.Operands {
		c.Operands = append(c.Operands, op)
	}
	sort.Strings(c.Operators)
	sort.Strings(c.Operands)
	return c
}

func (c cachedResult) toResult() FileResult {
	r := FileResult{
		Metrics:   c.Metrics,
		Operators: make(map[string]struct{}, len(c.Operators)),
		Operands:  make(map[string]struct{}, len(c.Operands)),
	}
	for _, op := range c.Operators {
		r.Operators[op] = struct{}{}
	}
	for _, op := range c.Operands {
		r.Operands[op] = struct{}{}
	}
	return r
}

// AnalyzeProject analyzes all files and aggregates project totals.
func (a *Analyzer) AnalyzeProject(files []string) *models.Analysis {
	return a.AnalyzeProjectWithProgress(files, nil)
}

// AnalyzeProjectWithProgress analyzes all files with an optional progress
// callback. Files the lexer cannot process are skipped and recorded as
// failures; they never abort the run. Zero discovered files is not an
// error either: totals degrade to an all-zero record.
func (a *Analyzer) AnalyzeProjectWithProgress(files []string, onProgress fileproc.ProgressFunc) *models.Analysis {
	errs := &fileproc.ProcessingErrors{}
	results := fileproc.MapFilesN(files, a.workers, func(lex *lexer.Lexer, path string) (FileResult, error) {
		return a.analyzeFile(lex, path)
	}, onProgress, errs.Add)

	analysis := &models.Analysis{
		GeneratedAt: time.Now().UTC(),
		Files:       make([]models.FileMetrics, 0, len(results)),
	}
	for _, r := range results {
		analysis.Files = append(analysis.Files, r.Metrics)
	}
	sort.Slice(analysis.Files, func(i, j int) bool {
		return analysis.Files[i].Path < analysis.Files[j].Path
	})

	analysis.Totals = Aggregate(results)

	for _, pe := range errs.Errors {
		analysis.Failures = append(analysis.Failures, models.TokenizationFailure{
			Path:   pe.Path,
			Reason: pe.Err.Error(),
		})
	}
	sort.Slice(analysis.Failures, func(i, j int) bool {
		return analysis.Failures[i].Path < analysis.Failures[j].Path
	})

	analysis.CalculateSummary()
	return analysis
}

// analyzeFile tokenizes and counts one file, consulting the cache first.
// A file is an atomic unit of work: it either produces a complete result
// or a recorded failure, never partial counts.
func (a *Analyzer) analyzeFile(lex *lexer.Lexer, path string) (FileResult, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return FileResult{}, fmt.Errorf("failed to read file: %w", err)
	}

	hash := cache.HashBytes(source)
	if data, ok := a.cache.Get(path, hash); ok {
		var cached cachedResult
		if err := json.Unmarshal(data, &cached); err == nil && cached.Metrics.Path == path {
			return cached.toResult(), nil
		}
	}

	tokens, err := lex.Tokenize(source)
	if err != nil {
		return FileResult{}, err
	}
	result := AnalyzeTokens(path, tokens)

	if data, err := json.Marshal(toCached(result)); err == nil {
		_ = a.cache.Set(path, hash, data)
	}

	return result, nil
}
