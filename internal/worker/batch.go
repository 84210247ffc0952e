package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jhouston2019/auditintel/internal/model"
	"github.com/jhouston2019/auditintel/internal/pipeline"
)

// NoticeAnalyzer defines the interface for analyzing a single notice
type NoticeAnalyzer interface {
	Analyze(ctx context.Context, noticeText string, opts pipeline.Options) (*model.AnalysisResult, error)
}

// AnalyzeJob analyzes one notice file
type AnalyzeJob struct {
	Path     string
	Analyzer NoticeAnalyzer
	Options  pipeline.Options

	// Limiter throttles drafting calls; nil when drafting is disabled
	Limiter    *Limiter
	LimiterKey string
}

// Execute reads the notice file and runs the analysis
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	data, err := os.ReadFile(j.Path)
	if err != nil {
		return &AnalyzeResult{Path: j.Path, Error: fmt.Errorf("read notice: %w", err)}
	}

	if j.Limiter != nil && j.Options.Draft {
		if err := j.Limiter.Wait(ctx, j.LimiterKey); err != nil {
			return &AnalyzeResult{Path: j.Path, Error: err}
		}
	}

	result, err := j.Analyzer.Analyze(ctx, string(data), j.Options)
	if err != nil {
		return &AnalyzeResult{Path: j.Path, Error: err}
	}
	return &AnalyzeResult{Path: j.Path, Analysis: result}
}

// AnalyzeResult represents the result of an analyze job
type AnalyzeResult struct {
	Path     string
	Analysis *model.AnalysisResult
	Error    error
}

// GetError returns the error from the analyze result
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes multiple notice files concurrently
type BatchProcessor struct {
	analyzer    NoticeAnalyzer
	concurrency int
	limiter     *Limiter
	limiterKey  string
}

// NewBatchProcessor creates a new batch processor. The limiter may be nil
// when no drafting throttle is needed.
func NewBatchProcessor(analyzer NoticeAnalyzer, concurrency int, limiter *Limiter, limiterKey string) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
		limiter:     limiter,
		limiterKey:  limiterKey,
	}
}

// ProcessPaths analyzes the given notice files concurrently
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string, opts pipeline.Options) []*AnalyzeResult {
	if len(paths) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPoolSize(b.concurrency, len(paths))
	pool.Start()

	for _, path := range paths {
		pool.Submit(&AnalyzeJob{
			Path:       path,
			Analyzer:   b.analyzer,
			Options:    opts,
			Limiter:    b.limiter,
			LimiterKey: b.limiterKey,
		})
	}

	results := pool.Wait()

	analyzeResults := make([]*AnalyzeResult, len(results))
	for i, result := range results {
		analyzeResults[i] = result.(*AnalyzeResult)
	}

	return analyzeResults
}

// ProcessIndexFile reads notice file paths from an index file and analyzes
// them concurrently
func (b *BatchProcessor) ProcessIndexFile(ctx context.Context, indexPath string, opts pipeline.Options) ([]*AnalyzeResult, error) {
	paths, err := ReadPathsFromFile(indexPath)
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}

	return b.ProcessPaths(ctx, paths, opts), nil
}

// ReadPathsFromFile reads notice file paths from a file (one per line)
func ReadPathsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
