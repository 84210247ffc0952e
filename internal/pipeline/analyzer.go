package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhouston2019/auditintel/internal/cache"
	"github.com/jhouston2019/auditintel/internal/classify"
	"github.com/jhouston2019/auditintel/internal/deadline"
	"github.com/jhouston2019/auditintel/internal/evidence"
	"github.com/jhouston2019/auditintel/internal/extract"
	"github.com/jhouston2019/auditintel/internal/format"
	"github.com/jhouston2019/auditintel/internal/llm"
	"github.com/jhouston2019/auditintel/internal/model"
	"github.com/jhouston2019/auditintel/internal/playbook"
	"github.com/jhouston2019/auditintel/internal/risk"
)

// Analyzer orchestrates the complete analysis of a notice: classification,
// scope extraction, risk evaluation, deadline calculation, outline
// selection, evidence mapping, and output formatting.
type Analyzer struct {
	classifier *classify.Classifier
	extractor  *extract.ScopeExtractor
	evaluator  *risk.Evaluator
	calculator *deadline.Calculator
	selector   *playbook.Selector
	mapper     *evidence.Mapper
	formatter  *format.Formatter
	drafter    *llm.Drafter // Optional letter drafter (nil if disabled)
	cache      *cache.AnalysisCache
	config     *model.Config
}

// NewAnalyzer creates an analyzer with the given configuration
func NewAnalyzer(cfg *model.Config) *Analyzer {
	// Create letter drafter if configured
	var drafter *llm.Drafter
	if cfg.LLM.Provider != "" {
		d, err := llm.NewDrafter(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize letter drafter: %v\n", err)
		} else {
			drafter = d
		}
	}

	var analysisCache *cache.AnalysisCache
	if cfg.Cache.Enabled {
		layered := cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		analysisCache = cache.NewAnalysisCache(layered)
	}

	return &Analyzer{
		classifier: classify.NewClassifier(),
		extractor:  extract.NewScopeExtractor(),
		evaluator:  risk.NewEvaluator(),
		calculator: deadline.NewCalculator(),
		selector:   playbook.NewSelector(),
		mapper:     evidence.NewMapper(),
		formatter:  format.NewFormatter(),
		drafter:    drafter,
		cache:      analysisCache,
		config:     cfg,
	}
}

// Options adjusts a single analysis run
type Options struct {
	// NoticeDate overrides the date extracted from the notice text
	NoticeDate *time.Time

	// BypassCache forces a fresh analysis even when a cached result exists
	BypassCache bool

	// Draft requests a machine-drafted response letter after analysis
	Draft bool
}

// Analyze runs the full pipeline on the given notice text. Rejections are
// results, not errors: a non-audit notice produces a rejected
// AnalysisResult and the remaining stages do not run.
func (a *Analyzer) Analyze(ctx context.Context, noticeText string, opts Options) (*model.AnalysisResult, error) {
	if a.cache != nil && !opts.BypassCache {
		if cached, found := a.cache.Get(noticeText); found {
			return cached, nil
		}
	}

	result, err := a.analyze(ctx, noticeText, opts)
	if err != nil {
		return nil, err
	}

	if a.cache != nil {
		if err := a.cache.Set(noticeText, result, a.config.Cache.DiskTTL); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to cache analysis: %v\n", err)
		}
	}

	return result, nil
}

func (a *Analyzer) analyze(ctx context.Context, noticeText string, opts Options) (*model.AnalysisResult, error) {
	result := &model.AnalysisResult{
		AnalyzedAt: time.Now().UTC(),
		Version:    model.Version,
	}

	// 1. Classify (rejection short-circuits everything else)
	classification := a.classifier.Classify(noticeText)
	if classification.Rejected {
		result.Rejected = true
		result.RejectedType = classification.RejectedType
		result.Message = classification.Message
		result.RedirectTo = classification.RedirectTo
		return result, nil
	}
	result.Classification = &classification

	// 2. Extract scope
	scope := a.extractor.Scope(noticeText)
	result.Scope = &scope

	// 3. Evaluate risk
	assessment := a.evaluator.Evaluate(&classification, &scope, noticeText)
	result.Risk = &assessment

	// 4. Calculate deadline
	deadlineInfo := a.calculator.Extract(noticeText, opts.NoticeDate)
	result.Deadline = &deadlineInfo

	// 5. Select playbook and build outline
	outline, err := a.selector.BuildOutline(classification.Type, &scope)
	if err != nil {
		return nil, fmt.Errorf("build outline: %w", err)
	}
	result.Outline = &outline

	// 6. Map requested items to evidence handling rules
	if len(scope.Items) > 0 {
		result.EvidenceMap = a.mapper.MapRequestedItems(&scope)
	}

	// 7. Escalation message if required
	result.Escalation = risk.EscalationMessage(&assessment)

	// 8. Format output
	result.Output = a.formatter.Analysis(&classification, &scope, &assessment, &deadlineInfo, &outline)
	result.TextOutput = format.StructuredText(result.Output)

	// 9. Draft letter if requested (AFTER formatting, never affects the analysis)
	if opts.Draft && a.drafter != nil && a.drafter.IsEnabled() {
		draft, err := a.drafter.DraftResponse(ctx, result)
		if err != nil {
			// Don't fail the analysis, just warn
			fmt.Fprintf(os.Stderr, "Warning: letter drafting failed: %v\n", err)
		} else if draft != nil {
			result.Draft = draft
		}
	}

	return result, nil
}
