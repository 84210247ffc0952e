package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhouston2019/auditintel/internal/pipeline"
	"github.com/jhouston2019/auditintel/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <index-file>",
	Short: "Analyze multiple notices from an index file in parallel",
	Long: `Batch analyzes multiple notices concurrently:
- Read notice file paths from the index file (one per line, # comments)
- Analyze notices in parallel with configurable worker count
- Generate individual JSON and text reports per notice
- Throttle drafting calls when --draft is enabled

Example:
  auditintel batch notices.txt
  auditintel batch notices.txt --concurrency 8 --output-dir ./reports
  auditintel batch notices.txt --draft --llm-provider openai`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 4, "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./auditintel-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh analysis)")
	batchCmd.Flags().BoolVar(&noStore, "no-store", false, "do not record analyses in history")

	// Drafting flags
	batchCmd.Flags().BoolVar(&draftEnabled, "draft", false, "draft response letters after analysis")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "drafting provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "drafting model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	indexFile := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Auditintel Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Index file:   %s\n", indexFile)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	cfg := loadConfig()
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	cfg.Concurrency.Workers = concurrency
	if draftEnabled {
		if err := configureLLM(cfg, llmProvider, llmModel); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "  Drafting:     %s/%s\n\n", llmProvider, cfg.LLM.Model)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	analyzer := pipeline.NewAnalyzer(cfg)

	// Throttle drafting calls per provider
	var limiter *worker.Limiter
	if draftEnabled {
		limiter = worker.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.BurstSize)
	}

	processor := worker.NewBatchProcessor(analyzer, concurrency, limiter, cfg.LLM.Provider)

	fmt.Fprintf(os.Stderr, "⚙  Reading notice paths...\n")
	results, err := processor.ProcessIndexFile(ctx, indexFile, pipeline.Options{
		BypassCache: noCache,
		Draft:       draftEnabled,
	})
	if err != nil {
		return fmt.Errorf("process index: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Processed %d notices with %d workers\n\n", len(results), concurrency)

	renderer := pipeline.NewRenderer(cfg.Output.IncludeDisclaimer)

	successCount := 0
	failureCount := 0
	rejectedCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		successCount++
		if result.Analysis.Rejected {
			rejectedCount++
		}

		slug := noticeSlug(result.Path)
		jsonPath := filepath.Join(outputDir, slug+".json")
		textPath := filepath.Join(outputDir, slug+".txt")

		if err := renderer.RenderJSON(result.Analysis, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", result.Path, err)
			continue
		}
		if err := renderer.RenderText(result.Analysis, textPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write report: %v\n", result.Path, err)
			continue
		}

		if result.Analysis.Rejected {
			fmt.Fprintf(os.Stderr, "✓ %s (rejected: %s)\n", result.Path, result.Analysis.RejectedType)
		} else {
			fmt.Fprintf(os.Stderr, "✓ %s (%s, %s)\n", result.Path,
				result.Analysis.Classification.Type, result.Analysis.Classification.RiskLevel)
		}

		if cfg.Store.Enabled && !noStore {
			data, err := os.ReadFile(result.Path)
			if err == nil {
				if _, err := recordAnalysis(cfg.Store.Path, string(data), result.Analysis); err != nil {
					fmt.Fprintf(os.Stderr, "  warning: failed to record analysis: %v\n", err)
				}
			}
		}
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d notices\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Rejected:  %d\n", rejectedCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// noticeSlug derives an output file name from a notice path
func noticeSlug(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}

	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
		"\"", "_", "<", "_", ">", "_", "|", "_", " ", "-",
	)
	return replacer.Replace(base)
}
