package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhouston2019/auditintel/internal/model"
	"github.com/jhouston2019/auditintel/internal/pipeline"
	"github.com/jhouston2019/auditintel/internal/store"
)

var (
	outJSON       string
	outText       string
	noticeDateStr string
	noCache       bool
	noStore       bool
	noDisclaimer  bool
	draftEnabled  bool
	llmProvider   string
	llmModel      string
	analyzeTO     time.Duration
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <notice-file>",
	Short: "Analyze a single IRS audit notice",
	Long: `Analyze reads an audit notice (plain text) and produces:
- Audit type classification with confidence
- Audited scope: tax years, items, dollar exposure
- Risk assessment with hard-stop escalation conditions
- Response deadline and urgency
- A restrictive response outline, or an escalation notice

Use "-" to read the notice from stdin.

Example:
  auditintel analyze notice.txt
  auditintel analyze notice.txt --json report.json --text report.txt
  auditintel analyze notice.txt --notice-date 2026-08-15
  auditintel analyze notice.txt --draft --llm-provider openai`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&outText, "text", "", "output plain-text report path (optional)")
	analyzeCmd.Flags().BoolVar(&noDisclaimer, "no-disclaimer", false, "omit the disclaimer footer from the summary")

	// Analysis flags
	analyzeCmd.Flags().StringVar(&noticeDateStr, "notice-date", "", "notice date override (YYYY-MM-DD)")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh analysis)")
	analyzeCmd.Flags().BoolVar(&noStore, "no-store", false, "do not record the analysis in history")
	analyzeCmd.Flags().DurationVar(&analyzeTO, "timeout", 2*time.Minute, "overall analysis timeout")

	// Drafting flags
	analyzeCmd.Flags().BoolVar(&draftEnabled, "draft", false, "draft a response letter after analysis")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "drafting provider (openai, anthropic, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "", "drafting model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), analyzeTO)
	defer cancel()

	noticeText, err := readNotice(args[0])
	if err != nil {
		return err
	}

	cfg := loadConfig()
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	if noDisclaimer {
		cfg.Output.IncludeDisclaimer = false
	}
	if draftEnabled {
		if err := configureLLM(cfg, llmProvider, llmModel); err != nil {
			return err
		}
	}

	opts := pipeline.Options{
		BypassCache: noCache,
		Draft:       draftEnabled,
	}
	if noticeDateStr != "" {
		noticeDate, err := time.Parse("2006-01-02", noticeDateStr)
		if err != nil {
			return fmt.Errorf("parse notice date %q: %w", noticeDateStr, err)
		}
		opts.NoticeDate = &noticeDate
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing notice (%d bytes)\n", len(noticeText))
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	analyzer := pipeline.NewAnalyzer(cfg)
	result, err := analyzer.Analyze(ctx, noticeText, opts)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	if verbose && !result.Rejected {
		fmt.Fprintf(os.Stderr, "✓ Classified: %s (%d%% confidence)\n", result.Classification.Name, result.Classification.Confidence)
		fmt.Fprintf(os.Stderr, "✓ Risk level: %s\n", result.Classification.RiskLevel)
		if result.Outline != nil && result.Outline.Escalated() {
			fmt.Fprintf(os.Stderr, "✓ Escalation: %s\n", result.Outline.Escalation.Reason)
		}
		fmt.Fprintln(os.Stderr)
	}

	// Record in history
	if cfg.Store.Enabled && !noStore {
		if id, err := recordAnalysis(cfg.Store.Path, noticeText, result); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to record analysis: %v\n", err)
		} else if verbose {
			fmt.Fprintf(os.Stderr, "✓ Recorded analysis: %s\n\n", id[:8])
		}
	}

	// Render outputs
	renderer := pipeline.NewRenderer(cfg.Output.IncludeDisclaimer)
	if outJSON != "" {
		if err := renderer.RenderJSON(result, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}
	if outText != "" {
		if err := renderer.RenderText(result, outText); err != nil {
			return fmt.Errorf("render text: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote report: %s\n", outText)
		}
	}

	renderer.RenderSummary(result)

	return nil
}

// readNotice reads the notice text from a file or stdin ("-")
func readNotice(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read notice: %w", err)
	}
	return string(data), nil
}

// recordAnalysis persists one result to the history database
func recordAnalysis(dbPath, noticeText string, result *model.AnalysisResult) (string, error) {
	s, err := openStore(dbPath)
	if err != nil {
		return "", err
	}
	defer s.Close()

	record, err := s.SaveAnalysis(noticeText, result)
	if err != nil {
		return "", err
	}
	return record.ID, nil
}

// openStore ensures the database directory exists and opens the store
func openStore(dbPath string) (*store.Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	return store.New(dbPath)
}
