package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jhouston2019/auditintel/internal/model"
)

const summaryDisclaimer = "DISCLAIMER: Procedural preparation guidance only. Not legal or tax advice."

// Renderer writes analysis results to files and the terminal
type Renderer struct {
	includeDisclaimer bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeDisclaimer bool) *Renderer {
	return &Renderer{includeDisclaimer: includeDisclaimer}
}

// RenderJSON writes the full analysis result as indented JSON
func (r *Renderer) RenderJSON(result *model.AnalysisResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// RenderText writes the plain-text report
func (r *Renderer) RenderText(result *model.AnalysisResult, path string) error {
	text := result.TextOutput
	if result.Rejected {
		text = rejectionText(result)
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// RenderSummary prints a compact summary to stdout
func (r *Renderer) RenderSummary(result *model.AnalysisResult) {
	if result.Rejected {
		fmt.Println(rejectionText(result))
		return
	}

	c := result.Classification
	fmt.Printf("Audit Type:     %s\n", c.Name)
	fmt.Printf("Risk Level:     %s\n", strings.ToUpper(string(c.RiskLevel)))
	fmt.Printf("Confidence:     %d%%\n", c.Confidence)

	if result.Scope != nil && len(result.Scope.TaxYears) > 0 {
		years := make([]string, len(result.Scope.TaxYears))
		for i, y := range result.Scope.TaxYears {
			years[i] = fmt.Sprintf("%d", y)
		}
		fmt.Printf("Tax Years:      %s\n", strings.Join(years, ", "))
	}

	if result.Deadline != nil && result.Deadline.DaysRemaining != nil {
		fmt.Printf("Days Remaining: %d\n", *result.Deadline.DaysRemaining)
	}

	if result.Risk != nil && result.Risk.EscalationRequired {
		fmt.Println()
		fmt.Println("ESCALATION REQUIRED: professional representation strongly recommended.")
		for _, hs := range result.Risk.HardStops {
			fmt.Printf("  - %s\n", hs.Condition)
		}
	}

	if result.Draft != nil && result.Draft.Refused {
		fmt.Println()
		fmt.Printf("Letter drafting refused: %s\n", result.Draft.RefusalReason)
	}

	if r.includeDisclaimer {
		fmt.Println()
		fmt.Println(summaryDisclaimer)
	}
}

// rejectionText renders the redirect message for a non-audit notice
func rejectionText(result *model.AnalysisResult) string {
	var b strings.Builder
	b.WriteString("NOT AN AUDIT NOTICE\n\n")
	b.WriteString(result.Message + "\n")
	if result.RedirectTo != "" {
		fmt.Fprintf(&b, "\nSuggested tool: %s\n", result.RedirectTo)
	}
	return b.String()
}
