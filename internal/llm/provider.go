package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhouston2019/auditintel/internal/model"
)

// Provider defines the interface for letter-drafting backends
type Provider interface {
	// Name returns the provider name
	Name() string

	// Draft generates a response letter constrained by the playbook
	Draft(ctx context.Context, req DraftRequest) (*DraftResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// DraftRequest contains the input for letter drafting
type DraftRequest struct {
	// Result is the completed analysis the letter responds to
	Result *model.AnalysisResult

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// DraftResponse contains the drafted letter
type DraftResponse struct {
	// Letter is the generated letter text
	Letter string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds drafting provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 1000,
	}
}

const draftSystemPrompt = "You draft minimal IRS audit response letters. You follow the stated constraints exactly and output only the letter text, nothing else."

// BuildPrompt constructs the default drafting prompt from the analysis
// result. The prompt carries the playbook's constraints verbatim so the
// generated letter can be checked against the same rules.
func BuildPrompt(result *model.AnalysisResult) string {
	var b strings.Builder

	b.WriteString("Draft a response letter to an IRS audit notice.\n\n")
	b.WriteString("CRITICAL RULES:\n")
	b.WriteString("1. Respond ONLY to what the notice explicitly requests.\n")
	b.WriteString("2. Do not volunteer information, explanations, or context.\n")
	b.WriteString("3. Do not mention any tax year outside the audited years.\n")
	b.WriteString("4. Do not admit, acknowledge, dispute, or explain anything.\n")
	b.WriteString("5. Use business letter format: notice reference, acknowledgment of items under examination, document transmittal list, closing.\n\n")

	if c := result.Classification; c != nil {
		fmt.Fprintf(&b, "Audit Type: %s\n", c.Name)
	}
	if s := result.Scope; s != nil {
		if len(s.TaxYears) > 0 {
			years := make([]string, len(s.TaxYears))
			for i, y := range s.TaxYears {
				years[i] = fmt.Sprintf("%d", y)
			}
			fmt.Fprintf(&b, "Audited Tax Years: %s\n", strings.Join(years, ", "))
		}
		if len(s.Items) > 0 {
			b.WriteString("Items Under Examination:\n")
			for _, item := range s.Items {
				fmt.Fprintf(&b, "- %s\n", item)
			}
		}
	}

	if result.Outline != nil && result.Outline.Outline != nil {
		o := result.Outline.Outline
		fmt.Fprintf(&b, "\nMaximum narrative lines: %d\n", o.MaxNarrativeLines)
		if len(o.ProhibitedActions) > 0 {
			b.WriteString("Prohibited:\n")
			for _, p := range o.ProhibitedActions {
				fmt.Fprintf(&b, "- %s\n", p)
			}
		}
	}

	b.WriteString("\nOutput only the letter.")
	return b.String()
}
