package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/jhouston2019/auditintel/internal/model"
	"github.com/jhouston2019/auditintel/internal/validate"
)

// Drafter generates response letters from completed analyses. Drafting is
// refused outright when the analysis requires professional representation;
// the refusal is a result, not an error.
type Drafter struct {
	provider Provider
	config   Config
}

// NewDrafter creates a drafter from configuration. A nil drafter with no
// error means drafting is disabled.
func NewDrafter(config Config) (*Drafter, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}

	return &Drafter{
		provider: provider,
		config:   config,
	}, nil
}

// IsEnabled reports whether a drafting provider is configured
func (d *Drafter) IsEnabled() bool {
	return d != nil && d.provider != nil
}

// DraftResponse generates a letter for the given analysis. The draft is
// validated against the same playbook rules that govern human drafts; a
// failing draft is returned with its validation result attached.
func (d *Drafter) DraftResponse(ctx context.Context, result *model.AnalysisResult) (*model.DraftLetter, error) {
	if result.Rejected {
		return nil, fmt.Errorf("cannot draft a response to a non-audit notice")
	}
	if result.Classification == nil || result.Risk == nil {
		return nil, fmt.Errorf("analysis is incomplete")
	}

	draft := &model.DraftLetter{
		Enabled:   true,
		Provider:  d.provider.Name(),
		DraftedAt: time.Now().UTC(),
	}

	// Hard refusal: no self-response means no machine-drafted response either
	if result.Risk.EscalationRequired || !result.Risk.AllowSelfResponse {
		draft.Refused = true
		draft.RefusalReason = "Professional representation required - drafting a self-response would be unsafe"
		return draft, nil
	}
	if result.Outline != nil && result.Outline.Escalated() {
		draft.Refused = true
		draft.RefusalReason = result.Outline.Escalation.Reason
		return draft, nil
	}

	resp, err := d.provider.Draft(ctx, DraftRequest{
		Result:    result,
		Model:     d.config.Model,
		MaxTokens: d.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("draft letter: %w", err)
	}

	draft.Model = resp.Model
	draft.Letter = resp.Letter
	draft.TokensUsed = resp.TokensUsed

	validation := validate.ValidateProposedResponse(result.Classification.Type, resp.Letter, result.Scope)
	draft.Validation = &validation

	return draft, nil
}
