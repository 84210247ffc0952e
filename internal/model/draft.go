package model

import "time"

// DraftLetter is the optional machine-drafted response letter. It is
// generated after the pipeline completes and never influences
// classification, risk, or playbook decisions.
type DraftLetter struct {
	Enabled  bool   `json:"enabled"`
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`

	// Refused is set when drafting was declined because the analysis
	// requires professional representation.
	Refused       bool   `json:"refused"`
	RefusalReason string `json:"refusal_reason,omitempty"`

	Letter     string    `json:"letter,omitempty"`
	TokensUsed int       `json:"tokens_used,omitempty"`
	DraftedAt  time.Time `json:"drafted_at"`

	// Validation is the playbook check of the drafted letter. A draft
	// that fails validation is still returned so the caller can see why.
	Validation *ValidationResult `json:"validation,omitempty"`
}
