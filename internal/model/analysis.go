package model

import "time"

// Version identifies the analysis schema carried in persisted results
const Version = "1.0.0-audit-only"

// AnalysisResult is the terminal artifact of one analysis run: either a
// rejection (Rejected=true, no stage results) or the aggregate of every
// pipeline stage plus the formatted output. Created fresh per call and
// read-only thereafter.
type AnalysisResult struct {
	AnalyzedAt time.Time `json:"analyzed_at"`
	Version    string    `json:"version"`

	Rejected     bool   `json:"rejected"`
	RejectedType string `json:"rejected_type,omitempty"`
	Message      string `json:"message,omitempty"`
	RedirectTo   string `json:"redirect_to,omitempty"`

	Classification *Classification    `json:"classification,omitempty"`
	Scope          *AuditScope        `json:"scope,omitempty"`
	Risk           *RiskAssessment    `json:"risk,omitempty"`
	Deadline       *DeadlineInfo      `json:"deadline,omitempty"`
	Outline        *OutlineResult     `json:"outline,omitempty"`
	EvidenceMap    []EvidenceMapping  `json:"evidence_map,omitempty"`
	Escalation     *EscalationMessage `json:"escalation,omitempty"`

	Output     *StructuredOutput `json:"output,omitempty"`
	TextOutput string            `json:"text_output,omitempty"`

	// Draft is the optional machine-drafted letter, generated after the
	// pipeline completes (nil when drafting is disabled)
	Draft *DraftLetter `json:"draft,omitempty"`
}
