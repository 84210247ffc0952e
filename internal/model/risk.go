package model

// HardStop is a static catalog entry describing a condition under which
// self-response must not proceed. Entries are process-wide constants,
// referenced by pointer and never instantiated per request.
type HardStop struct {
	ID                string `json:"id"`
	Condition         string `json:"condition"`
	Message           string `json:"message"`
	Reasoning         string `json:"reasoning"`
	AllowSelfResponse bool   `json:"allow_self_response"` // Always false for catalog entries
}

// RiskAssessment is the outcome of risk evaluation.
// EscalationRequired is true iff HardStops is non-empty or OverallRisk is high.
type RiskAssessment struct {
	OverallRisk        RiskLevel   `json:"overall_risk"`
	HardStops          []*HardStop `json:"hard_stops,omitempty"`
	Warnings           []string    `json:"warnings,omitempty"`
	AllowSelfResponse  bool        `json:"allow_self_response"`
	EscalationRequired bool        `json:"escalation_required"`
	EscalationReason   string      `json:"escalation_reason,omitempty"`
}

// EscalationNote is one message block within an escalation message
type EscalationNote struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	Reasoning string `json:"reasoning"`
}

// EscalationMessage is the caller-facing escalation summary built from a
// risk assessment that requires escalation
type EscalationMessage struct {
	EscalationRequired bool             `json:"escalation_required"`
	Messages           []EscalationNote `json:"messages"`
	Recommendation     string           `json:"recommendation"`
	Resources          []string         `json:"resources"`
}
