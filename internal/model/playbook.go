package model

// Escalation trigger identifiers carried by playbooks
const (
	TriggerImmediate              = "immediate"
	TriggerMultiYear              = "multi_year_audit"
	TriggerLargeDollar            = "dollar_amount_over_25k"
	TriggerScopeExpansionDetected = "scope_expansion_detected"
	TriggerScopeExpansion         = "scope_expansion"
	TriggerInterview              = "interview_request"
	TriggerMultiYearDocs          = "multi_year_documents"
)

// Playbook is the static per-audit-type response strategy: what a
// self-responder may and may not do, how the response is structured, and
// when preparation must stop and escalate. One playbook per audit type,
// never mutated at runtime.
type Playbook struct {
	Type                          AuditType `json:"type"`
	Name                          string    `json:"name"`
	AllowedActions                []string  `json:"allowed_actions"`
	ProhibitedActions             []string  `json:"prohibited_actions"`
	Sections                      []string  `json:"sections"`
	MaxNarrativeLines             int       `json:"max_narrative_lines"`
	RequiresDocumentJustification bool      `json:"requires_document_justification"`
	EscalationTriggers            []string  `json:"escalation_triggers"`
	MandatoryWarning              string    `json:"mandatory_warning,omitempty"`
}

// HasTrigger reports whether the playbook carries the given escalation trigger
func (p *Playbook) HasTrigger(trigger string) bool {
	for _, t := range p.EscalationTriggers {
		if t == trigger {
			return true
		}
	}
	return false
}

// PreparationGuidance is the fixed procedural boilerplate attached to a
// self-response outline
type PreparationGuidance struct {
	WhatToProvide       []string `json:"what_to_provide"`
	WhatNotToProvide    []string `json:"what_not_to_provide"`
	DocumentHandling    []string `json:"document_handling"`
	CommunicationLimits []string `json:"communication_limits"`
}

// Outline is the restrictive self-response outline produced when no
// escalation trigger fires
type Outline struct {
	AuditType                     string              `json:"audit_type"` // Display name
	Sections                      []string            `json:"sections"`
	AllowedActions                []string            `json:"allowed_actions"`
	ProhibitedActions             []string            `json:"prohibited_actions"`
	MaxNarrativeLines             int                 `json:"max_narrative_lines"`
	DocumentJustificationRequired bool                `json:"document_justification_required"`
	EscalationTriggers            []string            `json:"escalation_triggers"`
	Guidance                      PreparationGuidance `json:"guidance"`
}

// EscalationNotice replaces the outline when a playbook trigger fires
type EscalationNotice struct {
	AuditType string `json:"audit_type"` // Display name
	Reason    string `json:"reason"`
	Warning   string `json:"warning"`
}

// OutlineResult is the variant outcome of playbook selection: exactly one
// of Outline or Escalation is set. Escalation is an expected branch, not a
// failure.
type OutlineResult struct {
	Outline    *Outline          `json:"outline,omitempty"`
	Escalation *EscalationNotice `json:"escalation,omitempty"`
}

// Escalated reports whether the result is an escalation notice
func (r *OutlineResult) Escalated() bool {
	return r.Escalation != nil
}
