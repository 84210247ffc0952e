package model

// StructuredOutput is the eight-section procedural analysis assembled by the
// output formatter. The text rendering is a deterministic serialization of
// this structure; the two must always agree.
type StructuredOutput struct {
	AuditIdentification      IdentificationSection `json:"audit_identification"`
	IRSRequests              RequestsSection       `json:"what_irs_is_requesting"`
	ProvisionGuidance        ProvisionSection      `json:"what_to_provide_and_not_provide"`
	PreparationStrategy      StrategySection       `json:"response_preparation_strategy"`
	EscalationRisk           EscalationSection     `json:"escalation_risk_and_when_to_stop"`
	ResponseOutline          OutlineSection        `json:"audit_appropriate_response_outline"`
	ProfessionalAdvisory     AdvisorySection       `json:"professional_representation_advisory"`
	DeadlineInformation      DeadlineSection       `json:"deadline_information"`
}

// IdentificationSection identifies the audit type and scope (section 1)
type IdentificationSection struct {
	AuditType                string   `json:"audit_type"`
	RiskLevel                string   `json:"risk_level"`
	TaxYearsUnderExamination string   `json:"tax_years_under_examination"`
	IsMultiYear              bool     `json:"is_multi_year"`
	EstimatedDollarExposure  string   `json:"estimated_dollar_exposure"`
	ItemsUnderExamination    []string `json:"items_under_examination"`
}

// RequestsSection lists what the notice requests (section 2)
type RequestsSection struct {
	RequestedItems []string `json:"requested_items"`
	ScopeLimits    []string `json:"scope_limits"`
}

// ProvisionSection states what to provide and withhold (section 3)
type ProvisionSection struct {
	WhatToProvide       []string `json:"what_to_provide"`
	WhatNotToProvide    []string `json:"what_not_to_provide"`
	DocumentHandling    []string `json:"document_handling,omitempty"`
	CommunicationLimits []string `json:"communication_limits,omitempty"`
}

// StrategySection carries the preparation strategy (section 4)
type StrategySection struct {
	AllowedActions    []string `json:"allowed_actions"`
	ProhibitedActions []string `json:"prohibited_actions"`
	MaxNarrativeLines int      `json:"max_narrative_lines,omitempty"`
	PreparationSteps  []string `json:"preparation_steps,omitempty"`
}

// HardStopEntry renders one hard-stop condition in the escalation section
type HardStopEntry struct {
	Condition string `json:"condition"`
	Message   string `json:"message"`
	Reasoning string `json:"reasoning"`
}

// EscalationSection states escalation status and stop conditions (section 5)
type EscalationSection struct {
	EscalationRequired bool            `json:"escalation_required"`
	RiskLevel          string          `json:"risk_level"`
	HardStopConditions []HardStopEntry `json:"hard_stop_conditions,omitempty"`
	Warnings           []string        `json:"warnings,omitempty"`
	EscalationTriggers []string        `json:"escalation_triggers,omitempty"`
	Recommendation     string          `json:"recommendation,omitempty"`
	AllowSelfResponse  bool            `json:"allow_self_response"`
}

// OutlineSection carries the response outline or escalation text (section 6)
type OutlineSection struct {
	EscalationText     string   `json:"escalation_text,omitempty"` // Set when no self-response outline exists
	RequiredSections   []string `json:"required_sections,omitempty"`
	ProhibitedContent  []string `json:"prohibited_content,omitempty"`
	FormatRequirements []string `json:"format_requirements,omitempty"`
}

// AdvisorySection is the professional-representation advisory (section 7)
type AdvisorySection struct {
	RepresentationRecommended bool     `json:"representation_recommended"`
	Urgency                   string   `json:"urgency"`
	Message                   string   `json:"message"`
	Reasons                   []string `json:"reasons,omitempty"`
	ProfessionalTypes         []string `json:"professional_types"`
	Resources                 []string `json:"resources"`
}

// DeadlineSection renders the deadline information (section 8)
type DeadlineSection struct {
	NoticeDate       string `json:"notice_date"`
	ResponseDeadline string `json:"response_deadline"`
	DaysRemaining    string `json:"days_remaining"`
	Urgency          string `json:"urgency"`
	Recommendation   string `json:"recommendation"`
}
