package model

// AuditType identifies one of the recognized audit notice categories
type AuditType string

const (
	AuditCorrespondence  AuditType = "correspondence_audit"
	AuditOffice          AuditType = "office_audit"
	AuditField           AuditType = "field_audit"
	AuditDocumentRequest AuditType = "document_request"
	AuditFollowUp        AuditType = "follow_up_audit"
)

// RiskLevel grades the severity of an audit
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RejectedUnknown is the rejection type used when a notice matches neither
// a known non-audit code nor any audit pattern
const RejectedUnknown = "unknown_non_audit"

// RedirectLetterHelp is the redirect hint attached to every rejection
const RedirectLetterHelp = "tax_letter_help"

// Classification is the outcome of notice classification.
// Exactly one of two shapes is populated: a rejection (Rejected=true,
// RejectedType set) or an accepted audit (IsAudit=true, Type set).
// Created once per analysis and never mutated.
type Classification struct {
	IsAudit      bool   `json:"is_audit"`
	Rejected     bool   `json:"rejected"`
	RejectedType string `json:"rejected_type,omitempty"` // Notice code (e.g., "CP2000") or RejectedUnknown
	Message      string `json:"message,omitempty"`       // Rejection explanation for the caller
	RedirectTo   string `json:"redirect_to,omitempty"`   // Where rejected notices should be routed

	Type                 AuditType `json:"type,omitempty"`
	Name                 string    `json:"name,omitempty"` // Display name (e.g., "Correspondence Audit")
	RiskLevel            RiskLevel `json:"risk_level,omitempty"`
	RequiresProfessional bool      `json:"requires_professional"`
	Confidence           int       `json:"confidence"` // 0-100
}
