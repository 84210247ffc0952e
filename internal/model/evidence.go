package model

// EvidenceMode is the recommended disclosure mode for a document category
type EvidenceMode string

const (
	ModeSummarize EvidenceMode = "summarize" // Describe what you have
	ModeAttach    EvidenceMode = "attach"    // Only where explicitly justified
	ModeExclude   EvidenceMode = "exclude"   // Do not mention or provide
)

// DocumentCategory classifies a requested item into one of eight
// document-handling categories
type DocumentCategory string

const (
	CategoryBankStatements      DocumentCategory = "bank_statements"
	CategoryReceipts            DocumentCategory = "receipts"
	CategoryInvoices            DocumentCategory = "invoices"
	CategoryContracts           DocumentCategory = "contracts"
	CategoryCorrespondence      DocumentCategory = "correspondence"
	CategoryTaxReturns          DocumentCategory = "tax_returns"
	CategoryFinancialStatements DocumentCategory = "financial_statements"
	CategoryPersonalRecords     DocumentCategory = "personal_records" // Most restrictive default
)

// CategoryHandling is the static handling rule for a document category
type CategoryHandling struct {
	Name                    string       `json:"name"`
	DefaultMode             EvidenceMode `json:"default_mode"`
	AttachmentJustification string       `json:"attachment_justification"`
	RedactionRequired       bool         `json:"redaction_required"`
	RedactItems             []string     `json:"redact_items"`
}

// EvidenceMapping is the handling recommendation for one requested item
type EvidenceMapping struct {
	RequestedItem           string           `json:"requested_item"`
	Category                DocumentCategory `json:"category"`
	CategoryName            string           `json:"category_name"`
	RecommendedMode         EvidenceMode     `json:"recommended_mode"`
	AttachmentJustification string           `json:"attachment_justification"`
	RedactionRequired       bool             `json:"redaction_required"`
	RedactItems             []string         `json:"redact_items"`
	Warning                 string           `json:"warning,omitempty"`
}

// ProvidedDocument describes one document a caller intends to submit
type ProvidedDocument struct {
	Description string           `json:"description"`
	Pages       int              `json:"pages"`
	DateRange   string           `json:"date_range,omitempty"`
	TaxYear     int              `json:"tax_year,omitempty"`
	Category    DocumentCategory `json:"category,omitempty"`
}

// DisclosureRisk is one over-disclosure finding
type DisclosureRisk struct {
	Severity       string `json:"severity"` // "high" or "medium"
	Issue          string `json:"issue"`
	Count          int    `json:"count"`
	Recommendation string `json:"recommendation"`
}

// DisclosureReport summarizes over-disclosure checks on a document set
type DisclosureReport struct {
	HasRisks              bool             `json:"has_risks"`
	Risks                 []DisclosureRisk `json:"risks"`
	OverallRecommendation string           `json:"overall_recommendation"`
}

// TransmittalEntry is one numbered document on a transmittal list
type TransmittalEntry struct {
	Number      int              `json:"number"`
	Description string           `json:"description"`
	Pages       int              `json:"pages"`
	DateRange   string           `json:"date_range"`
	Category    DocumentCategory `json:"category,omitempty"`
}

// TransmittalList enumerates every document provided in a response
type TransmittalList struct {
	Header         string             `json:"header"`
	Instructions   []string           `json:"instructions"`
	Documents      []TransmittalEntry `json:"documents"`
	TotalDocuments int                `json:"total_documents"`
	TotalPages     int                `json:"total_pages"`
}

// RedactionGuidance describes how to redact documents in a category before
// providing them
type RedactionGuidance struct {
	Required     bool     `json:"required"`
	Items        []string `json:"items"`
	Instructions []string `json:"instructions"`
	Example      string   `json:"example,omitempty"`
}
