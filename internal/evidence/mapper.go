package evidence

import (
	"strings"

	"github.com/jhouston2019/auditintel/internal/model"
)

// categories holds the static handling rule per document category.
// Defaults are deliberately restrictive: summarize rather than attach,
// exclude rather than summarize, personal_records as the fallback.
var categories = map[model.DocumentCategory]model.CategoryHandling{
	model.CategoryBankStatements: {
		Name:                    "Bank Statements",
		DefaultMode:             model.ModeSummarize,
		AttachmentJustification: "Only if specific transactions are questioned",
		RedactionRequired:       true,
		RedactItems:             []string{"account numbers", "unrelated transactions"},
	},
	model.CategoryReceipts: {
		Name:                    "Receipts",
		DefaultMode:             model.ModeAttach,
		AttachmentJustification: "Required to substantiate expenses",
	},
	model.CategoryInvoices: {
		Name:                    "Invoices",
		DefaultMode:             model.ModeAttach,
		AttachmentJustification: "Required to substantiate expenses",
	},
	model.CategoryContracts: {
		Name:                    "Contracts/Agreements",
		DefaultMode:             model.ModeSummarize,
		AttachmentJustification: "Only if contract terms are disputed",
		RedactionRequired:       true,
		RedactItems:             []string{"personal information", "unrelated clauses"},
	},
	model.CategoryCorrespondence: {
		Name:                    "Correspondence",
		DefaultMode:             model.ModeExclude,
		AttachmentJustification: "Only if directly requested",
		RedactionRequired:       true,
		RedactItems:             []string{"personal communications", "privileged information"},
	},
	model.CategoryTaxReturns: {
		Name:                    "Tax Returns",
		DefaultMode:             model.ModeSummarize,
		AttachmentJustification: "IRS already has these - only provide if specifically requested",
	},
	model.CategoryFinancialStatements: {
		Name:                    "Financial Statements",
		DefaultMode:             model.ModeSummarize,
		AttachmentJustification: "Only if financial condition is at issue",
		RedactionRequired:       true,
		RedactItems:             []string{"unrelated assets", "personal accounts"},
	},
	model.CategoryPersonalRecords: {
		Name:                    "Personal Records",
		DefaultMode:             model.ModeExclude,
		AttachmentJustification: "Rarely justified - seek professional advice",
		RedactionRequired:       true,
		RedactItems:             []string{"all personal information"},
	},
}

// Mapper classifies requested items into document-handling categories
type Mapper struct{}

// NewMapper creates a new evidence mapper
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapRequestedItems maps each scope item to its category's handling rule
func (m *Mapper) MapRequestedItems(scope *model.AuditScope) []model.EvidenceMapping {
	var mappings []model.EvidenceMapping

	for _, item := range scope.Items {
		category := Categorize(item)
		handling := categories[category]

		mappings = append(mappings, model.EvidenceMapping{
			RequestedItem:           item,
			Category:                category,
			CategoryName:            handling.Name,
			RecommendedMode:         handling.DefaultMode,
			AttachmentJustification: handling.AttachmentJustification,
			RedactionRequired:       handling.RedactionRequired,
			RedactItems:             handling.RedactItems,
			Warning:                 handlingWarning(handling),
		})
	}

	return mappings
}

// Categorize assigns an item to a document category by substring matching.
// Unmatched items default to personal_records, the most restrictive
// category.
func Categorize(item string) model.DocumentCategory {
	lower := strings.ToLower(item)

	switch {
	case strings.Contains(lower, "bank") || strings.Contains(lower, "statement"):
		return model.CategoryBankStatements
	case strings.Contains(lower, "receipt"):
		return model.CategoryReceipts
	case strings.Contains(lower, "invoice"):
		return model.CategoryInvoices
	case strings.Contains(lower, "contract") || strings.Contains(lower, "agreement"):
		return model.CategoryContracts
	case strings.Contains(lower, "correspondence") || strings.Contains(lower, "letter") || strings.Contains(lower, "email"):
		return model.CategoryCorrespondence
	case strings.Contains(lower, "return") || strings.Contains(lower, "1040"):
		return model.CategoryTaxReturns
	case strings.Contains(lower, "financial") || strings.Contains(lower, "balance sheet"):
		return model.CategoryFinancialStatements
	default:
		return model.CategoryPersonalRecords
	}
}

// Handling returns the static handling rule for a category
func Handling(category model.DocumentCategory) (model.CategoryHandling, bool) {
	h, ok := categories[category]
	return h, ok
}

// handlingWarning derives the caution text for a handling rule
func handlingWarning(handling model.CategoryHandling) string {
	switch {
	case handling.DefaultMode == model.ModeExclude:
		return "WARNING: Do not provide unless explicitly required. Seek professional advice."
	case handling.DefaultMode == model.ModeSummarize:
		return "CAUTION: Summarize only. Do not attach without justification."
	case handling.RedactionRequired:
		return "REDACTION REQUIRED: Remove all sensitive information before providing."
	default:
		return ""
	}
}

// RedactionGuidance describes how to redact documents in a category before
// providing them
func RedactionGuidance(category model.DocumentCategory) model.RedactionGuidance {
	handling := categories[category]

	if !handling.RedactionRequired {
		return model.RedactionGuidance{
			Instructions: []string{"No redaction required for this document type"},
		}
	}

	return model.RedactionGuidance{
		Required: true,
		Items:    handling.RedactItems,
		Instructions: []string{
			"Use black marker or digital redaction tool",
			"Ensure redacted information is completely obscured",
			"Do not use highlighting or white-out",
			"Note redactions on transmittal list",
		},
		Example: "Redact: " + strings.Join(handling.RedactItems, ", "),
	}
}
