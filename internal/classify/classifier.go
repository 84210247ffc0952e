package classify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jhouston2019/auditintel/internal/model"
)

// auditTypeSpec pairs an audit type with its recognition patterns.
// Order matters: the first spec with any matching pattern wins.
type auditTypeSpec struct {
	id                   model.AuditType
	name                 string
	patterns             []*regexp.Regexp
	riskLevel            model.RiskLevel
	requiresProfessional bool
}

// auditTypes is scanned in declared order after the rejection scan
var auditTypes = []auditTypeSpec{
	{
		id:   model.AuditCorrespondence,
		name: "Correspondence Audit",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)correspondence\s+audit`),
			regexp.MustCompile(`(?i)audit\s+by\s+mail`),
			regexp.MustCompile(`(?i)examination\s+by\s+correspondence`),
		},
		riskLevel:            model.RiskMedium,
		requiresProfessional: false,
	},
	{
		id:   model.AuditOffice,
		name: "Office Audit",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)office\s+audit`),
			regexp.MustCompile(`(?i)examination\s+appointment`),
			regexp.MustCompile(`(?i)visit\s+our\s+office`),
			regexp.MustCompile(`(?i)scheduled\s+examination`),
		},
		riskLevel:            model.RiskHigh,
		requiresProfessional: true,
	},
	{
		id:   model.AuditField,
		name: "Field Audit",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)field\s+audit`),
			regexp.MustCompile(`(?i)field\s+examination`),
			regexp.MustCompile(`(?i)revenue\s+agent`),
			regexp.MustCompile(`(?i)visit\s+your\s+(business|location|premises)`),
		},
		riskLevel:            model.RiskCritical,
		requiresProfessional: true,
	},
	{
		id:   model.AuditDocumentRequest,
		name: "Information Document Request (IDR)",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)information\s+document\s+request`),
			regexp.MustCompile(`IDR`),
			regexp.MustCompile(`(?i)request\s+for\s+documents`),
			regexp.MustCompile(`(?i)examination\s+.*\s+documents`),
		},
		riskLevel:            model.RiskMedium,
		requiresProfessional: false,
	},
	{
		id:   model.AuditFollowUp,
		name: "Follow-Up Audit Notice",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)follow[\s-]up\s+to\s+audit`),
			regexp.MustCompile(`(?i)additional\s+examination`),
			regexp.MustCompile(`(?i)continued\s+audit`),
			regexp.MustCompile(`(?i)30[\s-]day\s+letter`),
			regexp.MustCompile(`(?i)90[\s-]day\s+letter`),
		},
		riskLevel:            model.RiskHigh,
		requiresProfessional: true,
	},
}

// rejectedCodes are non-audit notice codes that force immediate rejection.
// Scanned before any audit pattern: rejection always precedes acceptance.
var rejectedCodes = []string{
	"CP2000", "CP2001", "CP2002", "CP2003", // Proposed assessments
	"CP14", "CP15", "CP16", "CP161", // Balance due
	"CP53", "CP54", "CP55", // Refund holds
	"5071C", "5747C", "4883C", // Identity verification
	"1099-K", "1099-MISC", "1099-NEC", // Information returns
}

var genericAuditPattern = regexp.MustCompile(`(?i)\b(audit|examination|examine)\b`)

// Classifier determines whether notice text is an audit notice and, if so,
// which type. Classification is deterministic pattern matching; ambiguous
// text is rejected rather than analyzed.
type Classifier struct{}

// NewClassifier creates a new classifier
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify classifies notice text. Rejection order is deliberate: known
// non-audit codes first, then audit-type groups in declared order, then
// default rejection.
func (c *Classifier) Classify(text string) model.Classification {
	lower := strings.ToLower(text)

	for _, code := range rejectedCodes {
		if strings.Contains(lower, strings.ToLower(code)) {
			return model.Classification{
				Rejected:     true,
				RejectedType: code,
				Message:      fmt.Sprintf("This is a %s notice, not an audit. This system only processes IRS audits and examinations.", code),
				RedirectTo:   model.RedirectLetterHelp,
			}
		}
	}

	for _, spec := range auditTypes {
		for _, pattern := range spec.patterns {
			if pattern.MatchString(text) {
				return model.Classification{
					IsAudit:              true,
					Type:                 spec.id,
					Name:                 spec.name,
					RiskLevel:            spec.riskLevel,
					RequiresProfessional: spec.requiresProfessional,
					Confidence:           confidence(text, spec),
				}
			}
		}
	}

	return model.Classification{
		Rejected:     true,
		RejectedType: model.RejectedUnknown,
		Message:      "This does not appear to be an IRS audit or examination notice. This system only processes audit-related correspondence.",
		RedirectTo:   model.RedirectLetterHelp,
	}
}

// confidence scores a classification from the winning type's pattern group:
// min(95, 60 + 15*matches), +10 for explicit audit vocabulary, capped at 95
func confidence(text string, spec auditTypeSpec) int {
	matches := 0
	for _, pattern := range spec.patterns {
		if pattern.MatchString(text) {
			matches++
		}
	}

	score := 60 + matches*15
	if score > 95 {
		score = 95
	}
	if genericAuditPattern.MatchString(text) {
		score += 10
	}
	if score > 95 {
		score = 95
	}

	return score
}
