// Package validate checks caller-drafted responses against playbook
// constraints. It depends only on the static playbook tables, not on a live
// pipeline run.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jhouston2019/auditintel/internal/model"
	"github.com/jhouston2019/auditintel/internal/playbook"
)

// prohibitedPatterns maps prohibited-action identifiers to the language
// that indicates them in a draft
var prohibitedPatterns = map[string]*regexp.Regexp{
	"volunteer_information":          regexp.MustCompile(`(?i)in addition|also|furthermore|additionally`),
	"explain_beyond_request":         regexp.MustCompile(`(?i)because|the reason|to clarify|let me explain`),
	"dispute_without_representation": regexp.MustCompile(`(?i)disagree|contest|challenge|dispute`),
	"volunteer_context":              regexp.MustCompile(`(?i)in addition|also|furthermore|additionally`),
	"explain_beyond_necessity":       regexp.MustCompile(`(?i)because|the reason|to clarify|let me explain`),
}

// dangerousPatterns flag language that creates legal exposure regardless of
// playbook type
var dangerousPatterns = []struct {
	pattern *regexp.Regexp
	issue   string
}{
	{regexp.MustCompile(`(?i)I admit|I acknowledge that I`), "Unintended admission"},
	{regexp.MustCompile(`(?i)I didn't know|I wasn't aware`), "Ignorance admission"},
	{regexp.MustCompile(`(?i)other years|previous returns`), "Scope expansion"},
	{regexp.MustCompile(`(?i)cash|unreported`), "Potential self-incrimination"},
}

var volunteeringPattern = regexp.MustCompile(`(?i)in addition|also|furthermore|additionally`)

var draftYearPattern = regexp.MustCompile(`\b(20\d{2})\b`)

// headerLinePattern matches structural section headers, which do not count
// against the narrative budget
var headerLinePattern = regexp.MustCompile(`^[A-Z\s]+:$`)

// ValidateResponse checks a draft against its audit type's playbook:
// prohibited-action language and the narrative-line budget
func ValidateResponse(auditType model.AuditType, draft string) model.ValidationResult {
	pb := playbook.Get(auditType)
	if pb == nil {
		return model.ValidationResult{
			Valid:  false,
			Errors: []string{"Invalid audit type"},
		}
	}

	var errors []string

	for _, prohibited := range pb.ProhibitedActions {
		pattern, ok := prohibitedPatterns[prohibited]
		if !ok {
			continue
		}
		if pattern.MatchString(draft) {
			errors = append(errors, fmt.Sprintf("Prohibited action detected: %s", prohibited))
		}
	}

	lines := CountNarrativeLines(draft)
	if lines > pb.MaxNarrativeLines {
		errors = append(errors, fmt.Sprintf("Narrative too long: %d lines (max: %d)", lines, pb.MaxNarrativeLines))
	}

	return model.ValidationResult{
		Valid:  len(errors) == 0,
		Errors: errors,
	}
}

// CheckScopeExpansion flags tax years mentioned in a draft that are absent
// from the audited scope, and volunteering connective language
func CheckScopeExpansion(scope *model.AuditScope, draft string) model.ExpansionCheck {
	var risks []model.ExpansionRisk

	var unauthorized []int
	seen := make(map[int]bool)
	for _, match := range draftYearPattern.FindAllString(draft, -1) {
		year, err := strconv.Atoi(match)
		if err != nil || seen[year] {
			continue
		}
		seen[year] = true
		if !scope.ContainsYear(year) {
			unauthorized = append(unauthorized, year)
		}
	}
	if len(unauthorized) > 0 {
		risks = append(risks, model.ExpansionRisk{
			Risk:           "Mentions tax years not under audit",
			Years:          unauthorized,
			Recommendation: "Remove references to years not specified in audit notice",
		})
	}

	if volunteeringPattern.MatchString(draft) {
		risks = append(risks, model.ExpansionRisk{
			Risk:           "Appears to volunteer additional information",
			Recommendation: "Only respond to what is explicitly requested",
		})
	}

	return model.ExpansionCheck{
		HasExpansionRisk: len(risks) > 0,
		Risks:            risks,
	}
}

// CheckSafety scans a draft for dangerous language independent of playbook
// type
func CheckSafety(draft string) []model.SafetyIssue {
	var issues []model.SafetyIssue

	for _, d := range dangerousPatterns {
		if d.pattern.MatchString(draft) {
			issues = append(issues, model.SafetyIssue{
				Severity:       "high",
				Issue:          d.issue,
				Recommendation: "Remove this language before submitting",
			})
		}
	}

	return issues
}

// ValidateProposedResponse combines the playbook validation, the
// scope-expansion check, and the safety scan into one caller-facing result
func ValidateProposedResponse(auditType model.AuditType, draft string, scope *model.AuditScope) model.ValidationResult {
	result := ValidateResponse(auditType, draft)

	if scope != nil {
		expansion := CheckScopeExpansion(scope, draft)
		for _, risk := range expansion.Risks {
			result.Warnings = append(result.Warnings, risk.Risk)
		}
	}

	result.SafetyIssues = CheckSafety(draft)

	return result
}

// CountNarrativeLines counts non-empty lines that are neither reference
// headers, date lines, nor section headers
func CountNarrativeLines(draft string) int {
	count := 0
	for _, line := range strings.Split(draft, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "Re:") || strings.HasPrefix(trimmed, "Date:") {
			continue
		}
		if headerLinePattern.MatchString(trimmed) {
			continue
		}
		count++
	}
	return count
}
