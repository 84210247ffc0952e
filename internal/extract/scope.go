package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jhouston2019/auditintel/internal/model"
)

// Accepted calendar range for extracted tax years. Years outside this range
// are treated as spurious matches (form numbers, amounts, etc.).
const (
	minTaxYear = 2015
	maxTaxYear = 2025
)

var yearPattern = regexp.MustCompile(`\b(20\d{2})\b`)

// itemPatterns are the category-indicative phrases that mark audited items:
// schedule letters, form numbers, and named deduction categories
var itemPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)schedule\s+[A-Z]\b`),
	regexp.MustCompile(`(?i)form\s+\d{4}`),
	regexp.MustCompile(`(?i)charitable\s+contributions?|donations?`),
	regexp.MustCompile(`(?i)business\s+expenses?`),
	regexp.MustCompile(`(?i)home\s+office`),
	regexp.MustCompile(`(?i)vehicle\s+expenses?|mileage`),
	regexp.MustCompile(`(?i)travel\s+expenses?`),
	regexp.MustCompile(`(?i)meals?\s+and\s+entertainment`),
}

var dollarPattern = regexp.MustCompile(`\$[\d,]+(?:\.\d{2})?`)

// ScopeExtractor derives the audit scope from accepted notice text
type ScopeExtractor struct{}

// NewScopeExtractor creates a new scope extractor
func NewScopeExtractor() *ScopeExtractor {
	return &ScopeExtractor{}
}

// Scope extracts tax years, audited items, and dollar exposure. Extraction
// is idempotent; absent amounts resolve to zero, not an error.
func (e *ScopeExtractor) Scope(text string) model.AuditScope {
	years := extractTaxYears(text)
	amount := extractDollarAmount(text)

	return model.AuditScope{
		TaxYears:              years,
		Items:                 extractItems(text),
		EstimatedDollarAmount: amount,
		IsMultiYear:           len(years) > 1,
		IsLargeDollar:         amount > model.LargeDollarThreshold,
	}
}

// extractTaxYears pulls all in-range 20xx years, deduplicated and sorted
func extractTaxYears(text string) []int {
	seen := make(map[int]bool)
	var years []int

	for _, match := range yearPattern.FindAllString(text, -1) {
		year, err := strconv.Atoi(match)
		if err != nil || year < minTaxYear || year > maxTaxYear {
			continue
		}
		if !seen[year] {
			seen[year] = true
			years = append(years, year)
		}
	}

	sort.Ints(years)
	return years
}

// extractItems pulls item mentions in notice order, deduplicated
// case-insensitively
func extractItems(text string) []string {
	seen := make(map[string]bool)
	var items []string

	for _, pattern := range itemPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			key := strings.ToLower(strings.TrimSpace(match))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			items = append(items, strings.TrimSpace(match))
		}
	}

	return items
}

// extractDollarAmount returns the maximum currency amount found, or zero
func extractDollarAmount(text string) float64 {
	var max float64

	for _, match := range dollarPattern.FindAllString(text, -1) {
		cleaned := strings.NewReplacer("$", "", ",", "").Replace(match)
		amount, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			continue
		}
		if amount > max {
			max = amount
		}
	}

	return max
}
