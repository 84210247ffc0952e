package model

// LargeDollarThreshold is the dollar exposure above which an audit is
// treated as large-dollar (hard stop territory)
const LargeDollarThreshold = 25000

// AuditScope describes what the notice says is under examination.
// Derived deterministically from notice text; IsMultiYear and IsLargeDollar
// are pure functions of TaxYears and EstimatedDollarAmount.
type AuditScope struct {
	TaxYears              []int    `json:"tax_years"`         // Sorted, deduplicated
	Items                 []string `json:"items"`             // Deduplicated, notice order
	EstimatedDollarAmount float64  `json:"estimated_dollar_amount"`
	IsMultiYear           bool     `json:"is_multi_year"`
	IsLargeDollar         bool     `json:"is_large_dollar"`
}

// ContainsYear reports whether year is part of the audited scope
func (s *AuditScope) ContainsYear(year int) bool {
	for _, y := range s.TaxYears {
		if y == year {
			return true
		}
	}
	return false
}
