package model

// SafetyIssue is one dangerous-language finding in a draft response
type SafetyIssue struct {
	Severity       string `json:"severity"` // "critical" or "high"
	Issue          string `json:"issue"`
	Recommendation string `json:"recommendation"`
}

// ValidationResult is the outcome of checking a caller-drafted response
// against the playbook constraints for its audit type
type ValidationResult struct {
	Valid        bool          `json:"valid"`
	Errors       []string      `json:"errors,omitempty"`
	Warnings     []string      `json:"warnings,omitempty"`
	SafetyIssues []SafetyIssue `json:"safety_issues,omitempty"`
}

// ExpansionRisk is one scope-expansion finding in a draft response
type ExpansionRisk struct {
	Risk           string `json:"risk"`
	Years          []int  `json:"years,omitempty"`
	Recommendation string `json:"recommendation"`
}

// ExpansionCheck summarizes scope-expansion risks in a draft response
type ExpansionCheck struct {
	HasExpansionRisk bool            `json:"has_expansion_risk"`
	Risks            []ExpansionRisk `json:"risks"`
}
