package validate

import (
	"strings"
	"testing"

	"github.com/jhouston2019/auditintel/internal/model"
)

const compliantDraft = `Re: Examination Notice, Tax Year 2023
Date: March 1, 2026

Enclosed are the requested documents for tax year 2023.
A transmittal list is attached.
Copies provided, originals retained.`

func TestValidateResponse_Compliant(t *testing.T) {
	result := ValidateResponse(model.AuditCorrespondence, compliantDraft)

	if !result.Valid {
		t.Errorf("expected valid draft, got errors %v", result.Errors)
	}
}

func TestValidateResponse_VolunteeredInformation(t *testing.T) {
	draft := `Re: Examination Notice, Tax Year 2023

Enclosed are the requested documents.
In addition to the requested documents, I am including my home office
measurements and utility bills.`

	result := ValidateResponse(model.AuditCorrespondence, draft)

	if result.Valid {
		t.Fatal("volunteering language must invalidate the draft")
	}
	found := false
	for _, e := range result.Errors {
		if strings.Contains(e, "volunteer_information") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected volunteer_information error, got %v", result.Errors)
	}
}

func TestValidateResponse_ExplanationLanguage(t *testing.T) {
	draft := "The deduction is correct because I work from home."

	result := ValidateResponse(model.AuditCorrespondence, draft)
	if result.Valid {
		t.Fatal("explanation language must invalidate the draft")
	}
	found := false
	for _, e := range result.Errors {
		if strings.Contains(e, "explain_beyond_request") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected explain_beyond_request error, got %v", result.Errors)
	}
}

func TestValidateResponse_DisputeLanguage(t *testing.T) {
	result := ValidateResponse(model.AuditCorrespondence, "I dispute these findings.")
	if result.Valid {
		t.Fatal("dispute language must invalidate the draft")
	}
}

func TestValidateResponse_NarrativeBudget(t *testing.T) {
	// Six narrative lines against the correspondence maximum of five
	draft := `Line one of narrative.
Line two of narrative.
Line three of narrative.
Line four of narrative.
Line five of narrative.
Line six of narrative.`

	result := ValidateResponse(model.AuditCorrespondence, draft)
	if result.Valid {
		t.Fatal("over-budget narrative must invalidate the draft")
	}
	found := false
	for _, e := range result.Errors {
		if strings.Contains(e, "Narrative too long: 6 lines (max: 5)") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected narrative budget error, got %v", result.Errors)
	}
}

func TestValidateResponse_UnknownType(t *testing.T) {
	result := ValidateResponse(model.AuditType("bogus"), "anything")
	if result.Valid {
		t.Error("unknown audit type must be invalid")
	}
}

func TestCountNarrativeLines(t *testing.T) {
	draft := `Re: Notice CP notice
Date: March 1, 2026

DOCUMENTS PROVIDED:
Bank statement summary.
Receipt copies.

`
	if got := CountNarrativeLines(draft); got != 2 {
		t.Errorf("expected 2 narrative lines, got %d", got)
	}
}

func TestCheckScopeExpansion_Years(t *testing.T) {
	scope := &model.AuditScope{TaxYears: []int{2023}}
	check := CheckScopeExpansion(scope, "Documents for 2023 are enclosed. My 2021 and 2022 returns were similar.")

	if !check.HasExpansionRisk {
		t.Fatal("expected expansion risk for out-of-scope years")
	}
	var years []int
	for _, risk := range check.Risks {
		if len(risk.Years) > 0 {
			years = risk.Years
		}
	}
	if len(years) != 2 || years[0] != 2021 || years[1] != 2022 {
		t.Errorf("expected [2021 2022], got %v", years)
	}
}

func TestCheckScopeExpansion_Volunteering(t *testing.T) {
	scope := &model.AuditScope{TaxYears: []int{2023}}
	check := CheckScopeExpansion(scope, "Additionally, here is my full ledger for 2023.")

	if !check.HasExpansionRisk {
		t.Fatal("expected volunteering risk")
	}
	if !strings.Contains(check.Risks[0].Risk, "volunteer") {
		t.Errorf("unexpected risk %q", check.Risks[0].Risk)
	}
}

func TestCheckScopeExpansion_Clean(t *testing.T) {
	scope := &model.AuditScope{TaxYears: []int{2023}}
	check := CheckScopeExpansion(scope, "Enclosed are the requested 2023 documents.")

	if check.HasExpansionRisk {
		t.Errorf("expected no risk, got %+v", check.Risks)
	}
}

func TestCheckSafety(t *testing.T) {
	tests := []struct {
		name      string
		draft     string
		wantIssue string
	}{
		{"admission", "I admit the deduction was too large.", "Unintended admission"},
		{"ignorance", "I wasn't aware of that requirement.", "Ignorance admission"},
		{"other years", "My previous returns show the same pattern.", "Scope expansion"},
		{"incrimination", "Some payments were in cash.", "Potential self-incrimination"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := CheckSafety(tt.draft)
			found := false
			for _, issue := range issues {
				if issue.Issue == tt.wantIssue {
					found = true
					if issue.Severity != "high" {
						t.Errorf("safety issues are high severity, got %s", issue.Severity)
					}
				}
			}
			if !found {
				t.Errorf("expected issue %q, got %+v", tt.wantIssue, issues)
			}
		})
	}
}

func TestCheckSafety_Clean(t *testing.T) {
	if issues := CheckSafety(compliantDraft); len(issues) != 0 {
		t.Errorf("expected no safety issues, got %+v", issues)
	}
}

func TestValidateProposedResponse_Combined(t *testing.T) {
	scope := &model.AuditScope{TaxYears: []int{2023}}
	draft := `In addition to the requested documents, I am including records
from 2021. I admit some receipts are missing.`

	result := ValidateProposedResponse(model.AuditCorrespondence, draft, scope)

	if result.Valid {
		t.Error("expected invalid result")
	}
	if len(result.Warnings) == 0 {
		t.Error("expected scope-expansion warnings")
	}
	if len(result.SafetyIssues) == 0 {
		t.Error("expected safety issues")
	}
}

func TestValidateProposedResponse_NilScope(t *testing.T) {
	result := ValidateProposedResponse(model.AuditCorrespondence, compliantDraft, nil)

	if !result.Valid {
		t.Errorf("expected valid result, got %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("nil scope skips expansion warnings, got %v", result.Warnings)
	}
}
