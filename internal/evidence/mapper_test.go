package evidence

import (
	"strings"
	"testing"

	"github.com/jhouston2019/auditintel/internal/model"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		item string
		want model.DocumentCategory
	}{
		{"Bank statements for all business accounts", model.CategoryBankStatements},
		{"Receipts for travel expenses", model.CategoryReceipts},
		{"Vendor invoices", model.CategoryInvoices},
		{"Lease agreement", model.CategoryContracts},
		{"Letter from your accountant", model.CategoryCorrespondence},
		{"Copy of Form 1040", model.CategoryTaxReturns},
		{"Balance sheet for 2023", model.CategoryFinancialStatements},
		{"Home Office", model.CategoryPersonalRecords},
		{"Mileage Logs", model.CategoryPersonalRecords},
	}

	for _, tt := range tests {
		if got := Categorize(tt.item); got != tt.want {
			t.Errorf("Categorize(%q): expected %s, got %s", tt.item, tt.want, got)
		}
	}
}

func TestMapRequestedItems(t *testing.T) {
	scope := &model.AuditScope{
		TaxYears: []int{2023},
		Items:    []string{"Bank Statements", "Receipts", "Home Office"},
	}

	mappings := NewMapper().MapRequestedItems(scope)
	if len(mappings) != 3 {
		t.Fatalf("expected 3 mappings, got %d", len(mappings))
	}

	bank := mappings[0]
	if bank.Category != model.CategoryBankStatements {
		t.Errorf("expected bank_statements, got %s", bank.Category)
	}
	if bank.RecommendedMode != model.ModeSummarize {
		t.Errorf("bank statements default to summarize, got %s", bank.RecommendedMode)
	}
	if !bank.RedactionRequired {
		t.Error("bank statements require redaction")
	}
	if !strings.HasPrefix(bank.Warning, "CAUTION") {
		t.Errorf("summarize mode carries a caution, got %q", bank.Warning)
	}

	receipts := mappings[1]
	if receipts.RecommendedMode != model.ModeAttach {
		t.Errorf("receipts default to attach, got %s", receipts.RecommendedMode)
	}
	if receipts.Warning != "" {
		t.Errorf("attach without redaction carries no warning, got %q", receipts.Warning)
	}

	// Unrecognized items fall into the most restrictive category
	personal := mappings[2]
	if personal.Category != model.CategoryPersonalRecords {
		t.Errorf("expected personal_records fallback, got %s", personal.Category)
	}
	if personal.RecommendedMode != model.ModeExclude {
		t.Errorf("personal records default to exclude, got %s", personal.RecommendedMode)
	}
	if !strings.HasPrefix(personal.Warning, "WARNING") {
		t.Errorf("exclude mode carries a warning, got %q", personal.Warning)
	}
}

func TestMapRequestedItems_Empty(t *testing.T) {
	mappings := NewMapper().MapRequestedItems(&model.AuditScope{TaxYears: []int{2023}})
	if len(mappings) != 0 {
		t.Errorf("expected no mappings for empty items, got %d", len(mappings))
	}
}

func TestRedactionGuidance(t *testing.T) {
	g := RedactionGuidance(model.CategoryBankStatements)
	if !g.Required {
		t.Fatal("bank statements require redaction")
	}
	if len(g.Items) == 0 || g.Items[0] != "account numbers" {
		t.Errorf("unexpected redact items %v", g.Items)
	}
	if !strings.Contains(g.Example, "account numbers") {
		t.Errorf("example should list the items, got %q", g.Example)
	}

	g = RedactionGuidance(model.CategoryReceipts)
	if g.Required {
		t.Error("receipts do not require redaction")
	}
	if len(g.Instructions) != 1 {
		t.Errorf("expected the single no-redaction note, got %v", g.Instructions)
	}
}

func TestCheckOverDisclosure_OutOfScopeYears(t *testing.T) {
	scope := &model.AuditScope{TaxYears: []int{2023}}
	docs := []model.ProvidedDocument{
		{Description: "2023 receipts", TaxYear: 2023, Category: model.CategoryReceipts},
		{Description: "2021 receipts", TaxYear: 2021, Category: model.CategoryReceipts},
		{Description: "2022 invoices", TaxYear: 2022, Category: model.CategoryInvoices},
	}

	report := CheckOverDisclosure(docs, scope)
	if !report.HasRisks {
		t.Fatal("expected risks for out-of-scope documents")
	}
	if len(report.Risks) != 1 {
		t.Fatalf("expected 1 risk, got %d: %+v", len(report.Risks), report.Risks)
	}
	risk := report.Risks[0]
	if risk.Severity != "high" || risk.Count != 2 {
		t.Errorf("expected high severity with count 2, got %+v", risk)
	}
}

func TestCheckOverDisclosure_BulkSubmission(t *testing.T) {
	scope := &model.AuditScope{TaxYears: []int{2023}}
	docs := make([]model.ProvidedDocument, 51)
	for i := range docs {
		docs[i] = model.ProvidedDocument{Description: "receipt", TaxYear: 2023, Category: model.CategoryReceipts}
	}

	report := CheckOverDisclosure(docs, scope)
	found := false
	for _, risk := range report.Risks {
		if risk.Severity == "medium" && risk.Count == 51 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected medium bulk risk, got %+v", report.Risks)
	}
}

func TestCheckOverDisclosure_ExcludedCategories(t *testing.T) {
	scope := &model.AuditScope{TaxYears: []int{2023}}
	docs := []model.ProvidedDocument{
		{Description: "personal diary", TaxYear: 2023, Category: model.CategoryPersonalRecords},
		{Description: "emails", TaxYear: 2023, Category: model.CategoryCorrespondence},
	}

	report := CheckOverDisclosure(docs, scope)
	if !report.HasRisks {
		t.Fatal("expected risks for exclude-by-default categories")
	}
	risk := report.Risks[0]
	if risk.Severity != "high" || risk.Count != 2 {
		t.Errorf("expected high severity count 2, got %+v", risk)
	}
	if !strings.Contains(report.OverallRecommendation, "over-disclosure") {
		t.Errorf("unexpected recommendation %q", report.OverallRecommendation)
	}
}

func TestCheckOverDisclosure_Clean(t *testing.T) {
	scope := &model.AuditScope{TaxYears: []int{2023}}
	docs := []model.ProvidedDocument{
		{Description: "2023 receipts", TaxYear: 2023, Category: model.CategoryReceipts},
	}

	report := CheckOverDisclosure(docs, scope)
	if report.HasRisks {
		t.Errorf("expected no risks, got %+v", report.Risks)
	}
	if report.OverallRecommendation != "Document selection appears appropriate" {
		t.Errorf("unexpected recommendation %q", report.OverallRecommendation)
	}
}

func TestTransmittalList(t *testing.T) {
	docs := []model.ProvidedDocument{
		{Description: "Bank statement summary", Pages: 3, DateRange: "Jan-Dec 2023", Category: model.CategoryBankStatements},
		{Description: "Travel receipts", Pages: 12, Category: model.CategoryReceipts},
	}

	list := TransmittalList(docs)
	if list.TotalDocuments != 2 {
		t.Errorf("expected 2 documents, got %d", list.TotalDocuments)
	}
	if list.TotalPages != 15 {
		t.Errorf("expected 15 total pages, got %d", list.TotalPages)
	}
	if list.Documents[0].Number != 1 || list.Documents[1].Number != 2 {
		t.Error("documents must be numbered sequentially from 1")
	}
	if list.Documents[1].DateRange != "N/A" {
		t.Errorf("missing date range defaults to N/A, got %q", list.Documents[1].DateRange)
	}
}
