package pipeline

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jhouston2019/auditintel/internal/model"
)

const correspondenceNotice = `Examination Notice
Tax Year: 2023
We are examining your tax return for the following items:
- Schedule C Business Expenses
- Home Office Deduction
Please provide documentation to support these deductions.
This is a correspondence audit. You may respond by mail.
You must respond by March 15, 2026.`

const fieldNotice = `Field Audit Notice
Tax Years: 2021, 2022, 2023
A Revenue Agent will visit your business location to conduct an examination.
Items under examination: Business income, expenses, and inventory.
Estimated tax deficiency: $75,000`

const cp2000Notice = `CP2000 Notice
Proposed Changes to Your Tax Return
Tax Year: 2023
We have information that differs from what you reported on your tax return.`

const documentRequestNotice = `Information Document Request (IDR)
Examination ID: 12345678
Tax Year: 2023
Please provide the following documents:
1. Bank statements for all business accounts
2. Receipts for travel expenses over $500
3. Mileage logs for vehicle deductions
Response due: 30 days from date of this letter`

func testConfig(t *testing.T) *model.Config {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.Store.Enabled = false
	cfg.LLM.Provider = ""
	return cfg
}

func cachedConfig(t *testing.T) *model.Config {
	t.Helper()
	cfg := testConfig(t)
	cfg.Cache.Enabled = true
	cfg.Cache.Dir = t.TempDir()
	cfg.Cache.MemoryTTL = time.Minute
	cfg.Cache.DiskTTL = time.Minute
	return cfg
}

func TestAnalyze_CorrespondenceAudit(t *testing.T) {
	a := NewAnalyzer(testConfig(t))
	result, err := a.Analyze(context.Background(), correspondenceNotice, Options{})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.Rejected {
		t.Fatalf("unexpected rejection: %s", result.Message)
	}
	if result.Classification.Type != model.AuditCorrespondence {
		t.Errorf("expected correspondence, got %s", result.Classification.Type)
	}
	if len(result.Scope.TaxYears) != 1 || result.Scope.TaxYears[0] != 2023 {
		t.Errorf("unexpected years %v", result.Scope.TaxYears)
	}
	if result.Risk.EscalationRequired {
		t.Error("single-year correspondence must not escalate")
	}
	if result.Outline == nil || result.Outline.Outline == nil {
		t.Fatal("expected a self-response outline")
	}
	if result.Outline.Outline.MaxNarrativeLines != 5 {
		t.Errorf("expected 5 narrative lines, got %d", result.Outline.Outline.MaxNarrativeLines)
	}
	if result.Deadline.ResponseDeadline == nil {
		t.Error("expected extracted deadline")
	}
	if len(result.EvidenceMap) == 0 {
		t.Error("expected evidence mappings for extracted items")
	}
	if result.Escalation != nil {
		t.Error("no escalation message without escalation")
	}
	if result.Output == nil || result.TextOutput == "" {
		t.Error("expected formatted output")
	}
	if result.Version != model.Version {
		t.Errorf("unexpected version %q", result.Version)
	}
}

func TestAnalyze_FieldAuditEscalates(t *testing.T) {
	a := NewAnalyzer(testConfig(t))
	result, err := a.Analyze(context.Background(), fieldNotice, Options{})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.Classification.Type != model.AuditField {
		t.Fatalf("expected field audit, got %s", result.Classification.Type)
	}
	if !result.Risk.EscalationRequired || result.Risk.AllowSelfResponse {
		t.Error("field audit must escalate and disallow self-response")
	}
	if result.Risk.OverallRisk != model.RiskCritical {
		t.Errorf("expected critical risk, got %s", result.Risk.OverallRisk)
	}

	// Field, multi-year, and large-dollar hard stops must all be present
	ids := make(map[string]bool)
	for _, hs := range result.Risk.HardStops {
		ids[hs.ID] = true
	}
	for _, want := range []string{"field_audit", "multi_year_audit", "large_dollar_exposure"} {
		if !ids[want] {
			t.Errorf("missing hard stop %s", want)
		}
	}

	if result.Outline == nil || !result.Outline.Escalated() {
		t.Fatal("expected escalated outline")
	}
	if result.Escalation == nil || len(result.Escalation.Messages) == 0 {
		t.Error("expected escalation messages")
	}
	if !strings.Contains(result.TextOutput, "HARD STOP CONDITIONS") {
		t.Error("text output must list hard stop conditions")
	}
}

func TestAnalyze_RejectionShortCircuits(t *testing.T) {
	a := NewAnalyzer(testConfig(t))
	result, err := a.Analyze(context.Background(), cp2000Notice, Options{})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if !result.Rejected {
		t.Fatal("expected rejection")
	}
	if result.RejectedType != "CP2000" {
		t.Errorf("expected CP2000, got %s", result.RejectedType)
	}
	if result.RedirectTo != model.RedirectLetterHelp {
		t.Errorf("unexpected redirect %s", result.RedirectTo)
	}

	// No downstream stage runs on rejection
	if result.Classification != nil || result.Scope != nil || result.Risk != nil ||
		result.Deadline != nil || result.Outline != nil || result.Output != nil {
		t.Error("rejected result must not carry stage results")
	}
}

func TestAnalyze_DocumentRequest(t *testing.T) {
	a := NewAnalyzer(testConfig(t))
	result, err := a.Analyze(context.Background(), documentRequestNotice, Options{})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.Classification.Type != model.AuditDocumentRequest {
		t.Fatalf("expected document request, got %s", result.Classification.Type)
	}
	if result.Outline.Escalated() {
		t.Errorf("single-year document request must not escalate: %+v", result.Outline.Escalation)
	}
	if result.Outline.Outline.MaxNarrativeLines != 3 {
		t.Errorf("expected 3 narrative lines, got %d", result.Outline.Outline.MaxNarrativeLines)
	}
	if len(result.EvidenceMap) == 0 {
		t.Fatal("expected evidence mappings")
	}
	// Item extraction keys on deduction phrases (mileage, travel expenses),
	// not document nouns, so the mileage item leads and defaults to the most
	// restrictive category
	first := result.EvidenceMap[0]
	if !strings.EqualFold(first.RequestedItem, "mileage") {
		t.Errorf("expected mileage item first, got %q", first.RequestedItem)
	}
	if first.Category != model.CategoryPersonalRecords {
		t.Errorf("expected personal_records first, got %s", first.Category)
	}
	if first.RecommendedMode != model.ModeExclude {
		t.Errorf("expected exclude mode, got %s", first.RecommendedMode)
	}
}

func TestAnalyze_NoticeDateOption(t *testing.T) {
	a := NewAnalyzer(testConfig(t))
	noticeDate := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	result, err := a.Analyze(context.Background(), fieldNotice, Options{NoticeDate: &noticeDate})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.Deadline.NoticeDate == nil || !result.Deadline.NoticeDate.Equal(noticeDate) {
		t.Errorf("expected notice date override, got %v", result.Deadline.NoticeDate)
	}
	want := noticeDate.AddDate(0, 0, 30)
	if result.Deadline.ResponseDeadline == nil || !result.Deadline.ResponseDeadline.Equal(want) {
		t.Errorf("expected fallback deadline %v, got %v", want, result.Deadline.ResponseDeadline)
	}
}

func TestAnalyze_CacheHit(t *testing.T) {
	a := NewAnalyzer(cachedConfig(t))
	ctx := context.Background()

	first, err := a.Analyze(ctx, correspondenceNotice, Options{})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	second, err := a.Analyze(ctx, correspondenceNotice, Options{})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if !second.AnalyzedAt.Equal(first.AnalyzedAt) {
		t.Error("expected cached result with the original timestamp")
	}
}

func TestAnalyze_BypassCache(t *testing.T) {
	a := NewAnalyzer(cachedConfig(t))
	ctx := context.Background()

	first, err := a.Analyze(ctx, correspondenceNotice, Options{})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	second, err := a.Analyze(ctx, correspondenceNotice, Options{BypassCache: true})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if second.AnalyzedAt.Equal(first.AnalyzedAt) {
		t.Error("bypass must produce a fresh analysis")
	}
}

func TestAnalyze_DraftDisabled(t *testing.T) {
	a := NewAnalyzer(testConfig(t))
	result, err := a.Analyze(context.Background(), correspondenceNotice, Options{Draft: true})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.Draft != nil {
		t.Error("drafting must be skipped when no provider is configured")
	}
}
