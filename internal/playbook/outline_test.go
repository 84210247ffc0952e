package playbook

import (
	"strings"
	"testing"

	"github.com/jhouston2019/auditintel/internal/model"
)

func TestBuildOutline_Correspondence(t *testing.T) {
	scope := &model.AuditScope{TaxYears: []int{2023}}
	result, err := NewSelector().BuildOutline(model.AuditCorrespondence, scope)
	if err != nil {
		t.Fatalf("BuildOutline failed: %v", err)
	}
	if result.Escalated() {
		t.Fatalf("single-year correspondence must not escalate: %+v", result.Escalation)
	}

	outline := result.Outline
	if outline.MaxNarrativeLines != 5 {
		t.Errorf("expected 5 narrative lines, got %d", outline.MaxNarrativeLines)
	}
	if !outline.DocumentJustificationRequired {
		t.Error("correspondence outline requires document justification")
	}
	if len(outline.Sections) == 0 || outline.Sections[0] != "audit_identification" {
		t.Errorf("unexpected sections %v", outline.Sections)
	}

	prohibited := strings.Join(outline.ProhibitedActions, ",")
	if !strings.Contains(prohibited, "volunteer_information") {
		t.Errorf("expected volunteer_information prohibited, got %v", outline.ProhibitedActions)
	}
	if len(outline.Guidance.WhatNotToProvide) == 0 {
		t.Error("expected preparation guidance")
	}
}

func TestPlaybookTriggers_Correspondence(t *testing.T) {
	pb := Get(model.AuditCorrespondence)
	want := []string{
		model.TriggerMultiYear,
		model.TriggerLargeDollar,
		"scope_expansion_detected",
	}

	if len(pb.EscalationTriggers) != len(want) {
		t.Fatalf("expected %d triggers, got %v", len(want), pb.EscalationTriggers)
	}
	for i, trigger := range want {
		if pb.EscalationTriggers[i] != trigger {
			t.Errorf("trigger %d: expected %q, got %q", i, trigger, pb.EscalationTriggers[i])
		}
	}

	// Document requests carry the plain scope-expansion trigger, not the
	// correspondence detection variant
	if !Get(model.AuditDocumentRequest).HasTrigger(model.TriggerScopeExpansion) {
		t.Error("document request playbook should carry scope_expansion")
	}
}

func TestBuildOutline_ImmediateEscalation(t *testing.T) {
	tests := []struct {
		auditType model.AuditType
		wantWarn  string
	}{
		{model.AuditOffice, "in-person interviews"},
		{model.AuditField, "DO NOT respond"},
		{model.AuditFollowUp, "appeal rights"},
	}

	scope := &model.AuditScope{TaxYears: []int{2023}}
	s := NewSelector()
	for _, tt := range tests {
		t.Run(string(tt.auditType), func(t *testing.T) {
			result, err := s.BuildOutline(tt.auditType, scope)
			if err != nil {
				t.Fatalf("BuildOutline failed: %v", err)
			}
			if !result.Escalated() {
				t.Fatal("expected immediate escalation")
			}
			if result.Outline != nil {
				t.Error("escalated result must not carry an outline")
			}
			if !strings.Contains(result.Escalation.Reason, "requires professional representation") {
				t.Errorf("unexpected reason %q", result.Escalation.Reason)
			}
			if !strings.Contains(result.Escalation.Warning, tt.wantWarn) {
				t.Errorf("expected warning mentioning %q, got %q", tt.wantWarn, result.Escalation.Warning)
			}
		})
	}
}

func TestBuildOutline_CorrespondenceMultiYearEscalates(t *testing.T) {
	scope := &model.AuditScope{TaxYears: []int{2022, 2023}, IsMultiYear: true}
	result, err := NewSelector().BuildOutline(model.AuditCorrespondence, scope)
	if err != nil {
		t.Fatalf("BuildOutline failed: %v", err)
	}
	if !result.Escalated() {
		t.Fatal("multi-year correspondence must escalate")
	}
	if !strings.Contains(result.Escalation.Reason, "Multi-year audit detected") {
		t.Errorf("unexpected reason %q", result.Escalation.Reason)
	}
	// No mandatory warning on the correspondence playbook, so the generic
	// warning applies
	if result.Escalation.Warning != genericEscalationWarning {
		t.Errorf("expected generic warning, got %q", result.Escalation.Warning)
	}
}

func TestBuildOutline_CorrespondenceLargeDollarEscalates(t *testing.T) {
	scope := &model.AuditScope{TaxYears: []int{2023}, EstimatedDollarAmount: 75000, IsLargeDollar: true}
	result, err := NewSelector().BuildOutline(model.AuditCorrespondence, scope)
	if err != nil {
		t.Fatalf("BuildOutline failed: %v", err)
	}
	if !result.Escalated() {
		t.Fatal("large-dollar correspondence must escalate")
	}
	if !strings.Contains(result.Escalation.Reason, "exceeds $25,000") {
		t.Errorf("unexpected reason %q", result.Escalation.Reason)
	}
	if !strings.Contains(result.Escalation.Reason, "$75,000") {
		t.Errorf("expected formatted amount in reason %q", result.Escalation.Reason)
	}
}

func TestBuildOutline_DocumentRequestMultiYearScopeDoesNotEscalate(t *testing.T) {
	// The document request playbook escalates on multi_year_documents, a
	// request-content trigger, not on multi-year scope
	scope := &model.AuditScope{TaxYears: []int{2022, 2023}, IsMultiYear: true}
	result, err := NewSelector().BuildOutline(model.AuditDocumentRequest, scope)
	if err != nil {
		t.Fatalf("BuildOutline failed: %v", err)
	}
	if result.Escalated() {
		t.Errorf("document request must not escalate on multi-year scope: %+v", result.Escalation)
	}
	if result.Outline.MaxNarrativeLines != 3 {
		t.Errorf("expected 3 narrative lines, got %d", result.Outline.MaxNarrativeLines)
	}
}

func TestBuildOutline_UnknownType(t *testing.T) {
	_, err := NewSelector().BuildOutline(model.AuditType("bogus"), &model.AuditScope{})
	if err == nil {
		t.Error("expected error for unknown audit type")
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{75000, "75,000"},
		{1234567, "1,234,567"},
		{500, "500"},
		{25000.01, "25,000.01"},
	}

	for _, tt := range tests {
		if got := formatAmount(tt.amount); got != tt.want {
			t.Errorf("formatAmount(%v): expected %q, got %q", tt.amount, tt.want, got)
		}
	}
}
