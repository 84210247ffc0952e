package playbook

import (
	"fmt"
	"strings"

	"github.com/jhouston2019/auditintel/internal/model"
)

// genericEscalationWarning is used when an escalating playbook carries no
// mandatory warning of its own
const genericEscalationWarning = "Professional representation is required for this audit type."

// Selector maps an accepted audit to its playbook and emits either a
// restrictive self-response outline or an escalation notice. Escalation is
// an expected branch, not a failure.
type Selector struct{}

// NewSelector creates a new playbook selector
func NewSelector() *Selector {
	return &Selector{}
}

// BuildOutline evaluates the playbook's escalation triggers against the
// scope; if any fire, the result is an escalation notice with no outline.
func (s *Selector) BuildOutline(auditType model.AuditType, scope *model.AuditScope) (model.OutlineResult, error) {
	pb := Get(auditType)
	if pb == nil {
		return model.OutlineResult{}, fmt.Errorf("no playbook for audit type %q", auditType)
	}

	if shouldEscalate(pb, scope) {
		warning := pb.MandatoryWarning
		if warning == "" {
			warning = genericEscalationWarning
		}
		return model.OutlineResult{
			Escalation: &model.EscalationNotice{
				AuditType: pb.Name,
				Reason:    escalationReason(pb, scope),
				Warning:   warning,
			},
		}, nil
	}

	return model.OutlineResult{
		Outline: &model.Outline{
			AuditType:                     pb.Name,
			Sections:                      pb.Sections,
			AllowedActions:                pb.AllowedActions,
			ProhibitedActions:             pb.ProhibitedActions,
			MaxNarrativeLines:             pb.MaxNarrativeLines,
			DocumentJustificationRequired: pb.RequiresDocumentJustification,
			EscalationTriggers:            pb.EscalationTriggers,
			Guidance:                      preparationGuidance(),
		},
	}, nil
}

// shouldEscalate checks the playbook's own triggers against the scope
func shouldEscalate(pb *model.Playbook, scope *model.AuditScope) bool {
	if pb.HasTrigger(model.TriggerImmediate) {
		return true
	}
	if scope.IsMultiYear && pb.HasTrigger(model.TriggerMultiYear) {
		return true
	}
	if scope.IsLargeDollar && pb.HasTrigger(model.TriggerLargeDollar) {
		return true
	}
	return false
}

// escalationReason assembles the reasons the outline was withheld
func escalationReason(pb *model.Playbook, scope *model.AuditScope) string {
	var reasons []string

	if pb.HasTrigger(model.TriggerImmediate) {
		reasons = append(reasons, "This audit type requires professional representation")
	}
	if scope.IsMultiYear {
		reasons = append(reasons, "Multi-year audit detected")
	}
	if scope.IsLargeDollar {
		reasons = append(reasons, fmt.Sprintf("Dollar amount exceeds $25,000 (estimated: $%s)", formatAmount(scope.EstimatedDollarAmount)))
	}

	return strings.Join(reasons, ". ")
}

// preparationGuidance is fixed boilerplate: minimal disclosure, copies not
// originals, no volunteered scope expansion, written communication only
func preparationGuidance() model.PreparationGuidance {
	return model.PreparationGuidance{
		WhatToProvide: []string{
			"Only documents explicitly requested in the notice",
			"Copies, never originals",
			"Organized by tax year and category",
		},
		WhatNotToProvide: []string{
			"Do not provide unrequested documents",
			"Do not provide explanatory narratives beyond what is asked",
			"Do not volunteer information about other tax years",
			"Do not provide access to original records unless subpoenaed",
		},
		DocumentHandling: []string{
			"Review each document before providing",
			"Redact personal information not relevant to the audit",
			"Create a transmittal list of all documents provided",
			"Keep copies of everything sent to the IRS",
		},
		CommunicationLimits: []string{
			"Respond in writing only",
			"Do not engage in phone conversations without preparation",
			"Do not agree to expand the audit scope",
			"Do not waive any rights or deadlines",
		},
	}
}

// formatAmount renders a dollar amount with thousands separators
func formatAmount(amount float64) string {
	whole := int64(amount)
	s := fmt.Sprintf("%d", whole)

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 && r != '-' {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if cents := amount - float64(whole); cents > 0.004 {
		b.WriteString(fmt.Sprintf("%.2f", cents)[1:])
	}

	return b.String()
}
