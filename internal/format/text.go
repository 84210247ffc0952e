package format

import (
	"fmt"
	"strings"

	"github.com/jhouston2019/auditintel/internal/model"
)

const (
	heavyRule = "═══════════════════════════════════════════════════════════"
	lightRule = "─────────────────────────────────────────────────────────"
)

// StructuredText renders the structured output as a fixed-template plain
// text report. The rendering is deterministic: the same structured output
// always yields the same text, and the two representations always agree.
func StructuredText(output *model.StructuredOutput) string {
	var b strings.Builder

	b.WriteString(heavyRule + "\n")
	b.WriteString("IRS AUDIT RESPONSE PREPARATION\n")
	b.WriteString("PROCEDURAL ANALYSIS\n")
	b.WriteString(heavyRule + "\n\n")

	b.WriteString("1. AUDIT TYPE & SCOPE IDENTIFIED\n")
	b.WriteString(lightRule + "\n")
	id := output.AuditIdentification
	fmt.Fprintf(&b, "Audit Type: %s\n", id.AuditType)
	fmt.Fprintf(&b, "Risk Level: %s\n", id.RiskLevel)
	fmt.Fprintf(&b, "Tax Years: %s\n", id.TaxYearsUnderExamination)
	fmt.Fprintf(&b, "Multi-Year: %s\n", yesNo(id.IsMultiYear))
	fmt.Fprintf(&b, "Estimated Exposure: %s\n", id.EstimatedDollarExposure)
	b.WriteString("Items Under Examination:\n")
	writeBullets(&b, id.ItemsUnderExamination)
	b.WriteString("\n")

	b.WriteString("2. WHAT THE IRS IS REQUESTING\n")
	b.WriteString(lightRule + "\n")
	writeBullets(&b, output.IRSRequests.RequestedItems)
	b.WriteString("\nScope Limits:\n")
	writeBullets(&b, output.IRSRequests.ScopeLimits)
	b.WriteString("\n")

	b.WriteString("3. WHAT YOU SHOULD AND SHOULD NOT PROVIDE\n")
	b.WriteString(lightRule + "\n")
	b.WriteString("PROVIDE:\n")
	for _, item := range output.ProvisionGuidance.WhatToProvide {
		fmt.Fprintf(&b, "  ✓ %s\n", item)
	}
	b.WriteString("\nDO NOT PROVIDE:\n")
	for _, item := range output.ProvisionGuidance.WhatNotToProvide {
		fmt.Fprintf(&b, "  ✗ %s\n", item)
	}
	b.WriteString("\n")

	b.WriteString("4. RESPONSE PREPARATION STRATEGY\n")
	b.WriteString(lightRule + "\n")
	b.WriteString("Allowed Actions:\n")
	writeBullets(&b, output.PreparationStrategy.AllowedActions)
	b.WriteString("\nProhibited Actions:\n")
	writeBullets(&b, output.PreparationStrategy.ProhibitedActions)
	b.WriteString("\n")

	b.WriteString("5. ESCALATION RISK & WHEN TO STOP\n")
	b.WriteString(lightRule + "\n")
	esc := output.EscalationRisk
	fmt.Fprintf(&b, "Risk Level: %s\n", esc.RiskLevel)
	fmt.Fprintf(&b, "Escalation Required: %s\n", yesNo(esc.EscalationRequired))
	if esc.EscalationRequired {
		b.WriteString("\nHARD STOP CONDITIONS:\n")
		for _, hs := range esc.HardStopConditions {
			fmt.Fprintf(&b, "\n  %s\n", hs.Condition)
			fmt.Fprintf(&b, "  %s\n", hs.Message)
			fmt.Fprintf(&b, "  Reason: %s\n", hs.Reasoning)
		}
	}
	b.WriteString("\n")

	b.WriteString("6. AUDIT-APPROPRIATE RESPONSE OUTLINE\n")
	b.WriteString(lightRule + "\n")
	if output.ResponseOutline.EscalationText != "" {
		b.WriteString(output.ResponseOutline.EscalationText + "\n")
	} else {
		b.WriteString("Required Sections:\n")
		for _, section := range output.ResponseOutline.RequiredSections {
			fmt.Fprintf(&b, "  %s\n", section)
		}
	}
	b.WriteString("\n")

	b.WriteString("7. PROFESSIONAL REPRESENTATION ADVISORY\n")
	b.WriteString(lightRule + "\n")
	fmt.Fprintf(&b, "Urgency: %s\n", output.ProfessionalAdvisory.Urgency)
	fmt.Fprintf(&b, "%s\n", output.ProfessionalAdvisory.Message)
	b.WriteString("\n")

	b.WriteString("8. DEADLINE INFORMATION\n")
	b.WriteString(lightRule + "\n")
	dl := output.DeadlineInformation
	fmt.Fprintf(&b, "Response Deadline: %s\n", dl.ResponseDeadline)
	fmt.Fprintf(&b, "Days Remaining: %s\n", dl.DaysRemaining)
	fmt.Fprintf(&b, "Urgency: %s\n", dl.Urgency)
	fmt.Fprintf(&b, "Recommendation: %s\n", dl.Recommendation)
	b.WriteString("\n")

	b.WriteString(heavyRule + "\n")
	b.WriteString("DISCLAIMER: This is procedural preparation guidance only.\n")
	b.WriteString("Not legal advice. Not tax advice. Not a substitute for\n")
	b.WriteString("professional representation.\n")
	b.WriteString(heavyRule + "\n")

	return b.String()
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(b, "  • %s\n", item)
	}
}

func yesNo(v bool) string {
	if v {
		return "YES"
	}
	return "NO"
}
