package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhouston2019/auditintel/internal/model"
)

// Formatter assembles pipeline results into the eight-section structured
// output. Output is strictly procedural: no empathy, no reassurance.
type Formatter struct{}

// NewFormatter creates a new output formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Analysis assembles the structured output from the prior stages' results
func (f *Formatter) Analysis(classification *model.Classification, scope *model.AuditScope, risk *model.RiskAssessment, deadline *model.DeadlineInfo, outline *model.OutlineResult) *model.StructuredOutput {
	return &model.StructuredOutput{
		AuditIdentification:  identificationSection(classification, scope),
		IRSRequests:          requestsSection(scope),
		ProvisionGuidance:    provisionSection(outline),
		PreparationStrategy:  strategySection(outline),
		EscalationRisk:       escalationSection(risk),
		ResponseOutline:      outlineSection(outline),
		ProfessionalAdvisory: advisorySection(risk),
		DeadlineInformation:  deadlineSection(deadline),
	}
}

func identificationSection(classification *model.Classification, scope *model.AuditScope) model.IdentificationSection {
	exposure := "Not specified"
	if scope.EstimatedDollarAmount > 0 {
		exposure = "$" + FormatDollars(scope.EstimatedDollarAmount)
	}

	items := scope.Items
	if len(items) == 0 {
		items = []string{"Not specified - review notice for details"}
	}

	return model.IdentificationSection{
		AuditType:                classification.Name,
		RiskLevel:                strings.ToUpper(string(classification.RiskLevel)),
		TaxYearsUnderExamination: joinYears(scope.TaxYears),
		IsMultiYear:              scope.IsMultiYear,
		EstimatedDollarExposure:  exposure,
		ItemsUnderExamination:    items,
	}
}

func requestsSection(scope *model.AuditScope) model.RequestsSection {
	items := scope.Items
	if len(items) == 0 {
		items = []string{"Review notice for specific items requested"}
	}

	return model.RequestsSection{
		RequestedItems: items,
		ScopeLimits: []string{
			fmt.Sprintf("Limited to tax year(s): %s", joinYears(scope.TaxYears)),
			"Do not provide information beyond what is explicitly requested",
			"Do not volunteer explanations for items not questioned",
		},
	}
}

func provisionSection(outline *model.OutlineResult) model.ProvisionSection {
	if outline == nil || outline.Outline == nil {
		return model.ProvisionSection{
			WhatToProvide:    []string{"Review notice for specific requirements"},
			WhatNotToProvide: []string{"Do not volunteer unrequested information"},
		}
	}

	g := outline.Outline.Guidance
	return model.ProvisionSection{
		WhatToProvide:       g.WhatToProvide,
		WhatNotToProvide:    g.WhatNotToProvide,
		DocumentHandling:    g.DocumentHandling,
		CommunicationLimits: g.CommunicationLimits,
	}
}

func strategySection(outline *model.OutlineResult) model.StrategySection {
	if outline == nil || outline.Outline == nil {
		return model.StrategySection{
			ProhibitedActions: []string{"Do not respond without professional guidance"},
		}
	}

	o := outline.Outline
	return model.StrategySection{
		AllowedActions:    o.AllowedActions,
		ProhibitedActions: o.ProhibitedActions,
		MaxNarrativeLines: o.MaxNarrativeLines,
		PreparationSteps: []string{
			"Review notice to identify exact items requested",
			"Gather only documents that directly respond to requests",
			"Organize documents by tax year and category",
			"Create document transmittal list",
			"Review response for scope compliance before submitting",
		},
	}
}

func escalationSection(risk *model.RiskAssessment) model.EscalationSection {
	section := model.EscalationSection{
		EscalationRequired: risk.EscalationRequired,
		RiskLevel:          strings.ToUpper(string(risk.OverallRisk)),
		AllowSelfResponse:  risk.AllowSelfResponse,
	}

	if risk.EscalationRequired {
		for _, hs := range risk.HardStops {
			section.HardStopConditions = append(section.HardStopConditions, model.HardStopEntry{
				Condition: hs.Condition,
				Message:   hs.Message,
				Reasoning: hs.Reasoning,
			})
		}
		section.Recommendation = "This is the point at which professional representation is strongly recommended."
		section.AllowSelfResponse = false
		return section
	}

	section.Warnings = risk.Warnings
	section.EscalationTriggers = []string{
		"If audit scope expands beyond original notice",
		"If IRS requests interview or meeting",
		"If dollar exposure increases significantly",
		"If you are uncertain about any aspect of the response",
	}
	return section
}

func outlineSection(outline *model.OutlineResult) model.OutlineSection {
	if outline == nil || outline.Outline == nil {
		return model.OutlineSection{
			EscalationText: "Professional representation required - no self-response outline available",
		}
	}

	return model.OutlineSection{
		RequiredSections: []string{
			"1. Notice identification (date, number, tax year)",
			"2. Acknowledgment of items under examination",
			"3. Document transmittal list (if providing documents)",
			"4. Closing (no additional narrative)",
		},
		ProhibitedContent: []string{
			"Explanations beyond what is requested",
			"Volunteered information about other years",
			"Personal circumstances or hardship narratives",
			"Disputes or disagreements without representation",
			"Admissions or acknowledgments of error",
		},
		FormatRequirements: []string{
			"Business letter format",
			"Reference notice number and date",
			"Keep response to minimum necessary",
			"Attach document list if providing documents",
			"Retain copies of everything sent",
		},
	}
}

func advisorySection(risk *model.RiskAssessment) model.AdvisorySection {
	advisory := model.AdvisorySection{
		RepresentationRecommended: risk.EscalationRequired || risk.OverallRisk == model.RiskHigh,
		ProfessionalTypes: []string{
			"Enrolled Agent (EA)",
			"Certified Public Accountant (CPA)",
			"Tax Attorney",
		},
		Resources: []string{
			"IRS Directory of Federal Tax Return Preparers",
			"National Association of Enrolled Agents (NAEA)",
			"American Institute of CPAs (AICPA)",
			"American Bar Association Tax Section",
		},
	}

	switch {
	case risk.EscalationRequired:
		for _, hs := range risk.HardStops {
			advisory.Reasons = append(advisory.Reasons, hs.Condition)
		}
		advisory.Urgency = "IMMEDIATE"
		advisory.Message = "Professional representation is strongly recommended before responding to this audit."
	case risk.OverallRisk == model.RiskHigh:
		advisory.Reasons = []string{"High risk audit type", "Complexity of issues"}
		advisory.Urgency = "HIGH"
		advisory.Message = "Consider professional representation for this audit."
	default:
		advisory.Urgency = "MEDIUM"
		advisory.Message = "Professional consultation available if needed."
	}

	return advisory
}

func deadlineSection(deadline *model.DeadlineInfo) model.DeadlineSection {
	if deadline == nil || deadline.ResponseDeadline == nil {
		return model.DeadlineSection{
			NoticeDate:       "Unknown",
			ResponseDeadline: "Review notice for response deadline",
			DaysRemaining:    "Unknown",
			Urgency:          "Review notice immediately",
			Recommendation:   "Review notice immediately",
		}
	}

	noticeDate := "Unknown"
	if deadline.NoticeDate != nil {
		noticeDate = formatDate(*deadline.NoticeDate)
	}

	urgency := "NORMAL"
	if deadline.IsCritical {
		urgency = "CRITICAL"
	} else if deadline.IsUrgent {
		urgency = "URGENT"
	}

	recommendation := "Begin preparation promptly"
	daysRemaining := "Unknown"
	if deadline.DaysRemaining != nil {
		daysRemaining = fmt.Sprintf("%d", *deadline.DaysRemaining)
		if *deadline.DaysRemaining <= 14 {
			recommendation = "Immediate action required"
		}
	}

	return model.DeadlineSection{
		NoticeDate:       noticeDate,
		ResponseDeadline: formatDate(*deadline.ResponseDeadline),
		DaysRemaining:    daysRemaining,
		Urgency:          urgency,
		Recommendation:   recommendation,
	}
}

// FormatDollars renders a dollar amount with thousands separators
func FormatDollars(amount float64) string {
	whole := int64(amount)
	s := fmt.Sprintf("%d", whole)

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if cents := amount - float64(whole); cents > 0.004 {
		b.WriteString(fmt.Sprintf("%.2f", cents)[1:])
	}

	return b.String()
}

func joinYears(years []int) string {
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = fmt.Sprintf("%d", y)
	}
	return strings.Join(parts, ", ")
}

func formatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
