package risk

import (
	"regexp"
	"strings"

	"github.com/jhouston2019/auditintel/internal/model"
)

// representationAdvisory is the standard hard-stop message. The phrasing is
// deliberately procedural; reassurance language is prohibited everywhere in
// this system.
const representationAdvisory = "This is the point at which professional representation is strongly recommended."

// Hard-stop catalog: static reference data matched against classification,
// scope, and notice text. Entries are referenced by pointer and never
// instantiated per request.
var (
	hardStopFieldAudit = &model.HardStop{
		ID:        "field_audit",
		Condition: "Field audit detected",
		Message:   representationAdvisory,
		Reasoning: "Field audits involve in-person interviews and premises access. Self-representation carries significant risk.",
	}
	hardStopMultiYear = &model.HardStop{
		ID:        "multi_year_audit",
		Condition: "Multi-year audit (2+ years)",
		Message:   representationAdvisory,
		Reasoning: "Multi-year audits indicate pattern review and carry higher assessment risk.",
	}
	hardStopLargeDollar = &model.HardStop{
		ID:        "large_dollar_exposure",
		Condition: "Dollar exposure exceeds $25,000",
		Message:   representationAdvisory,
		Reasoning: "Large dollar amounts justify professional representation costs and reduce risk of errors.",
	}
	hardStopInterview = &model.HardStop{
		ID:        "interview_request",
		Condition: "IRS requests in-person or phone interview",
		Message:   representationAdvisory,
		Reasoning: "Interviews create risk of unintended admissions and scope expansion.",
	}
	hardStopCriminal = &model.HardStop{
		ID:        "criminal_referral_language",
		Condition: "Notice contains criminal investigation language",
		Message:   "STOP. Do not respond. Seek legal counsel immediately.",
		Reasoning: "Criminal investigation requires legal representation, not tax representation.",
	}
	hardStopSummons = &model.HardStop{
		ID:        "summons_issued",
		Condition: "IRS summons issued",
		Message:   representationAdvisory,
		Reasoning: "Summons are legal orders requiring compliance. Professional guidance is essential.",
	}
	hardStopThirtyDay = &model.HardStop{
		ID:        "thirty_day_letter",
		Condition: "30-day letter (formal examination notice)",
		Message:   representationAdvisory,
		Reasoning: "30-day letters trigger appeal rights. Professional review prevents waiver of rights.",
	}
	hardStopNinetyDay = &model.HardStop{
		ID:        "ninety_day_letter",
		Condition: "90-day letter (statutory notice of deficiency)",
		Message:   representationAdvisory,
		Reasoning: "90-day letters are final notices before assessment. Tax Court petition may be required.",
	}
)

var (
	interviewPattern = regexp.MustCompile(`(?i)interview|meeting|appointment|discuss`)
	criminalPattern  = regexp.MustCompile(`(?i)criminal|fraud|willful|evasion`)
	summonsPattern   = regexp.MustCompile(`(?i)summons|subpoena`)
	thirtyDayPattern = regexp.MustCompile(`(?i)30[\s-]day\s+letter|examination\s+report`)
	ninetyDayPattern = regexp.MustCompile(`(?i)90[\s-]day\s+letter|statutory\s+notice|notice\s+of\s+deficiency`)
)

// baseTypeScore is the risk score contribution of the audit type itself
var baseTypeScore = map[model.AuditType]int{
	model.AuditCorrespondence:  1,
	model.AuditDocumentRequest: 1,
	model.AuditOffice:          3,
	model.AuditFollowUp:        3,
	model.AuditField:           5,
}

// Evaluator applies hard-stop rules and computes the overall risk tier
type Evaluator struct{}

// NewEvaluator creates a new risk evaluator
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate produces the risk assessment for an accepted notice. Any hard
// stop forces critical risk and disallows self-response regardless of the
// computed score.
func (e *Evaluator) Evaluate(classification *model.Classification, scope *model.AuditScope, text string) model.RiskAssessment {
	assessment := model.RiskAssessment{
		OverallRisk:       model.RiskLow,
		AllowSelfResponse: true,
	}

	hardStops := detectHardStops(classification, scope, text)
	if len(hardStops) > 0 {
		assessment.HardStops = hardStops
		assessment.OverallRisk = model.RiskCritical
		assessment.AllowSelfResponse = false
		assessment.EscalationRequired = true
		assessment.EscalationReason = joinConditions(hardStops)
		return assessment
	}

	assessment.OverallRisk = scoreRisk(classification, scope)

	switch assessment.OverallRisk {
	case model.RiskMedium:
		assessment.Warnings = append(assessment.Warnings, "Consider professional consultation for this audit type")
	case model.RiskHigh:
		assessment.Warnings = append(assessment.Warnings, "Professional representation is strongly recommended")
		assessment.EscalationRequired = true
	}

	return assessment
}

// detectHardStops checks each hard-stop condition independently; every
// matching condition is appended in catalog order
func detectHardStops(classification *model.Classification, scope *model.AuditScope, text string) []*model.HardStop {
	var detected []*model.HardStop

	if classification.Type == model.AuditField {
		detected = append(detected, hardStopFieldAudit)
	}
	if scope.IsMultiYear {
		detected = append(detected, hardStopMultiYear)
	}
	if scope.IsLargeDollar {
		detected = append(detected, hardStopLargeDollar)
	}
	if interviewPattern.MatchString(text) {
		detected = append(detected, hardStopInterview)
	}
	if criminalPattern.MatchString(text) {
		detected = append(detected, hardStopCriminal)
	}
	if summonsPattern.MatchString(text) {
		detected = append(detected, hardStopSummons)
	}
	if thirtyDayPattern.MatchString(text) {
		detected = append(detected, hardStopThirtyDay)
	}
	if ninetyDayPattern.MatchString(text) {
		detected = append(detected, hardStopNinetyDay)
	}

	return detected
}

// scoreRisk computes the numeric risk score and maps it to a tier:
// <=2 low, <=4 medium, <=6 high, else critical
func scoreRisk(classification *model.Classification, scope *model.AuditScope) model.RiskLevel {
	score, ok := baseTypeScore[classification.Type]
	if !ok {
		score = 1
	}

	if scope.IsMultiYear {
		score += 2
	}
	if scope.IsLargeDollar {
		score += 2
	}
	if len(scope.TaxYears) > 2 {
		score++
	}
	if len(scope.Items) > 5 {
		score++
	}

	switch {
	case score <= 2:
		return model.RiskLow
	case score <= 4:
		return model.RiskMedium
	case score <= 6:
		return model.RiskHigh
	default:
		return model.RiskCritical
	}
}

// EscalationMessage builds the caller-facing escalation summary, or nil if
// the assessment does not require escalation
func EscalationMessage(assessment *model.RiskAssessment) *model.EscalationMessage {
	if !assessment.EscalationRequired {
		return nil
	}

	var notes []model.EscalationNote
	for _, hs := range assessment.HardStops {
		notes = append(notes, model.EscalationNote{
			Title:     hs.Condition,
			Message:   hs.Message,
			Reasoning: hs.Reasoning,
		})
	}

	// High risk without hard stops gets a generic message
	if len(notes) == 0 && assessment.OverallRisk == model.RiskHigh {
		notes = append(notes, model.EscalationNote{
			Title:     "High Risk Audit",
			Message:   representationAdvisory,
			Reasoning: "The complexity and risk level of this audit justify professional assistance.",
		})
	}

	return &model.EscalationMessage{
		EscalationRequired: true,
		Messages:           notes,
		Recommendation:     "Consult with a tax professional, enrolled agent, or tax attorney before responding.",
		Resources: []string{
			"IRS Directory of Federal Tax Return Preparers",
			"National Association of Enrolled Agents",
			"American Bar Association Tax Section",
		},
	}
}

func joinConditions(hardStops []*model.HardStop) string {
	conditions := make([]string, len(hardStops))
	for i, hs := range hardStops {
		conditions[i] = hs.Condition
	}
	return strings.Join(conditions, "; ")
}
