package playbook

import "github.com/jhouston2019/auditintel/internal/model"

// playbooks holds the static response strategy per audit type. Office,
// field, and follow-up notices carry the immediate trigger: self-response
// is categorically disallowed for them.
var playbooks = map[model.AuditType]*model.Playbook{
	model.AuditCorrespondence: {
		Type: model.AuditCorrespondence,
		Name: "Correspondence Audit Response",
		AllowedActions: []string{
			"comply_as_requested",
			"clarify_scope",
			"prepare_response_outline",
		},
		ProhibitedActions: []string{
			"volunteer_information",
			"explain_beyond_request",
			"dispute_without_representation",
		},
		Sections: []string{
			"audit_identification",
			"scope_acknowledgment",
			"requested_items_only",
			"document_list",
			"no_additional_narrative",
		},
		MaxNarrativeLines:             5,
		RequiresDocumentJustification: true,
		EscalationTriggers: []string{
			model.TriggerMultiYear,
			model.TriggerLargeDollar,
			model.TriggerScopeExpansionDetected,
		},
	},

	model.AuditOffice: {
		Type: model.AuditOffice,
		Name: "Office Audit Response",
		AllowedActions: []string{
			"prepare_response_outline",
			"document_preparation_only",
		},
		ProhibitedActions: []string{
			"attend_without_representation",
			"answer_questions_directly",
			"provide_explanations",
		},
		Sections: []string{
			"audit_identification",
			"representation_notice",
			"document_preparation_list",
			"professional_escalation_required",
		},
		MaxNarrativeLines:             3,
		RequiresDocumentJustification: true,
		EscalationTriggers:            []string{model.TriggerImmediate},
		MandatoryWarning:              "Office audits involve in-person interviews. Professional representation is strongly recommended before attending.",
	},

	model.AuditField: {
		Type: model.AuditField,
		Name: "Field Audit Response",
		AllowedActions: []string{
			"acknowledge_receipt_only",
			"seek_professional_representation",
		},
		ProhibitedActions: []string{
			"respond_without_representation",
			"allow_premises_access",
			"provide_any_documents",
			"answer_any_questions",
		},
		Sections: []string{
			"audit_identification",
			"representation_notice_required",
			"no_self_response_permitted",
		},
		MaxNarrativeLines:             2,
		RequiresDocumentJustification: false,
		EscalationTriggers:            []string{model.TriggerImmediate},
		MandatoryWarning:              "Field audits are high-risk examinations. DO NOT respond without professional representation. This system cannot prepare field audit responses.",
	},

	model.AuditDocumentRequest: {
		Type: model.AuditDocumentRequest,
		Name: "Document Request Response",
		AllowedActions: []string{
			"comply_with_specific_request",
			"clarify_ambiguous_requests",
			"prepare_document_list",
		},
		ProhibitedActions: []string{
			"provide_unrequested_documents",
			"explain_beyond_necessity",
			"volunteer_context",
		},
		Sections: []string{
			"request_identification",
			"specific_items_requested",
			"document_list_only",
			"no_explanatory_narrative",
		},
		MaxNarrativeLines:             3,
		RequiresDocumentJustification: true,
		EscalationTriggers: []string{
			model.TriggerScopeExpansion,
			model.TriggerInterview,
			model.TriggerMultiYearDocs,
		},
	},

	model.AuditFollowUp: {
		Type: model.AuditFollowUp,
		Name: "Follow-Up Audit Notice Response",
		AllowedActions: []string{
			"prepare_response_outline",
			"seek_professional_representation",
		},
		ProhibitedActions: []string{
			"respond_without_review",
			"accept_findings_without_analysis",
			"waive_appeal_rights",
		},
		Sections: []string{
			"notice_identification",
			"findings_acknowledgment",
			"professional_review_required",
			"appeal_rights_preservation",
		},
		MaxNarrativeLines:             4,
		RequiresDocumentJustification: false,
		EscalationTriggers:            []string{model.TriggerImmediate},
		MandatoryWarning:              "This is a formal examination notice with appeal rights. Professional representation is strongly recommended.",
	},
}

// Get returns the playbook for an audit type, or nil if none exists
func Get(auditType model.AuditType) *model.Playbook {
	return playbooks[auditType]
}
