package model

import "time"

// DeadlineInfo describes the response window for a notice.
// DaysRemaining is computed against the clock at evaluation time, so the
// same input yields different urgency on different days; callers that need
// determinism inject a fixed clock into the calculator.
type DeadlineInfo struct {
	NoticeDate         *time.Time `json:"notice_date,omitempty"`
	ResponseDeadline   *time.Time `json:"response_deadline,omitempty"`
	DaysRemaining      *int       `json:"days_remaining,omitempty"`
	IsUrgent           bool       `json:"is_urgent"`   // <= 14 days
	IsCritical         bool       `json:"is_critical"` // <= 7 days
	ExtensionAvailable bool       `json:"extension_available"`
}

// DeadlineDefaults is the standard response window for an audit type
type DeadlineDefaults struct {
	StandardDays       int  `json:"standard_days"`
	ExtensionAvailable bool `json:"extension_available"`
	MaxExtensionDays   int  `json:"max_extension_days"`
}
