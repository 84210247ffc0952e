package deadline

import (
	"math"
	"regexp"
	"time"

	"github.com/jhouston2019/auditintel/internal/model"
)

// standardResponseDays is the default IRS response window when the notice
// states no explicit deadline
const standardResponseDays = 30

// Accepted calendar range for extracted notice dates; anything outside is a
// spurious match
const (
	minNoticeYear = 2020
	maxNoticeYear = 2030
)

// Urgency thresholds in days remaining
const (
	urgentDays   = 14
	criticalDays = 7
)

// deadlinePatterns capture an explicit response deadline; tried in order
var deadlinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)respond\s+by\s+(\w+\s+\d{1,2},\s+\d{4})`),
	regexp.MustCompile(`(?i)due\s+date:\s*(\w+\s+\d{1,2},\s+\d{4})`),
	regexp.MustCompile(`(?i)deadline:\s*(\w+\s+\d{1,2},\s+\d{4})`),
	regexp.MustCompile(`(?i)(\w+\s+\d{1,2},\s+\d{4})\s+deadline`),
}

// noticeDatePatterns capture the notice's own date; tried in order
var noticeDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)date:\s*(\w+\s+\d{1,2},\s+\d{4})`),
	regexp.MustCompile(`(?i)dated\s+(\w+\s+\d{1,2},\s+\d{4})`),
	regexp.MustCompile(`(?i)(\w+\s+\d{1,2},\s+\d{4})`),
}

// typeDefaults is the standard response window per audit type
var typeDefaults = map[model.AuditType]model.DeadlineDefaults{
	model.AuditCorrespondence:  {StandardDays: 30, ExtensionAvailable: true, MaxExtensionDays: 30},
	model.AuditOffice:          {StandardDays: 30, ExtensionAvailable: true, MaxExtensionDays: 30},
	model.AuditField:           {StandardDays: 30, ExtensionAvailable: true, MaxExtensionDays: 60},
	model.AuditDocumentRequest: {StandardDays: 30, ExtensionAvailable: true, MaxExtensionDays: 30},
	model.AuditFollowUp:        {StandardDays: 30, ExtensionAvailable: false, MaxExtensionDays: 0},
}

// Calculator determines response deadlines and urgency. DaysRemaining is
// measured against the calculator's clock, so results for the same input
// change over time; tests inject a fixed clock.
type Calculator struct {
	now func() time.Time
}

// NewCalculator creates a calculator using the wall clock
func NewCalculator() *Calculator {
	return &Calculator{now: time.Now}
}

// NewCalculatorAt creates a calculator with an injected clock
func NewCalculatorAt(now func() time.Time) *Calculator {
	return &Calculator{now: now}
}

// Extract determines the response deadline from explicit text, falling back
// to notice date + 30 calendar days. noticeDate overrides extraction when
// non-nil.
func (c *Calculator) Extract(text string, noticeDate *time.Time) model.DeadlineInfo {
	info := model.DeadlineInfo{NoticeDate: noticeDate}
	if info.NoticeDate == nil {
		info.NoticeDate = extractNoticeDate(text)
	}

	for _, pattern := range deadlinePatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		if parsed, ok := parseDate(match[1]); ok {
			info.ResponseDeadline = &parsed
			break
		}
	}

	if info.ResponseDeadline == nil && info.NoticeDate != nil {
		fallback := info.NoticeDate.AddDate(0, 0, standardResponseDays)
		info.ResponseDeadline = &fallback
	}

	if info.ResponseDeadline != nil {
		remaining := daysBetween(c.now(), *info.ResponseDeadline)
		info.DaysRemaining = &remaining
		info.IsUrgent = remaining <= urgentDays
		info.IsCritical = remaining <= criticalDays
	}

	return info
}

// Defaults returns the standard response window for an audit type,
// defaulting to the correspondence audit window
func Defaults(auditType model.AuditType) model.DeadlineDefaults {
	if d, ok := typeDefaults[auditType]; ok {
		return d
	}
	return typeDefaults[model.AuditCorrespondence]
}

// extractNoticeDate finds the notice's own date, accepting only plausible
// years
func extractNoticeDate(text string) *time.Time {
	for _, pattern := range noticeDatePatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		parsed, ok := parseDate(match[1])
		if !ok {
			continue
		}
		if parsed.Year() >= minNoticeYear && parsed.Year() <= maxNoticeYear {
			return &parsed
		}
	}
	return nil
}

// parseDate parses "Month D, YYYY" dates
func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse("January 2, 2006", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// daysBetween returns whole days from now until the deadline, rounded up
func daysBetween(now, deadline time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}
