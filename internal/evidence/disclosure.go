package evidence

import "github.com/jhouston2019/auditintel/internal/model"

// bulkDocumentThreshold is the document count above which a submission is
// flagged as a possible over-disclosure
const bulkDocumentThreshold = 50

// CheckOverDisclosure flags documents outside the audited tax years, bulk
// submissions, and documents whose category defaults to exclude
func CheckOverDisclosure(docs []model.ProvidedDocument, scope *model.AuditScope) model.DisclosureReport {
	var risks []model.DisclosureRisk

	outOfScope := 0
	for _, doc := range docs {
		if doc.TaxYear != 0 && !scope.ContainsYear(doc.TaxYear) {
			outOfScope++
		}
	}
	if outOfScope > 0 {
		risks = append(risks, model.DisclosureRisk{
			Severity:       "high",
			Issue:          "Documents outside audit scope",
			Count:          outOfScope,
			Recommendation: "Remove these documents before submitting",
		})
	}

	if len(docs) > bulkDocumentThreshold {
		risks = append(risks, model.DisclosureRisk{
			Severity:       "medium",
			Issue:          "Large number of documents",
			Count:          len(docs),
			Recommendation: "Review for relevance - you may be providing too much",
		})
	}

	excluded := 0
	for _, doc := range docs {
		if handling, ok := categories[doc.Category]; ok && handling.DefaultMode == model.ModeExclude {
			excluded++
		}
	}
	if excluded > 0 {
		risks = append(risks, model.DisclosureRisk{
			Severity:       "high",
			Issue:          "Documents that should typically be excluded",
			Count:          excluded,
			Recommendation: "Seek professional advice before providing these",
		})
	}

	report := model.DisclosureReport{
		HasRisks:              len(risks) > 0,
		Risks:                 risks,
		OverallRecommendation: "Document selection appears appropriate",
	}
	if report.HasRisks {
		report.OverallRecommendation = "Review document selection - potential over-disclosure detected"
	}

	return report
}

// TransmittalList builds the numbered document list that accompanies a
// response
func TransmittalList(docs []model.ProvidedDocument) model.TransmittalList {
	list := model.TransmittalList{
		Header: "Document Transmittal List",
		Instructions: []string{
			"This list identifies all documents provided in response to your examination notice",
			"Each document is numbered for reference",
			"Copies provided - originals retained",
		},
	}

	for i, doc := range docs {
		dateRange := doc.DateRange
		if dateRange == "" {
			dateRange = "N/A"
		}
		list.Documents = append(list.Documents, model.TransmittalEntry{
			Number:      i + 1,
			Description: doc.Description,
			Pages:       doc.Pages,
			DateRange:   dateRange,
			Category:    doc.Category,
		})
		list.TotalPages += doc.Pages
	}

	list.TotalDocuments = len(list.Documents)
	return list
}
