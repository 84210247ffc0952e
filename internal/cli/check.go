package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhouston2019/auditintel/internal/model"
	"github.com/jhouston2019/auditintel/internal/validate"
)

var (
	checkType     string
	checkYears    string
	checkAnalysis string
	checkNoStore  bool
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <draft-file>",
	Short: "Validate a drafted response against its playbook",
	Long: `Check validates a drafted response letter against the response
playbook for the given audit type:
- Prohibited-action language (volunteering, explaining, disputing)
- Narrative length budget
- Scope expansion: tax years outside the audited years
- Dangerous language (admissions, self-incrimination)

The check depends only on the static playbook tables; no analysis run is
required. Pass --years to enable the scope-expansion check, or --analysis
to link the result to a recorded analysis.

Use "-" to read the draft from stdin.

Example:
  auditintel check draft.txt --type correspondence_audit
  auditintel check draft.txt --type document_request --years 2021,2022
  auditintel check draft.txt --type office_audit --analysis 3f8a2c1b`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkType, "type", "", "audit type (correspondence_audit, office_audit, field_audit, document_request, follow_up_audit)")
	checkCmd.Flags().StringVar(&checkYears, "years", "", "audited tax years, comma-separated (enables scope-expansion check)")
	checkCmd.Flags().StringVar(&checkAnalysis, "analysis", "", "recorded analysis ID to link this check to")
	checkCmd.Flags().BoolVar(&checkNoStore, "no-store", false, "do not record the validation run")
	_ = checkCmd.MarkFlagRequired("type")
}

func runCheck(cmd *cobra.Command, args []string) error {
	draft, err := readNotice(args[0])
	if err != nil {
		return err
	}

	auditType := model.AuditType(checkType)

	var scope *model.AuditScope
	if checkYears != "" {
		years, err := parseYears(checkYears)
		if err != nil {
			return err
		}
		scope = &model.AuditScope{TaxYears: years}
	}

	result := validate.ValidateProposedResponse(auditType, draft, scope)

	if result.Valid {
		fmt.Println("VALID: draft complies with the playbook")
	} else {
		fmt.Println("INVALID: draft violates the playbook")
	}

	for _, e := range result.Errors {
		fmt.Printf("  ✗ %s\n", e)
	}
	for _, w := range result.Warnings {
		fmt.Printf("  ! %s\n", w)
	}
	for _, issue := range result.SafetyIssues {
		fmt.Printf("  ! [%s] %s: %s\n", issue.Severity, issue.Issue, issue.Recommendation)
	}

	// Record the validation run
	cfg := loadConfig()
	if cfg.Store.Enabled && !checkNoStore {
		s, err := openStore(cfg.Store.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to open history: %v\n", err)
		} else {
			defer s.Close()
			if _, err := s.SaveValidation(checkAnalysis, auditType, &result); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to record validation: %v\n", err)
			}
		}
	}

	if !result.Valid {
		return fmt.Errorf("draft failed validation")
	}
	return nil
}

// parseYears parses a comma-separated year list
func parseYears(s string) ([]int, error) {
	var years []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		year, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("parse year %q: %w", part, err)
		}
		years = append(years, year)
	}
	return years, nil
}
