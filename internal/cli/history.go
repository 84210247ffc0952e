package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded analyses",
	Long: `History lists analyses recorded in the local database, most recent
first. Days remaining is the value at analysis time, not recomputed.

Example:
  auditintel history
  auditintel history -n 50
  auditintel history show 3f8a2c1b`,
	RunE: runHistoryList,
}

// historyShowCmd shows one recorded analysis in full
var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a recorded analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of analyses to show")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if !cfg.Store.Enabled {
		return fmt.Errorf("history is disabled in configuration")
	}

	s, err := openStore(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := s.ListAnalyses(historyLimit, 0)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No analyses recorded yet. Use 'auditintel analyze' to create one.")
		return nil
	}

	for _, r := range records {
		status := r.AuditType
		if r.Rejected {
			status = "rejected (" + r.AuditType + ")"
		} else if r.EscalationRequired {
			status += " [ESCALATION]"
		}

		days := "-"
		if r.DaysRemaining != nil {
			days = fmt.Sprintf("%dd", *r.DaysRemaining)
		}

		fmt.Printf("%s  %s  %-24s %-8s %s\n",
			r.ID[:8], r.AnalyzedAt.Format("2006-01-02 15:04"), status, r.RiskLevel, days)
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if !cfg.Store.Enabled {
		return fmt.Errorf("history is disabled in configuration")
	}

	s, err := openStore(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer s.Close()

	// Resolve ID prefix
	records, err := s.ListAnalyses(500, 0)
	if err != nil {
		return err
	}

	var fullID string
	for _, r := range records {
		if strings.HasPrefix(r.ID, args[0]) {
			fullID = r.ID
			break
		}
	}
	if fullID == "" {
		return fmt.Errorf("analysis not found: %s", args[0])
	}

	record, err := s.GetAnalysis(fullID)
	if err != nil {
		return err
	}

	fmt.Printf("ID:       %s\n", record.ID)
	fmt.Printf("Analyzed: %s\n", record.AnalyzedAt.Format("2006-01-02 15:04:05"))
	fmt.Println()

	if record.Result.Rejected {
		fmt.Printf("Rejected: %s\n%s\n", record.Result.RejectedType, record.Result.Message)
		return nil
	}

	fmt.Println(record.Result.TextOutput)

	validations, err := s.ListValidations(record.ID)
	if err != nil {
		return err
	}
	if len(validations) > 0 {
		fmt.Println("Draft validation runs:")
		for _, v := range validations {
			status := "valid"
			if !v.Valid {
				status = fmt.Sprintf("invalid (%s)", strings.Join(v.Errors, "; "))
			}
			fmt.Printf("  %s  %s\n", v.CheckedAt.Format("2006-01-02 15:04"), status)
		}
	}

	return nil
}
