package cmd

import (
	"fmt"

	"github.com/abhisek/linguiz/internal/placement"
	"github.com/abhisek/linguiz/internal/store"
	"github.com/spf13/cobra"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "List past placement test results",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		summaries, err := st.TestRepo().List(cmd.Context())
		if err != nil {
			return err
		}
		if len(summaries) == 0 {
			fmt.Println("No test results yet. Run `linguiz` to take a placement test.")
			return nil
		}

		for _, s := range summaries {
			fmt.Printf("%s  %-10s  %s\n", s.StartedAt.Format("2006-01-02 15:04"),
				s.Status, describeSummary(s))
		}
		return nil
	},
}

func describeSummary(s store.TestSummary) string {
	if s.Status != placement.StatusCompleted {
		return fmt.Sprintf("%d questions answered", s.Questions)
	}
	return fmt.Sprintf("%s (confidence %.0f%%, %d questions)",
		s.Level.DisplayName(), s.Confidence*100, s.Questions)
}
