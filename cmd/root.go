package cmd

import (
	"github.com/abhisek/linguiz/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "linguiz",
	Short: "Adaptive CEFR placement testing in your terminal",
	Long: "Linguiz — terminal app that places language learners on the CEFR scale\n" +
		"with a short computerized adaptive test.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LINGUIZ_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Path to a JSON item bank file (default: built-in bank)")
	rootCmd.PersistentFlags().Int("questions", 0, "Maximum number of questions (default 15)")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then LINGUIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
