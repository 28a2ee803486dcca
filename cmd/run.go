package cmd

import (
	"fmt"
	"os"
	"os/user"

	"github.com/abhisek/linguiz/internal/app"
	"github.com/abhisek/linguiz/internal/itembank"
	"github.com/abhisek/linguiz/internal/placement"
	"github.com/abhisek/linguiz/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, loads the item bank, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	bank, err := resolveBank(cmd)
	if err != nil {
		return err
	}

	ctrl := placement.NewController(bank, resolveConfig(cmd))

	return app.Run(app.Options{
		Controller: ctrl,
		Repo:       st.TestRepo(),
		UserID:     localUserID(),
	})
}

// resolveBank loads the --bank file, or falls back to the built-in bank.
func resolveBank(cmd *cobra.Command) (itembank.Bank, error) {
	path, _ := cmd.Flags().GetString("bank")
	if path == "" {
		return itembank.BuiltinBank(), nil
	}
	bank, err := itembank.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load item bank: %w", err)
	}
	return bank, nil
}

// resolveConfig applies command-line overrides to the default placement
// settings.
func resolveConfig(cmd *cobra.Command) placement.Config {
	cfg := placement.DefaultConfig()
	if n, _ := cmd.Flags().GetInt("questions"); n > 0 {
		cfg.TotalQuestions = n
	}
	return cfg
}

// localUserID identifies the learner for stored results. Placement is a
// single-user local affair, so the OS username is enough.
func localUserID() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "local"
}
