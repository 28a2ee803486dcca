package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/linguiz/internal/selfupdate"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check whether a newer linguiz release is available",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker("abhisek", "linguiz")

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		result, err := checker.Check(ctx, version)
		if errors.Is(err, selfupdate.ErrDevBuild) {
			fmt.Println("Cannot check updates for a development build. Install a release build first.")
			return nil
		}
		if err != nil {
			return err
		}

		if !result.UpdateAvailable {
			fmt.Printf("Already running the latest version (%s).\n", result.CurrentVersion)
			return nil
		}

		fmt.Printf("Update available: %s -> %s\n", result.CurrentVersion, result.LatestVersion)
		fmt.Printf("Download it from %s\n", result.ReleaseURL)
		return nil
	},
}
