package cmd

import (
	"fmt"

	"github.com/abhisek/linguiz/internal/cefr"
	"github.com/abhisek/linguiz/internal/irt"
	"github.com/abhisek/linguiz/internal/itembank"
	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect and validate item banks",
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate an item bank file against the schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := itembank.LoadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("OK: %d items\n", bank.Len())
		return nil
	},
}

var bankStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show item counts by skill and level",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := resolveBank(cmd)
		if err != nil {
			return err
		}
		printBankStats(bank)
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankValidateCmd)
	bankCmd.AddCommand(bankStatsCmd)
}

func printBankStats(bank itembank.Bank) {
	items := bank.Items(itembank.Filter{})

	fmt.Printf("%-12s", "")
	for _, level := range cefr.AllLevels() {
		fmt.Printf("%5s", level)
	}
	fmt.Printf("%7s\n", "total")

	for _, skill := range irt.AllSkills() {
		counts := make(map[cefr.Level]int)
		total := 0
		for _, item := range items {
			if item.Skill != skill {
				continue
			}
			counts[item.TargetLevel]++
			total++
		}

		fmt.Printf("%-12s", skill.DisplayName())
		for _, level := range cefr.AllLevels() {
			fmt.Printf("%5d", counts[level])
		}
		fmt.Printf("%7d\n", total)
	}

	fmt.Printf("\n%d items\n", len(items))
}
