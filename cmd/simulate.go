package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/abhisek/linguiz/internal/cefr"
	"github.com/abhisek/linguiz/internal/placement"
	"github.com/abhisek/linguiz/internal/sim"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a simulated test with a synthetic respondent",
	Long: "Runs a full placement test against a synthetic respondent and prints\n" +
		"the per-question trace. Useful for sanity-checking item banks and the\n" +
		"adaptive behavior without sitting the test yourself.",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := resolveBank(cmd)
		if err != nil {
			return err
		}
		ctrl := placement.NewController(bank, resolveConfig(cmd))

		prior := cefr.B1
		if s, _ := cmd.Flags().GetString("prior"); s != "" {
			prior, err = cefr.ParseLevel(s)
			if err != nil {
				return err
			}
		}

		respondent, err := resolveRespondent(cmd)
		if err != nil {
			return err
		}

		transcript, err := sim.Run(ctrl, bank, respondent, "sim", prior)
		if err != nil {
			return err
		}

		printTranscript(transcript)
		return nil
	},
}

func init() {
	simulateCmd.Flags().Float64("theta", 0, "Simulated ability for a probabilistic respondent")
	simulateCmd.Flags().Float64("cutoff", 0, "Difficulty cutoff for a deterministic respondent")
	simulateCmd.Flags().String("prior", "", "Self-assessed starting level (A1..C2)")
	simulateCmd.Flags().Int64("seed", 0, "Random seed (default: current time)")
}

// resolveRespondent picks a respondent from the flags. --cutoff gives a
// deterministic respondent, --theta a probabilistic one (the default).
func resolveRespondent(cmd *cobra.Command) (sim.Respondent, error) {
	if cmd.Flags().Changed("cutoff") {
		cutoff, _ := cmd.Flags().GetFloat64("cutoff")
		return sim.ThresholdRespondent{Cutoff: cutoff}, nil
	}

	theta, _ := cmd.Flags().GetFloat64("theta")
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return sim.IRTRespondent{
		Theta: theta,
		Rand:  rand.New(rand.NewSource(seed)),
	}, nil
}

func printTranscript(transcript *sim.Transcript) {
	for i, step := range transcript.Steps {
		mark := "✗"
		if step.Correct {
			mark = "✓"
		}
		fmt.Printf("%2d. %s %-22s b=%+.2f  θ=%+.3f  SE=%.3f\n",
			i+1, mark, step.Item.ID, step.Item.Difficulty, step.Theta, step.SE)
	}

	test := transcript.Test
	fmt.Println()
	fmt.Printf("Placed at %s after %d questions (θ=%+.3f, SE=%.3f, confidence %.0f%%)\n",
		test.EstimatedLevel.DisplayName(), len(test.Answers),
		test.Theta, test.SE, test.Confidence*100)

	if test.Result == nil {
		return
	}
	for _, skill := range test.Result.Skills {
		fmt.Printf("  %-12s %s  %d/%d correct\n",
			skill.Skill.DisplayName(), skill.Level, skill.Correct, skill.Attempted)
	}
}
