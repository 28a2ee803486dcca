package placement

import "github.com/abhisek/linguiz/internal/ability"

// Config holds the test-length and termination settings for a placement
// test. The defaults are working values; none of them are statistically
// sacred, so callers may tune them per deployment.
type Config struct {
	// TotalQuestions is the maximum number of items administered.
	TotalQuestions int

	// SEThreshold ends the test early once the ability estimate is this
	// precise, provided MinQuestions have been answered.
	SEThreshold float64

	// MinQuestions guards against terminating on a short lucky (or
	// unlucky) streak.
	MinQuestions int

	// Estimator configures the ability estimator runs.
	Estimator ability.Config
}

// DefaultConfig returns the settings used by the linguiz CLI.
func DefaultConfig() Config {
	return Config{
		TotalQuestions: 15,
		SEThreshold:    0.3,
		MinQuestions:   5,
		Estimator:      ability.DefaultConfig(),
	}
}
