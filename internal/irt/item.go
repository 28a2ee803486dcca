package irt

import "github.com/abhisek/linguiz/internal/cefr"

// Format describes how an item is answered.
type Format string

const (
	FormatMultipleChoice Format = "multiple_choice"
	FormatShortAnswer    Format = "short_answer"
)

// Content holds the learner-facing part of an item. The engine treats it
// as opaque beyond answer checking.
type Content struct {
	Prompt  string   `json:"prompt"`
	Format  Format   `json:"format"`
	Choices []string `json:"choices,omitempty"`
	Answer  string   `json:"answer"`
}

// Item is a single calibrated test question. Items are immutable once
// loaded from a bank.
type Item struct {
	ID    string `json:"id"`
	Skill Skill  `json:"skill"`

	// Discrimination (a) controls how sharply the item separates ability
	// levels. Must be > 0 for a valid calibration.
	Discrimination float64 `json:"discrimination"`

	// Difficulty (b) is the ability at which P(correct) is halfway between
	// the guessing floor and 1.
	Difficulty float64 `json:"difficulty"`

	// Guessing (c) is the floor probability of a correct response by
	// chance. Must be in [0, 1).
	Guessing float64 `json:"guessing"`

	// TargetLevel is the CEFR label assigned at calibration time. It is
	// informational: selection and scoring use the numeric parameters.
	TargetLevel cefr.Level `json:"target_level"`

	Content Content `json:"content"`
}

// ValidCalibration reports whether the item's IRT parameters are usable.
func (it *Item) ValidCalibration() bool {
	return it.Discrimination > 0 && it.Guessing >= 0 && it.Guessing < 1
}
