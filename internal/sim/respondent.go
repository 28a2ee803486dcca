// Package sim drives a placement test with a synthetic respondent. It
// powers the `linguiz simulate` command and the end-to-end tests.
package sim

import (
	"math/rand"

	"github.com/abhisek/linguiz/internal/irt"
)

// Respondent decides how a simulated learner answers an item.
type Respondent interface {
	// Respond returns the raw answer string the learner submits.
	Respond(item *irt.Item) string
}

// ThresholdRespondent answers correctly exactly when the item's difficulty
// is at or below its cutoff. Useful for deterministic scenario tests: a
// cutoff of 0 places the learner's effective ability at theta 0.
type ThresholdRespondent struct {
	Cutoff float64
}

// Respond implements Respondent.
func (r ThresholdRespondent) Respond(item *irt.Item) string {
	if item.Difficulty <= r.Cutoff {
		return item.Content.Answer
	}
	return wrongAnswer(item)
}

// IRTRespondent answers correctly with the 3PL probability for its true
// theta, using the supplied random source so runs are reproducible.
type IRTRespondent struct {
	Theta float64
	Rand  *rand.Rand
}

// Respond implements Respondent.
func (r IRTRespondent) Respond(item *irt.Item) string {
	p := irt.ProbabilityCorrect(item, r.Theta)
	if r.Rand.Float64() < p {
		return item.Content.Answer
	}
	return wrongAnswer(item)
}

// wrongAnswer fabricates an incorrect response: the first distractor for a
// multiple-choice item, a junk string otherwise.
func wrongAnswer(item *irt.Item) string {
	if item.Content.Format == irt.FormatMultipleChoice {
		for _, choice := range item.Content.Choices {
			if choice != item.Content.Answer {
				return choice
			}
		}
	}
	return "(no idea)"
}
