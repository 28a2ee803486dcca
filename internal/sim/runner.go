package sim

import (
	"fmt"

	"github.com/abhisek/linguiz/internal/cefr"
	"github.com/abhisek/linguiz/internal/irt"
	"github.com/abhisek/linguiz/internal/itembank"
	"github.com/abhisek/linguiz/internal/placement"
)

// Step captures one question/answer exchange with the ability estimate
// after it.
type Step struct {
	Item     *irt.Item
	Response string
	Correct  bool
	Theta    float64
	SE       float64
}

// Transcript is the full record of a simulated test run.
type Transcript struct {
	Test  *placement.PlacementTest
	Steps []Step
}

// simTimePerAnswerMs is the response time recorded for simulated answers.
const simTimePerAnswerMs = 1500

// Run drives a complete test through the controller with the given
// respondent, from StartTest to completion.
func Run(ctrl *placement.Controller, bank itembank.Bank, respondent Respondent, userID string, prior cefr.Level) (*Transcript, error) {
	test, question, err := ctrl.StartTest(userID, prior)
	if err != nil {
		return nil, fmt.Errorf("start test: %w", err)
	}

	transcript := &Transcript{Test: test}

	for question != nil {
		item, ok := bank.Item(question.ID)
		if !ok {
			return nil, fmt.Errorf("question %s not found in bank", question.ID)
		}

		response := respondent.Respond(item)
		step, err := ctrl.SubmitAnswer(test, question.ID, response, simTimePerAnswerMs)
		if err != nil {
			return nil, fmt.Errorf("submit answer for %s: %w", question.ID, err)
		}

		transcript.Steps = append(transcript.Steps, Step{
			Item:     item,
			Response: response,
			Correct:  step.Correct,
			Theta:    test.Theta,
			SE:       test.SE,
		})

		question = step.NextQuestion
	}

	return transcript, nil
}
