// Package placement owns the placement-test state machine: the mutable
// PlacementTest aggregate and the Controller that starts tests, scores
// answers, and decides when to stop.
//
// The engine is stateless between calls. Each operation is a function of
// (test state, input); persistence, transport, and serialization of
// concurrent writers belong to the caller.
package placement

import (
	"time"

	"github.com/abhisek/linguiz/internal/ability"
	"github.com/abhisek/linguiz/internal/cefr"
	"github.com/abhisek/linguiz/internal/irt"
	"github.com/abhisek/linguiz/internal/result"
)

// Status is the lifecycle state of a placement test. Transitions only move
// forward: in_progress → completed or abandoned.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusAbandoned  Status = "abandoned"
)

// Terminal reports whether the status admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusAbandoned
}

// Answer records one submitted response. Immutable once appended.
type Answer struct {
	QuestionID  string    `json:"question_id"`
	Response    string    `json:"response"`
	Correct     bool      `json:"correct"`
	TimeSpentMs int       `json:"time_spent_ms"`
	AnsweredAt  time.Time `json:"answered_at"`
}

// PlacementTest is the mutable aggregate for one test-taking session.
//
// While the test is in progress the Questions list is one ahead of
// Answers: the last question has been presented but not yet answered.
// Selection and presentation happen in a single controller step, so a
// caller never observes a test with an unselected next question.
type PlacementTest struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Status Status `json:"status"`

	// Questions are the items administered so far, in order. Append-only.
	Questions []*irt.Item `json:"questions"`

	// Answers are index-aligned with Questions. Append-only.
	Answers []Answer `json:"answers"`

	// CurrentQuestion is the number of questions answered so far.
	CurrentQuestion int `json:"current_question"`

	// TotalQuestions is the configured maximum test length.
	TotalQuestions int `json:"total_questions"`

	// Theta and SE are the latest ability estimate and its standard
	// error; EstimatedLevel and Confidence are derived from them after
	// every answer.
	Theta          float64    `json:"theta"`
	SE             float64    `json:"se"`
	EstimatedLevel cefr.Level `json:"estimated_level"`
	Confidence     float64    `json:"confidence"`

	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// Result is populated only when Status is completed.
	Result *result.TestResult `json:"result,omitempty"`
}

// PendingQuestion returns the presented-but-unanswered item, or nil when
// the test is terminal or every question has been answered.
func (t *PlacementTest) PendingQuestion() *irt.Item {
	if len(t.Questions) != len(t.Answers)+1 {
		return nil
	}
	return t.Questions[len(t.Questions)-1]
}

// Responses converts the answered history into estimator input.
func (t *PlacementTest) Responses() []ability.Response {
	responses := make([]ability.Response, 0, len(t.Answers))
	for i, a := range t.Answers {
		responses = append(responses, ability.Response{
			Item:    t.Questions[i],
			Correct: a.Correct,
		})
	}
	return responses
}

// administeredIDs returns the set of item IDs already used by this test.
func (t *PlacementTest) administeredIDs() map[string]bool {
	ids := make(map[string]bool, len(t.Questions))
	for _, q := range t.Questions {
		ids[q.ID] = true
	}
	return ids
}
