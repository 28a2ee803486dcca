package placement

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/linguiz/internal/ability"
	"github.com/abhisek/linguiz/internal/cefr"
	"github.com/abhisek/linguiz/internal/irt"
	"github.com/abhisek/linguiz/internal/itembank"
	"github.com/abhisek/linguiz/internal/result"
	"github.com/abhisek/linguiz/internal/selector"
)

// QuestionView is the learner-facing projection of an item: content only,
// with the IRT parameters and the canonical answer withheld.
type QuestionView struct {
	ID      string     `json:"id"`
	Skill   irt.Skill  `json:"skill"`
	Prompt  string     `json:"prompt"`
	Format  irt.Format `json:"format"`
	Choices []string   `json:"choices,omitempty"`

	// Number is the 1-based position of this question in the test;
	// Total is the configured maximum.
	Number int `json:"number"`
	Total  int `json:"total"`
}

// StepResult is the outcome of one SubmitAnswer call.
type StepResult struct {
	Test *PlacementTest

	// NextQuestion is nil when the test terminated on this step.
	NextQuestion *QuestionView

	// Correct reports whether the submitted answer was right.
	Correct bool

	Completed bool
}

// Controller orchestrates the placement-test lifecycle. It holds only its
// collaborators (item bank, estimator, clock) and configuration; all
// per-test state lives in the PlacementTest the caller passes in and
// persists between calls. Concurrent SubmitAnswer calls against the same
// test must be serialized by the caller.
type Controller struct {
	bank      itembank.Bank
	estimator *ability.Estimator
	cfg       Config

	// now is the clock, injectable for tests.
	now func() time.Time
}

// NewController creates a controller over the given bank.
func NewController(bank itembank.Bank, cfg Config) *Controller {
	return &Controller{
		bank:      bank,
		estimator: ability.NewEstimator(cfg.Estimator),
		cfg:       cfg,
		now:       time.Now,
	}
}

// WithClock replaces the controller's clock. Intended for tests.
func (c *Controller) WithClock(now func() time.Time) *Controller {
	c.now = now
	return c
}

// StartTest creates a new in-progress test for the user with the first
// question already selected, so the caller always has something to
// present. priorLevel, when non-empty, seeds the initial ability estimate
// at that band's midpoint; otherwise the prior is theta 0.
func (c *Controller) StartTest(userID string, priorLevel cefr.Level) (*PlacementTest, *QuestionView, error) {
	if userID == "" {
		return nil, nil, validationf("user ID is required")
	}
	if priorLevel != "" && !priorLevel.Valid() {
		return nil, nil, validationf("unknown prior level %q", priorLevel)
	}

	seed := 0.0
	if priorLevel != "" {
		seed = cefr.ThetaForLevel(priorLevel)
	}

	test := &PlacementTest{
		ID:              uuid.New().String(),
		UserID:          userID,
		Status:          StatusInProgress,
		CurrentQuestion: 0,
		TotalQuestions:  c.cfg.TotalQuestions,
		Theta:           seed,
		SE:              c.cfg.Estimator.MaxSE,
		EstimatedLevel:  cefr.LevelForTheta(seed),
		Confidence:      cefr.Confidence(c.cfg.Estimator.MaxSE),
		StartedAt:       c.now(),
	}

	first, ok := selector.NextItem(c.pool(), nil, seed)
	if !ok {
		return nil, nil, validationf("item bank is empty")
	}
	test.Questions = append(test.Questions, first)

	return test, c.viewOf(test, first), nil
}

// SubmitAnswer scores the response to the pending question, re-estimates
// ability, and either selects the next question or terminates the test.
//
// The call is atomic: validation happens before any mutation, so a
// rejected submission leaves the test untouched. Numerical edge cases
// inside the estimator never surface as errors.
func (c *Controller) SubmitAnswer(test *PlacementTest, questionID, response string, timeSpentMs int) (*StepResult, error) {
	if test == nil {
		return nil, validationf("test is required")
	}
	if test.Status != StatusInProgress {
		return nil, validationf("test %s is %s, not in progress", test.ID, test.Status)
	}
	pending := test.PendingQuestion()
	if pending == nil {
		return nil, validationf("test %s has no pending question", test.ID)
	}
	if pending.ID != questionID {
		return nil, validationf("question %s is not the pending question (expected %s)", questionID, pending.ID)
	}

	correct := itembank.CheckAnswer(response, pending)
	test.Answers = append(test.Answers, Answer{
		QuestionID:  pending.ID,
		Response:    response,
		Correct:     correct,
		TimeSpentMs: timeSpentMs,
		AnsweredAt:  c.now(),
	})
	test.CurrentQuestion = len(test.Answers)

	est := c.estimator.Estimate(test.Responses(), test.Theta)
	test.Theta = est.Theta
	test.SE = est.SE
	test.EstimatedLevel = cefr.LevelForTheta(est.Theta)
	test.Confidence = cefr.Confidence(est.SE)

	step := &StepResult{Test: test, Correct: correct}

	if c.shouldTerminate(test) {
		c.complete(test, est)
		step.Completed = true
		return step, nil
	}

	next, ok := selector.NextItem(c.pool(), test.administeredIDs(), test.Theta)
	if !ok {
		// Pool exhausted before reaching the question limit: an early but
		// valid termination, not a failure.
		c.complete(test, est)
		step.Completed = true
		return step, nil
	}

	test.Questions = append(test.Questions, next)
	step.NextQuestion = c.viewOf(test, next)
	return step, nil
}

// Abandon marks an in-progress test as abandoned. No result is generated.
func (c *Controller) Abandon(test *PlacementTest) error {
	if test == nil {
		return validationf("test is required")
	}
	if test.Status != StatusInProgress {
		return validationf("test %s is %s, not in progress", test.ID, test.Status)
	}
	test.Status = StatusAbandoned
	now := c.now()
	test.CompletedAt = &now
	return nil
}

// shouldTerminate evaluates the termination conditions in order: question
// limit, then precision (guarded by the minimum question count). Pool
// exhaustion is detected at selection time. The question limit is read
// from the test aggregate, which fixed it at StartTest; a test resumed
// under a differently-configured controller keeps its original length.
func (c *Controller) shouldTerminate(test *PlacementTest) bool {
	if test.CurrentQuestion >= test.TotalQuestions {
		return true
	}
	if test.SE < c.cfg.SEThreshold && test.CurrentQuestion >= c.cfg.MinQuestions {
		return true
	}
	return false
}

// complete freezes the test and generates its result.
func (c *Controller) complete(test *PlacementTest, est ability.Estimate) {
	test.Status = StatusCompleted
	now := c.now()
	test.CompletedAt = &now
	test.Result = result.Generate(test.Responses(), est, c.estimator)
}

// pool returns every item in the bank.
func (c *Controller) pool() []*irt.Item {
	return c.bank.Items(itembank.Filter{})
}

// viewOf projects an item into its learner-facing view.
func (c *Controller) viewOf(test *PlacementTest, item *irt.Item) *QuestionView {
	return &QuestionView{
		ID:      item.ID,
		Skill:   item.Skill,
		Prompt:  item.Content.Prompt,
		Format:  item.Content.Format,
		Choices: item.Content.Choices,
		Number:  len(test.Questions),
		Total:   test.TotalQuestions,
	}
}
