package placement

import (
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/linguiz/internal/cefr"
	"github.com/abhisek/linguiz/internal/irt"
	"github.com/abhisek/linguiz/internal/itembank"
)

// testBank builds a grammar-only bank with n items spread evenly over
// [lo, hi] on the difficulty scale.
func testBank(t *testing.T, n int, lo, hi float64) *itembank.InMemoryBank {
	t.Helper()
	items := make([]*irt.Item, n)
	for i := range items {
		b := lo
		if n > 1 {
			b = lo + (hi-lo)*float64(i)/float64(n-1)
		}
		items[i] = &irt.Item{
			ID:             fmt.Sprintf("gram-%02d", i+1),
			Skill:          irt.SkillGrammar,
			Discrimination: 1.0,
			Difficulty:     b,
			Guessing:       0.2,
			TargetLevel:    cefr.LevelForTheta(b),
			Content: irt.Content{
				Prompt:  fmt.Sprintf("question %d", i+1),
				Format:  irt.FormatMultipleChoice,
				Choices: []string{"right", "wrong", "also wrong", "nope"},
				Answer:  "right",
			},
		}
	}
	bank, err := itembank.NewInMemoryBank(items)
	if err != nil {
		t.Fatalf("building test bank: %v", err)
	}
	return bank
}

// answerBelow answers correctly iff the pending item's difficulty is at or
// below cutoff. The simplest deterministic respondent.
func answerBelow(t *testing.T, ctrl *Controller, test *PlacementTest, q *QuestionView, bank itembank.Bank, cutoff float64) *StepResult {
	t.Helper()
	item, ok := bank.Item(q.ID)
	if !ok {
		t.Fatalf("question %s not in bank", q.ID)
	}
	response := "wrong"
	if item.Difficulty <= cutoff {
		response = item.Content.Answer
	}
	step, err := ctrl.SubmitAnswer(test, q.ID, response, 1000)
	if err != nil {
		t.Fatalf("submit answer for %s: %v", q.ID, err)
	}
	return step
}

func fixedClock() func() time.Time {
	at := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestStartTest_SeedsFromPriorLevel(t *testing.T) {
	bank := testBank(t, 10, -2, 2)
	ctrl := NewController(bank, DefaultConfig())

	test, q, err := ctrl.StartTest("learner", cefr.A1)
	if err != nil {
		t.Fatal(err)
	}
	if test.Status != StatusInProgress {
		t.Errorf("status = %s", test.Status)
	}
	if test.Theta != cefr.ThetaForLevel(cefr.A1) {
		t.Errorf("theta seeded at %v, want A1 midpoint %v", test.Theta, cefr.ThetaForLevel(cefr.A1))
	}
	if q == nil {
		t.Fatal("no first question")
	}

	// The first item should sit near the seeded estimate, not mid-bank.
	item, _ := bank.Item(q.ID)
	if item.Difficulty > -1.0 {
		t.Errorf("first item difficulty %v is far from the A1 seed", item.Difficulty)
	}

	// Without a prior the seed is theta 0.
	test2, _, err := ctrl.StartTest("learner", "")
	if err != nil {
		t.Fatal(err)
	}
	if test2.Theta != 0 {
		t.Errorf("unseeded theta = %v, want 0", test2.Theta)
	}
	if test.ID == test2.ID {
		t.Error("test IDs must be unique")
	}
}

func TestStartTest_Validation(t *testing.T) {
	bank := testBank(t, 3, -1, 1)
	ctrl := NewController(bank, DefaultConfig())

	if _, _, err := ctrl.StartTest("", ""); !IsValidation(err) {
		t.Errorf("empty user ID: got %v, want validation error", err)
	}
	if _, _, err := ctrl.StartTest("learner", cefr.Level("Z9")); !IsValidation(err) {
		t.Errorf("bad prior level: got %v, want validation error", err)
	}

	empty, err := itembank.NewInMemoryBank(nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := NewController(empty, DefaultConfig()).StartTest("learner", ""); !IsValidation(err) {
		t.Errorf("empty bank: got %v, want validation error", err)
	}
}

func TestSubmitAnswer_RejectsWithoutMutation(t *testing.T) {
	bank := testBank(t, 10, -2, 2)
	ctrl := NewController(bank, DefaultConfig())
	test, q, err := ctrl.StartTest("learner", "")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ctrl.SubmitAnswer(nil, q.ID, "right", 0); !IsValidation(err) {
		t.Errorf("nil test: got %v", err)
	}
	if _, err := ctrl.SubmitAnswer(test, "not-the-pending-one", "right", 0); !IsValidation(err) {
		t.Errorf("wrong question ID: got %v", err)
	}
	if len(test.Answers) != 0 || len(test.Questions) != 1 {
		t.Error("rejected submission mutated the test")
	}

	// Answer it properly, then try to answer the same question again.
	if _, err := ctrl.SubmitAnswer(test, q.ID, "right", 0); err != nil {
		t.Fatal(err)
	}
	if _, err := ctrl.SubmitAnswer(test, q.ID, "right", 0); !IsValidation(err) {
		t.Errorf("double submission: got %v, want validation error", err)
	}
	if len(test.Answers) != 1 {
		t.Error("double submission mutated the test")
	}
}

func TestSubmitAnswer_FullRunTerminatesOnQuestionLimit(t *testing.T) {
	bank := testBank(t, 10, -2, 2)
	cfg := DefaultConfig()
	cfg.TotalQuestions = 5
	ctrl := NewController(bank, cfg).WithClock(fixedClock())

	test, q, err := ctrl.StartTest("learner", cefr.B1)
	if err != nil {
		t.Fatal(err)
	}

	var last *StepResult
	for q != nil {
		last = answerBelow(t, ctrl, test, q, bank, 0)
		q = last.NextQuestion
	}

	if !last.Completed {
		t.Fatal("final step not marked completed")
	}
	if test.Status != StatusCompleted {
		t.Errorf("status = %s", test.Status)
	}
	if len(test.Answers) != cfg.TotalQuestions {
		t.Errorf("answered %d questions, want %d", len(test.Answers), cfg.TotalQuestions)
	}
	if len(test.Questions) != len(test.Answers) {
		t.Errorf("questions (%d) and answers (%d) misaligned after completion",
			len(test.Questions), len(test.Answers))
	}
	if test.CompletedAt == nil {
		t.Error("CompletedAt not set")
	}
	if test.Result == nil {
		t.Fatal("no result generated")
	}

	// Correct below 0, incorrect above: the estimate belongs mid-scale.
	if test.Theta < -1.5 || test.Theta > 1.5 {
		t.Errorf("theta = %v, want a mid-range estimate", test.Theta)
	}
	if test.EstimatedLevel != cefr.LevelForTheta(test.Theta) {
		t.Errorf("level %s does not match theta %v", test.EstimatedLevel, test.Theta)
	}
	if test.Confidence <= 0 || test.Confidence >= 1 {
		t.Errorf("confidence = %v, want strictly inside (0, 1)", test.Confidence)
	}

	seen := map[string]bool{}
	for _, item := range test.Questions {
		if seen[item.ID] {
			t.Errorf("item %s administered twice", item.ID)
		}
		seen[item.ID] = true
	}
}

func TestSubmitAnswer_HonorsPerTestQuestionLimit(t *testing.T) {
	bank := testBank(t, 10, -2, 2)

	short := DefaultConfig()
	short.TotalQuestions = 3
	test, q, err := NewController(bank, short).StartTest("learner", "")
	if err != nil {
		t.Fatal(err)
	}

	// Resume the test under a controller configured for longer tests. The
	// limit fixed at start time still governs.
	long := DefaultConfig()
	long.TotalQuestions = 10
	ctrl := NewController(bank, long)

	for q != nil {
		step := answerBelow(t, ctrl, test, q, bank, 0)
		q = step.NextQuestion
	}

	if len(test.Answers) != short.TotalQuestions {
		t.Errorf("answered %d questions, want the test's own limit %d",
			len(test.Answers), short.TotalQuestions)
	}
	if test.Status != StatusCompleted {
		t.Errorf("status = %s", test.Status)
	}
}

func TestSubmitAnswer_PoolExhaustionCompletesEarly(t *testing.T) {
	bank := testBank(t, 3, -1, 1)
	cfg := DefaultConfig()
	cfg.TotalQuestions = 10
	cfg.MinQuestions = 5
	ctrl := NewController(bank, cfg)

	test, q, err := ctrl.StartTest("learner", "")
	if err != nil {
		t.Fatal(err)
	}

	steps := 0
	for q != nil {
		step := answerBelow(t, ctrl, test, q, bank, 0)
		q = step.NextQuestion
		steps++
	}

	if steps != bank.Len() {
		t.Errorf("took %d steps, want the full pool (%d)", steps, bank.Len())
	}
	if test.Status != StatusCompleted {
		t.Errorf("status = %s, want completed on pool exhaustion", test.Status)
	}
	if test.Result == nil {
		t.Error("exhaustion termination should still produce a result")
	}
}

func TestSubmitAnswer_PrecisionStopRequiresMinQuestions(t *testing.T) {
	bank := testBank(t, 12, -2, 2)
	cfg := DefaultConfig()
	cfg.TotalQuestions = 12
	cfg.MinQuestions = 5
	// A threshold this loose is met almost immediately, so the minimum
	// question guard is what keeps the test going.
	cfg.SEThreshold = 1.5
	ctrl := NewController(bank, cfg)

	test, q, err := ctrl.StartTest("learner", "")
	if err != nil {
		t.Fatal(err)
	}
	for q != nil {
		step := answerBelow(t, ctrl, test, q, bank, 0)
		q = step.NextQuestion
	}

	if len(test.Answers) < cfg.MinQuestions {
		t.Errorf("terminated after %d answers, minimum is %d", len(test.Answers), cfg.MinQuestions)
	}
}

func TestAbandon(t *testing.T) {
	bank := testBank(t, 5, -1, 1)
	ctrl := NewController(bank, DefaultConfig()).WithClock(fixedClock())

	test, _, err := ctrl.StartTest("learner", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := ctrl.Abandon(test); err != nil {
		t.Fatal(err)
	}
	if test.Status != StatusAbandoned {
		t.Errorf("status = %s", test.Status)
	}
	if test.CompletedAt == nil {
		t.Error("CompletedAt not set on abandon")
	}
	if test.Result != nil {
		t.Error("abandoned test must not carry a result")
	}

	if err := ctrl.Abandon(test); !IsValidation(err) {
		t.Errorf("abandoning twice: got %v, want validation error", err)
	}
	if _, err := ctrl.SubmitAnswer(test, "whatever", "x", 0); !IsValidation(err) {
		t.Errorf("submitting to abandoned test: got %v, want validation error", err)
	}
}

func TestQuestionView_WithholdsAnswerAndParameters(t *testing.T) {
	bank := testBank(t, 5, -1, 1)
	ctrl := NewController(bank, DefaultConfig())

	test, q, err := ctrl.StartTest("learner", "")
	if err != nil {
		t.Fatal(err)
	}
	if q.Number != 1 || q.Total != test.TotalQuestions {
		t.Errorf("view numbering = %d/%d", q.Number, q.Total)
	}
	if q.Prompt == "" || len(q.Choices) == 0 {
		t.Error("view missing learner-facing content")
	}
}
