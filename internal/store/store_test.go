package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/linguiz/internal/cefr"
	"github.com/abhisek/linguiz/internal/irt"
	"github.com/abhisek/linguiz/internal/placement"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func sampleTest(id string, startedAt time.Time) *placement.PlacementTest {
	item := &irt.Item{
		ID:             "gram-b1-01",
		Skill:          irt.SkillGrammar,
		Discrimination: 1.1,
		Difficulty:     0.2,
		Guessing:       0.25,
		TargetLevel:    cefr.B1,
		Content: irt.Content{
			Prompt:  "She ___ to work.",
			Format:  irt.FormatMultipleChoice,
			Choices: []string{"go", "goes"},
			Answer:  "goes",
		},
	}
	completedAt := startedAt.Add(4 * time.Minute)
	return &placement.PlacementTest{
		ID:              id,
		UserID:          "learner",
		Status:          placement.StatusCompleted,
		Questions:       []*irt.Item{item},
		Answers: []placement.Answer{{
			QuestionID:  item.ID,
			Response:    "goes",
			Correct:     true,
			TimeSpentMs: 2500,
			AnsweredAt:  startedAt.Add(time.Minute),
		}},
		CurrentQuestion: 1,
		TotalQuestions:  15,
		Theta:           0.31,
		SE:              0.28,
		EstimatedLevel:  cefr.B1,
		Confidence:      0.86,
		StartedAt:       startedAt,
		CompletedAt:     &completedAt,
	}
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	st := openTestStore(t)
	repo := st.TestRepo()
	ctx := context.Background()

	started := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	original := sampleTest("test-1", started)
	require.NoError(t, repo.Save(ctx, original))

	loaded, err := repo.Get(ctx, "test-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, original.ID, loaded.ID)
	assert.Equal(t, original.Status, loaded.Status)
	assert.Equal(t, original.Theta, loaded.Theta)
	assert.Equal(t, original.EstimatedLevel, loaded.EstimatedLevel)
	require.Len(t, loaded.Questions, 1)
	assert.Equal(t, "gram-b1-01", loaded.Questions[0].ID)
	require.Len(t, loaded.Answers, 1)
	assert.Equal(t, "goes", loaded.Answers[0].Response)
	require.NotNil(t, loaded.CompletedAt)
	assert.True(t, loaded.CompletedAt.Equal(*original.CompletedAt))
}

func TestGet_Missing(t *testing.T) {
	st := openTestStore(t)

	loaded, err := st.TestRepo().Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSave_ReplacesExisting(t *testing.T) {
	st := openTestStore(t)
	repo := st.TestRepo()
	ctx := context.Background()

	started := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	test := sampleTest("test-1", started)
	require.NoError(t, repo.Save(ctx, test))

	test.Theta = 1.5
	test.EstimatedLevel = cefr.C1
	require.NoError(t, repo.Save(ctx, test))

	loaded, err := repo.Get(ctx, "test-1")
	require.NoError(t, err)
	assert.Equal(t, 1.5, loaded.Theta)
	assert.Equal(t, cefr.C1, loaded.EstimatedLevel)

	summaries, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func TestList_NewestFirst(t *testing.T) {
	st := openTestStore(t)
	repo := st.TestRepo()
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, sampleTest("old", base)))
	require.NoError(t, repo.Save(ctx, sampleTest("new", base.Add(24*time.Hour))))

	summaries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "new", summaries[0].ID)
	assert.Equal(t, "old", summaries[1].ID)
	assert.Equal(t, placement.StatusCompleted, summaries[0].Status)
	assert.Equal(t, cefr.B1, summaries[0].Level)
	assert.Equal(t, 1, summaries[0].Questions)
}

func TestDeleteAll(t *testing.T) {
	st := openTestStore(t)
	repo := st.TestRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.Save(ctx, sampleTest("a", base)))
	require.NoError(t, repo.Save(ctx, sampleTest("b", base)))
	require.NoError(t, repo.DeleteAll(ctx))

	summaries, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
