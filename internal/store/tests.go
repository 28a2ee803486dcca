package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/linguiz/internal/cefr"
	"github.com/abhisek/linguiz/internal/placement"
)

// TestSummary is the listing row for a stored placement test.
type TestSummary struct {
	ID          string
	UserID      string
	Status      placement.Status
	Level       cefr.Level
	Confidence  float64
	Questions   int
	StartedAt   time.Time
	CompletedAt *time.Time
}

// TestRepo stores and retrieves placement tests. The full aggregate is
// kept as a JSON document alongside the columns the listing queries need.
type TestRepo interface {
	// Save inserts or replaces a test by ID.
	Save(ctx context.Context, test *placement.PlacementTest) error

	// Get returns the test with the given ID, or nil if absent.
	Get(ctx context.Context, id string) (*placement.PlacementTest, error)

	// List returns summaries of all stored tests, newest first.
	List(ctx context.Context) ([]TestSummary, error)

	// DeleteAll removes every stored test.
	DeleteAll(ctx context.Context) error
}

type testRepo struct {
	db *sql.DB
}

func (r *testRepo) Save(ctx context.Context, test *placement.PlacementTest) error {
	data, err := json.Marshal(test)
	if err != nil {
		return fmt.Errorf("marshal test: %w", err)
	}

	var completedAt any
	if test.CompletedAt != nil {
		completedAt = test.CompletedAt.Format(time.RFC3339)
	}

	_, err = r.db.ExecContext(ctx, `INSERT OR REPLACE INTO placement_tests
		(id, user_id, status, estimated_level, confidence, questions, started_at, completed_at, data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		test.ID,
		test.UserID,
		string(test.Status),
		string(test.EstimatedLevel),
		test.Confidence,
		len(test.Answers),
		test.StartedAt.Format(time.RFC3339),
		completedAt,
		string(data),
	)
	if err != nil {
		return fmt.Errorf("save test %s: %w", test.ID, err)
	}
	return nil
}

func (r *testRepo) Get(ctx context.Context, id string) (*placement.PlacementTest, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM placement_tests WHERE id = ?`, id,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query test %s: %w", id, err)
	}

	var test placement.PlacementTest
	if err := json.Unmarshal([]byte(data), &test); err != nil {
		return nil, fmt.Errorf("unmarshal test %s: %w", id, err)
	}
	return &test, nil
}

func (r *testRepo) List(ctx context.Context) ([]TestSummary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT
		id, user_id, status, estimated_level, confidence, questions, started_at, completed_at
		FROM placement_tests ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list tests: %w", err)
	}
	defer rows.Close()

	var out []TestSummary
	for rows.Next() {
		var (
			s           TestSummary
			status      string
			level       string
			startedAt   string
			completedAt sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.UserID, &status, &level, &s.Confidence,
			&s.Questions, &startedAt, &completedAt); err != nil {
			return nil, fmt.Errorf("scan test row: %w", err)
		}
		s.Status = placement.Status(status)
		s.Level = cefr.Level(level)
		if t, err := time.Parse(time.RFC3339, startedAt); err == nil {
			s.StartedAt = t
		}
		if completedAt.Valid {
			if t, err := time.Parse(time.RFC3339, completedAt.String); err == nil {
				s.CompletedAt = &t
			}
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *testRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM placement_tests`); err != nil {
		return fmt.Errorf("delete tests: %w", err)
	}
	return nil
}
