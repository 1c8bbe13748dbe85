package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aliskhannn/quiz-runner/internal/domain/entities"
)

// scoresByName reads back the score records of one display name, newest first.
func scoresByName(t *testing.T, pool *pgxpool.Pool, name string) []entities.ScoreRecord {
	t.Helper()
	query := `
		SELECT s.session_id, s.name, s.score, q.total_questions, s.recorded_at
		FROM scores s
		JOIN quiz_sessions q ON q.id = s.session_id
		WHERE s.name = $1
		ORDER BY s.recorded_at DESC, s.id DESC
	`

	rows, err := pool.Query(context.Background(), query, name)
	if err != nil {
		t.Fatalf("query scores: %v", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.ScoreRecord, error) {
		var rec entities.ScoreRecord
		err := row.Scan(&rec.SessionID, &rec.Name, &rec.Score, &rec.Total, &rec.RecordedAt)
		return rec, err
	})
	if err != nil {
		t.Fatalf("scan scores: %v", err)
	}
	return records
}
