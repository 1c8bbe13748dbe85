package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/quiz-runner/internal/domain/entities"
)

func newID(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := uuid.NewRandom()
	if err != nil {
		t.Fatalf("new uuid: %v", err)
	}
	return id
}

// listScores reads back every stored score record, oldest first.
func listScores(t *testing.T, db *sql.DB) []entities.ScoreRecord {
	t.Helper()
	rows, err := db.QueryContext(context.Background(), `
		SELECT s.session_id, s.name, s.score, q.total_questions, s.recorded_at
		FROM scores s
		JOIN quiz_sessions q ON q.id = s.session_id
		ORDER BY s.id`)
	if err != nil {
		t.Fatalf("query scores: %v", err)
	}
	defer rows.Close()

	var out []entities.ScoreRecord
	for rows.Next() {
		var (
			rec        entities.ScoreRecord
			sessionID  string
			recordedAt int64
		)
		if err := rows.Scan(&sessionID, &rec.Name, &rec.Score, &rec.Total, &recordedAt); err != nil {
			t.Fatalf("scan score: %v", err)
		}
		if rec.SessionID, err = uuid.Parse(sessionID); err != nil {
			t.Fatalf("parse session id: %v", err)
		}
		rec.RecordedAt = time.Unix(recordedAt, 0)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("iterate scores: %v", err)
	}
	return out
}
