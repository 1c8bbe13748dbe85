package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aliskhannn/quiz-runner/internal/domain/entities"
	quizrepo "github.com/aliskhannn/quiz-runner/internal/repository"
)

// ScoreRepository stores score records in sqlite.
type ScoreRepository struct {
	db *sql.DB
}

// NewScoreRepository creates a new ScoreRepository over an opened database.
func NewScoreRepository(db *sql.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// Save inserts the session summary and its score record in one transaction.
func (r *ScoreRepository) Save(ctx context.Context, record *entities.ScoreRecord) error {
	if err := r.save(ctx, record); err != nil {
		return fmt.Errorf("%w: %w", quizrepo.ErrStorage, err)
	}
	return nil
}

func (r *ScoreRepository) save(ctx context.Context, record *entities.ScoreRecord) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO quiz_sessions (id, correct_answers, total_questions, completed_at)
		VALUES (?, ?, ?, ?)`,
		record.SessionID.String(), record.Score, record.Total, record.RecordedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("save quiz session: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO scores (session_id, name, score, recorded_at) VALUES (?, ?, ?, ?)`,
		record.SessionID.String(), record.Name, record.Score, record.RecordedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("save score: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit score: %w", err)
	}
	return nil
}
