package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/quiz-runner/internal/domain/entities"
	"github.com/aliskhannn/quiz-runner/internal/infra/postgres"
	quizrepo "github.com/aliskhannn/quiz-runner/internal/repository"
)

// ScoreRepository provides access to score records in the database.
type ScoreRepository struct {
	transactor *postgres.Transactor
}

// NewScoreRepository creates a new ScoreRepository writing through transactor.
func NewScoreRepository(transactor *postgres.Transactor) *ScoreRepository {
	return &ScoreRepository{transactor: transactor}
}

// Save inserts the session summary and its score record in one transaction.
func (r *ScoreRepository) Save(ctx context.Context, record *entities.ScoreRecord) error {
	err := r.transactor.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := r.saveSessionWithTx(ctx, tx, record); err != nil {
			return err
		}
		return r.saveScoreWithTx(ctx, tx, record)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", quizrepo.ErrStorage, err)
	}
	return nil
}

func (r *ScoreRepository) saveSessionWithTx(ctx context.Context, tx pgx.Tx, record *entities.ScoreRecord) error {
	query := `
		INSERT INTO quiz_sessions (id, correct_answers, total_questions, completed_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := tx.Exec(ctx, query, record.SessionID, record.Score, record.Total, record.RecordedAt)
	if err != nil {
		return fmt.Errorf("save quiz session: %w", err)
	}

	return nil
}

func (r *ScoreRepository) saveScoreWithTx(ctx context.Context, tx pgx.Tx, record *entities.ScoreRecord) error {
	query := `
		INSERT INTO scores (session_id, name, score, recorded_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := tx.Exec(ctx, query, record.SessionID, record.Name, record.Score, record.RecordedAt)
	if err != nil {
		return fmt.Errorf("save score: %w", err)
	}

	return nil
}
