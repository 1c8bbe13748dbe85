package service

import (
	"context"

	"github.com/aliskhannn/quiz-runner/internal/domain/entities"
)

// QuestionRepository provides the question set of a quiz run.
type QuestionRepository interface {
	GetAll(ctx context.Context) ([]entities.Question, error)
}

// ScoreRepository persists final score records.
type ScoreRepository interface {
	Save(ctx context.Context, record *entities.ScoreRecord) error
}
