package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-runner/internal/domain/entities"
)

type ScoreService struct {
	repository ScoreRepository
	logger     *zap.Logger
}

func NewScoreService(repository ScoreRepository, logger *zap.Logger) *ScoreService {
	return &ScoreService{repository: repository, logger: logger}
}

// Record builds the score record of a finished session and persists it.
func (s *ScoreService) Record(ctx context.Context, name string, session *entities.QuizSession) (*entities.ScoreRecord, error) {
	record := entities.NewScoreRecord(name, session)

	if err := s.repository.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("save score: %w", err)
	}

	s.logger.Info("score recorded",
		zap.String("session_id", record.SessionID.String()),
		zap.String("name", record.Name),
		zap.Int("score", record.Score),
		zap.Int("total", record.Total),
	)

	return record, nil
}
