package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-runner/internal/domain/entities"
)

type QuestionService struct {
	repository QuestionRepository
	logger     *zap.Logger
}

func NewQuestionService(repository QuestionRepository, logger *zap.Logger) *QuestionService {
	return &QuestionService{repository: repository, logger: logger}
}

// Load returns the question set in presentation order.
func (s *QuestionService) Load(ctx context.Context) ([]entities.Question, error) {
	questions, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	s.logger.Info("questions loaded", zap.Int("count", len(questions)))
	return questions, nil
}
