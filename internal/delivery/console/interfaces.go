package console

import (
	"context"

	"github.com/aliskhannn/quiz-runner/internal/domain/entities"
)

type QuestionService interface {
	Load(ctx context.Context) ([]entities.Question, error)
}

type QuizService interface {
	Start(questions []entities.Question) *entities.QuizSession
	CheckAnswer(session *entities.QuizSession, q entities.Question, selectedIndex int) (*entities.QuizAnswer, error)
}

type ScoreService interface {
	Record(ctx context.Context, name string, session *entities.QuizSession) (*entities.ScoreRecord, error)
}
