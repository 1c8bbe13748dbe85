package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-runner/internal/domain/entities"
)

var (
	ErrSessionNotActive   = errors.New("quiz session is not active")
	ErrInvalidSelectedIdx = errors.New("invalid selected index")
)

// QuizService keeps the running tally of a quiz session.
type QuizService struct {
	validator *AnswerValidator
	logger    *zap.Logger
}

// NewQuizService creates a QuizService grading with validator.
func NewQuizService(validator *AnswerValidator, logger *zap.Logger) *QuizService {
	return &QuizService{
		validator: validator,
		logger:    logger,
	}
}

// Start opens a session over questions. An empty question set yields a session
// that is already completed.
func (s *QuizService) Start(questions []entities.Question) *entities.QuizSession {
	session := entities.NewQuizSession(len(questions))
	if len(questions) == 0 {
		session.Complete()
	}

	s.logger.Debug("quiz session started",
		zap.String("session_id", session.ID.String()),
		zap.Int("total_questions", session.TotalQuestions),
	)

	return session
}

// CheckAnswer grades the 0-based selectedIndex for the session's current question,
// updates the tally and advances the session.
func (s *QuizService) CheckAnswer(
	session *entities.QuizSession,
	q entities.Question,
	selectedIndex int,
) (*entities.QuizAnswer, error) {
	if !session.IsActive() {
		return nil, ErrSessionNotActive
	}
	if selectedIndex < 0 || selectedIndex >= len(q.Options) {
		return nil, fmt.Errorf("%w: %d of %d options", ErrInvalidSelectedIdx, selectedIndex, len(q.Options))
	}

	qa := entities.NewQuizAnswer(session.ID, session.CurrentQuestionNum, selectedIndex)
	qa.UserAnswer = q.Options[selectedIndex]
	qa.CorrectAnswer = q.CorrectAnswer
	qa.IsCorrect = s.validator.IsCorrect(q, selectedIndex)

	if qa.IsCorrect {
		session.CorrectAnswers++
	}
	session.CurrentQuestionNum++
	if session.CurrentQuestionNum > session.TotalQuestions {
		session.Complete()
	}

	s.logger.Debug("answer checked",
		zap.String("session_id", session.ID.String()),
		zap.Int("question_num", qa.QuestionNum),
		zap.Int("selected_index", selectedIndex),
		zap.Bool("is_correct", qa.IsCorrect),
	)

	return qa, nil
}
