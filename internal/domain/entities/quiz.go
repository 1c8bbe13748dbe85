package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
)

// QuizSession represents a single run through a question set.
// It tracks the session ID, progress, running tally, session status, and timestamps.
type QuizSession struct {
	ID                 uuid.UUID  // unique session ID
	CurrentQuestionNum int        // 1-based number of the question being asked
	CorrectAnswers     int        // number of correct answers so far
	TotalQuestions     int        // total number of questions in the quiz
	SessionStatus      string     // session status: "active" or "completed"
	StartedAt          time.Time  // timestamp when the quiz started
	CompletedAt        *time.Time // timestamp when the quiz was completed (nullable)
}

// NewQuizSession creates a new quiz session over totalQuestions questions.
func NewQuizSession(totalQuestions int) *QuizSession {
	return &QuizSession{
		ID:                 uuid.New(),
		CurrentQuestionNum: 1,
		CorrectAnswers:     0,
		TotalQuestions:     totalQuestions,
		SessionStatus:      SessionStatusActive,
		StartedAt:          time.Now(),
	}
}

// IsActive reports whether the session still accepts answers.
func (qs *QuizSession) IsActive() bool {
	return qs.SessionStatus == SessionStatusActive
}

// Complete marks the quiz session as completed and sets the completion timestamp.
func (qs *QuizSession) Complete() {
	qs.SessionStatus = SessionStatusCompleted
	now := time.Now()
	qs.CompletedAt = &now
}

// QuizAnswer represents a user's answer to a quiz question.
// It tracks the answer details, correctness, and timestamp.
type QuizAnswer struct {
	SessionID     uuid.UUID // quiz session ID
	QuestionNum   int       // 1-based question number within the session
	SelectedIndex int       // 0-based index of the chosen option
	UserAnswer    string    // text of the chosen option
	CorrectAnswer string    // correct answer text
	IsCorrect     bool      // whether the answer was correct
	AnsweredAt    time.Time // timestamp when the answer was submitted
}

// NewQuizAnswer creates a new quiz answer for a session and question number.
func NewQuizAnswer(sessionID uuid.UUID, questionNum, selectedIndex int) *QuizAnswer {
	return &QuizAnswer{
		SessionID:     sessionID,
		QuestionNum:   questionNum,
		SelectedIndex: selectedIndex,
		AnsweredAt:    time.Now(),
	}
}
