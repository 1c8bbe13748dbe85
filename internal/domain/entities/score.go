package entities

import (
	"time"

	"github.com/google/uuid"
)

// ScoreRecord is the final result of one quiz run.
type ScoreRecord struct {
	SessionID  uuid.UUID // session that produced the score
	Name       string    // display name entered by the user
	Score      int       // number of correctly answered questions
	Total      int       // number of questions asked
	RecordedAt time.Time // timestamp when the record was built
}

// NewScoreRecord builds a score record from a finished session.
func NewScoreRecord(name string, session *QuizSession) *ScoreRecord {
	return &ScoreRecord{
		SessionID:  session.ID,
		Name:       name,
		Score:      session.CorrectAnswers,
		Total:      session.TotalQuestions,
		RecordedAt: time.Now(),
	}
}
