package service

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/aliskhannn/quiz-runner/internal/domain/entities"
)

var (
	ErrEmptyName   = errors.New("name is empty")
	ErrNameTooLong = errors.New("name is too long")
)

// AnswerValidator judges selected options against a question's correct answer.
type AnswerValidator struct{}

// NewAnswerValidator creates a new AnswerValidator.
func NewAnswerValidator() *AnswerValidator {
	return &AnswerValidator{}
}

// IsCorrect reports whether the option at the 0-based selectedIndex equals the
// correct answer text. Indices outside the options are never correct.
func (v *AnswerValidator) IsCorrect(q entities.Question, selectedIndex int) bool {
	if selectedIndex < 0 || selectedIndex >= len(q.Options) {
		return false
	}
	return q.Options[selectedIndex] == q.CorrectAnswer
}

// NormalizeName trims surrounding whitespace from a display name.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// ValidateName checks a normalized display name against the length limit,
// counted in characters rather than bytes.
func ValidateName(name string, maxLength int) error {
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > maxLength {
		return ErrNameTooLong
	}
	return nil
}
