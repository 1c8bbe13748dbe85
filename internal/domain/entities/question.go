// Package entities contains domain entities used across the application.
package entities

// Question is one multiple-choice quiz item.
// CorrectAnswer is matched against Options by value, so duplicate option
// texts are all judged correct.
type Question struct {
	Prompt        string   `json:"question" yaml:"question"` // question text shown to the user
	Options       []string `json:"options" yaml:"options"`   // answer choices in display order
	CorrectAnswer string   `json:"answer" yaml:"answer"`     // text of the correct option
}

// NewQuestion creates a question from its prompt, options and correct answer text.
func NewQuestion(prompt string, options []string, correctAnswer string) Question {
	return Question{
		Prompt:        prompt,
		Options:       options,
		CorrectAnswer: correctAnswer,
	}
}

// OptionCount returns the number of answer choices.
func (q Question) OptionCount() int {
	return len(q.Options)
}

// HasOption reports whether position is a valid 1-based option number.
func (q Question) HasOption(position int) bool {
	return position >= 1 && position <= len(q.Options)
}
