// messages.go contains the literal console texts.

package console

const (
	msgNamePrompt   = "Enter your name: "
	msgAnswerPrompt = "Submit answer: "
	msgScore        = "Quiz score: %d"
)

// Hints printed after rejected input.
const (
	msgEmptyName     = "Name must not be empty."
	msgNameTooLong   = "Name must be at most %d characters long."
	msgInvalidAnswer = "Please enter a number between 1 and %d."
)
