package console

import (
	"fmt"

	"github.com/aliskhannn/quiz-runner/internal/domain/entities"
)

// DisplayQuestion writes the prompt followed by the options numbered from 1.
func (h *Handler) DisplayQuestion(q entities.Question) {
	fmt.Fprintf(h.out, "\n%s\n\n", h.palette.render(h.palette.prompt, q.Prompt))
	for i, option := range q.Options {
		fmt.Fprintf(h.out, "%s\t%s\n", h.palette.render(h.palette.number, fmt.Sprint(i+1)), option)
	}
}

// DisplayScore writes the final score message.
func (h *Handler) DisplayScore(score int) {
	fmt.Fprintf(h.out, "\n%s\n", h.palette.render(h.palette.score, fmt.Sprintf(msgScore, score)))
}

func (h *Handler) hint(text string) {
	fmt.Fprintln(h.out, h.palette.render(h.palette.hint, text))
}
