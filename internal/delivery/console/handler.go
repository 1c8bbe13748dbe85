package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-runner/internal/domain/entities"
	"github.com/aliskhannn/quiz-runner/internal/service"
)

// Options configures the console handler.
type Options struct {
	NameMaxLength int  // maximum display name length in characters
	Styled        bool // render with terminal colors
}

type Handler struct {
	in              *bufio.Reader
	out             io.Writer
	logger          *zap.Logger
	questionService QuestionService
	quizService     QuizService
	scoreService    ScoreService
	nameMaxLength   int
	palette         palette
}

func NewHandler(
	in io.Reader,
	out io.Writer,
	logger *zap.Logger,
	questionService QuestionService,
	quizService QuizService,
	scoreService ScoreService,
	opts Options,
) *Handler {
	return &Handler{
		in:              bufio.NewReader(in),
		out:             out,
		logger:          logger,
		questionService: questionService,
		quizService:     quizService,
		scoreService:    scoreService,
		nameMaxLength:   opts.NameMaxLength,
		palette:         newPalette(opts.Styled),
	}
}

// Run performs one quiz session: it asks for the user's name, runs the quiz over
// the loaded questions, shows the score and persists it.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Debug("quiz session handler started")

	name, err := h.GatherUsername(ctx)
	if err != nil {
		return fmt.Errorf("gather username: %w", err)
	}

	questions, err := h.questionService.Load(ctx)
	if err != nil {
		return err
	}

	session, err := h.runSession(ctx, questions)
	if err != nil {
		return fmt.Errorf("run quiz: %w", err)
	}

	h.DisplayScore(session.CorrectAnswers)

	if _, err := h.scoreService.Record(ctx, name, session); err != nil {
		return err
	}

	return nil
}

// RunQuiz asks every question in order and returns the number answered correctly.
// An empty question set returns 0 without any I/O.
func (h *Handler) RunQuiz(ctx context.Context, questions []entities.Question) (int, error) {
	session, err := h.runSession(ctx, questions)
	if err != nil {
		return 0, err
	}
	return session.CorrectAnswers, nil
}

func (h *Handler) runSession(ctx context.Context, questions []entities.Question) (*entities.QuizSession, error) {
	session := h.quizService.Start(questions)

	for _, q := range questions {
		h.DisplayQuestion(q)

		selectedIndex, err := h.GatherAnswer(ctx, q)
		if err != nil {
			return nil, err
		}

		if _, err := h.quizService.CheckAnswer(session, q, selectedIndex); err != nil {
			return nil, err
		}
	}

	return session, nil
}

// GatherAnswer prompts until the user enters a valid option number and returns
// the 0-based index of the chosen option.
func (h *Handler) GatherAnswer(ctx context.Context, q entities.Question) (int, error) {
	var choice int
	_, err := h.ask(ctx, msgAnswerPrompt,
		func(line string) error {
			n, err := parseChoice(line, q)
			if err != nil {
				return err
			}
			choice = n
			return nil
		},
		func(_ entities.PromptState, _ error) {
			h.hint(fmt.Sprintf(msgInvalidAnswer, q.OptionCount()))
		},
	)
	if err != nil {
		return 0, err
	}

	return choice - 1, nil
}

// GatherUsername prompts until the user enters a non-empty name within the length limit.
func (h *Handler) GatherUsername(ctx context.Context) (string, error) {
	line, err := h.ask(ctx, msgNamePrompt,
		func(line string) error {
			return service.ValidateName(service.NormalizeName(line), h.nameMaxLength)
		},
		func(_ entities.PromptState, err error) {
			if errors.Is(err, service.ErrNameTooLong) {
				h.hint(fmt.Sprintf(msgNameTooLong, h.nameMaxLength))
				return
			}
			h.hint(msgEmptyName)
		},
	)
	if err != nil {
		return "", err
	}

	return service.NormalizeName(line), nil
}
