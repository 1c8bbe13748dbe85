package console

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/aliskhannn/quiz-runner/internal/domain/entities"
	"github.com/aliskhannn/quiz-runner/internal/repository"
	"github.com/aliskhannn/quiz-runner/internal/service"
	"github.com/aliskhannn/quiz-runner/internal/storage"
)

// recordingScores keeps saved records in order for assertions.
type recordingScores struct {
	records []entities.ScoreRecord
}

func (r *recordingScores) Save(_ context.Context, record *entities.ScoreRecord) error {
	r.records = append(r.records, *record)
	return nil
}

type stubQuestionService struct {
	questions []entities.Question
	err       error
}

func (s stubQuestionService) Load(context.Context) ([]entities.Question, error) {
	return s.questions, s.err
}

func newTestHandler(t *testing.T, input string, questions []entities.Question, scores service.ScoreRepository) (*Handler, *bytes.Buffer) {
	t.Helper()
	logger := zaptest.NewLogger(t)
	out := &bytes.Buffer{}
	if scores == nil {
		scores = storage.NewScoreStorage()
	}
	h := NewHandler(
		strings.NewReader(input),
		out,
		logger,
		stubQuestionService{questions: questions},
		service.NewQuizService(service.NewAnswerValidator(), logger),
		service.NewScoreService(scores, logger),
		Options{NameMaxLength: 10},
	)
	return h, out
}

func lines(values ...string) string {
	return strings.Join(values, "\n") + "\n"
}

func threeQuestions() []entities.Question {
	options := []string{"option 1", "option 2", "option 3"}
	return []entities.Question{
		entities.NewQuestion("Question no 1.", options, "option 2"),
		entities.NewQuestion("Question no 2.", options, "option 1"),
		entities.NewQuestion("Question no 3.", options, "option 3"),
	}
}

func TestGatherAnswerReturnsZeroBasedIndex(t *testing.T) {
	q := entities.NewQuestion("Q", []string{"a", "b", "c"}, "c")
	h, out := newTestHandler(t, "3\n", nil, nil)

	got, err := h.GatherAnswer(context.Background(), q)
	if err != nil {
		t.Fatalf("gather answer: %v", err)
	}
	if got != 2 {
		t.Fatalf("expected index 2, got %d", got)
	}
	if out.String() != "Submit answer: " {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestGatherAnswerRepromptsUntilValid(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		inputs  []string
		want    int
		prompts int
	}{
		{name: "below range", options: []string{"a"}, inputs: []string{"-1", "0", "1"}, want: 0, prompts: 3},
		{name: "above range", options: []string{"a", "b"}, inputs: []string{"5", "3", "2"}, want: 1, prompts: 3},
		{name: "first try", options: []string{"a", "b"}, inputs: []string{"1"}, want: 0, prompts: 1},
		{name: "not a number", options: []string{"a", "b"}, inputs: []string{"two", "", "2"}, want: 1, prompts: 3},
		{name: "surrounding spaces", options: []string{"a", "b"}, inputs: []string{" 2 "}, want: 1, prompts: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := entities.NewQuestion("Q", tt.options, tt.options[0])
			h, out := newTestHandler(t, lines(tt.inputs...), nil, nil)

			got, err := h.GatherAnswer(context.Background(), q)
			if err != nil {
				t.Fatalf("gather answer: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected index %d, got %d", tt.want, got)
			}
			if n := strings.Count(out.String(), msgAnswerPrompt); n != tt.prompts {
				t.Fatalf("expected %d prompts, got %d: %q", tt.prompts, n, out.String())
			}
		})
	}
}

func TestGatherAnswerPrintsHintOnRejection(t *testing.T) {
	q := entities.NewQuestion("Q", []string{"a", "b"}, "a")
	h, out := newTestHandler(t, lines("7", "1"), nil, nil)

	if _, err := h.GatherAnswer(context.Background(), q); err != nil {
		t.Fatalf("gather answer: %v", err)
	}
	want := "Submit answer: Please enter a number between 1 and 2.\nSubmit answer: "
	if out.String() != want {
		t.Fatalf("unexpected output:\n got %q\nwant %q", out.String(), want)
	}
}

func TestGatherAnswerInputClosed(t *testing.T) {
	q := entities.NewQuestion("Q", []string{"a", "b"}, "a")

	for _, input := range []string{"", "9\n", "9"} {
		h, _ := newTestHandler(t, input, nil, nil)
		if _, err := h.GatherAnswer(context.Background(), q); !errors.Is(err, ErrInputClosed) {
			t.Fatalf("input %q: expected ErrInputClosed, got %v", input, err)
		}
	}
}

func TestGatherAnswerAcceptsFinalLineWithoutNewline(t *testing.T) {
	q := entities.NewQuestion("Q", []string{"a", "b"}, "a")
	h, _ := newTestHandler(t, "2", nil, nil)

	got, err := h.GatherAnswer(context.Background(), q)
	if err != nil {
		t.Fatalf("gather answer: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
}

func TestGatherAnswerCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	q := entities.NewQuestion("Q", []string{"a"}, "a")
	h, out := newTestHandler(t, "1\n", nil, nil)

	if _, err := h.GatherAnswer(ctx, q); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestDisplayQuestion(t *testing.T) {
	h, out := newTestHandler(t, "", nil, nil)
	h.DisplayQuestion(entities.NewQuestion("What is the capital of Ukraine?", []string{"Kharkiv", "Kyiv"}, "Kyiv"))

	want := "\nWhat is the capital of Ukraine?\n\n1\tKharkiv\n2\tKyiv\n"
	if out.String() != want {
		t.Fatalf("unexpected output:\n got %q\nwant %q", out.String(), want)
	}
}

func TestRunQuizTally(t *testing.T) {
	tests := []struct {
		inputs []string
		want   int
	}{
		{inputs: []string{"2", "1", "3"}, want: 3},
		{inputs: []string{"1", "3", "3"}, want: 1},
		{inputs: []string{"3", "1", "3"}, want: 2},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.inputs, ","), func(t *testing.T) {
			h, out := newTestHandler(t, lines(tt.inputs...), nil, nil)

			got, err := h.RunQuiz(context.Background(), threeQuestions())
			if err != nil {
				t.Fatalf("run quiz: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected score %d, got %d", tt.want, got)
			}
			if n := strings.Count(out.String(), msgAnswerPrompt); n != 3 {
				t.Fatalf("expected 3 prompts, got %d", n)
			}
		})
	}
}

func TestRunQuizEmpty(t *testing.T) {
	h, out := newTestHandler(t, "1\n", nil, nil)

	got, err := h.RunQuiz(context.Background(), nil)
	if err != nil {
		t.Fatalf("run quiz: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected score 0, got %d", got)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestGatherUsernameRepromptsUntilValid(t *testing.T) {
	inputs := []string{""}
	for n := 15; n >= 10; n-- {
		inputs = append(inputs, strings.Repeat("a", n))
	}
	h, out := newTestHandler(t, lines(inputs...), nil, nil)

	name, err := h.GatherUsername(context.Background())
	if err != nil {
		t.Fatalf("gather username: %v", err)
	}
	if name != strings.Repeat("a", 10) {
		t.Fatalf("unexpected name %q", name)
	}
	if n := strings.Count(out.String(), msgNamePrompt); n != 7 {
		t.Fatalf("expected 7 prompts, got %d", n)
	}
	if !strings.Contains(out.String(), "Name must be at most 10 characters long.") {
		t.Fatalf("expected length hint in %q", out.String())
	}
	if !strings.Contains(out.String(), msgEmptyName) {
		t.Fatalf("expected empty name hint in %q", out.String())
	}
}

func TestGatherUsernameTrimsWhitespace(t *testing.T) {
	h, _ := newTestHandler(t, lines("   ", "  Olena  "), nil, nil)

	name, err := h.GatherUsername(context.Background())
	if err != nil {
		t.Fatalf("gather username: %v", err)
	}
	if name != "Olena" {
		t.Fatalf("expected trimmed name, got %q", name)
	}
}

func TestGatherUsernameCountsCharacters(t *testing.T) {
	h, out := newTestHandler(t, lines("Олександра"), nil, nil)

	name, err := h.GatherUsername(context.Background())
	if err != nil {
		t.Fatalf("gather username: %v", err)
	}
	if name != "Олександра" {
		t.Fatalf("unexpected name %q", name)
	}
	if n := strings.Count(out.String(), msgNamePrompt); n != 1 {
		t.Fatalf("expected a single prompt, got %d", n)
	}
}

func TestRunRecordsScore(t *testing.T) {
	scores := &recordingScores{}
	h, out := newTestHandler(t, lines("abc", "2", "2", "3"), threeQuestions(), scores)

	if err := h.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if !strings.HasPrefix(out.String(), msgNamePrompt) {
		t.Fatalf("expected name prompt first, got %q", out.String())
	}
	if !strings.HasSuffix(out.String(), "\nQuiz score: 2\n") {
		t.Fatalf("expected score line at the end, got %q", out.String())
	}
	if strings.Contains(out.String(), "\x1b[") {
		t.Fatalf("unexpected escape sequences in plain output")
	}

	records := scores.records
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Name != "abc" || records[0].Score != 2 || records[0].Total != 3 {
		t.Fatalf("unexpected record %+v", records[0])
	}
}

func TestRunAppendsScoreFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	scores := repository.NewScoreFileRepository(path, 12)

	for _, input := range []string{lines("abc", "2", "1", "3"), lines("zoe", "1", "1", "1")} {
		h, _ := newTestHandler(t, input, threeQuestions(), scores)
		if err := h.Run(context.Background()); err != nil {
			t.Fatalf("run: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read scores: %v", err)
	}
	want := "abc         3\nzoe         1\n"
	if string(data) != want {
		t.Fatalf("unexpected score file:\n got %q\nwant %q", string(data), want)
	}
}

func TestRunDoesNotRecordWhenInputCloses(t *testing.T) {
	scores := &recordingScores{}
	h, _ := newTestHandler(t, lines("abc", "2"), threeQuestions(), scores)

	if err := h.Run(context.Background()); !errors.Is(err, ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
	if len(scores.records) != 0 {
		t.Fatalf("expected no score to be recorded")
	}
}

func TestRunPropagatesLoadError(t *testing.T) {
	logger := zaptest.NewLogger(t)
	loadErr := errors.New("boom")
	h := NewHandler(
		strings.NewReader(lines("abc")),
		&bytes.Buffer{},
		logger,
		stubQuestionService{err: loadErr},
		service.NewQuizService(service.NewAnswerValidator(), logger),
		service.NewScoreService(storage.NewScoreStorage(), logger),
		Options{NameMaxLength: 10},
	)

	if err := h.Run(context.Background()); !errors.Is(err, loadErr) {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestRunAsksNameBeforeReadingSource(t *testing.T) {
	logger := zaptest.NewLogger(t)
	out := &bytes.Buffer{}
	questions := repository.NewQuestionRepository(filepath.Join(t.TempDir(), "missing.csv"))
	h := NewHandler(
		strings.NewReader(lines("abc")),
		out,
		logger,
		service.NewQuestionService(questions, logger),
		service.NewQuizService(service.NewAnswerValidator(), logger),
		service.NewScoreService(&recordingScores{}, logger),
		Options{NameMaxLength: 10},
	)

	if err := h.Run(context.Background()); !errors.Is(err, repository.ErrStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if out.String() != msgNamePrompt {
		t.Fatalf("expected only the name prompt, got %q", out.String())
	}
}

func TestIsTerminalOnBuffer(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Fatalf("buffer must not be a terminal")
	}
	if IsTerminal(nil) {
		t.Fatalf("nil writer must not be a terminal")
	}
}
