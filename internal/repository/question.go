package repository

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aliskhannn/quiz-runner/internal/domain/entities"
)

// questionFields is the number of fields in one CSV question record:
// prompt, comma-separated options, correct answer.
const questionFields = 3

// ErrStorage reports that a question source or score destination could not be accessed.
var ErrStorage = errors.New("storage unavailable")

// MalformedRecordError reports a question record that cannot be decomposed into
// prompt, options and answer.
type MalformedRecordError struct {
	Line   int   // 1-based line in CSV sources, 1-based record number in YAML/JSON sources
	Fields int   // number of fields found in the record
	Err    error // underlying parse error, if any
}

func (e *MalformedRecordError) Error() string {
	if e.Line == 0 && e.Err != nil {
		return fmt.Sprintf("malformed question source: %v", e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("malformed question record at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("malformed question record at line %d: expected %d fields, got %d", e.Line, questionFields, e.Fields)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// QuestionRepository provides the question set of one quiz run.
// The source is read on the first GetAll and never modified afterwards.
type QuestionRepository struct {
	path      string
	once      sync.Once
	questions []entities.Question
	err       error
}

// NewQuestionRepository creates a QuestionRepository over the question source at path.
func NewQuestionRepository(path string) *QuestionRepository {
	return &QuestionRepository{
		path: path,
	}
}

// GetAll returns the questions in source order. Each call returns a deep copy.
func (r *QuestionRepository) GetAll(_ context.Context) ([]entities.Question, error) {
	r.once.Do(func() {
		r.questions, r.err = LoadQuestions(r.path)
	})
	if r.err != nil {
		return nil, r.err
	}

	out := make([]entities.Question, len(r.questions))
	for i, q := range r.questions {
		q.Options = slices.Clone(q.Options)
		out[i] = q
	}
	return out, nil
}

// LoadQuestions reads a question source. Files ending in .yaml, .yml or .json are
// decoded as structured documents; anything else is parsed as CSV.
func LoadQuestions(path string) ([]entities.Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open questions: %w", ErrStorage, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseQuestionsYAML(f)
	case ".json":
		return parseQuestionsJSON(f)
	default:
		return ParseQuestionsCSV(f)
	}
}

// ParseQuestionsCSV parses one question per line. The options field may contain
// commas when it is wrapped in double quotes. Bare quotes inside unquoted fields
// are kept as literal text.
func ParseQuestionsCSV(r io.Reader) ([]entities.Question, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // field count is checked per record below
	reader.LazyQuotes = true

	var questions []entities.Question
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			if len(record) > 0 {
				// A quoted field ran to the end of the source.
				line, _ := reader.FieldPos(0)
				return nil, &MalformedRecordError{Line: line, Fields: len(record), Err: csv.ErrQuote}
			}
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, &MalformedRecordError{Line: parseErr.StartLine, Err: parseErr.Err}
			}
			return nil, fmt.Errorf("%w: read questions: %w", ErrStorage, err)
		}

		if len(record) != questionFields {
			line, _ := reader.FieldPos(0)
			return nil, &MalformedRecordError{Line: line, Fields: len(record)}
		}

		questions = append(questions, entities.NewQuestion(
			record[0],
			strings.Split(record[1], ","),
			record[2],
		))
	}

	return questions, nil
}

type questionDocument struct {
	Questions []entities.Question `json:"questions" yaml:"questions"`
}

func parseQuestionsYAML(r io.Reader) ([]entities.Question, error) {
	var doc questionDocument
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, &MalformedRecordError{Err: fmt.Errorf("parse yaml: %w", err)}
	}
	return checkDocument(doc)
}

func parseQuestionsJSON(r io.Reader) ([]entities.Question, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read questions: %w", ErrStorage, err)
	}

	var doc questionDocument
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return nil, &MalformedRecordError{Err: fmt.Errorf("parse json: %w", err)}
	}
	return checkDocument(doc)
}

// checkDocument applies the CSV record rule to structured sources: every
// question needs at least one option.
func checkDocument(doc questionDocument) ([]entities.Question, error) {
	for i, q := range doc.Questions {
		if len(q.Options) == 0 {
			return nil, &MalformedRecordError{Line: i + 1, Fields: 2}
		}
	}
	return doc.Questions, nil
}
