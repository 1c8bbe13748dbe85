package repository

import (
	"context"
	"fmt"
	"os"

	"github.com/aliskhannn/quiz-runner/internal/domain/entities"
)

// ScoreFileRepository appends score records to a plain text file, one line per run:
// the name left-justified in a fixed-width column followed by the score.
type ScoreFileRepository struct {
	path        string
	columnWidth int
}

// NewScoreFileRepository creates a ScoreFileRepository writing to path.
func NewScoreFileRepository(path string, columnWidth int) *ScoreFileRepository {
	return &ScoreFileRepository{
		path:        path,
		columnWidth: columnWidth,
	}
}

// Save appends the record to the score file, creating the file if needed.
func (r *ScoreFileRepository) Save(_ context.Context, record *entities.ScoreRecord) error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open score file: %w", ErrStorage, err)
	}

	if _, err := f.WriteString(FormatScoreLine(record.Name, record.Score, r.columnWidth)); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: write score: %w", ErrStorage, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close score file: %w", ErrStorage, err)
	}

	return nil
}

// FormatScoreLine renders one score file line.
func FormatScoreLine(name string, score, columnWidth int) string {
	return fmt.Sprintf("%-*s%d\n", columnWidth, name, score)
}
