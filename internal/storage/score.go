package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/aliskhannn/quiz-runner/internal/domain/entities"
)

// ScoreStorage provides in-memory storage for score records keyed by session ID.
// Nothing survives the process, which makes it the dry-run score backend.
type ScoreStorage struct {
	mu      sync.Mutex
	records map[uuid.UUID]entities.ScoreRecord
}

// NewScoreStorage creates a new ScoreStorage.
func NewScoreStorage() *ScoreStorage {
	return &ScoreStorage{
		records: make(map[uuid.UUID]entities.ScoreRecord),
	}
}

// Save stores a copy of the record. Saving the same session twice replaces the earlier record.
func (s *ScoreStorage) Save(_ context.Context, record *entities.ScoreRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[record.SessionID] = *record
	return nil
}
