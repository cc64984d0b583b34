package testhelpers

import (
	"context"
	"sync"

	"github.com/marketdesk/marketdesk-cli/pkg/models"
	"github.com/marketdesk/marketdesk-cli/pkg/store"
)

// RecordingSink keeps every record handed to it
type RecordingSink struct {
	mu      sync.Mutex
	records []models.PreferenceSet
}

func (s *RecordingSink) Persist(ctx context.Context, prefs models.PreferenceSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, prefs)
	return nil
}

// Records returns a copy of everything persisted so far
func (s *RecordingSink) Records() []models.PreferenceSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.PreferenceSet(nil), s.records...)
}

// Last returns the most recent record
func (s *RecordingSink) Last() (models.PreferenceSet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.records) == 0 {
		return models.PreferenceSet{}, false
	}
	return s.records[len(s.records)-1], true
}

// FailingSink rejects every record
type FailingSink struct {
	Err error
}

func (s FailingSink) Persist(ctx context.Context, prefs models.PreferenceSet) error {
	err := s.Err
	if err == nil {
		err = ErrSinkUnavailable
	}
	return &store.PersistenceError{Backend: "test", Op: "persist", Err: err}
}

// StaticSource always loads the same record, or fails with Err
type StaticSource struct {
	Prefs models.PreferenceSet
	Err   error
}

func (s StaticSource) Load(ctx context.Context) (models.PreferenceSet, error) {
	if s.Err != nil {
		return models.DefaultPreferences(), s.Err
	}
	return s.Prefs, nil
}
