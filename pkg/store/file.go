package store

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/marketdesk/marketdesk-cli/pkg/files"
	"github.com/marketdesk/marketdesk-cli/pkg/models"
)

// FileStore keeps the record as a YAML file.
type FileStore struct {
	path   string
	logger *zap.Logger

	mu sync.Mutex
}

func NewFileStore(path string, logger *zap.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

func (s *FileStore) Name() string { return BackendFile }

// Close is a no-op; the file is only open during Load and Persist.
func (s *FileStore) Close() error { return nil }

// Path returns the file the store reads and writes.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load(ctx context.Context) (models.PreferenceSet, error) {
	if err := ctx.Err(); err != nil {
		return models.DefaultPreferences(), &PersistenceError{Backend: BackendFile, Op: "load", Err: err}
	}

	prefs, err := files.ReadPreferences(s.path)
	if err != nil {
		if errors.Is(err, files.ErrNoPreferences) {
			return prefs, ErrNotFound
		}
		return prefs, &PersistenceError{Backend: BackendFile, Op: "load", Err: err}
	}

	s.logger.Debug("preferences loaded", zap.String("path", s.path), zap.String("fingerprint", prefs.Fingerprint()))
	return prefs, nil
}

// Persist writes prefs unless the file on disk already holds the same record.
func (s *FileStore) Persist(ctx context.Context, prefs models.PreferenceSet) error {
	if err := ctx.Err(); err != nil {
		return &PersistenceError{Backend: BackendFile, Op: "persist", Err: err}
	}

	fingerprint := prefs.Fingerprint()

	s.mu.Lock()
	defer s.mu.Unlock()

	if current, err := files.ReadPreferences(s.path); err == nil && current.Fingerprint() == fingerprint {
		s.logger.Debug("preferences unchanged, skipping write", zap.String("path", s.path))
		return nil
	}

	if err := files.WritePreferences(s.path, prefs); err != nil {
		return &PersistenceError{Backend: BackendFile, Op: "persist", Err: err}
	}

	s.logger.Info("preferences saved", zap.String("path", s.path), zap.String("fingerprint", fingerprint))
	return nil
}
