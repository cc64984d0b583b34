// Package store connects the preferences panel to where records are kept.
// The panel only depends on Sink (and optionally Source); backends are
// chosen by configuration.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/marketdesk/marketdesk-cli/pkg/models"
)

// ErrNotFound is returned by Load when the backend holds no record yet.
var ErrNotFound = errors.New("preferences not found")

// Sink receives a record when the user saves.
type Sink interface {
	Persist(ctx context.Context, prefs models.PreferenceSet) error
}

// Source provides the record the panel starts from.
type Source interface {
	Load(ctx context.Context) (models.PreferenceSet, error)
}

// Store is a backend that can both load and persist. Close releases any
// connection the backend holds.
type Store interface {
	Sink
	Source
	Name() string
	Close() error
}

// PersistenceError describes a failed backend operation.
type PersistenceError struct {
	Backend string
	Op      string
	Err     error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s store: %s: %v", e.Backend, e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Backend names accepted by Open.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendLog   = "log"
)

// Backends lists the accepted backend names.
var Backends = []string{BackendFile, BackendRedis, BackendLog}

// Options selects and configures a backend.
type Options struct {
	Backend string
	Path    string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisKey      string
}

// Open builds the backend named by opts.Backend.
func Open(opts Options, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch opts.Backend {
	case BackendFile, "":
		if opts.Path == "" {
			return nil, fmt.Errorf("file store requires a path")
		}
		return NewFileStore(opts.Path, logger), nil
	case BackendRedis:
		if opts.RedisAddr == "" {
			return nil, fmt.Errorf("redis store requires an address")
		}
		return NewRedisStore(RedisOptions{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
			Key:      opts.RedisKey,
		}, logger), nil
	case BackendLog:
		return NewLogSink(logger), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s (must be: file, redis, or log)", opts.Backend)
	}
}

// LoadOrDefault loads from src and falls back to the defaults when nothing is stored.
// Other errors are returned together with the defaults.
func LoadOrDefault(ctx context.Context, src Source) (models.PreferenceSet, error) {
	if src == nil {
		return models.DefaultPreferences(), nil
	}
	prefs, err := src.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.DefaultPreferences(), nil
		}
		return models.DefaultPreferences(), err
	}
	return prefs, nil
}

// PersistWithTimeout bounds a single Persist call.
func PersistWithTimeout(sink Sink, prefs models.PreferenceSet, timeout time.Duration) error {
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return sink.Persist(ctx, prefs)
}
