package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/marketdesk/marketdesk-cli/pkg/models"
)

const DefaultRedisKey = "marketdesk:preferences"

// redisClient is the subset of the go-redis API the store uses.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Close() error
}

// RedisOptions configures a RedisStore.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// RedisStore keeps the record as a JSON value under a single key.
type RedisStore struct {
	client redisClient
	key    string
	logger *zap.Logger
}

func NewRedisStore(opts RedisOptions, logger *zap.Logger) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	return newRedisStore(client, opts.Key, logger)
}

func newRedisStore(client redisClient, key string, logger *zap.Logger) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key, logger: logger}
}

func (s *RedisStore) Name() string { return BackendRedis }

// Close shuts down the client's connection pool.
func (s *RedisStore) Close() error {
	if err := s.client.Close(); err != nil {
		return &PersistenceError{Backend: BackendRedis, Op: "close", Err: err}
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context) (models.PreferenceSet, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.DefaultPreferences(), ErrNotFound
		}
		return models.DefaultPreferences(), &PersistenceError{Backend: BackendRedis, Op: "load", Err: err}
	}

	prefs := models.DefaultPreferences()
	if err := json.Unmarshal(data, &prefs); err != nil {
		return models.DefaultPreferences(), &PersistenceError{
			Backend: BackendRedis,
			Op:      "load",
			Err:     fmt.Errorf("failed to decode %s: %w", s.key, err),
		}
	}

	s.logger.Debug("preferences loaded", zap.String("key", s.key), zap.String("fingerprint", prefs.Fingerprint()))
	return prefs, nil
}

func (s *RedisStore) Persist(ctx context.Context, prefs models.PreferenceSet) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return &PersistenceError{Backend: BackendRedis, Op: "persist", Err: err}
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return &PersistenceError{Backend: BackendRedis, Op: "persist", Err: err}
	}

	s.logger.Info("preferences saved", zap.String("key", s.key), zap.String("fingerprint", prefs.Fingerprint()))
	return nil
}
