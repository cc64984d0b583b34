package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marketdesk/marketdesk-cli/pkg/models"
)

type fakeRedis struct {
	values   map[string]string
	getErr   error
	setErr   error
	closeErr error
	closed   bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: make(map[string]string)}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Close() error {
	f.closed = true
	return f.closeErr
}

func TestRedisStore_Close(t *testing.T) {
	client := newFakeRedis()
	require.NoError(t, newRedisStore(client, "", zap.NewNop()).Close())
	assert.True(t, client.closed)

	client = newFakeRedis()
	client.closeErr = errors.New("connection reset")
	err := newRedisStore(client, "", zap.NewNop()).Close()

	var perr *PersistenceError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "close", perr.Op)
}

func TestRedisStore_LoadMissing(t *testing.T) {
	s := newRedisStore(newFakeRedis(), "", zap.NewNop())

	prefs, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, models.DefaultPreferences(), prefs)
}

func TestRedisStore_PersistAndLoad(t *testing.T) {
	client := newFakeRedis()
	s := newRedisStore(client, "prefs:test", zap.NewNop())

	prefs := models.WithChartType(models.Toggle(models.DefaultPreferences(), models.FieldDarkMode), models.ChartArea)
	require.NoError(t, s.Persist(context.Background(), prefs))

	raw, ok := client.values["prefs:test"]
	require.True(t, ok)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, "area", decoded["chartType"])

	loaded, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, prefs, loaded)
}

func TestRedisStore_DefaultKey(t *testing.T) {
	client := newFakeRedis()
	s := newRedisStore(client, "", zap.NewNop())

	require.NoError(t, s.Persist(context.Background(), models.DefaultPreferences()))
	_, ok := client.values[DefaultRedisKey]
	assert.True(t, ok)
}

func TestRedisStore_Errors(t *testing.T) {
	down := errors.New("connection refused")

	client := newFakeRedis()
	client.setErr = down
	err := newRedisStore(client, "", zap.NewNop()).Persist(context.Background(), models.DefaultPreferences())
	assert.ErrorIs(t, err, down)

	var perr *PersistenceError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, BackendRedis, perr.Backend)

	client = newFakeRedis()
	client.getErr = down
	_, err = newRedisStore(client, "", zap.NewNop()).Load(context.Background())
	assert.ErrorIs(t, err, down)

	client = newFakeRedis()
	client.values[DefaultRedisKey] = `{"language":"fr"}`
	_, err = newRedisStore(client, "", zap.NewNop()).Load(context.Background())
	assert.ErrorIs(t, err, models.ErrInvalidLanguage)
}
