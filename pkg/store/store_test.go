package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketdesk/marketdesk-cli/pkg/models"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantName string
		wantErr  bool
	}{
		{name: "file", opts: Options{Backend: BackendFile, Path: filepath.Join(t.TempDir(), "p.yaml")}, wantName: BackendFile},
		{name: "empty backend defaults to file", opts: Options{Path: filepath.Join(t.TempDir(), "p.yaml")}, wantName: BackendFile},
		{name: "file without path", opts: Options{Backend: BackendFile}, wantErr: true},
		{name: "redis", opts: Options{Backend: BackendRedis, RedisAddr: "localhost:6379"}, wantName: BackendRedis},
		{name: "redis without address", opts: Options{Backend: BackendRedis}, wantErr: true},
		{name: "log", opts: Options{Backend: BackendLog}, wantName: BackendLog},
		{name: "unknown", opts: Options{Backend: "s3"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(tt.opts, nil)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, s.Name())
			assert.NoError(t, s.Close())
		})
	}
}

type stubSource struct {
	prefs models.PreferenceSet
	err   error
}

func (s stubSource) Load(ctx context.Context) (models.PreferenceSet, error) {
	return s.prefs, s.err
}

func TestLoadOrDefault(t *testing.T) {
	custom := models.Toggle(models.DefaultPreferences(), models.FieldDarkMode)
	boom := errors.New("boom")

	prefs, err := LoadOrDefault(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPreferences(), prefs)

	prefs, err = LoadOrDefault(context.Background(), stubSource{prefs: custom})
	require.NoError(t, err)
	assert.Equal(t, custom, prefs)

	prefs, err = LoadOrDefault(context.Background(), stubSource{err: ErrNotFound})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPreferences(), prefs)

	prefs, err = LoadOrDefault(context.Background(), stubSource{prefs: custom, err: boom})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, models.DefaultPreferences(), prefs)
}

type ctxSink struct {
	deadline bool
}

func (s *ctxSink) Persist(ctx context.Context, prefs models.PreferenceSet) error {
	_, s.deadline = ctx.Deadline()
	return nil
}

func TestPersistWithTimeout(t *testing.T) {
	sink := &ctxSink{}
	require.NoError(t, PersistWithTimeout(sink, models.DefaultPreferences(), time.Second))
	assert.True(t, sink.deadline)

	require.NoError(t, PersistWithTimeout(sink, models.DefaultPreferences(), 0))
	assert.False(t, sink.deadline)
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("disk full")
	var err error = &PersistenceError{Backend: BackendFile, Op: "persist", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "file store: persist: disk full", err.Error())

	var perr *PersistenceError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "persist", perr.Op)
}
