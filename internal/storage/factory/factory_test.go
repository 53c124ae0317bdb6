package factory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/article-feed/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_DefaultsToInMem(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "")
	t.Setenv("SEED_PATH", "seed.yaml")

	cfg, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, storage.InMem, cfg.Type)
	assert.Equal(t, "seed.yaml", cfg.SeedPath)
	assert.Nil(t, cfg.Pg)
	assert.Nil(t, cfg.Es)
}

func TestLoadEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown type", env: map[string]string{"STORAGE_TYPE": "mongo"}},
		{name: "pg without connection string", env: map[string]string{"STORAGE_TYPE": "pg", "PG_CONNECTION_STRING": ""}},
		{name: "pg with bad max conns", env: map[string]string{"STORAGE_TYPE": "pg", "PG_CONNECTION_STRING": "postgres://x", "PG_MAX_CONNS": "zero"}},
		{name: "pg with bad auto migrate", env: map[string]string{"STORAGE_TYPE": "pg", "PG_CONNECTION_STRING": "postgres://x", "PG_AUTO_MIGRATE": "sometimes"}},
		{name: "es without index", env: map[string]string{"STORAGE_TYPE": "es", "ES_ADDRESSES": "http://localhost:9200", "ES_INDEX_NAME": ""}},
		{name: "es without addresses", env: map[string]string{"STORAGE_TYPE": "es", "ES_ADDRESSES": " , ", "ES_INDEX_NAME": "articles"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoadEnv_Es(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "es")
	t.Setenv("ES_ADDRESSES", "http://a:9200, http://b:9200")
	t.Setenv("ES_INDEX_NAME", "articles")

	cfg, err := LoadEnv()
	require.NoError(t, err)

	require.NotNil(t, cfg.Es)
	assert.Equal(t, []string{"http://a:9200", "http://b:9200"}, cfg.Es.Addresses)
	assert.Equal(t, "articles", cfg.Es.IndexName)
}

func TestLoadEnv_Pg(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "pg")
	t.Setenv("PG_CONNECTION_STRING", "postgres://u:p@localhost:5432/articles")
	t.Setenv("PG_MAX_CONNS", "8")
	t.Setenv("PG_AUTO_MIGRATE", "true")

	cfg, err := LoadEnv()
	require.NoError(t, err)

	require.NotNil(t, cfg.Pg)
	assert.Equal(t, int32(8), cfg.Pg.MaxConns)
	assert.True(t, cfg.PgAutoMigrate)
}

func TestNewBackend_InMemWithSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("articles:\n  - title: one\n  - title: two\n"), 0o644))

	backend, err := NewBackend(context.Background(), StorageConfig{Type: storage.InMem, SeedPath: path})
	require.NoError(t, err)
	defer backend.Close()

	count, err := backend.Collection.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.True(t, backend.HealthChecker.Healthy(context.Background()))
}

func TestNewBackend_Errors(t *testing.T) {
	_, err := NewBackend(context.Background(), StorageConfig{Type: "redis"})
	assert.ErrorContains(t, err, "unsupported storer type: redis")

	_, err = NewBackend(context.Background(), StorageConfig{Type: storage.PG})
	assert.Error(t, err)

	_, err = NewBackend(context.Background(), StorageConfig{Type: storage.InMem, SeedPath: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}
