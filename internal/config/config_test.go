package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wgomg/sumrank/internal/summarizer"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "APP_LOG_LEVEL", "APP_LOG_FILE", "APP_SERVER_PORT", "APP_RAW_BODY_LOG",
		"APP_HTTP_TIMEOUT_SECONDS", "APP_MAX_BODY_BYTES", "SUMMARIZER_ENGINE",
		"SUMMARIZER_MAX_ITERATIONS", "SUMMARIZER_DAMPING_FACTOR", "SUMMARIZER_DELTA",
		"SUMMARIZER_RATIO", "SUMMARIZER_MIN_SENTENCES", "CACHE_SIZE",
		"BATCH_WORKER_COUNT", "BATCH_MAX_ITEMS", "SUMRANK_CONFIG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, Development, cfg.App.Env)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "8080", cfg.App.ServerPort)
	assert.Equal(t, EnginePageRank, cfg.Summarizer.Engine)
	assert.Equal(t, summarizer.DefaultOptions(), cfg.Options())
	assert.Equal(t, 512, cfg.Cache.Size)
	assert.GreaterOrEqual(t, cfg.Batch.WorkerCount, 1)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("SUMMARIZER_MAX_ITERATIONS", "25")
	t.Setenv("SUMMARIZER_DAMPING_FACTOR", "0.9")
	t.Setenv("SUMMARIZER_ENGINE", "LexRank")
	t.Setenv("CACHE_SIZE", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Production, cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 25, cfg.Summarizer.MaxIterations)
	assert.InDelta(t, 0.9, cfg.Summarizer.DampingFactor, 1e-12)
	assert.Equal(t, EngineLexRank, cfg.Summarizer.Engine)
	assert.Equal(t, 512, cfg.Cache.Size)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "sumrank.yaml")
	content := `
app:
  server_port: "9090"
  log_level: error
summarizer:
  delta: 0.1
  min_sentences: 5
cache:
  size: 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("SUMRANK_CONFIG_FILE", path)
	t.Setenv("SUMMARIZER_MIN_SENTENCES", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.ServerPort)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.InDelta(t, 0.1, cfg.Summarizer.Delta, 1e-12)
	assert.Equal(t, 4, cfg.Summarizer.MinSentences)
	assert.Equal(t, 0, cfg.Cache.Size)
	assert.Equal(t, summarizer.DefaultMaxIterations, cfg.Summarizer.MaxIterations)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUMRANK_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Summarizer.DampingFactor = 2
	assert.True(t, errors.Is(cfg.Validate(), summarizer.ErrInvalidOptions))

	cfg = Default()
	cfg.Summarizer.Engine = "bart"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Batch.WorkerCount = 0
	assert.Error(t, cfg.Validate())
}
