package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.True(t, cfg.AI.Enabled)
	assert.Equal(t, "http://localhost:11434/v1", cfg.AI.Host)
	assert.Equal(t, 0.4, cfg.Match.MinConfidence)
	assert.True(t, cfg.Match.FuzzyEnabled)
	assert.True(t, cfg.Match.UseCache)
}

func TestParse(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		cfg, err := Parse([]byte(`
[database]
path = "/tmp/answers"

[ai]
enabled = false
model = "gpt-4o-mini"

[match]
min_confidence = 0.6
fuzzy_enabled = false
cache_ttl_seconds = 60
`))
		require.NoError(t, err)

		assert.Equal(t, "/tmp/answers", cfg.Database.Path)
		assert.False(t, cfg.AI.Enabled)
		assert.Equal(t, "gpt-4o-mini", cfg.AI.Model)
		assert.Equal(t, 0.6, cfg.Match.MinConfidence)
		assert.False(t, cfg.Match.FuzzyEnabled)
		assert.Equal(t, time.Minute, cfg.CacheTTL())

		// untouched sections keep their defaults
		assert.Equal(t, "http://localhost:11434/v1", cfg.AI.Host)
		assert.True(t, cfg.Match.PartialEnabled)
	})

	t.Run("rejects malformed toml", func(t *testing.T) {
		_, err := Parse([]byte(`[match`))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects out-of-range values", func(t *testing.T) {
		_, err := Parse([]byte("[match]\nmin_confidence = 1.5\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)

		_, err = Parse([]byte("[match]\ncache_size = 0\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)

		_, err = Parse([]byte("[ai]\ntimeout_seconds = 0\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("reads an existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("[ai]\nmodel = \"llama3\"\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "llama3", cfg.AI.Model)
	})
}

func TestMatchOptions(t *testing.T) {
	cfg := Default()
	cfg.Match.MinConfidence = 0.7
	cfg.AI.Enabled = false

	opts := cfg.MatchOptions()
	assert.Equal(t, 0.7, opts.MinConfidence)
	assert.False(t, opts.RemoteEnabled, "remote tier follows the ai.enabled flag")
}

func TestAIClientConfig(t *testing.T) {
	cfg := Default()
	cfg.AI.Host = "http://llm.internal:8080"
	cfg.AI.TimeoutSeconds = 5

	clientCfg := cfg.AIClientConfig()
	require.NoError(t, clientCfg.Validate())
	assert.Equal(t, "http://llm.internal:8080/v1", clientCfg.Host, "host is normalized")
	assert.Equal(t, 5*time.Second, clientCfg.Timeout)
}
