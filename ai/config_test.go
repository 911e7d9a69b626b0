package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigNormalize(t *testing.T) {
	t.Run("appends v1 suffix", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434"))
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
	})

	t.Run("strips trailing slash before appending", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434/"))
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
	})

	t.Run("leaves canonical host alone", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434/v1"))
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, DefaultConfig().Validate())
	})

	t.Run("rejects empty host", func(t *testing.T) {
		cfg := NewConfig(WithHost(""))
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects empty model", func(t *testing.T) {
		cfg := NewConfig(WithModel(""))
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects non-positive timeout", func(t *testing.T) {
		cfg := NewConfig(WithTimeout(0))
		assert.Error(t, cfg.Validate())
	})

	t.Run("options override defaults", func(t *testing.T) {
		cfg := NewConfig(WithModel("gpt-4o-mini"), WithTimeout(5*time.Second), WithMaxCandidates(1))
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "gpt-4o-mini", cfg.Model)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Equal(t, 1, cfg.MaxCandidates)
	})
}
