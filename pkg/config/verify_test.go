package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		cfg := &Config{}
		cfg.Server.Listen = ":8080"
		cfg.Server.Timeout = 30 * time.Second
		cfg.Fetch.UserAgent = "Feedscope/1.0"

		err := VerifyAgainstEmbeddedSchema(cfg)
		assert.NoError(t, err)
	})

	t.Run("missing listen fails", func(t *testing.T) {
		cfg := &Config{}
		cfg.Server.Timeout = 30 * time.Second
		cfg.Fetch.UserAgent = "Feedscope/1.0"

		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.listen")
	})

	t.Run("extraction requirements enforced when enabled", func(t *testing.T) {
		cfg := &Config{}
		cfg.Server.Listen = ":8080"
		cfg.Server.Timeout = 30 * time.Second
		cfg.Fetch.UserAgent = "Feedscope/1.0"
		cfg.Extraction.Enabled = true

		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "extraction.timeout")
	})
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	data, err := schema.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), "server")
	assert.Contains(t, string(data), "extraction")
}
