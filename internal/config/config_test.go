package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndSelect(t *testing.T) {
	path := writeConfig(t, `{
		"default_provider": "google",
		"providers": {
			"google": {"api_key": "k1", "model": "gemini-2.5-flash"},
			"openai": {"api_key": "k2", "model": "gpt-4o"}
		}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	name, p, err := cfg.Select("")
	require.NoError(t, err)
	assert.Equal(t, "google", name)
	assert.Equal(t, "gemini-2.5-flash", p.Model)

	name, p, err = cfg.Select("openai")
	require.NoError(t, err)
	assert.Equal(t, "openai", name)
	assert.Equal(t, "k2", p.APIKey)
}

func TestSelectUnknownProvider(t *testing.T) {
	cfg := Config{Providers: map[string]Provider{"google": {APIKey: "k"}}}

	_, _, err := cfg.Select("anthropic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic")
}

func TestSelectMissingAPIKey(t *testing.T) {
	cfg := Config{
		DefaultProvider: "google",
		Providers:       map[string]Provider{"google": {Model: "gemini-2.5-flash"}},
	}

	_, _, err := cfg.Select("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api_key")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeConfig(t, "{not json")
	_, err := Load(path)
	assert.Error(t, err)
}
