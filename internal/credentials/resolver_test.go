package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSecretStore(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "secrets.yaml")
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)

	return path
}

func TestNewResolver(t *testing.T) {
	t.Run("loads_secret_store", func(t *testing.T) {
		path := writeSecretStore(t, "GPT4_MINI_API_KEY: store-key\nGPT4_MINI_ENDPOINT: https://store.example.com\n")
		t.Setenv("SECRETS_FILE", path)

		resolver := NewResolver()
		require.NotNil(t, resolver)

		value, ok := resolver.Resolve("GPT4_MINI_API_KEY")
		assert.True(t, ok)
		assert.Equal(t, "store-key", value)
	})

	t.Run("missing_store_degrades_to_environment", func(t *testing.T) {
		t.Setenv("SECRETS_FILE", filepath.Join(t.TempDir(), "does-not-exist.yaml"))
		t.Setenv("GPT4_MINI_API_KEY", "env-key")

		resolver := NewResolver()
		require.NotNil(t, resolver)

		value, ok := resolver.Resolve("GPT4_MINI_API_KEY")
		assert.True(t, ok)
		assert.Equal(t, "env-key", value)
	})

	t.Run("malformed_store_degrades_to_environment", func(t *testing.T) {
		path := writeSecretStore(t, "key: [unterminated\n")
		t.Setenv("SECRETS_FILE", path)
		t.Setenv("GPT4_MINI_ENDPOINT", "https://env.example.com")

		resolver := NewResolver()
		require.NotNil(t, resolver)

		value, ok := resolver.Resolve("GPT4_MINI_ENDPOINT")
		assert.True(t, ok)
		assert.Equal(t, "https://env.example.com", value)
	})
}

func TestResolver_Resolve(t *testing.T) {
	t.Run("store_wins_over_environment", func(t *testing.T) {
		t.Setenv("GPT4_MINI_API_KEY", "env-key")

		resolver := &Resolver{store: map[string]string{"GPT4_MINI_API_KEY": "store-key"}}

		value, ok := resolver.Resolve("GPT4_MINI_API_KEY")
		assert.True(t, ok)
		assert.Equal(t, "store-key", value)
	})

	t.Run("falls_back_to_environment", func(t *testing.T) {
		t.Setenv("GPT4_MINI_DEPLOYMENT", "gpt-4o-mini")

		resolver := &Resolver{store: map[string]string{}}

		value, ok := resolver.Resolve("GPT4_MINI_DEPLOYMENT")
		assert.True(t, ok)
		assert.Equal(t, "gpt-4o-mini", value)
	})

	t.Run("empty_store_value_counts_as_absent", func(t *testing.T) {
		t.Setenv("GPT4_MINI_API_KEY", "env-key")

		resolver := &Resolver{store: map[string]string{"GPT4_MINI_API_KEY": ""}}

		value, ok := resolver.Resolve("GPT4_MINI_API_KEY")
		assert.True(t, ok)
		assert.Equal(t, "env-key", value)
	})

	t.Run("empty_environment_value_counts_as_absent", func(t *testing.T) {
		t.Setenv("GPT4_MINI_API_KEY", "")

		resolver := &Resolver{store: map[string]string{}}

		value, ok := resolver.Resolve("GPT4_MINI_API_KEY")
		assert.False(t, ok)
		assert.Empty(t, value)
	})

	t.Run("unknown_key_is_absent", func(t *testing.T) {
		resolver := &Resolver{store: map[string]string{}}

		value, ok := resolver.Resolve("NO_SUCH_CREDENTIAL_KEY")
		assert.False(t, ok)
		assert.Empty(t, value)
	})
}
