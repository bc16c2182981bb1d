package main

import (
	"testing"

	"studeploy/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveServerPrecedence(t *testing.T) {
	store := config.NewMemoryStore()
	require.NoError(t, store.SaveSettings(config.Settings{ServerURL: "http://persisted:8000"}))

	// Persisted setting applies when flag and env are absent.
	t.Setenv("STUDEPLOY_SERVER", "")
	assert.Equal(t, "http://persisted:8000", resolveServerWithStore("", store))

	// Environment beats the persisted setting.
	t.Setenv("STUDEPLOY_SERVER", "http://env:8000")
	assert.Equal(t, "http://env:8000", resolveServerWithStore("", store))

	// An explicit flag beats everything and is persisted for next time.
	assert.Equal(t, "http://flag:8000", resolveServerWithStore("http://flag:8000", store))
	assert.Equal(t, "http://flag:8000", store.Settings().ServerURL)

	t.Setenv("STUDEPLOY_SERVER", "")
	assert.Equal(t, "http://flag:8000", resolveServerWithStore("", store))
}

func TestResolveServerFallsBackToDefault(t *testing.T) {
	t.Setenv("STUDEPLOY_SERVER", "")
	assert.Equal(t, defaultServer, resolveServerWithStore("", nil))
	assert.Equal(t, defaultServer, resolveServerWithStore("", config.NewMemoryStore()))
}

func TestResolveDefaultServerHonorsPersistedSetting(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STUDEPLOY_SERVER", "")

	store, err := config.NewStore()
	require.NoError(t, err)
	require.NoError(t, store.SaveSettings(config.Settings{ServerURL: "http://persisted:8000"}))
	require.NoError(t, store.Close())

	// The headless subcommands resolve the same way the TUI does.
	assert.Equal(t, "http://persisted:8000", resolveDefaultServer())
}

func TestStoreOrEmptySubstitutesMemoryStore(t *testing.T) {
	assert.NotNil(t, storeOrEmpty(nil))

	store := config.NewMemoryStore()
	assert.Equal(t, config.StoreInterface(store), storeOrEmpty(store))
}
