package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreImplementsInterface(t *testing.T) {
	var _ StoreInterface = NewMemoryStore()
}

func TestMemoryStoreBasics(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.AddPreset(RequestPreset{ID: "id-b", Name: "beta", CPU: 1, Memory: 1024, Storage: 5}))
	require.NoError(t, store.AddPreset(RequestPreset{ID: "id-a", Name: "alpha", CPU: 0.5, Memory: 512, Storage: 1}))

	assert.Equal(t, 2, store.Len())
	presets := store.GetAll()
	require.Len(t, presets, 2)
	assert.Equal(t, "alpha", presets[0].Name)

	got, ok := store.GetPresetByID("id-b")
	assert.True(t, ok)
	assert.Equal(t, "beta", got.Name)

	assert.Error(t, store.AddPreset(RequestPreset{ID: "id-a", Name: "dup"}))

	require.NoError(t, store.DeletePreset("id-a"))
	assert.Equal(t, 1, store.Len())
	assert.ErrorIs(t, store.DeletePreset("id-a"), ErrPresetNotFound)
}

func TestMemoryStoreSettings(t *testing.T) {
	store := NewMemoryStore()
	assert.Empty(t, store.Settings().ServerURL)
	require.NoError(t, store.SaveSettings(Settings{ServerURL: "http://127.0.0.1:8000"}))
	assert.Equal(t, "http://127.0.0.1:8000", store.Settings().ServerURL)
}
