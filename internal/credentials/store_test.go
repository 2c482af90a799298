package credentials_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"ragflowctl/internal/credentials"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".ragflow_token")
	store := credentials.NewFileStore(path)

	require.NoError(t, store.Save("ragflow-abc123"), "saving token should not fail")

	token, err := store.Load()
	require.NoError(t, err, "loading saved token should not fail")
	assert.Equal(t, "ragflow-abc123", token, "loaded token should match saved token")
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	t.Parallel()

	store := credentials.NewFileStore(filepath.Join(t.TempDir(), "absent"))

	_, err := store.Load()
	require.Error(t, err, "loading from a missing file should fail")
	assert.ErrorIs(t, err, credentials.ErrNotFound, "missing file should map to ErrNotFound")
}

func TestFileStore_LoadBlankFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".ragflow_token")
	require.NoError(t, os.WriteFile(path, []byte("  \n\t"), 0o600), "seeding blank file should not fail")

	_, err := credentials.NewFileStore(path).Load()
	assert.ErrorIs(t, err, credentials.ErrNotFound, "blank file should map to ErrNotFound")
}

func TestFileStore_LoadTrimsWhitespace(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".ragflow_token")
	require.NoError(t, os.WriteFile(path, []byte("  ragflow-tok\n"), 0o600), "seeding token file should not fail")

	token, err := credentials.NewFileStore(path).Load()
	require.NoError(t, err, "loading padded token should not fail")
	assert.Equal(t, "ragflow-tok", token, "surrounding whitespace should be trimmed")
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".ragflow_token")
	store := credentials.NewFileStore(path)

	require.NoError(t, store.Save("first"), "first save should not fail")
	require.NoError(t, store.Save("second"), "second save should not fail")

	token, err := store.Load()
	require.NoError(t, err, "loading after overwrite should not fail")
	assert.Equal(t, "second", token, "later save should win")
}

func TestFileStore_SaveCreatesParentDirectories(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "token")
	store := credentials.NewFileStore(path)

	require.NoError(t, store.Save("tok"), "save into missing directory should create it")

	token, err := store.Load()
	require.NoError(t, err, "loading from created directory should not fail")
	assert.Equal(t, "tok", token, "token should round-trip through nested path")
}

func TestFileStore_SaveUsesOwnerOnlyPermissions(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), ".ragflow_token")
	require.NoError(t, credentials.NewFileStore(path).Save("tok"), "saving token should not fail")

	info, err := os.Stat(path)
	require.NoError(t, err, "stat on saved file should not fail")
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "token file should be owner read/write only")
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	store := credentials.NewMemoryStore()

	_, err := store.Load()
	assert.ErrorIs(t, err, credentials.ErrNotFound, "empty store should report ErrNotFound")

	require.NoError(t, store.Save("tok"), "saving to memory store should not fail")

	token, err := store.Load()
	require.NoError(t, err, "loading saved token should not fail")
	assert.Equal(t, "tok", token, "memory store should return what was saved")
}

func TestMemoryStore_Preloaded(t *testing.T) {
	t.Parallel()

	token, err := credentials.NewMemoryStoreWithToken("seeded").Load()
	require.NoError(t, err, "preloaded store should load without error")
	assert.Equal(t, "seeded", token, "preloaded token should be returned")
}
