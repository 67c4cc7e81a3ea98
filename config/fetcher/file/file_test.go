package file

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const declarations = `
models:
  - name: user
    attributes: [id, name]
serializers:
  - name: UserSerializer
    model: user
`

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)

	err := os.WriteFile(path, content, 0o600)
	require.NoError(t, err)

	return path
}

func TestFetcher_Fetch_Success(t *testing.T) {
	t.Parallel()

	content := []byte(declarations)
	path := writeFile(t, "serializers.yaml", content)

	fetcher, err := NewFetcher(path)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, content, data)
	assert.Equal(t, path, fetcher.Path())
}

func TestFetcher_Fetch_FileNotFound(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher("/nonexistent/path/serializers.yaml")()

	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Nil(t, fetcher)
	assert.Contains(t, err.Error(), "stat file")
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestFetcher_Fetch_EmptyFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "empty.yaml", []byte{})

	fetcher, err := NewFetcher(path)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFetcher_Fetch_DirectoryPath(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher(t.TempDir())()

	require.ErrorIs(t, err, ErrPathIsDirectory)
	assert.Nil(t, fetcher)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestFetcher_Fetch_FileModifiedAfterConstruction_ReturnsCachedData(t *testing.T) {
	t.Parallel()

	original := []byte(`serializers: []`)
	path := writeFile(t, "serializers.yaml", original)

	fetcher, err := NewFetcher(path)()
	require.NoError(t, err)

	err = os.WriteFile(path, []byte(`models: []`), 0o600)
	require.NoError(t, err)

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, original, data, "Fetch should return cached data, not current file content")
}

func TestFetcher_Fetch_ReturnsCopy_MutationSafe(t *testing.T) {
	t.Parallel()

	content := []byte(declarations)
	path := writeFile(t, "serializers.yaml", content)

	fetcher, err := NewFetcher(path)()
	require.NoError(t, err)

	first, err := fetcher.Fetch()
	require.NoError(t, err)

	first[0] = 'X'

	second, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, content, second, "Fetch should return unmodified cached data")
}

func TestFSFetcher(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"declarations/serializers.yaml": &fstest.MapFile{Data: []byte(declarations)},
	}

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		fetcher, err := NewFSFetcher(fsys, "declarations/serializers.yaml")()
		require.NoError(t, err)

		data, err := fetcher.Fetch()
		require.NoError(t, err)
		assert.Equal(t, []byte(declarations), data)
		assert.Equal(t, "declarations/serializers.yaml", fetcher.Path())
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, err := NewFSFetcher(fsys, "declarations")()

		require.ErrorIs(t, err, ErrPathIsDirectory)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		_, err := NewFSFetcher(fsys, "missing.yaml")()

		require.ErrorIs(t, err, fs.ErrNotExist)
	})
}
