package transcript

import (
	"os"
	"strings"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := Open("~/tabchat/history.txt")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "tabchat", "history.txt"), s.Path())
}

func TestRecordThenLoad(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "nested", "history.txt"))
	require.NoError(t, err)

	for _, line := range []string{"hello", "", "héllo 😀"} {
		require.NoError(t, s.Record(line))
	}

	lines, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "", "héllo 😀"}, lines)
}

func TestRecordFlattensNewlines(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "history.txt"))
	require.NoError(t, err)

	require.NoError(t, s.Record("one\ntwo"))

	lines, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"one two"}, lines)
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "absent.txt"))
	require.NoError(t, err)

	lines, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestLoadMissingDirectory(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "no", "such", "dir", "history.txt"))
	require.NoError(t, err)

	lines, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRecordAppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")
	require.NoError(t, os.WriteFile(path, []byte("earlier\n"), 0600))

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Record("later"))

	lines, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"earlier", "later"}, lines)
}

func TestLoadLongLine(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.log"))
	require.NoError(t, err)

	long := strings.Repeat("x", 2<<20)
	require.NoError(t, store.Record("before"))
	require.NoError(t, store.Record(long))
	require.NoError(t, store.Record(""))
	require.NoError(t, store.Record("after"))

	lines, err := store.Load()
	require.NoError(t, err)
	require.Len(t, lines, 4)
	assert.Equal(t, "before", lines[0])
	assert.Len(t, lines[1], len(long))
	assert.Equal(t, "", lines[2])
	assert.Equal(t, "after", lines[3])
}

func TestLoadUnterminatedLastLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.log")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo"), 0600))

	store, err := Open(path)
	require.NoError(t, err)

	lines, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, lines)
}
