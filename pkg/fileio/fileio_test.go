package fileio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dperussina/code-library/pkg/errors"
)

func TestWriteAndReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_file.txt")
	lines := []string{"Line 1", "Line 2", "Line 3"}

	require.NoError(t, WriteLines(path, lines, true))

	got, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, lines, got)
}

func TestWriteLinesAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "append.txt")

	require.NoError(t, WriteLines(path, []string{"a"}, true))
	require.NoError(t, WriteLines(path, []string{"b"}, false))

	got, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestWriteLinesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overwrite.txt")

	require.NoError(t, WriteLines(path, []string{"old", "content"}, true))
	require.NoError(t, WriteLines(path, []string{"new"}, true))

	got, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, got)
}

func TestReadLinesMissingFile(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "nope.txt"))

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteLines(filepath.Join(dir, "a.txt"), []string{"x"}, true))
	require.NoError(t, WriteLines(filepath.Join(dir, "b.txt"), []string{"x"}, true))
	require.NoError(t, WriteLines(filepath.Join(dir, "c.csv"), []string{"x"}, true))

	txt, err := ListFiles(dir, "*.txt")
	require.NoError(t, err)
	assert.Len(t, txt, 2)

	all, err := ListFiles(dir, "*")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListFilesMissingDir(t *testing.T) {
	_, err := ListFiles(filepath.Join(t.TempDir(), "missing"), "*")

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
}

func TestEnsureDirAndPredicates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDir(dir))
	// Idempotent
	require.NoError(t, EnsureDir(dir))

	assert.True(t, Exists(dir))
	assert.True(t, IsDir(dir))
	assert.False(t, IsFile(dir))

	file := filepath.Join(dir, "f.txt")
	require.NoError(t, WriteLines(file, []string{"hi"}, true))
	assert.True(t, IsFile(file))
	assert.False(t, IsDir(file))
	assert.False(t, Exists(filepath.Join(dir, "ghost")))
}
