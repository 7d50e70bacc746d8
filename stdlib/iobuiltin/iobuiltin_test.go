package iobuiltin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLast_AppendsWithTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, WriteLast(path, "one"))
	require.NoError(t, WriteLast(path, "two"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(content))
}

func TestOverwriteAll_ReplacesEntireFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, WriteLast(path, "stale"))
	require.NoError(t, OverwriteAll(path, "fresh"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fresh\n", string(content))
}

func TestWriteAtLine_ExtendsShorterFileWithBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, WriteAtLine(path, 3, "third"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\n\nthird\n", string(content))
}

func TestWriteAtLine_OverwritesExistingLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, OverwriteAll(path, "a\nb\nc"))
	require.NoError(t, WriteAtLine(path, 2, "B"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nB\nc\n", string(content))
}

func TestWriteAtLine_RejectsNonPositiveLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	assert.Error(t, WriteAtLine(path, 0, "x"))
}

func TestReadAll_IncludesTrailingNewlineVerbatim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, OverwriteAll(path, "hello"))

	got, err := ReadAll(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", got)
}

func TestReadLine_ReturnsSpecificOneBasedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, OverwriteAll(path, "a\nb\nc"))

	got, err := ReadLine(path, 2)
	require.NoError(t, err)
	assert.Equal(t, "b", got)
}

func TestReadLine_OutOfRangeIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, OverwriteAll(path, "only one line"))

	_, err := ReadLine(path, 5)
	assert.Error(t, err)
}

func TestReadAll_MissingFileIsError(t *testing.T) {
	_, err := ReadAll(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
