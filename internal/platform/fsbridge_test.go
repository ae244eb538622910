package platform

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "greeting.txt")

	require.False(t, Exists(path))
	require.NoError(t, WriteFile(path, "hello"))
	require.True(t, Exists(path))

	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "hello", got)

	require.NoError(t, AppendFile(path, " world"))
	got, err = ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)

	require.NoError(t, DeleteFile(path))
	require.False(t, Exists(path))
}

func TestDirRoundTrip(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "child")

	require.NoError(t, MkdirAll(sub))
	require.True(t, Exists(sub))
	require.NoError(t, WriteFile(filepath.Join(sub, "a.txt"), "a"))
	require.NoError(t, WriteFile(filepath.Join(root, "b.txt"), "b"))

	entries, err := ListDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "b.txt", entries[0].Name)
	require.False(t, entries[0].IsDir)
	require.Equal(t, "child", entries[1].Name)
	require.True(t, entries[1].IsDir)

	require.NoError(t, RemoveDir(sub))
	require.False(t, Exists(sub))
}

func TestGetwdChdir(t *testing.T) {
	start, err := Getwd()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, Chdir(dir))
	defer func() { require.NoError(t, Chdir(start)) }()

	cwd, err := Getwd()
	require.NoError(t, err)

	resolvedDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	resolvedCwd, err := filepath.EvalSymlinks(cwd)
	require.NoError(t, err)
	require.Equal(t, resolvedDir, resolvedCwd)
}
