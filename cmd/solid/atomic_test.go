package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* seam plumbing */

// fakeTempFile forces write/close failures without touching the filesystem.
type fakeTempFile struct {
	name     string
	writeErr error
	closeErr error
}

func (f *fakeTempFile) Name() string { return f.name }

func (f *fakeTempFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return len(p), nil
}

func (f *fakeTempFile) Close() error { return f.closeErr }

// restoreSeams snapshots the file-op seams and restores them when the test
// ends. Tests that swap seams must not run in parallel.
func restoreSeams(t *testing.T) {
	t.Helper()

	origCreate := createTempFile
	origChmod := chmodFile
	origRename := renameFile
	origRemove := removeFile
	t.Cleanup(func() {
		createTempFile = origCreate
		chmodFile = origChmod
		renameFile = origRename
		removeFile = origRemove
	})
}

/* writeFileAtomic */

func TestWriteFileAtomic_WritesAndOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")

	require.NoError(t, writeFileAtomic(path, []byte("first"), 0o644))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(got))

	require.NoError(t, writeFileAtomic(path, []byte("second"), 0o644))
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestWriteFileAtomic_CreateError(t *testing.T) {
	restoreSeams(t)

	boom := errors.New("disk full")
	createTempFile = func(dir, pattern string) (tempFile, error) { return nil, boom }

	err := writeFileAtomic(filepath.Join(t.TempDir(), "out.txt"), []byte("x"), 0o644)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "create temp file")
}

func TestWriteFileAtomic_WriteErrorRemovesTemp(t *testing.T) {
	restoreSeams(t)

	boom := errors.New("short write")
	createTempFile = func(dir, pattern string) (tempFile, error) {
		return &fakeTempFile{name: filepath.Join(dir, "out.txt.tmp-1"), writeErr: boom}, nil
	}

	var removed []string
	removeFile = func(name string) error {
		removed = append(removed, name)
		return nil
	}

	dir := t.TempDir()
	err := writeFileAtomic(filepath.Join(dir, "out.txt"), []byte("x"), 0o644)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{filepath.Join(dir, "out.txt.tmp-1")}, removed)
}

func TestWriteFileAtomic_CloseErrorRemovesTemp(t *testing.T) {
	restoreSeams(t)

	boom := errors.New("flush failed")
	createTempFile = func(dir, pattern string) (tempFile, error) {
		return &fakeTempFile{name: filepath.Join(dir, "out.txt.tmp-2"), closeErr: boom}, nil
	}

	var removed []string
	removeFile = func(name string) error {
		removed = append(removed, name)
		return nil
	}

	err := writeFileAtomic(filepath.Join(t.TempDir(), "out.txt"), []byte("x"), 0o644)
	require.ErrorIs(t, err, boom)
	assert.Len(t, removed, 1)
}

func TestWriteFileAtomic_RenameErrorRemovesTemp(t *testing.T) {
	restoreSeams(t)

	boom := errors.New("cross-device link")
	renameFile = func(oldpath, newpath string) error { return boom }

	path := filepath.Join(t.TempDir(), "out.txt")
	err := writeFileAtomic(path, []byte("x"), 0o644)
	require.ErrorIs(t, err, boom)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "destination must not exist after a failed rename")

	leftovers, globErr := filepath.Glob(path + ".tmp-*")
	require.NoError(t, globErr)
	assert.Empty(t, leftovers, "temp file must be cleaned up")
}
