package main

import (
	"fmt"
	"os"
	"path/filepath"
)

/* atomic file write */

// tempFile is the slice of *os.File behavior writeFileAtomic needs.
type tempFile interface {
	Name() string
	Write(p []byte) (n int, err error)
	Close() error
}

// Seams over the file ops, swapped out by tests to force error paths.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) {
		return os.CreateTemp(dir, pattern)
	}
	chmodFile  = os.Chmod
	renameFile = os.Rename
	removeFile = os.Remove
)

// writeFileAtomic writes data to path through a temp file in the same
// directory followed by a rename, so a reader never sees a partial file.
// The temp file is removed on every failure path.
func writeFileAtomic(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := createTempFile(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = removeFile(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = removeFile(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := chmodFile(tmpName, mode); err != nil {
		_ = removeFile(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := renameFile(tmpName, path); err != nil {
		_ = removeFile(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
