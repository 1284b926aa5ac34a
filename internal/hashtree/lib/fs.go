package lib

import (
	"os"
	"path/filepath"
)

// EnsureDir creates the directory at path along with any missing parents.
// It is idempotent.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// EnsureParent creates the parent directories of path if they do not exist.
func EnsureParent(path string) error {
	return EnsureDir(filepath.Dir(path))
}

// WriteFileWithParents writes data to path, creating any missing parent
// directories first.
func WriteFileWithParents(path string, data []byte) error {
	if err := EnsureParent(path); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Delete recursively removes path. Removing a path that does not exist is
// not an error.
func Delete(path string) error {
	return os.RemoveAll(path)
}
