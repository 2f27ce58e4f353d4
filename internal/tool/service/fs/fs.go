package fs

import (
	"errors"
	"os"
)

// OSFileSystem implements filesystem operations using the local OS filesystem primitives.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OSFileSystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Stat returns file info for a path (follows symlinks).
func (fs *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Exists reports whether path exists. Errors other than "not exist"
// (e.g. permission denied on a parent) count as existing, matching
// how a subsequent open would surface them.
func (fs *OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, os.ErrNotExist)
}

// Getwd returns the current working directory.
func (fs *OSFileSystem) Getwd() (string, error) {
	return os.Getwd()
}
