// Package manifest locates project roots by their manifest marker file.
package manifest

import (
	"errors"
	"path/filepath"
)

// ErrNotFound is returned when no ancestor directory holds the marker.
var ErrNotFound = errors.New("no manifest found")

// FileSystem is the filesystem view the locator needs.
type FileSystem interface {
	Exists(path string) bool
}

// Locator finds directories containing a fixed-name marker file.
type Locator struct {
	fs     FileSystem
	marker string
}

// NewLocator creates a Locator for the given marker file name.
func NewLocator(fs FileSystem, marker string) *Locator {
	if fs == nil {
		panic("fs is required")
	}
	if marker == "" {
		panic("marker is required")
	}
	return &Locator{fs: fs, marker: marker}
}

// Marker returns the marker file name.
func (l *Locator) Marker() string {
	return l.marker
}

// HasManifest reports whether dir directly contains the marker.
func (l *Locator) HasManifest(dir string) bool {
	return l.fs.Exists(filepath.Join(dir, l.marker))
}

// FindProjectRoot returns the nearest directory at or above the one holding
// filePath that contains the marker. It stops at the filesystem root.
func (l *Locator) FindProjectRoot(filePath string) (string, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return "", err
	}

	current := filepath.Dir(abs)
	for {
		if l.HasManifest(current) {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", ErrNotFound
		}
		current = parent
	}
}
