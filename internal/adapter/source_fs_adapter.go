// Package adapter contains infrastructure adapters for the scrub CLI.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	m "github.com/mouse-blink/scrub/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the workflow relies
// on. It hides direct `os` access so the scrubbing logic can be tested
// without touching the disk.
type SourceFSAdapter interface {
	// Open opens an input file for reading.
	Open(path m.Path) (io.ReadCloser, error)

	// Create creates (or truncates) an output file for writing.
	Create(path m.Path) (io.WriteCloser, error)

	// FileInfo returns metadata for a path so the workflow can check
	// existence and distinguish files from directories.
	FileInfo(path m.Path) (os.FileInfo, error)

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)
}

// LocalSourceFSAdapter is the concrete SourceFSAdapter backed by the local
// filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter ready to be
// wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Open opens the file at path for reading.
func (a *LocalSourceFSAdapter) Open(path m.Path) (io.ReadCloser, error) {
	return os.Open(string(path))
}

// Create creates or truncates the file at path for writing.
func (a *LocalSourceFSAdapter) Create(path m.Path) (io.WriteCloser, error) {
	return os.Create(string(path))
}

// FileInfo returns metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
