// Package aferofs provides a filesystem adapter backed by afero.
package aferofs

import (
	"io/fs"
	"os"

	"github.com/spf13/afero"

	"github.com/mcdonaldj/archmenu/internal/ports"
)

// AferoFileSystem implements ports.FileSystem on an afero.Fs.
type AferoFileSystem struct {
	fs afero.Fs
}

// New creates an adapter over the real operating system filesystem.
func New() *AferoFileSystem {
	return NewWithFs(afero.NewOsFs())
}

// NewWithFs creates an adapter over fs, e.g. afero.NewMemMapFs() in tests.
func NewWithFs(fs afero.Fs) *AferoFileSystem {
	return &AferoFileSystem{fs: fs}
}

// Stat returns file info for the named file.
func (a *AferoFileSystem) Stat(name string) (os.FileInfo, error) {
	return a.fs.Stat(name)
}

// MkdirAll creates a directory along with any necessary parents.
func (a *AferoFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

// WriteFile writes data to the named file, creating it if necessary.
func (a *AferoFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return afero.WriteFile(a.fs, name, data, perm)
}

// ReadFile reads the named file and returns the contents.
func (a *AferoFileSystem) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

// Remove removes the named file or empty directory.
func (a *AferoFileSystem) Remove(name string) error {
	return a.fs.Remove(name)
}

// Compile-time check that AferoFileSystem implements ports.FileSystem.
var _ ports.FileSystem = (*AferoFileSystem)(nil)
