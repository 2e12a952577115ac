// Package listfile writes archiver list files: UTF-16LE text with a byte
// order mark, one path per CRLF-terminated line.
package listfile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/unicode"

	"github.com/mcdonaldj/archmenu/internal/ports"
	"github.com/mcdonaldj/archmenu/internal/shellpath"
)

const (
	filePrefix = "archmenu-"
	fileSuffix = ".lst"
)

var encoding = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)

// Encode renders paths as list file content.
func Encode(paths []string) ([]byte, error) {
	var b strings.Builder
	for _, p := range paths {
		if strings.ContainsAny(p, "\r\n") {
			return nil, fmt.Errorf("path contains a line break: %q", p)
		}
		b.WriteString(p)
		b.WriteString("\r\n")
	}
	return encoding.NewEncoder().Bytes([]byte(b.String()))
}

// Decode parses list file content back into paths.
func Decode(data []byte) ([]string, error) {
	text, err := encoding.NewDecoder().Bytes(data)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, line := range strings.Split(string(text), "\r\n") {
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths, nil
}

// Writer creates list files in one directory.
type Writer struct {
	fs  ports.FileSystem
	dir string
}

// NewWriter creates a Writer storing files in dir through fs.
func NewWriter(fs ports.FileSystem, dir string) *Writer {
	return &Writer{fs: fs, dir: dir}
}

// Dir returns the directory list files are written to.
func (w *Writer) Dir() string {
	return w.dir
}

// Write stores paths in a new uniquely named list file and returns its path.
func (w *Writer) Write(paths []string) (string, error) {
	if len(paths) == 0 {
		return "", errors.New("no paths for list file")
	}

	data, err := Encode(paths)
	if err != nil {
		return "", fmt.Errorf("encoding list file: %w", err)
	}

	name := shellpath.Join(w.dir, filePrefix+uuid.NewString()+fileSuffix)
	if err := w.fs.WriteFile(name, data, 0600); err != nil {
		return "", fmt.Errorf("writing list file: %w", err)
	}
	return name, nil
}

// Remove deletes a list file written by Write. A file that is already gone
// is not an error.
func (w *Writer) Remove(name string) error {
	if err := w.fs.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing list file: %w", err)
	}
	return nil
}
