package listfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdonaldj/archmenu/internal/adapters/aferofs"
	"github.com/mcdonaldj/archmenu/internal/mocks"
)

func TestEncodeFormat(t *testing.T) {
	data, err := Encode([]string{`C:\d\a.txt`, "é"})
	require.NoError(t, err)

	// BOM, then UTF-16LE code units with CRLF after each path.
	require.True(t, len(data) > 2)
	assert.Equal(t, []byte{0xFF, 0xFE}, data[:2])
	assert.Equal(t, []byte{'C', 0, ':', 0, '\\', 0}, data[2:8])
	assert.Equal(t, []byte{0xE9, 0x00, '\r', 0, '\n', 0}, data[len(data)-6:])
}

func TestEncodeRejectsLineBreaks(t *testing.T) {
	_, err := Encode([]string{"C:\\bad\nname"})
	assert.Error(t, err)
}

func TestDecodeRoundTrip(t *testing.T) {
	paths := []string{`C:\d\F1`, `C:\d\F2`, `C:\d\spaced name`, `C:\d\日本`}

	data, err := Encode(paths)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, paths, decoded)
}

func TestWriterWrite(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	w := NewWriter(fs, `C:\Temp`)

	name, err := w.Write([]string{`C:\d\a.txt`, `C:\d\b.txt`})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(name, `C:\Temp\archmenu-`), name)
	assert.True(t, strings.HasSuffix(name, ".lst"), name)

	data, err := fs.ReadFile(name)
	require.NoError(t, err)
	lines, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, []string{`C:\d\a.txt`, `C:\d\b.txt`}, lines)
}

func TestWriterWriteUniqueNames(t *testing.T) {
	w := NewWriter(mocks.NewMockFileSystem(), `C:\Temp`)

	a, err := w.Write([]string{"x"})
	require.NoError(t, err)
	b, err := w.Write([]string{"x"})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestWriterWriteEmpty(t *testing.T) {
	w := NewWriter(mocks.NewMockFileSystem(), `C:\Temp`)

	_, err := w.Write(nil)
	assert.Error(t, err)
}

func TestWriterWriteFailure(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	fs.SetError(`C:\Temp`, os.ErrPermission)
	w := NewWriter(fs, `C:\Temp`)

	_, err := w.Write([]string{"x"})
	assert.True(t, errors.Is(err, os.ErrPermission), "err = %v", err)
}

func TestWriterRemove(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	w := NewWriter(fs, `C:\Temp`)

	name, err := w.Write([]string{"x"})
	require.NoError(t, err)

	require.NoError(t, w.Remove(name))
	assert.False(t, fs.HasFile(name))

	// Already gone is fine.
	assert.NoError(t, w.Remove(name))

	fs.SetError(`C:\Temp\locked.lst`, os.ErrPermission)
	assert.Error(t, w.Remove(`C:\Temp\locked.lst`))
}

func TestWriterOnRealFilesystem(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(aferofs.New(), dir)

	name, err := w.Write([]string{"/srv/a", "/srv/b"})
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(name))

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	lines, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"/srv/a", "/srv/b"}, lines)

	require.NoError(t, w.Remove(name))
	_, err = os.Stat(name)
	assert.True(t, os.IsNotExist(err))
}
