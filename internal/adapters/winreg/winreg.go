// Package winreg reads the archiver's settings from the Windows registry.
package winreg

import (
	"errors"
	"strings"

	"github.com/mcdonaldj/archmenu/internal/extset"
	"github.com/mcdonaldj/archmenu/internal/ports"
)

// Registry locations written by the WinRAR installer.
const (
	DefaultAppPathKey = `SOFTWARE\Microsoft\Windows\CurrentVersion\App Paths\WinRAR.exe`
	DefaultSetupKey   = `Software\WinRAR\Setup`
)

// ErrUnsupported is returned on platforms without a registry.
var ErrUnsupported = errors.New("registry not available on this platform")

// Source implements ports.ConfigSource over the registry.
type Source struct {
	appPathKey string
	setupKey   string
	reader     keyReader
}

// keyReader is the slice of the registry the Source needs.
type keyReader interface {
	// defaultValue returns the unnamed string value of an HKLM key.
	defaultValue(key string) (string, error)
	// subKeys lists the subkey names of an HKCU key.
	subKeys(key string) ([]string, error)
	// dword reads a DWORD value of an HKCU key.
	dword(key, name string) (uint64, error)
}

// Option is a functional option for configuring Source.
type Option func(*Source)

// WithKeys overrides the registry keys that are read.
func WithKeys(appPathKey, setupKey string) Option {
	return func(s *Source) {
		s.appPathKey = appPathKey
		s.setupKey = setupKey
	}
}

// New creates a registry-backed Source.
func New(opts ...Option) *Source {
	s := &Source{
		appPathKey: DefaultAppPathKey,
		setupKey:   DefaultSetupKey,
		reader:     systemRegistry{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ArchiverPath returns the default value of the archiver's App Paths key.
func (s *Source) ArchiverPath() (string, error) {
	path, err := s.reader.defaultValue(s.appPathKey)
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", errors.New("archiver App Paths entry is empty")
	}
	return path, nil
}

// ArchiveExtensions returns the extensions the archiver is associated with:
// subkeys of its Setup key named like ".rar" whose Set value is 1. At most
// extset.MaxExtensions are returned and longer names are skipped.
func (s *Source) ArchiveExtensions() ([]string, error) {
	names, err := s.reader.subKeys(s.setupKey)
	if err != nil {
		return nil, err
	}

	var exts []string
	for _, name := range names {
		if len(exts) >= extset.MaxExtensions {
			break
		}
		if !strings.HasPrefix(name, ".") || len(name) > extset.MaxExtensionLength {
			continue
		}
		set, err := s.reader.dword(s.setupKey+`\`+name, "Set")
		if err != nil || set != 1 {
			continue
		}
		exts = append(exts, name)
	}
	return exts, nil
}

// Compile-time check that Source implements ports.ConfigSource.
var _ ports.ConfigSource = (*Source)(nil)
