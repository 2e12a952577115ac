package config

import (
	"errors"

	"github.com/mcdonaldj/archmenu/internal/ports"
)

// Source serves archiver settings from a loaded Config.
type Source struct {
	cfg *Config
}

// NewSource wraps cfg as a ports.ConfigSource.
func NewSource(cfg *Config) *Source {
	return &Source{cfg: cfg}
}

// ArchiverPath returns the configured archiver executable.
func (s *Source) ArchiverPath() (string, error) {
	if s.cfg.ArchiverPath == "" {
		return "", errors.New("archiver_path not set")
	}
	return s.cfg.ArchiverPath, nil
}

// ArchiveExtensions returns the configured archive extensions.
func (s *Source) ArchiveExtensions() ([]string, error) {
	return s.cfg.Extensions, nil
}

// Compile-time check that Source implements ports.ConfigSource.
var _ ports.ConfigSource = (*Source)(nil)
