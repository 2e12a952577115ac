package ports

// ConfigSource supplies the archiver location and the extensions it handles.
// On Windows the winreg adapter reads them from the archiver's registry keys;
// the yaml configuration provides the same values everywhere.
type ConfigSource interface {
	// ArchiverPath returns the archiver executable path.
	ArchiverPath() (string, error)

	// ArchiveExtensions returns the extensions treated as archives.
	ArchiveExtensions() ([]string, error)
}
