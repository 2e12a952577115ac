package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// DefaultArchiverPath is where the archiver lives when nothing says otherwise.
const DefaultArchiverPath = `C:\Program Files\WinRAR\WinRAR.exe`

// DefaultMaxSelectedItems bounds how many selected items a session keeps.
const DefaultMaxSelectedItems = 256

type Config struct {
	ArchiverPath     string        `yaml:"archiver_path"`
	Extensions       []string      `yaml:"extensions"`
	UseRegistry      bool          `yaml:"use_registry"`
	MaxSelectedItems int           `yaml:"max_selected_items"`
	MenuAnchor       string        `yaml:"menu_anchor"`
	ListFileDir      string        `yaml:"list_file_dir"`
	ListFileTTL      time.Duration `yaml:"list_file_ttl"`
	LogLevel         string        `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		ArchiverPath: DefaultArchiverPath,
		Extensions: []string{
			".rar", ".zip", ".7z", ".cab", ".arj", ".lz", ".lzh",
			".tar", ".gz", ".tgz", ".bz2", ".tbz2", ".xz", ".txz",
			".zst", ".iso", ".uue", ".z", ".001",
		},
		UseRegistry:      true,
		MaxSelectedItems: DefaultMaxSelectedItems,
		MenuAnchor:       "WinRAR",
		ListFileTTL:      10 * time.Minute,
		LogLevel:         "warn",
	}
}

// ConfigPath returns the config file location under the XDG config home.
func ConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "archmenu", "config.yaml")
}

// Load reads the config from ConfigPath, falling back to defaults when the
// file does not exist.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config at path. Keys missing from the file keep their
// default values.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks values that would make sessions misbehave.
func (c *Config) Validate() error {
	if c.ArchiverPath == "" {
		return fmt.Errorf("archiver_path must not be empty")
	}
	if c.MaxSelectedItems <= 0 {
		return fmt.Errorf("max_selected_items must be positive, got %d", c.MaxSelectedItems)
	}
	if c.ListFileTTL <= 0 {
		return fmt.Errorf("list_file_ttl must be positive, got %s", c.ListFileTTL)
	}
	return nil
}

// ListDir returns the directory for archiver list files.
func (c *Config) ListDir() string {
	if c.ListFileDir == "" {
		return os.TempDir()
	}
	return ExpandPath(c.ListFileDir)
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path // Return unexpanded if home unavailable
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
