package session

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/mcdonaldj/archmenu/internal/config"
	"github.com/mcdonaldj/archmenu/internal/extset"
	"github.com/mcdonaldj/archmenu/internal/listfile"
	"github.com/mcdonaldj/archmenu/internal/menu"
	"github.com/mcdonaldj/archmenu/internal/ports"
	"github.com/mcdonaldj/archmenu/internal/selection"
)

// Where a resolved setting came from.
const (
	SourceRegistry = "registry"
	SourceConfig   = "config"
)

// Factory creates sessions that share the process-wide archiver settings.
// Reload swaps in new settings; sessions already created keep theirs.
type Factory struct {
	fs       ports.FileSystem
	launcher ports.Launcher
	registry ports.ConfigSource
	logger   zerolog.Logger
	onExit   func(menu.LaunchResult, error)

	mu           sync.RWMutex
	cfg          *config.Config
	archiverPath string
	exts         extset.Set
	pathSource   string
	extsSource   string

	pending sync.WaitGroup
}

// FactoryOption is a functional option for configuring a Factory.
type FactoryOption func(*Factory)

// WithRegistry reads settings from src first, falling back to the config
// for anything it cannot supply.
func WithRegistry(src ports.ConfigSource) FactoryOption {
	return func(f *Factory) {
		f.registry = src
	}
}

// WithLogger sets the logger handed to every session.
func WithLogger(l zerolog.Logger) FactoryOption {
	return func(f *Factory) {
		f.logger = l
	}
}

// WithCompletion registers fn to receive every launched process's exit.
func WithCompletion(fn func(menu.LaunchResult, error)) FactoryOption {
	return func(f *Factory) {
		f.onExit = fn
	}
}

// NewFactory creates a Factory and loads its settings.
func NewFactory(cfg *config.Config, fs ports.FileSystem, launcher ports.Launcher, opts ...FactoryOption) *Factory {
	f := &Factory{
		cfg:      cfg,
		fs:       fs,
		launcher: launcher,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.Reload()
	return f
}

// Reload re-reads the archiver path and extension set.
func (f *Factory) Reload() {
	f.mu.RLock()
	fallback := config.NewSource(f.cfg)
	f.mu.RUnlock()

	path, pathSource := f.resolvePath(fallback)
	rawExts, extsSource := f.resolveExtensions(fallback)
	exts := extset.New(rawExts...)

	f.mu.Lock()
	f.archiverPath = path
	f.exts = exts
	f.pathSource = pathSource
	f.extsSource = extsSource
	f.mu.Unlock()

	f.logger.Debug().
		Str("archiver", path).
		Str("archiver_source", pathSource).
		Int("extensions", exts.Len()).
		Str("extensions_source", extsSource).
		Msg("Archiver settings loaded")
}

func (f *Factory) resolvePath(fallback ports.ConfigSource) (string, string) {
	if f.registry != nil {
		path, err := f.registry.ArchiverPath()
		if err == nil && path != "" {
			return path, SourceRegistry
		}
		f.logger.Debug().Err(err).Msg("Archiver path not in registry, using config")
	}
	path, err := fallback.ArchiverPath()
	if err != nil {
		return config.DefaultArchiverPath, SourceConfig
	}
	return path, SourceConfig
}

func (f *Factory) resolveExtensions(fallback ports.ConfigSource) ([]string, string) {
	if f.registry != nil {
		exts, err := f.registry.ArchiveExtensions()
		if err == nil && len(exts) > 0 {
			return exts, SourceRegistry
		}
		f.logger.Debug().Err(err).Msg("No archive extensions in registry, using config")
	}
	exts, _ := fallback.ArchiveExtensions()
	return exts, SourceConfig
}

// UseConfig replaces the yaml settings and reloads.
func (f *Factory) UseConfig(cfg *config.Config) {
	f.mu.Lock()
	f.cfg = cfg
	f.mu.Unlock()
	f.Reload()
}

// Config returns the yaml settings in use.
func (f *Factory) Config() *config.Config {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.cfg
}

// ArchiverPath returns the current archiver executable and where it came from.
func (f *Factory) ArchiverPath() (string, string) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.archiverPath, f.pathSource
}

// Extensions returns the current extension set and where it came from.
func (f *Factory) Extensions() (extset.Set, string) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.exts, f.extsSource
}

// NewSession creates an uninitialized session bound to the current settings.
func (f *Factory) NewSession() *Session {
	f.mu.RLock()
	cfg, path, exts := f.cfg, f.archiverPath, f.exts
	f.mu.RUnlock()

	classifier := selection.New(f.fs, exts,
		selection.WithMaxItems(cfg.MaxSelectedItems),
		selection.WithLogger(f.logger),
	)
	opts := []menu.InvokerOption{
		menu.WithLogger(f.logger),
		menu.WithTTL(cfg.ListFileTTL),
		menu.WithWaitGroup(&f.pending),
	}
	if f.onExit != nil {
		opts = append(opts, menu.WithCompletion(f.onExit))
	}
	invoker := menu.NewInvoker(path, f.fs, f.launcher, listfile.NewWriter(f.fs, cfg.ListDir()), opts...)

	return newSession(classifier, invoker, cfg.MenuAnchor, f.logger)
}

// Wait blocks until background work of every session has finished.
func (f *Factory) Wait() {
	f.pending.Wait()
}
