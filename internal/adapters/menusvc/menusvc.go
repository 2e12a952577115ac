// Package menusvc provides the real implementation of ports.MenuService.
package menusvc

import (
	"github.com/mcdonaldj/archmenu/internal/config"
	"github.com/mcdonaldj/archmenu/internal/menu"
	"github.com/mcdonaldj/archmenu/internal/ports"
	"github.com/mcdonaldj/archmenu/internal/session"
)

// Service implements ports.MenuService over a session factory. It keeps one
// open session at a time.
type Service struct {
	factory *session.Factory
	load    func() (*config.Config, error)
	current *session.Session
}

// Option is a functional option for configuring Service.
type Option func(*Service)

// WithConfigLoader makes Reload re-read the yaml config through load before
// reloading archiver settings.
func WithConfigLoader(load func() (*config.Config, error)) Option {
	return func(s *Service) {
		s.load = load
	}
}

// New creates a new menu service.
func New(factory *session.Factory, opts ...Option) *Service {
	s := &Service{factory: factory}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open starts a session for paths, releasing the previous one.
func (s *Service) Open(paths []string) (ports.MenuSelectionInfo, []ports.MenuEntryInfo, error) {
	if s.current != nil {
		s.current.Release()
		s.current = nil
	}

	sess := s.factory.NewSession()
	if err := sess.Initialize(paths); err != nil {
		return ports.MenuSelectionInfo{}, nil, err
	}
	c, err := sess.Classification()
	if err != nil {
		return ports.MenuSelectionInfo{}, nil, err
	}
	entries, err := sess.Entries()
	if err != nil {
		return ports.MenuSelectionInfo{}, nil, err
	}
	s.current = sess

	info := ports.MenuSelectionInfo{
		Kind:         c.Kind.String(),
		Items:        len(c.SelectedPaths),
		FileCount:    c.FileCount,
		FolderCount:  c.FolderCount,
		Truncated:    c.Truncated,
		ParentFolder: c.ParentFolder,
	}

	result := make([]ports.MenuEntryInfo, 0, len(entries))
	for _, e := range entries {
		cmd, _ := menu.Lookup(e.ID)
		result = append(result, ports.MenuEntryInfo{
			ID:    int(e.ID),
			Label: e.Label,
			Verb:  e.Verb,
			Help:  cmd.Help,
		})
	}
	return info, result, nil
}

// Invoke runs verb on the open session.
func (s *Service) Invoke(verb string) ports.MenuInvokeResult {
	result := ports.MenuInvokeResult{Verb: verb}
	if s.current == nil {
		result.Error = session.ErrNotInitialized
		return result
	}

	res, err := s.current.InvokeVerb(verb)
	for _, l := range res.Launches {
		result.Launches = append(result.Launches, ports.MenuLaunchInfo{
			CommandLine: l.CommandLine.String(),
			PID:         l.PID,
			Error:       l.Err,
		})
	}
	result.Error = err
	return result
}

// Commands lists every registered command.
func (s *Service) Commands() []ports.MenuEntryInfo {
	var result []ports.MenuEntryInfo
	for _, c := range menu.Commands() {
		result = append(result, ports.MenuEntryInfo{
			ID:   int(c.ID),
			Verb: c.Verb,
			Help: c.Help,
		})
	}
	return result
}

// Config reports the settings new sessions use.
func (s *Service) Config() ports.MenuConfigInfo {
	path, pathSource := s.factory.ArchiverPath()
	exts, extsSource := s.factory.Extensions()
	cfg := s.factory.Config()
	return ports.MenuConfigInfo{
		ArchiverPath:     path,
		ArchiverSource:   pathSource,
		Extensions:       exts.List(),
		ExtensionsSource: extsSource,
		ListFileDir:      cfg.ListDir(),
		MaxSelectedItems: cfg.MaxSelectedItems,
	}
}

// Reload re-reads the config file, when a loader is set, and then the
// archiver settings.
func (s *Service) Reload() error {
	if s.load == nil {
		s.factory.Reload()
		return nil
	}
	cfg, err := s.load()
	if err != nil {
		return err
	}
	s.factory.UseConfig(cfg)
	return nil
}

// Wait blocks until list-file cleanup of every session has finished.
func (s *Service) Wait() {
	s.factory.Wait()
}

// Compile-time check that Service implements ports.MenuService.
var _ ports.MenuService = (*Service)(nil)
