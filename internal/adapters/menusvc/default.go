package menusvc

import (
	"runtime"

	"github.com/mcdonaldj/archmenu/internal/adapters/aferofs"
	"github.com/mcdonaldj/archmenu/internal/adapters/execlaunch"
	"github.com/mcdonaldj/archmenu/internal/adapters/winreg"
	"github.com/mcdonaldj/archmenu/internal/config"
	"github.com/mcdonaldj/archmenu/internal/logging"
	"github.com/mcdonaldj/archmenu/internal/session"
)

// NewDefault creates a Service on the real filesystem and process launcher.
// On Windows with use_registry set, archiver settings come from the registry
// first.
func NewDefault(cfg *config.Config) *Service {
	opts := []session.FactoryOption{
		session.WithLogger(logging.GetLogger("session")),
	}
	if cfg.UseRegistry && runtime.GOOS == "windows" {
		opts = append(opts, session.WithRegistry(winreg.New()))
	}
	factory := session.NewFactory(cfg, aferofs.New(), execlaunch.New(), opts...)
	return New(factory, WithConfigLoader(config.Load))
}
