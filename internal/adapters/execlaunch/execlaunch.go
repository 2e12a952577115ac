// Package execlaunch starts the archiver as a detached process using
// os/exec.
package execlaunch

import (
	"fmt"
	"os/exec"

	"github.com/mcdonaldj/archmenu/internal/ports"
)

// ExecLauncher implements ports.Launcher using exec.Cmd.
type ExecLauncher struct {
	// dir is the working directory of launched processes. Empty means the
	// caller's directory.
	dir string
}

// Option is a functional option for configuring ExecLauncher.
type Option func(*ExecLauncher)

// WithDir sets the working directory for launched processes.
func WithDir(dir string) Option {
	return func(l *ExecLauncher) {
		l.dir = dir
	}
}

// New creates a new ExecLauncher adapter.
func New(opts ...Option) *ExecLauncher {
	l := &ExecLauncher{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch starts cmd without waiting for it to finish.
func (l *ExecLauncher) Launch(cl ports.CommandLine) (ports.Process, error) {
	cmd := command(cl)
	cmd.Dir = l.dir
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", cl.Program, err)
	}
	return &process{cmd: cmd}, nil
}

// process wraps a started exec.Cmd.
type process struct {
	cmd *exec.Cmd
}

func (p *process) PID() int {
	return p.cmd.Process.Pid
}

func (p *process) Wait() error {
	return p.cmd.Wait()
}

// Compile-time check that ExecLauncher implements ports.Launcher.
var _ ports.Launcher = (*ExecLauncher)(nil)
