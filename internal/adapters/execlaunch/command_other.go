//go:build !windows

package execlaunch

import (
	"os/exec"

	"github.com/mcdonaldj/archmenu/internal/ports"
)

func command(cl ports.CommandLine) *exec.Cmd {
	return exec.Command(cl.Program, cl.Argv()...)
}
