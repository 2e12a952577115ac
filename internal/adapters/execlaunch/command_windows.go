//go:build windows

package execlaunch

import (
	"os/exec"
	"syscall"

	"github.com/mcdonaldj/archmenu/internal/ports"
)

// command passes the rendered line through unchanged: the archiver parses
// its own quoting, which differs from the escaping exec.Command applies.
func command(cl ports.CommandLine) *exec.Cmd {
	cmd := exec.Command(cl.Program)
	cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: cl.String()}
	return cmd
}
