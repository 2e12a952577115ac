package ports

import "strings"

// Arg is one argument of an archiver command line.
type Arg struct {
	Value  string
	Quoted bool   // wrap Value in double quotes
	Prefix string // written before the opening quote, e.g. "@" for list files
}

// CommandLine is a program plus arguments for the external archiver.
type CommandLine struct {
	Program string
	Args    []Arg
}

// String renders the Windows command line: the program is always quoted and
// quoted arguments are emitted verbatim between quotes with no escaping, the
// way the archiver parses them.
func (c CommandLine) String() string {
	var b strings.Builder
	b.WriteString(`"`)
	b.WriteString(c.Program)
	b.WriteString(`"`)
	for _, a := range c.Args {
		b.WriteString(" ")
		b.WriteString(a.Prefix)
		if a.Quoted {
			b.WriteString(`"`)
			b.WriteString(a.Value)
			b.WriteString(`"`)
		} else {
			b.WriteString(a.Value)
		}
	}
	return b.String()
}

// Argv returns the arguments as plain strings, prefixes included and quotes
// dropped, for platforms that pass an argument vector instead of a raw line.
func (c CommandLine) Argv() []string {
	out := make([]string, 0, len(c.Args))
	for _, a := range c.Args {
		out = append(out, a.Prefix+a.Value)
	}
	return out
}

// Process is a launched archiver process.
type Process interface {
	// PID returns the operating system process id.
	PID() int

	// Wait blocks until the process exits.
	Wait() error
}

// Launcher starts the external archiver without waiting for it.
// Production code uses the execlaunch adapter; tests use MockLauncher.
type Launcher interface {
	// Launch starts a detached process for cmd. The error reports only
	// whether the process could be created.
	Launch(cmd CommandLine) (Process, error)
}
