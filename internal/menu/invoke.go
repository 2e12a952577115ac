package menu

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mcdonaldj/archmenu/internal/listfile"
	"github.com/mcdonaldj/archmenu/internal/ports"
	"github.com/mcdonaldj/archmenu/internal/selection"
	"github.com/mcdonaldj/archmenu/internal/shellpath"
)

var (
	// ErrInvalidArgument reports a command id or verb the caller should not
	// have passed. Nothing has been done when it is returned.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidCommand reports a command not offered for the selection.
	ErrInvalidCommand = fmt.Errorf("%w: command not offered for selection", ErrInvalidArgument)

	// ErrListFile reports that the list file could not be written. Nothing
	// was launched.
	ErrListFile = errors.New("list file could not be written")

	// ErrLaunch reports that at least one archiver process failed to start.
	ErrLaunch = errors.New("archiver launch failed")
)

// DefaultListFileTTL bounds how long a list file outlives its launch.
const DefaultListFileTTL = 10 * time.Minute

// LaunchResult is the outcome of one launch attempt.
type LaunchResult struct {
	CommandLine ports.CommandLine
	PID         int
	Err         error
}

// Result describes everything one invocation attempted.
type Result struct {
	Command  CommandID
	Launches []LaunchResult
	ListFile string
}

// Failed returns the launches that did not start.
func (r Result) Failed() []LaunchResult {
	var out []LaunchResult
	for _, l := range r.Launches {
		if l.Err != nil {
			out = append(out, l)
		}
	}
	return out
}

// Invoker builds archiver command lines and launches them.
type Invoker struct {
	archiverPath string
	fs           ports.FileSystem
	launcher     ports.Launcher
	lists        *listfile.Writer
	logger       zerolog.Logger
	ttl          time.Duration
	onExit       func(LaunchResult, error)
	pending      *sync.WaitGroup
}

// InvokerOption is a functional option for configuring an Invoker.
type InvokerOption func(*Invoker)

// WithLogger sets the logger for invocation diagnostics.
func WithLogger(l zerolog.Logger) InvokerOption {
	return func(inv *Invoker) {
		inv.logger = l
	}
}

// WithTTL sets the longest a list file is kept after its launch.
// Values below 1 are ignored.
func WithTTL(d time.Duration) InvokerOption {
	return func(inv *Invoker) {
		if d > 0 {
			inv.ttl = d
		}
	}
}

// WithCompletion registers fn to receive each launched process's exit error.
func WithCompletion(fn func(LaunchResult, error)) InvokerOption {
	return func(inv *Invoker) {
		inv.onExit = fn
	}
}

// WithWaitGroup tracks background cleanup on wg so several invokers can be
// waited on together.
func WithWaitGroup(wg *sync.WaitGroup) InvokerOption {
	return func(inv *Invoker) {
		if wg != nil {
			inv.pending = wg
		}
	}
}

// NewInvoker creates an Invoker launching archiverPath through launcher.
func NewInvoker(archiverPath string, fs ports.FileSystem, launcher ports.Launcher, lists *listfile.Writer, opts ...InvokerOption) *Invoker {
	inv := &Invoker{
		archiverPath: archiverPath,
		fs:           fs,
		launcher:     launcher,
		lists:        lists,
		logger:       zerolog.Nop(),
		ttl:          DefaultListFileTTL,
		pending:      &sync.WaitGroup{},
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// ArchiverPath returns the archiver executable commands are built for.
func (inv *Invoker) ArchiverPath() string {
	return inv.archiverPath
}

// Wait blocks until every pending list-file removal and completion callback
// has finished.
func (inv *Invoker) Wait() {
	inv.pending.Wait()
}

// Invoke runs command id for classification c. Processes are started
// without waiting for them.
func (inv *Invoker) Invoke(id CommandID, c selection.Classification) (Result, error) {
	result := Result{Command: id}
	if !Offers(c, id) {
		return result, fmt.Errorf("%w: %s for %s selection", ErrInvalidCommand, id, c.Kind)
	}

	switch id {
	case CmdExtract:
		if err := inv.fs.MkdirAll(c.ExtractDestination, 0755); err != nil {
			inv.logger.Warn().Err(err).Str("dir", c.ExtractDestination).Msg("Could not create extract destination")
		}
		inv.launch(&result, ExtractCommand(inv.archiverPath, c.ArchivePath, c.ExtractDestination), "")

	case CmdZipToSingle, CmdZipAllFolders:
		paths := c.SelectedPaths
		if id == CmdZipAllFolders {
			paths = c.FolderPaths()
		}
		list, err := inv.lists.Write(paths)
		if err != nil {
			return result, fmt.Errorf("%w: %w", ErrListFile, err)
		}
		result.ListFile = list
		archive := shellpath.Join(c.ParentFolder, c.ParentName+".zip")
		inv.launch(&result, ZipListCommand(inv.archiverPath, archive, list), list)

	case CmdZipEachFolder:
		for _, folder := range c.Folders() {
			inv.launch(&result, ZipFolderCommand(inv.archiverPath, folder.Archive, folder.Path), "")
		}
	}

	if failed := result.Failed(); len(failed) > 0 {
		return result, fmt.Errorf("%w: %d of %d processes did not start: %w",
			ErrLaunch, len(failed), len(result.Launches), failed[0].Err)
	}
	return result, nil
}

// launch starts cmd and records the attempt. A non-empty list is removed
// once the process exits or the TTL passes.
func (inv *Invoker) launch(result *Result, cmd ports.CommandLine, list string) {
	lr := LaunchResult{CommandLine: cmd}
	proc, err := inv.launcher.Launch(cmd)
	if err != nil {
		lr.Err = err
		result.Launches = append(result.Launches, lr)
		inv.logger.Error().Err(err).Str("cmd", cmd.String()).Msg("Archiver launch failed")
		if list != "" {
			inv.removeList(list)
		}
		return
	}
	lr.PID = proc.PID()
	result.Launches = append(result.Launches, lr)
	inv.logger.Info().Int("pid", lr.PID).Str("cmd", cmd.String()).Msg("Archiver launched")

	if list == "" && inv.onExit == nil {
		return
	}

	onExit := inv.onExit
	if onExit != nil {
		inv.pending.Add(1)
	}
	exited := make(chan struct{})
	go func() {
		err := proc.Wait()
		close(exited)
		if onExit != nil {
			onExit(lr, err)
			inv.pending.Done()
		}
	}()

	if list == "" {
		return
	}
	inv.pending.Add(1)
	go func() {
		defer inv.pending.Done()
		timer := time.NewTimer(inv.ttl)
		defer timer.Stop()
		select {
		case <-exited:
		case <-timer.C:
			inv.logger.Debug().Str("list", list).Msg("List file TTL expired before archiver exit")
		}
		inv.removeList(list)
	}()
}

func (inv *Invoker) removeList(list string) {
	if err := inv.lists.Remove(list); err != nil {
		inv.logger.Warn().Err(err).Str("list", list).Msg("Could not remove list file")
	}
}

// ExtractCommand builds: "<archiver>" x "<archive>" "<dest>\"
func ExtractCommand(archiver, archive, dest string) ports.CommandLine {
	return ports.CommandLine{
		Program: archiver,
		Args: []ports.Arg{
			{Value: "x"},
			{Value: archive, Quoted: true},
			{Value: dest + shellpath.Separator(dest), Quoted: true},
		},
	}
}

// ZipListCommand builds: "<archiver>" a -afzip -r -ep1 "<archive>" @"<list>"
func ZipListCommand(archiver, archive, list string) ports.CommandLine {
	return ports.CommandLine{
		Program: archiver,
		Args: append(zipSwitches(),
			ports.Arg{Value: archive, Quoted: true},
			ports.Arg{Value: list, Quoted: true, Prefix: "@"},
		),
	}
}

// ZipFolderCommand builds: "<archiver>" a -afzip -r -ep1 "<archive>" "<folder>\*"
func ZipFolderCommand(archiver, archive, folder string) ports.CommandLine {
	return ports.CommandLine{
		Program: archiver,
		Args: append(zipSwitches(),
			ports.Arg{Value: archive, Quoted: true},
			ports.Arg{Value: shellpath.Join(folder, "*"), Quoted: true},
		),
	}
}

func zipSwitches() []ports.Arg {
	return []ports.Arg{{Value: "a"}, {Value: "-afzip"}, {Value: "-r"}, {Value: "-ep1"}}
}
