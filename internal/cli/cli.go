// Package cli provides the command-line interface with injectable io.Writer for testing.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/mcdonaldj/archmenu/internal/adapters/menusvc"
	"github.com/mcdonaldj/archmenu/internal/config"
	"github.com/mcdonaldj/archmenu/internal/logging"
	"github.com/mcdonaldj/archmenu/internal/ports"
	"github.com/mcdonaldj/archmenu/internal/shellpath"
)

// ConfigService provides configuration operations for the CLI.
type ConfigService interface {
	Load() (*config.Config, error)
	Save(cfg *config.Config) error
	ConfigPath() string
	DefaultConfig() *config.Config
}

// CLI represents the command-line interface with injectable dependencies.
type CLI struct {
	Out     io.Writer // Standard output
	Err     io.Writer // Standard error
	Version string    // Application version
	Args    []string  // Command arguments (like os.Args)

	// Exit function for testability (defaults to os.Exit)
	Exit func(code int)

	// Injectable dependencies (nil means use defaults)
	ConfigSvc ConfigService
	MenuSvc   ports.MenuService

	// logFile is closed when Run returns
	logFile io.Closer

	// Color functions (can be disabled for testing)
	green  func(a ...interface{}) string
	yellow func(a ...interface{}) string
	cyan   func(a ...interface{}) string
	gray   func(a ...interface{}) string
	red    func(a ...interface{}) string
}

// New creates a new CLI with default settings.
func New(version string) *CLI {
	return &CLI{
		Out:     os.Stdout,
		Err:     os.Stderr,
		Version: version,
		Args:    os.Args,
		Exit:    os.Exit,
		green:   color.New(color.FgGreen, color.Bold).SprintFunc(),
		yellow:  color.New(color.FgYellow).SprintFunc(),
		cyan:    color.New(color.FgCyan).SprintFunc(),
		gray:    color.New(color.FgHiBlack).SprintFunc(),
		red:     color.New(color.FgRed).SprintFunc(),
	}
}

// NewForTesting creates a CLI configured for testing (no colors, captured output).
func NewForTesting(out, errOut io.Writer, args []string) *CLI {
	noColor := func(a ...interface{}) string { return fmt.Sprint(a...) }
	return &CLI{
		Out:     out,
		Err:     errOut,
		Version: "test",
		Args:    args,
		Exit:    func(int) {},
		green:   noColor,
		yellow:  noColor,
		cyan:    noColor,
		gray:    noColor,
		red:     noColor,
	}
}

// defaultConfigService wraps the config package functions.
type defaultConfigService struct{}

func (d *defaultConfigService) Load() (*config.Config, error) { return config.Load() }
func (d *defaultConfigService) Save(cfg *config.Config) error { return cfg.Save() }
func (d *defaultConfigService) ConfigPath() string            { return config.ConfigPath() }
func (d *defaultConfigService) DefaultConfig() *config.Config { return config.DefaultConfig() }

func (c *CLI) configSvc() ConfigService {
	if c.ConfigSvc != nil {
		return c.ConfigSvc
	}
	return &defaultConfigService{}
}

// menuSvc returns the injected service or builds one from the loaded config.
// On failure it reports the error and returns nil.
func (c *CLI) menuSvc() ports.MenuService {
	if c.MenuSvc != nil {
		return c.MenuSvc
	}
	cfg, err := c.configSvc().Load()
	if err != nil {
		fmt.Fprintf(c.Err, "Error loading config: %v\n", err)
		c.Exit(1)
		return nil
	}
	c.logFile = logging.SetupLogger(cfg.LogLevel, nil)
	c.MenuSvc = menusvc.NewDefault(cfg)
	return c.MenuSvc
}

// Run executes the CLI with the configured arguments.
func (c *CLI) Run() {
	if len(c.Args) < 2 {
		fmt.Fprintln(c.Out, "No command specified. Use 'archmenu help' for usage.")
		return
	}
	defer c.closeLog()

	switch c.Args[1] {
	case "classify":
		c.Classify()
	case "menu":
		c.ShowMenu()
	case "invoke":
		c.Invoke()
	case "verbs":
		c.ListVerbs()
	case "extensions":
		c.ShowExtensions()
	case "config":
		c.ShowConfig()
	case "init":
		c.InitConfig()
	case "version", "-v", "--version":
		fmt.Fprintf(c.Out, "archmenu v%s\n", c.Version)
	case "help", "-h", "--help":
		c.PrintUsage()
	default:
		fmt.Fprintf(c.Err, "Unknown command: %s\n", c.Args[1])
		c.PrintUsage()
		c.Exit(1)
	}
}

func (c *CLI) closeLog() {
	if c.logFile != nil {
		c.logFile.Close()
		c.logFile = nil
	}
}

// PrintUsage prints the help message.
func (c *CLI) PrintUsage() {
	fmt.Fprintln(c.Out, `archmenu - Archive context menu for file managers

Usage:
  archmenu                                 Launch interactive menu for the current directory
  archmenu ui [paths...]                   Launch interactive menu for paths
  archmenu classify <paths...>             Show how a selection is classified
  archmenu menu <paths...>                 Show the menu entries offered for a selection
  archmenu invoke <verb> <paths...>        Run a menu command on a selection
  archmenu verbs                           List every command verb
  archmenu extensions [--reload]           Show archive extensions (re-reading the registry)
  archmenu config                          Show effective archiver settings
  archmenu init                            Create default config file
  archmenu version, -v                     Show version
  archmenu help, -h                        Show this help

Config: `+config.ConfigPath())
}

// InitConfig creates the default config file.
func (c *CLI) InitConfig() {
	svc := c.configSvc()
	if err := svc.Save(svc.DefaultConfig()); err != nil {
		fmt.Fprintf(c.Err, "Error saving config: %v\n", err)
		c.Exit(1)
		return
	}
	fmt.Fprintf(c.Out, "Created config at %s\n", svc.ConfigPath())
}

// selectionArgs returns the paths in c.Args from index start, made absolute.
func (c *CLI) selectionArgs(start int) []string {
	var paths []string
	for _, p := range c.Args[start:] {
		if !shellpath.IsAbs(p) {
			if abs, err := filepath.Abs(p); err == nil {
				p = abs
			}
		}
		paths = append(paths, p)
	}
	return paths
}

// open starts a session for the selection given after the command name.
func (c *CLI) open(usage string, start int) (ports.MenuService, ports.MenuSelectionInfo, []ports.MenuEntryInfo, bool) {
	if len(c.Args) <= start {
		fmt.Fprintln(c.Out, "Usage: "+usage)
		c.Exit(1)
		return nil, ports.MenuSelectionInfo{}, nil, false
	}
	svc := c.menuSvc()
	if svc == nil {
		return nil, ports.MenuSelectionInfo{}, nil, false
	}
	info, entries, err := svc.Open(c.selectionArgs(start))
	if err != nil {
		fmt.Fprintf(c.Err, "Error: %v\n", err)
		c.Exit(1)
		return nil, ports.MenuSelectionInfo{}, nil, false
	}
	return svc, info, entries, true
}

// Classify prints the classification of a selection.
func (c *CLI) Classify() {
	_, info, _, ok := c.open("archmenu classify <paths...>", 2)
	if !ok {
		return
	}

	fmt.Fprintf(c.Out, "Kind:     %s\n", c.cyan(info.Kind))
	fmt.Fprintf(c.Out, "Items:    %d (%d files, %d folders)\n", info.Items, info.FileCount, info.FolderCount)
	fmt.Fprintf(c.Out, "Parent:   %s\n", info.ParentFolder)
	if info.Truncated {
		fmt.Fprintf(c.Out, "%s selection truncated to %d items\n", c.yellow("!"), info.Items)
	}
}

// ShowMenu prints the entries offered for a selection.
func (c *CLI) ShowMenu() {
	_, info, entries, ok := c.open("archmenu menu <paths...>", 2)
	if !ok {
		return
	}

	if len(entries) == 0 {
		fmt.Fprintf(c.Out, "%s No archive commands for this selection (%s)\n", c.gray("-"), info.Kind)
		return
	}
	for _, e := range entries {
		fmt.Fprintf(c.Out, "  %-48s %s\n", e.Label, c.gray(e.Verb))
	}
}

// Invoke runs a command verb on a selection and waits for list-file cleanup.
func (c *CLI) Invoke() {
	if len(c.Args) < 3 {
		fmt.Fprintln(c.Out, "Usage: archmenu invoke <verb> <paths...>")
		c.Exit(1)
		return
	}
	verb := c.Args[2]
	svc, _, _, ok := c.open("archmenu invoke <verb> <paths...>", 3)
	if !ok {
		return
	}

	result := svc.Invoke(verb)
	for _, l := range result.Launches {
		if l.Error != nil {
			fmt.Fprintf(c.Out, "%s %s\n    %v\n", c.red("✗"), l.CommandLine, l.Error)
			continue
		}
		fmt.Fprintf(c.Out, "%s %s %s\n", c.green("✓"), l.CommandLine, c.gray(fmt.Sprintf("(pid %d)", l.PID)))
	}
	svc.Wait()

	if result.Error != nil {
		fmt.Fprintf(c.Err, "Error: %v\n", result.Error)
		c.Exit(1)
	}
}

// ListVerbs prints every registered command.
func (c *CLI) ListVerbs() {
	svc := c.menuSvc()
	if svc == nil {
		return
	}
	for _, cmd := range svc.Commands() {
		fmt.Fprintf(c.Out, "  %d  %-20s %s\n", cmd.ID, c.cyan(cmd.Verb), cmd.Help)
	}
}

// ShowExtensions prints the archive extension set, optionally reloading it.
func (c *CLI) ShowExtensions() {
	svc := c.menuSvc()
	if svc == nil {
		return
	}
	if len(c.Args) > 2 && c.Args[2] == "--reload" {
		if err := svc.Reload(); err != nil {
			fmt.Fprintf(c.Err, "Error reloading: %v\n", err)
			c.Exit(1)
			return
		}
		fmt.Fprintf(c.Out, "%s Reloaded archiver settings\n", c.green("✓"))
	}

	info := svc.Config()
	fmt.Fprintf(c.Out, "Extensions (%d, from %s):\n", len(info.Extensions), info.ExtensionsSource)
	if len(info.Extensions) == 0 {
		fmt.Fprintf(c.Out, "  %s\n", c.gray("none"))
		return
	}
	fmt.Fprintf(c.Out, "  %s\n", strings.Join(info.Extensions, " "))
}

// ShowConfig prints the effective archiver settings.
func (c *CLI) ShowConfig() {
	svc := c.menuSvc()
	if svc == nil {
		return
	}
	info := svc.Config()

	fmt.Fprintln(c.Out, "archmenu config:")
	fmt.Fprintf(c.Out, "  Archiver:   %s %s\n", info.ArchiverPath, c.gray("("+info.ArchiverSource+")"))
	fmt.Fprintf(c.Out, "  Extensions: %d %s\n", len(info.Extensions), c.gray("("+info.ExtensionsSource+")"))
	fmt.Fprintf(c.Out, "  Max items:  %d\n", info.MaxSelectedItems)
	fmt.Fprintf(c.Out, "  List files: %s\n", info.ListFileDir)
	fmt.Fprintf(c.Out, "  Config:     %s\n", c.configSvc().ConfigPath())
	fmt.Fprintf(c.Out, "  Log:        %s\n", logging.LogFilePath())
}
