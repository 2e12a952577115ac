package ports

// MenuSelectionInfo summarizes a classified selection for display.
type MenuSelectionInfo struct {
	Kind         string
	Items        int
	FileCount    int
	FolderCount  int
	Truncated    bool
	ParentFolder string
}

// MenuEntryInfo describes one offered (or known) command.
type MenuEntryInfo struct {
	ID    int
	Label string
	Verb  string
	Help  string
}

// MenuLaunchInfo is the outcome of one archiver launch.
type MenuLaunchInfo struct {
	CommandLine string
	PID         int
	Error       error
}

// MenuInvokeResult contains the result of invoking a command.
type MenuInvokeResult struct {
	Verb     string
	Launches []MenuLaunchInfo
	Error    error
}

// MenuConfigInfo reports the effective archiver configuration.
type MenuConfigInfo struct {
	ArchiverPath     string
	ArchiverSource   string
	Extensions       []string
	ExtensionsSource string
	ListFileDir      string
	MaxSelectedItems int
}

// MenuService provides the operations needed by the CLI and TUI hosts.
// This abstraction allows both to be tested without launching processes.
type MenuService interface {
	// Open starts a new session for paths and returns its classification
	// and offered entries. Any previous session is released.
	Open(paths []string) (MenuSelectionInfo, []MenuEntryInfo, error)

	// Invoke runs the command with the given verb on the open session.
	Invoke(verb string) MenuInvokeResult

	// Commands lists every known command, offered or not.
	Commands() []MenuEntryInfo

	// Config returns the effective archiver configuration.
	Config() MenuConfigInfo

	// Reload re-reads the archiver path and extension set.
	Reload() error

	// Wait blocks until pending list-file cleanups finish.
	Wait()
}
