package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mcdonaldj/archmenu/internal/adapters/menusvc"
	"github.com/mcdonaldj/archmenu/internal/config"
	"github.com/mcdonaldj/archmenu/internal/logging"
	"github.com/mcdonaldj/archmenu/internal/ports"
)

// View represents the current view state
type View int

const (
	MenuView View = iota
	ResultView
	CommandsView
)

// Model is the main TUI model
type Model struct {
	svc      ports.MenuService
	paths    []string
	view     View
	width    int
	height   int
	quitting bool

	// Menu view
	selection ports.MenuSelectionInfo
	entries   []ports.MenuEntryInfo
	cursor    int

	// Result view
	result *ports.MenuInvokeResult

	// Commands view
	commands []ports.MenuEntryInfo

	// Status message
	statusMsg string
	statusErr bool

	logFile io.Closer
}

// Key bindings
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	Back     key.Binding
	Reload   key.Binding
	Commands key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Commands: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "commands"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Messages
type invokeMsg struct {
	result ports.MenuInvokeResult
}

type reloadMsg struct {
	err error
}

// NewModel creates a model backed by the real menu service.
func NewModel(paths []string) (*Model, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logFile := logging.SetupLogger(cfg.LogLevel, nil)
	m, err := NewModelWithService(menusvc.NewDefault(cfg), paths)
	if err != nil {
		logFile.Close()
		return nil, err
	}
	m.logFile = logFile
	return m, nil
}

// NewModelWithService creates a model for paths using svc.
func NewModelWithService(svc ports.MenuService, paths []string) (*Model, error) {
	m := &Model{
		svc:   svc,
		paths: paths,
		view:  MenuView,
	}
	if err := m.open(); err != nil {
		return nil, err
	}
	return m, nil
}

// open classifies the selection and loads its entries.
func (m *Model) open() error {
	selection, entries, err := m.svc.Open(m.paths)
	if err != nil {
		return err
	}
	m.selection = selection
	m.entries = entries
	if m.cursor >= len(m.entries) {
		m.cursor = 0
	}
	return nil
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case invokeMsg:
		m.result = &msg.result
		m.view = ResultView
		if msg.result.Error != nil {
			m.statusMsg = fmt.Sprintf("Failed: %v", msg.result.Error)
			m.statusErr = true
		} else {
			m.statusMsg = fmt.Sprintf("✓ Started %d archiver process(es)", len(msg.result.Launches))
		}
		return m, nil

	case reloadMsg:
		if msg.err == nil {
			msg.err = m.open()
		}
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Reload failed: %v", msg.err)
			m.statusErr = true
		} else {
			m.statusMsg = "✓ Reloaded archiver settings"
		}
		return m, nil

	case tea.KeyMsg:
		// Clear status on any key
		m.statusMsg = ""
		m.statusErr = false

		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			m.moveCursor(-1)

		case key.Matches(msg, keys.Down):
			m.moveCursor(1)

		case key.Matches(msg, keys.Enter):
			if m.view == MenuView && len(m.entries) > 0 {
				return m, m.invoke(m.entries[m.cursor].Verb)
			}

		case key.Matches(msg, keys.Back):
			if m.view != MenuView {
				m.view = MenuView
				m.result = nil
			}

		case key.Matches(msg, keys.Reload):
			if m.view == MenuView {
				return m, m.reload()
			}

		case key.Matches(msg, keys.Commands):
			if m.view == MenuView {
				m.commands = m.svc.Commands()
				m.view = CommandsView
			}
		}
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.view != MenuView || len(m.entries) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
}

func (m *Model) invoke(verb string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		return invokeMsg{result: svc.Invoke(verb)}
	}
}

func (m *Model) reload() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		return reloadMsg{err: svc.Reload()}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.view {
	case MenuView:
		content = m.renderMenuView()
	case ResultView:
		content = m.renderResultView()
	case CommandsView:
		content = m.renderCommandsView()
	}

	return appStyle.Render(content)
}

func (m *Model) renderMenuView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(" 🗜 archmenu "))
	b.WriteString("\n\n")

	s := m.selection
	b.WriteString(kindStyle.Render(s.Kind))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d files, %d folders in %s", s.FileCount, s.FolderCount, truncate(s.ParentFolder, 48))))
	b.WriteString("\n")
	if s.Truncated {
		b.WriteString(errorBadge.Render(fmt.Sprintf("selection truncated to %d items", s.Items)))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(strings.Repeat("─", 60)))
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(dimStyle.Render("  No archive commands for this selection"))
		b.WriteString("\n")
	}
	for i, e := range m.entries {
		cursor := "  "
		style := normalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = selectedStyle
		}
		b.WriteString(style.Render(cursor + e.Label))
		b.WriteString("\n")
	}
	if len(m.entries) > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("  " + m.entries[m.cursor].Help))
		b.WriteString("\n")
	}

	m.renderStatus(&b)
	b.WriteString(helpStyle.Render(helpLine(keys.Up, keys.Down, keys.Enter, keys.Reload, keys.Commands, keys.Quit)))
	return b.String()
}

func (m *Model) renderResultView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(" 🗜 archmenu › " + m.result.Verb + " "))
	b.WriteString("\n\n")

	for _, l := range m.result.Launches {
		if l.Error != nil {
			b.WriteString(errorBadge.Render("✗ " + l.Error.Error()))
		} else {
			b.WriteString(successBadge.Render(fmt.Sprintf("✓ pid %d", l.PID)))
		}
		b.WriteString("\n")
		b.WriteString(commandLineStyle.Render(l.CommandLine))
		b.WriteString("\n")
	}

	m.renderStatus(&b)
	b.WriteString(helpStyle.Render(helpLine(keys.Back, keys.Quit)))
	return b.String()
}

func (m *Model) renderCommandsView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(" 🗜 archmenu › commands "))
	b.WriteString("\n\n")

	header := fmt.Sprintf("  %-3s %-20s %s", "ID", "VERB", "DESCRIPTION")
	b.WriteString(dimStyle.Render(header))
	b.WriteString("\n")
	for _, c := range m.commands {
		b.WriteString(normalStyle.Render(fmt.Sprintf("  %-3d %-20s %s", c.ID, c.Verb, c.Help)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(helpLine(keys.Back, keys.Quit)))
	return b.String()
}

func (m *Model) renderStatus(b *strings.Builder) {
	b.WriteString("\n")
	if m.statusMsg == "" {
		return
	}
	if m.statusErr {
		b.WriteString(errorBadge.Render(m.statusMsg))
	} else {
		b.WriteString(successBadge.Render(m.statusMsg))
	}
	b.WriteString("\n")
}

func helpLine(bindings ...key.Binding) string {
	var parts []string
	for _, k := range bindings {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// Run starts the TUI for paths, or for the working directory when none are
// given, and waits for list-file cleanup before returning.
func Run(paths []string) error {
	if len(paths) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		paths = []string{wd}
	}

	m, err := NewModel(paths)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	m.svc.Wait()
	if m.logFile != nil {
		m.logFile.Close()
	}
	return err
}

// truncate keeps the end of s, which is the informative part of a path.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return "…" + string(r[len(r)-max+1:])
}
