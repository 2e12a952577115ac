// Package session adapts the classifier and menu synthesizer to the
// lifecycle a file-manager host drives for one right-click.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mcdonaldj/archmenu/internal/menu"
	"github.com/mcdonaldj/archmenu/internal/ports"
	"github.com/mcdonaldj/archmenu/internal/selection"
)

var (
	ErrNotInitialized     = errors.New("session not initialized")
	ErrAlreadyInitialized = errors.New("session already initialized")
	ErrReleased           = errors.New("session released")
)

// State is a session's position in its lifecycle.
type State int

const (
	StateUninitialized State = iota
	StateInitialized
	StatePopulated
	StateReleased
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StatePopulated:
		return "populated"
	case StateReleased:
		return "released"
	default:
		return "uninitialized"
	}
}

// QueryFlags carries the host's menu query options.
type QueryFlags struct {
	// DefaultOnly asks only for the default verb; no entries are added.
	DefaultOnly bool
}

// StringKind selects what GetCommandString returns.
type StringKind int

const (
	HelpText StringKind = iota
	Verb
)

// Session owns the classification of one selection. It is driven by
// synchronous host calls and is not safe for concurrent use.
type Session struct {
	id         string
	classifier *selection.Classifier
	invoker    *menu.Invoker
	icon       ports.IconRef
	anchor     string
	logger     zerolog.Logger

	state   State
	class   selection.Classification
	entries []menu.Entry
}

func newSession(classifier *selection.Classifier, invoker *menu.Invoker, anchor string, logger zerolog.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		id:         id,
		classifier: classifier,
		invoker:    invoker,
		icon:       ports.IconRef{Path: invoker.ArchiverPath(), Index: 0},
		anchor:     anchor,
		logger:     logger.With().Str("session", id).Logger(),
	}
}

// ID returns a unique identifier for log correlation.
func (s *Session) ID() string {
	return s.id
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Initialize classifies paths. It may be called once.
func (s *Session) Initialize(paths []string) error {
	switch s.state {
	case StateReleased:
		return ErrReleased
	case StateUninitialized:
	default:
		return ErrAlreadyInitialized
	}

	s.class = s.classifier.Classify(paths)
	s.entries = menu.Populate(s.class, s.icon)
	s.state = StateInitialized

	s.logger.Debug().
		Int("selected", len(paths)).
		Str("kind", s.class.Kind.String()).
		Bool("truncated", s.class.Truncated).
		Msg("Selection classified")
	return nil
}

// Classification returns the classification computed by Initialize.
func (s *Session) Classification() (selection.Classification, error) {
	if err := s.ready(); err != nil {
		return selection.Classification{}, err
	}
	return s.class, nil
}

// Entries returns the menu entries for the selection, in display order.
func (s *Session) Entries() ([]menu.Entry, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return append([]menu.Entry(nil), s.entries...), nil
}

// QueryContextMenu inserts the session's entries into host and returns how
// many were added. Entries go after the host's archiver item when present,
// otherwise at indexMenu. Item ids are idCmdFirst plus the command id.
func (s *Session) QueryContextMenu(host ports.MenuHost, indexMenu, idCmdFirst int, flags QueryFlags) (int, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	if flags.DefaultOnly || len(s.entries) == 0 {
		return 0, nil
	}

	pos := menu.InsertPosition(host, s.anchor, indexMenu)
	added := 0
	for _, e := range s.entries {
		item := ports.MenuItem{ID: idCmdFirst + int(e.ID), Label: e.Label, Icon: e.Icon}
		if err := host.InsertItem(pos+added, item); err != nil {
			return added, fmt.Errorf("inserting %q: %w", e.Label, err)
		}
		added++
	}
	s.state = StatePopulated
	return added, nil
}

// InvokeCommand runs the command at offset id from the host's first id.
func (s *Session) InvokeCommand(id menu.CommandID) (menu.Result, error) {
	if err := s.ready(); err != nil {
		return menu.Result{Command: id}, err
	}
	s.logger.Info().Str("command", id.String()).Msg("Invoking command")
	return s.invoker.Invoke(id, s.class)
}

// InvokeVerb runs the command registered under verb.
func (s *Session) InvokeVerb(verb string) (menu.Result, error) {
	cmd, ok := menu.LookupVerb(verb)
	if !ok {
		return menu.Result{}, fmt.Errorf("%w: unknown verb %q", menu.ErrInvalidArgument, verb)
	}
	return s.InvokeCommand(cmd.ID)
}

// GetCommandString returns the help text or verb of id. It needs no
// selection.
func (s *Session) GetCommandString(id menu.CommandID, kind StringKind) (string, error) {
	cmd, ok := menu.Lookup(id)
	if !ok {
		return "", fmt.Errorf("%w: unknown command %d", menu.ErrInvalidArgument, int(id))
	}
	switch kind {
	case HelpText:
		return cmd.Help, nil
	case Verb:
		return cmd.Verb, nil
	}
	return "", fmt.Errorf("%w: unknown string kind %d", menu.ErrInvalidArgument, int(kind))
}

// Release drops the classification. The session cannot be used afterwards.
func (s *Session) Release() {
	if s.state == StateReleased {
		return
	}
	s.class = selection.Classification{}
	s.entries = nil
	s.state = StateReleased
	s.logger.Debug().Msg("Session released")
}

func (s *Session) ready() error {
	switch s.state {
	case StateUninitialized:
		return ErrNotInitialized
	case StateReleased:
		return ErrReleased
	}
	return nil
}
