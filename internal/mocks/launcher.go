package mocks

import (
	"sync"

	"github.com/mcdonaldj/archmenu/internal/ports"
)

// MockLauncher implements ports.Launcher for testing.
type MockLauncher struct {
	mu sync.Mutex
	// Calls records every command line passed to Launch, failed ones included
	Calls []ports.CommandLine
	// Errors maps call index (0-based) to a launch error
	Errors map[int]error
	// ExitErr is returned by Wait on launched processes
	ExitErr error
	// Hold, when non-nil, makes Wait block until it is closed
	Hold chan struct{}
	nextPID int
}

// NewMockLauncher creates a new mock launcher.
func NewMockLauncher() *MockLauncher {
	return &MockLauncher{
		Errors:  make(map[int]error),
		nextPID: 1000,
	}
}

// Launch records cmd and returns a fake process.
func (m *MockLauncher) Launch(cmd ports.CommandLine) (ports.Process, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := len(m.Calls)
	m.Calls = append(m.Calls, cmd)
	if err, ok := m.Errors[idx]; ok {
		return nil, err
	}
	m.nextPID++
	return &MockProcess{pid: m.nextPID, exitErr: m.ExitErr, hold: m.Hold}, nil
}

// LaunchCalls returns a copy of the recorded command lines.
func (m *MockLauncher) LaunchCalls() []ports.CommandLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ports.CommandLine(nil), m.Calls...)
}

// MockProcess implements ports.Process for testing.
type MockProcess struct {
	pid     int
	exitErr error
	hold    chan struct{}
}

// PID returns the fake process id.
func (p *MockProcess) PID() int { return p.pid }

// Wait returns the configured exit error, blocking on Hold when set.
func (p *MockProcess) Wait() error {
	if p.hold != nil {
		<-p.hold
	}
	return p.exitErr
}

// Compile-time check that MockLauncher implements ports.Launcher.
var _ ports.Launcher = (*MockLauncher)(nil)
