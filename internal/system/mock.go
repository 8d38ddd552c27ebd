package system

import (
	"context"
	"fmt"
	"sync"
)

// MockExecutor implements CommandExecutor for testing.
// It records every invocation and returns scripted results.
type MockExecutor struct {
	mu sync.Mutex

	// Commands holds every command passed to Run, in order.
	Commands []Command

	// RunErrors maps invocation index (0-based) to the error Run returns
	// for that call. Indices not present succeed.
	RunErrors map[int]error

	// LookPathFunc overrides LookPath when set. The default resolves
	// every name to /usr/bin/<name>.
	LookPathFunc func(file string) (string, error)
}

// NewMockExecutor creates a MockExecutor with no scripted failures.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		RunErrors: make(map[int]error),
	}
}

// FailAt scripts Run to return an ExitError with the given status for
// the n-th invocation (0-based).
func (m *MockExecutor) FailAt(n, exitCode int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RunErrors == nil {
		m.RunErrors = make(map[int]error)
	}
	m.RunErrors[n] = &ExitError{Code: exitCode}
}

func (m *MockExecutor) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}

func (m *MockExecutor) Run(ctx context.Context, cmd Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	idx := len(m.Commands)
	m.Commands = append(m.Commands, cmd)
	err := m.RunErrors[idx]
	m.mu.Unlock()

	return err
}

// CallCount returns the number of Run invocations recorded.
func (m *MockExecutor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Commands)
}

// CommandAt returns the n-th recorded command.
func (m *MockExecutor) CommandAt(n int) (Command, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n < 0 || n >= len(m.Commands) {
		return Command{}, fmt.Errorf("no command recorded at index %d", n)
	}
	return m.Commands[n], nil
}
