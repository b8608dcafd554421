package ops

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Op defines an executable operation triggered by an inbound command.
type Op interface {
	// Command is the full command text, e.g. "/wake". Matching against
	// inbound messages is exact and case-sensitive.
	Command() string
	Description() string
	Execute(ctx context.Context) (string, error)
}

// Registry holds registered operations keyed by command text.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]Op
}

// NewRegistry creates an empty operation registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]Op)}
}

// Register adds an operation. Returns an error if the command is already registered.
func (r *Registry) Register(op Op) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cmd := op.Command()
	if _, exists := r.ops[cmd]; exists {
		return fmt.Errorf("op already registered: %s", cmd)
	}
	r.ops[cmd] = op
	return nil
}

// Get returns the operation for the given command text, or nil if not found.
func (r *Registry) Get(command string) Op {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ops[command]
}

// List returns all registered operations sorted by command.
func (r *Registry) List() []Op {
	r.mu.RLock()
	defer r.mu.RUnlock()

	commands := make([]string, 0, len(r.ops))
	for cmd := range r.ops {
		commands = append(commands, cmd)
	}
	sort.Strings(commands)

	result := make([]Op, len(commands))
	for i, cmd := range commands {
		result[i] = r.ops[cmd]
	}
	return result
}
