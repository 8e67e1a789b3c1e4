package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/pixil98/go-dungeon/internal/game"
)

// CommandContext is everything a handler receives for one invocation.
type CommandContext struct {
	State *game.State
	Out   io.Writer
	Args  []string
}

// Rest returns all arguments joined by single spaces.
func (c *CommandContext) Rest() string {
	return strings.Join(c.Args, " ")
}

// Handler is the behavior bound to a command name.
type Handler interface {
	Exec(ctx context.Context, cmdCtx *CommandContext) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, cmdCtx *CommandContext) error

func (f HandlerFunc) Exec(ctx context.Context, cmdCtx *CommandContext) error {
	return f(ctx, cmdCtx)
}

// Registry maps command names to handlers, remembering registration order.
// Once sealed no handler can be added.
type Registry struct {
	names    []string
	handlers map[string]Handler
	sealed   bool
}

func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register binds a handler to a lowercase command name.
func (r *Registry) Register(name string, h Handler) error {
	if r.sealed {
		return fmt.Errorf("registering %q: registry is sealed", name)
	}
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if name != strings.ToLower(name) || strings.ContainsFunc(name, unicode.IsSpace) {
		return fmt.Errorf("command name %q must be a single lowercase word", name)
	}
	if h == nil {
		return fmt.Errorf("command %q: handler cannot be nil", name)
	}
	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("command %q already registered", name)
	}
	r.handlers[name] = h
	r.names = append(r.names, name)
	return nil
}

// Seal prevents further registration.
func (r *Registry) Seal() {
	r.sealed = true
}

// Get looks up a handler by exact name. Callers normalize case.
func (r *Registry) Get(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns command names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
