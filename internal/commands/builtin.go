package commands

import "fmt"

// Options tunes the built-in command set.
type Options struct {
	// AllocSize is the slice length used by alloc. Zero means DefaultAllocSize.
	AllocSize int
}

// NewDefaultRegistry registers the fixed command set in its display order
// and seals the registry.
func NewDefaultRegistry(gw Gateway, opts Options) (*Registry, error) {
	r := NewRegistry()
	persist := NewPersistHandlers(gw)

	entries := []struct {
		name    string
		handler Handler
	}{
		{"help", NewHelpHandler(r)},
		{"gc-stats", HandlerFunc(GCStats)},
		{"alloc", NewAllocHandler(opts.AllocSize)},
		{"look", HandlerFunc(Look)},
		{"move", HandlerFunc(Move)},
		{"take", HandlerFunc(Take)},
		{"inventory", HandlerFunc(Inventory)},
		{"use", HandlerFunc(Use)},
		{"fight", HandlerFunc(Fight)},
		{"save", HandlerFunc(persist.Save)},
		{"load", HandlerFunc(persist.Load)},
		{"scores", HandlerFunc(persist.Scores)},
		{"exit", HandlerFunc(Exit)},
	}

	for _, e := range entries {
		if err := r.Register(e.name, e.handler); err != nil {
			return nil, fmt.Errorf("registering built-in commands: %w", err)
		}
	}
	r.Seal()

	return r, nil
}
