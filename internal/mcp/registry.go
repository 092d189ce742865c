// internal/mcp/registry.go
package mcp

import "fmt"

// Registry is the closed catalog of tools the server advertises. It is
// populated once at startup and read-only afterwards; listing preserves
// registration order because discovery clients may cache descriptors by
// position.
type Registry struct {
	order []string
	tools map[string]Tool
}

// NewRegistry returns an empty catalog.
func NewRegistry() *Registry {
	return &Registry{tools: map[string]Tool{}}
}

// Register adds a tool to the catalog. Names must be unique within the
// registry and every tool needs a handler.
func (r *Registry) Register(t Tool) error {
	name := t.Definition.Name
	if name == "" {
		return fmt.Errorf("tool definition has no name")
	}
	if t.Handler == nil {
		return fmt.Errorf("tool %q has no handler", name)
	}
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool %q already registered", name)
	}
	r.tools[name] = t
	r.order = append(r.order, name)
	return nil
}

// Definitions returns the advertised descriptors in registration order.
// The result is a fresh slice on every call; callers may hold on to it.
func (r *Registry) Definitions() []Definition {
	defs := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.tools[name].Definition)
	}
	return defs
}

// Len reports how many tools are registered.
func (r *Registry) Len() int { return len(r.order) }

func (r *Registry) lookup(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}
