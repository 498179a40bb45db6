package command

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrymomot/apicore/core/model"
)

// Binding registers a handler for one command version.
type Binding struct {
	ID      string
	Version string

	// NewRequest returns a fresh pointer to the request model the body decodes into.
	// Nil means *model.Request.
	NewRequest func() any

	Handler Handler
}

// RequestOf returns a request factory producing *T.
func RequestOf[T any]() func() any {
	return func() any { return new(T) }
}

func (b Binding) newRequest() any {
	if b.NewRequest == nil {
		return &model.Request{}
	}
	return b.NewRequest()
}

type bindingKey struct {
	id      string
	version string
}

// Builder collects bindings before the registry is built.
// It is not safe for concurrent use.
type Builder struct {
	bindings map[bindingKey]Binding
}

// NewBuilder creates an empty registry builder.
func NewBuilder() *Builder {
	return &Builder{bindings: make(map[bindingKey]Binding)}
}

// Register adds a binding. A second binding for the same (id, version) fails
// immediately with ErrDuplicateRegistration.
func (b *Builder) Register(binding Binding) error {
	if binding.ID == "" || binding.Version == "" || binding.Handler == nil {
		return fmt.Errorf("%w: id=%q version=%q", ErrInvalidBinding, binding.ID, binding.Version)
	}

	key := bindingKey{id: binding.ID, version: binding.Version}
	if _, exists := b.bindings[key]; exists {
		return fmt.Errorf("%w: %s %s", ErrDuplicateRegistration, binding.ID, binding.Version)
	}

	b.bindings[key] = binding
	return nil
}

// Build freezes the collected bindings into a registry.
func (b *Builder) Build() *Registry {
	r := &Registry{commands: make(map[string]map[string]Binding)}
	for key, binding := range b.bindings {
		versions, ok := r.commands[key.id]
		if !ok {
			versions = make(map[string]Binding)
			r.commands[key.id] = versions
		}
		versions[key.version] = binding
	}
	return r
}

// Registry maps (command id, version) pairs to handlers.
// It is immutable and safe for concurrent use.
type Registry struct {
	commands map[string]map[string]Binding
}

// NewRegistry builds a registry from bindings.
func NewRegistry(bindings ...Binding) (*Registry, error) {
	b := NewBuilder()
	for _, binding := range bindings {
		if err := b.Register(binding); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// MustRegistry is like NewRegistry but panics on misconfiguration.
// Intended for application startup.
func MustRegistry(bindings ...Binding) *Registry {
	r, err := NewRegistry(bindings...)
	if err != nil {
		panic(err)
	}
	return r
}

// Resolve returns the binding for id and version.
// It fails with ErrUnknownCommand when id is not registered at all and
// ErrUnknownVersion when only the version is missing.
func (r *Registry) Resolve(id, version string) (Binding, error) {
	versions, ok := r.commands[id]
	if !ok {
		return Binding{}, fmt.Errorf("%w: %s", ErrUnknownCommand, id)
	}
	binding, ok := versions[version]
	if !ok {
		return Binding{}, fmt.Errorf("%w: %s %s", ErrUnknownVersion, id, version)
	}
	return binding, nil
}

// Commands returns the registered command ids in sorted order.
func (r *Registry) Commands() []string {
	return slices.Sorted(maps.Keys(r.commands))
}

// Versions returns the registered versions of id in sorted order.
func (r *Registry) Versions(id string) []string {
	return slices.Sorted(maps.Keys(r.commands[id]))
}

// Len returns the number of registered bindings.
func (r *Registry) Len() int {
	n := 0
	for _, versions := range r.commands {
		n += len(versions)
	}
	return n
}
