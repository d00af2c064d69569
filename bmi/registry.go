package bmi

import (
	"fmt"
	"sort"
)

// Factory constructs a fresh, uninitialized component instance.
type Factory func() Model

// factories holds component constructors registered by sub-packages.
// Written only from init(), so no locking.
var factories = map[string]Factory{}

// Register makes a component available to New under name.
// Panics on an empty name, a nil factory or a duplicate registration.
func Register(name string, f Factory) {
	if name == "" {
		panic("Register: name must not be empty")
	}
	if f == nil {
		panic(fmt.Sprintf("Register: nil factory for component %q", name))
	}
	if _, dup := factories[name]; dup {
		panic(fmt.Sprintf("Register: component %q registered twice", name))
	}
	factories[name] = f
}

// New constructs the component registered under name.
// The host must call Initialize before use and Finalize when done.
func New(name string) (Model, error) {
	f, ok := factories[name]
	if !ok {
		return nil, &VarError{Op: "New", Name: name, Wrapped: fmt.Errorf("%w: unknown component; registered: %v", ErrNotFound, Components())}
	}
	return f(), nil
}

// Components returns the registered component names, sorted.
func Components() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
