package di

import "reflect"

// Factory builds the value of one definition. It may resolve other
// definitions through c.
type Factory func(c *Container) (any, error)

// Module is a named set of definitions keyed by the type they produce.
//
// Modules are plain data: building one has no effect until it is loaded
// into a Container.
type Module struct {
	name  string
	defs  map[reflect.Type]Factory
	order []reflect.Type
	err   error
}

// NewModule returns an empty module. name is reported by Container.Modules.
func NewModule(name string) *Module {
	return &Module{name: name, defs: map[reflect.Type]Factory{}}
}

// Name returns the module name given to NewModule.
func (m *Module) Name() string { return m.name }

// Provide registers f as the definition for T and returns m for chaining.
// A second definition for the same T is kept as an error and reported by
// LoadModule.
func Provide[T any](m *Module, f func(c *Container) (T, error)) *Module {
	t := reflect.TypeFor[T]()
	if _, exists := m.defs[t]; exists {
		if m.err == nil {
			m.err = DuplicateKeyError{Key: typeKey(t)}
		}
		return m
	}
	if f == nil {
		m.defs[t] = nil
	} else {
		m.defs[t] = func(c *Container) (any, error) { return f(c) }
	}
	m.order = append(m.order, t)
	return m
}

// Container is a hand-written service locator.
//
// Definitions come from loaded modules. Get builds a value on first request
// and returns the cached instance afterwards. UnloadModules drops both the
// definitions and the cached instances.
//
// A Container is not safe for concurrent use.
type Container struct {
	defs      map[reflect.Type]Factory
	instances map[reflect.Type]any
	resolving map[reflect.Type]bool
	modules   []string
}

// NewContainer returns a Container with no modules loaded.
func NewContainer() *Container {
	return &Container{
		defs:      map[reflect.Type]Factory{},
		instances: map[reflect.Type]any{},
		resolving: map[reflect.Type]bool{},
	}
}

// LoadModule adds m's definitions. It fails without loading anything if m
// is nil, holds a nil factory or defines a type that is already loaded.
func (c *Container) LoadModule(m *Module) error {
	if m == nil {
		return ErrNilModule
	}
	if m.err != nil {
		return m.err
	}
	for _, t := range m.order {
		if m.defs[t] == nil {
			return ErrNilFactory
		}
		if _, exists := c.defs[t]; exists {
			return DuplicateKeyError{Key: typeKey(t)}
		}
	}
	for _, t := range m.order {
		c.defs[t] = m.defs[t]
	}
	c.modules = append(c.modules, m.name)
	return nil
}

// UnloadModules removes every definition and cached instance.
func (c *Container) UnloadModules() {
	clear(c.defs)
	clear(c.instances)
	clear(c.resolving)
	c.modules = c.modules[:0]
}

// Modules returns the names of the loaded modules in load order.
func (c *Container) Modules() []string {
	out := make([]string, len(c.modules))
	copy(out, c.modules)
	return out
}

// Get resolves T from c.
//
// It returns MissingDependencyError when no loaded module defines T,
// CycleError when T is requested while it is being built and
// WrongTypeDependencyError if a factory returned a value that is not a T.
func Get[T any](c *Container) (T, error) {
	var zero T
	t := reflect.TypeFor[T]()

	if inst, ok := c.instances[t]; ok {
		return inst.(T), nil
	}
	f, ok := c.defs[t]
	if !ok {
		return zero, MissingDependencyError{Key: typeKey(t)}
	}
	if c.resolving[t] {
		return zero, CycleError{Key: typeKey(t)}
	}

	c.resolving[t] = true
	raw, err := f(c)
	delete(c.resolving, t)
	if err != nil {
		return zero, err
	}

	v, ok := raw.(T)
	if !ok {
		got := "<nil>"
		if raw != nil {
			got = reflect.TypeOf(raw).String()
		}
		return zero, WrongTypeDependencyError{Key: typeKey(t), GotType: got}
	}
	c.instances[t] = v
	return v, nil
}

// MustGet returns T or panics. Useful inside factories where a missing
// definition is a wiring bug.
func MustGet[T any](c *Container) T {
	v, err := Get[T](c)
	if err != nil {
		panic(err)
	}
	return v
}

// Default is the process-wide container used by the package-level helpers.
var Default = NewContainer()

// LoadModule loads m into Default.
func LoadModule(m *Module) error { return Default.LoadModule(m) }

// UnloadModules empties Default.
func UnloadModules() { Default.UnloadModules() }

// Lookup resolves T from Default.
func Lookup[T any]() (T, error) { return Get[T](Default) }
