package di

import "reflect"

// Service is a constructed value plus the dependencies injected into it.
//
// Val is the constructed value. Deps records every injected dependency by
// key so callers can check what was wired.
type Service[T any] struct {
	Val  *T
	Deps map[DependencyKey]any
}

// Init constructs a Service by calling ctor and initializing the dependency bag.
func Init[T any](ctor func() *T) *Service[T] {
	return &Service[T]{Val: ctor(), Deps: make(map[DependencyKey]any)}
}

// Value returns the constructed value pointer.
func (s *Service[T]) Value() *T { return s.Val }

// Injector mutates a Service in place and returns an error if wiring fails.
type Injector[T any] func(*Service[T]) error

// With applies a single injector. A nil injector is a no-op.
func (s *Service[T]) With(inj Injector[T]) (*Service[T], error) {
	if inj == nil {
		return s, nil
	}
	if err := inj(s); err != nil {
		return s, err
	}
	return s, nil
}

// WithAll applies injectors in order and stops at the first error.
func (s *Service[T]) WithAll(injs ...Injector[T]) (*Service[T], error) {
	for _, inj := range injs {
		if _, err := s.With(inj); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Injecting builds an Injector that records dep under key and hands its value
// to bind.
//
// The injector fails with ErrNilTarget for a nil target,
// NilDependencyServiceError for a nil dep and DuplicateKeyError when key is
// already present on the target.
func Injecting[T any, D any](key DependencyKey, dep *Service[D], bind func(target *T, dependency *D)) Injector[T] {
	return func(s *Service[T]) error {
		if s == nil || s.Val == nil {
			return ErrNilTarget
		}
		if dep == nil || dep.Val == nil || bind == nil {
			return NilDependencyServiceError{Key: key}
		}
		if s.Deps == nil {
			s.Deps = make(map[DependencyKey]any)
		}
		if _, exists := s.Deps[key]; exists {
			return DuplicateKeyError{Key: key}
		}
		s.Deps[key] = dep.Val
		bind(s.Val, dep.Val)
		return nil
	}
}

// GetAs returns the dependency stored under key typed as *D.
func GetAs[T any, D any](s *Service[T], key DependencyKey) (*D, bool) {
	if s == nil || s.Deps == nil {
		return nil, false
	}
	d, ok := s.Deps[key].(*D)
	return d, ok
}

// TryGetAs is GetAs with an error that tells a missing key apart from a
// value of the wrong type.
func TryGetAs[T any, D any](s *Service[T], key DependencyKey) (*D, error) {
	if s == nil || s.Deps == nil {
		return nil, MissingDependencyError{Key: key}
	}
	raw, ok := s.Deps[key]
	if !ok || raw == nil {
		return nil, MissingDependencyError{Key: key}
	}
	d, ok := raw.(*D)
	if !ok {
		return nil, WrongTypeDependencyError{Key: key, GotType: reflect.TypeOf(raw).String()}
	}
	return d, nil
}
