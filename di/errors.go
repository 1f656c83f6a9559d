package di

import (
	"errors"
	"reflect"
	"strconv"
)

var (
	// ErrNilTarget is returned when an injector is applied to a nil service
	// or a service with a nil Val.
	ErrNilTarget = errors.New("di: nil target service")

	// ErrNilModule is returned by LoadModule for a nil module.
	ErrNilModule = errors.New("di: nil module")

	// ErrNilFactory is returned by LoadModule when a module holds a nil factory.
	ErrNilFactory = errors.New("di: nil factory")
)

// DependencyKey identifies a dependency, either in a Service's Deps bag or
// as the type key of a Container definition.
type DependencyKey string

// Key converts a string into a DependencyKey.
func Key(name string) DependencyKey { return DependencyKey(name) }

func typeKey(t reflect.Type) DependencyKey { return DependencyKey(t.String()) }

// DuplicateKeyError is returned when a key is registered twice, either by an
// injector on the same Service or by two definitions in one Container.
type DuplicateKeyError struct{ Key DependencyKey }

func (e DuplicateKeyError) Error() string {
	return "di: duplicate dependency key " + strconv.Quote(string(e.Key))
}

// MissingDependencyError is returned when nothing is registered for a key.
type MissingDependencyError struct{ Key DependencyKey }

func (e MissingDependencyError) Error() string {
	return "di: dependency " + strconv.Quote(string(e.Key)) + " missing"
}

// WrongTypeDependencyError is returned when a stored value does not have the
// requested type.
type WrongTypeDependencyError struct {
	Key     DependencyKey
	GotType string
}

func (e WrongTypeDependencyError) Error() string {
	return "di: dependency " + strconv.Quote(string(e.Key)) + " has wrong type (" + e.GotType + ")"
}

// NilDependencyServiceError indicates a nil dependency service for a key.
type NilDependencyServiceError struct{ Key DependencyKey }

func (e NilDependencyServiceError) Error() string {
	return "di: nil dependency service for key " + strconv.Quote(string(e.Key))
}

// CycleError is returned by Container.Get when a factory asks, directly or
// transitively, for the type it is building.
type CycleError struct{ Key DependencyKey }

func (e CycleError) Error() string {
	return "di: dependency cycle while resolving " + strconv.Quote(string(e.Key))
}
