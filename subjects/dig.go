package subjects

import (
	"errors"

	"go.uber.org/dig"

	"github.com/sghaida/diperf/bench"
	"github.com/sghaida/diperf/payload/bean"
	"github.com/sghaida/diperf/payload/plain"
)

// Dig resolves through a dig container created per round.
func Dig() bench.LibraryBenchmark {
	return bench.LibraryBenchmark{
		Name:  NameDig,
		Plain: digVariant[*plain.Fib8](plainCtors),
		Bean:  digVariant[*bean.Fib8](beanCtors),
	}
}

func digVariant[R comparable](ctors []any) *bench.VariantBenchmark[*dig.Container] {
	return bench.NewVariant(
		func() (*dig.Container, error) { return newDigContainer(ctors) },
		func(c *dig.Container) error {
			root, err := digResolve[R](c)
			if err != nil {
				return err
			}
			return checkRoot(root)
		},
		noTeardown[*dig.Container],
	)
}

func newDigContainer(ctors []any) (*dig.Container, error) {
	c := dig.New()
	for _, ctor := range ctors {
		if err := c.Provide(ctor); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func digResolve[R any](c *dig.Container) (R, error) {
	var root R
	err := c.Invoke(func(r R) { root = r })
	return root, err
}

// The dig locator is a process-wide container: setup starts it, use looks
// the root up through the global and teardown stops it.
var locator *dig.Container

var (
	ErrLocatorStarted    = errors.New("subjects: dig locator already started")
	ErrLocatorNotStarted = errors.New("subjects: dig locator not started")
)

// DigLocator resolves through the process-wide dig locator.
func DigLocator() bench.LibraryBenchmark {
	return bench.LibraryBenchmark{
		Name:  NameDigLocator,
		Plain: locatorVariant[*plain.Fib8](plainCtors),
		Bean:  locatorVariant[*bean.Fib8](beanCtors),
	}
}

func locatorVariant[R comparable](ctors []any) *bench.VariantBenchmark[*dig.Container] {
	return bench.NewVariant(
		func() (*dig.Container, error) { return startLocator(ctors) },
		func(*dig.Container) error {
			root, err := locatorGet[R]()
			if err != nil {
				return err
			}
			return checkRoot(root)
		},
		func(*dig.Container) error { return stopLocator() },
	)
}

func startLocator(ctors []any) (*dig.Container, error) {
	if locator != nil {
		return nil, ErrLocatorStarted
	}
	c, err := newDigContainer(ctors)
	if err != nil {
		return nil, err
	}
	locator = c
	return c, nil
}

func locatorGet[R any]() (R, error) {
	if locator == nil {
		var zero R
		return zero, ErrLocatorNotStarted
	}
	return digResolve[R](locator)
}

func stopLocator() error {
	if locator == nil {
		return ErrLocatorNotStarted
	}
	locator = nil
	return nil
}
