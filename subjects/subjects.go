// Package subjects builds one bench.LibraryBenchmark per injection approach.
//
// Every subject resolves the Fib8 root of both payload variants. Setup
// configures the container (or component, or app), use resolves the root
// and teardown releases whatever setup acquired. The harness sees only the
// three operations.
package subjects

import (
	"errors"

	"github.com/sghaida/diperf/bench"
	"github.com/sghaida/diperf/payload/bean"
	"github.com/sghaida/diperf/payload/plain"
)

// Names of the catalog entries, in report order.
const (
	NameDigLocator = "dig-locator"
	NameDig        = "dig"
	NameOdi        = "odi"
	NameCustom     = "custom"
	NameInjgen     = "injgen"
	NameFx         = "fx"
	NameManual     = "manual"
)

var errNilRoot = errors.New("subjects: resolved a nil root")

// All returns a fresh catalog. The global subjects (dig-locator, custom)
// mutate process-wide state in setup and teardown.
func All() []bench.LibraryBenchmark {
	return []bench.LibraryBenchmark{
		DigLocator(),
		Dig(),
		Odi(),
		Custom(),
		Injgen(),
		Fx(),
		Manual(),
	}
}

// Names returns the catalog names in report order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, b := range all {
		names[i] = b.Name
	}
	return names
}

var (
	plainCtors = []any{
		plain.NewFib1, plain.NewFib2, plain.NewFib3, plain.NewFib4,
		plain.NewFib5, plain.NewFib6, plain.NewFib7, plain.NewFib8,
	}
	beanCtors = []any{
		bean.NewFib1, bean.NewFib2, bean.NewFib3, bean.NewFib4,
		bean.NewFib5, bean.NewFib6, bean.NewFib7, bean.NewFib8,
	}
)

func checkRoot[R comparable](root R) error {
	var zero R
	if root == zero {
		return errNilRoot
	}
	return nil
}

func noTeardown[T any](T) error { return nil }
