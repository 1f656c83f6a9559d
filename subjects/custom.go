package subjects

import (
	"github.com/sghaida/diperf/bench"
	"github.com/sghaida/diperf/di"
	"github.com/sghaida/diperf/payload/bean"
	"github.com/sghaida/diperf/payload/plain"
)

// Custom loads a module into the process-wide di.Default container, looks
// the root up and unloads every module on teardown.
func Custom() bench.LibraryBenchmark {
	return bench.LibraryBenchmark{
		Name:  NameCustom,
		Plain: customVariant[*plain.Fib8](customPlainModule),
		Bean:  customVariant[*bean.Fib8](customBeanModule),
	}
}

func customVariant[R comparable](module func() *di.Module) *bench.VariantBenchmark[*di.Container] {
	return bench.NewVariant(
		func() (*di.Container, error) {
			if err := di.LoadModule(module()); err != nil {
				return nil, err
			}
			return di.Default, nil
		},
		func(*di.Container) error {
			root, err := di.Lookup[R]()
			if err != nil {
				return err
			}
			return checkRoot(root)
		},
		func(*di.Container) error {
			di.UnloadModules()
			return nil
		},
	)
}

func customPlainModule() *di.Module {
	m := di.NewModule("plain")
	di.Provide(m, leaf(plain.NewFib1))
	di.Provide(m, leaf(plain.NewFib2))
	di.Provide(m, node(plain.NewFib3))
	di.Provide(m, node(plain.NewFib4))
	di.Provide(m, node(plain.NewFib5))
	di.Provide(m, node(plain.NewFib6))
	di.Provide(m, node(plain.NewFib7))
	di.Provide(m, node(plain.NewFib8))
	return m
}

func customBeanModule() *di.Module {
	m := di.NewModule("bean")
	di.Provide(m, leaf(bean.NewFib1))
	di.Provide(m, leaf(bean.NewFib2))
	di.Provide(m, node(bean.NewFib3))
	di.Provide(m, node(bean.NewFib4))
	di.Provide(m, node(bean.NewFib5))
	di.Provide(m, node(bean.NewFib6))
	di.Provide(m, node(bean.NewFib7))
	di.Provide(m, node(bean.NewFib8))
	return m
}

func leaf[T any](ctor func() T) func(*di.Container) (T, error) {
	return func(*di.Container) (T, error) { return ctor(), nil }
}

func node[T, A, B any](ctor func(A, B) T) func(*di.Container) (T, error) {
	return func(c *di.Container) (T, error) {
		var zero T
		a, err := di.Get[A](c)
		if err != nil {
			return zero, err
		}
		b, err := di.Get[B](c)
		if err != nil {
			return zero, err
		}
		return ctor(a, b), nil
	}
}
