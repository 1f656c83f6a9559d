package subjects

import (
	"context"

	"go.uber.org/fx"

	"github.com/sghaida/diperf/bench"
	"github.com/sghaida/diperf/payload/bean"
	"github.com/sghaida/diperf/payload/plain"
)

// Fx builds and starts an fx app per round. fx resolves populated values
// while the app is built, so most of the injection cost lands in setup and
// the use phase only checks the populated root.
func Fx() bench.LibraryBenchmark {
	return bench.LibraryBenchmark{
		Name:  NameFx,
		Plain: fxVariant[*plain.Fib8](plainCtors),
		Bean:  fxVariant[*bean.Fib8](beanCtors),
	}
}

type fxApp[R any] struct {
	app  *fx.App
	root R
}

func fxVariant[R comparable](ctors []any) *bench.VariantBenchmark[*fxApp[R]] {
	return bench.NewVariant(
		func() (*fxApp[R], error) { return startFxApp[R](ctors) },
		func(a *fxApp[R]) error { return checkRoot(a.root) },
		func(a *fxApp[R]) error { return a.app.Stop(context.Background()) },
	)
}

func startFxApp[R any](ctors []any) (*fxApp[R], error) {
	a := &fxApp[R]{}
	a.app = fx.New(
		fx.NopLogger,
		fx.Provide(ctors...),
		fx.Populate(&a.root),
	)
	if err := a.app.Err(); err != nil {
		return nil, err
	}
	if err := a.app.Start(context.Background()); err != nil {
		return nil, err
	}
	return a, nil
}
