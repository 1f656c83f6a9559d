package subjects

import (
	"github.com/sghaida/diperf/bench"
	"github.com/sghaida/diperf/payload/bean"
	"github.com/sghaida/diperf/payload/plain"
)

// Injgen uses the components generated by cmd/injgen: setup creates an
// empty component and use injects a Fib8Holder through it.
func Injgen() bench.LibraryBenchmark {
	return bench.LibraryBenchmark{
		Name: NameInjgen,
		Plain: bench.NewVariant(
			func() (*plain.Component, error) { return plain.NewComponent(), nil },
			func(c *plain.Component) error {
				var h plain.Fib8Holder
				c.InjectFib8Holder(&h)
				return checkRoot(h.Fib8)
			},
			noTeardown[*plain.Component],
		),
		Bean: bench.NewVariant(
			func() (*bean.Component, error) { return bean.NewComponent(), nil },
			func(c *bean.Component) error {
				var h bean.Fib8Holder
				c.InjectFib8Holder(&h)
				return checkRoot(h.Fib8)
			},
			noTeardown[*bean.Component],
		),
	}
}
