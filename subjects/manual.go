package subjects

import (
	"github.com/sghaida/diperf/bench"
	"github.com/sghaida/diperf/di"
	"github.com/sghaida/diperf/payload/bean"
	"github.com/sghaida/diperf/payload/plain"
)

// Manual is the construction-only baseline: setup builds the whole graph
// with plain constructor calls wrapped in di.ServiceV2, use reads the root.
func Manual() bench.LibraryBenchmark {
	return bench.LibraryBenchmark{
		Name: NameManual,
		Plain: bench.NewVariant(
			func() (di.ServiceV2[plain.Fib8], error) { return di.New(buildPlain), nil },
			func(s di.ServiceV2[plain.Fib8]) error { return checkRoot(s.Value()) },
			noTeardown[di.ServiceV2[plain.Fib8]],
		),
		Bean: bench.NewVariant(
			func() (di.ServiceV2[bean.Fib8], error) { return di.New(buildBean), nil },
			func(s di.ServiceV2[bean.Fib8]) error { return checkRoot(s.Value()) },
			noTeardown[di.ServiceV2[bean.Fib8]],
		),
	}
}

func buildPlain() *plain.Fib8 {
	f1, f2 := plain.NewFib1(), plain.NewFib2()
	f3 := plain.NewFib3(f2, f1)
	f4 := plain.NewFib4(f3, f2)
	f5 := plain.NewFib5(f4, f3)
	f6 := plain.NewFib6(f5, f4)
	f7 := plain.NewFib7(f6, f5)
	return plain.NewFib8(f7, f6)
}

func buildBean() *bean.Fib8 {
	f1, f2 := bean.NewFib1(), bean.NewFib2()
	f3 := bean.NewFib3(f2, f1)
	f4 := bean.NewFib4(f3, f2)
	f5 := bean.NewFib5(f4, f3)
	f6 := bean.NewFib6(f5, f4)
	f7 := bean.NewFib7(f6, f5)
	return bean.NewFib8(f7, f6)
}
