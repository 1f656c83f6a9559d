package subjects

import (
	"github.com/sghaida/diperf/bench"
	"github.com/sghaida/diperf/di"
	"github.com/sghaida/diperf/payload/bean"
	"github.com/sghaida/diperf/payload/plain"
)

var (
	keyFib1 = di.Key("fib1")
	keyFib2 = di.Key("fib2")
	keyFib3 = di.Key("fib3")
	keyFib4 = di.Key("fib4")
	keyFib5 = di.Key("fib5")
	keyFib6 = di.Key("fib6")
	keyFib7 = di.Key("fib7")
)

// Odi wires the graph with di.Service injectors. Setup constructs one
// unwired service per node, use applies the injectors bottom-up.
func Odi() bench.LibraryBenchmark {
	return bench.LibraryBenchmark{
		Name: NameOdi,
		Plain: bench.NewVariant(
			func() (*odiPlain, error) { return newOdiPlain(), nil },
			func(g *odiPlain) error {
				root, err := g.inject()
				if err != nil {
					return err
				}
				return checkRoot(root)
			},
			noTeardown[*odiPlain],
		),
		Bean: bench.NewVariant(
			func() (*odiBean, error) { return newOdiBean(), nil },
			func(g *odiBean) error {
				root, err := g.inject()
				if err != nil {
					return err
				}
				return checkRoot(root)
			},
			noTeardown[*odiBean],
		),
	}
}

type odiPlain struct {
	fib1 *di.Service[plain.Fib1]
	fib2 *di.Service[plain.Fib2]
	fib3 *di.Service[plain.Fib3]
	fib4 *di.Service[plain.Fib4]
	fib5 *di.Service[plain.Fib5]
	fib6 *di.Service[plain.Fib6]
	fib7 *di.Service[plain.Fib7]
	fib8 *di.Service[plain.Fib8]
}

func newOdiPlain() *odiPlain {
	return &odiPlain{
		fib1: di.Init(plain.NewFib1),
		fib2: di.Init(plain.NewFib2),
		fib3: di.Init(func() *plain.Fib3 { return &plain.Fib3{} }),
		fib4: di.Init(func() *plain.Fib4 { return &plain.Fib4{} }),
		fib5: di.Init(func() *plain.Fib5 { return &plain.Fib5{} }),
		fib6: di.Init(func() *plain.Fib6 { return &plain.Fib6{} }),
		fib7: di.Init(func() *plain.Fib7 { return &plain.Fib7{} }),
		fib8: di.Init(func() *plain.Fib8 { return &plain.Fib8{} }),
	}
}

func (g *odiPlain) inject() (*plain.Fib8, error) {
	if _, err := g.fib3.WithAll(
		di.Injecting(keyFib2, g.fib2, func(t *plain.Fib3, d *plain.Fib2) { t.Fib2 = d }),
		di.Injecting(keyFib1, g.fib1, func(t *plain.Fib3, d *plain.Fib1) { t.Fib1 = d }),
	); err != nil {
		return nil, err
	}
	if _, err := g.fib4.WithAll(
		di.Injecting(keyFib3, g.fib3, func(t *plain.Fib4, d *plain.Fib3) { t.Fib3 = d }),
		di.Injecting(keyFib2, g.fib2, func(t *plain.Fib4, d *plain.Fib2) { t.Fib2 = d }),
	); err != nil {
		return nil, err
	}
	if _, err := g.fib5.WithAll(
		di.Injecting(keyFib4, g.fib4, func(t *plain.Fib5, d *plain.Fib4) { t.Fib4 = d }),
		di.Injecting(keyFib3, g.fib3, func(t *plain.Fib5, d *plain.Fib3) { t.Fib3 = d }),
	); err != nil {
		return nil, err
	}
	if _, err := g.fib6.WithAll(
		di.Injecting(keyFib5, g.fib5, func(t *plain.Fib6, d *plain.Fib5) { t.Fib5 = d }),
		di.Injecting(keyFib4, g.fib4, func(t *plain.Fib6, d *plain.Fib4) { t.Fib4 = d }),
	); err != nil {
		return nil, err
	}
	if _, err := g.fib7.WithAll(
		di.Injecting(keyFib6, g.fib6, func(t *plain.Fib7, d *plain.Fib6) { t.Fib6 = d }),
		di.Injecting(keyFib5, g.fib5, func(t *plain.Fib7, d *plain.Fib5) { t.Fib5 = d }),
	); err != nil {
		return nil, err
	}
	if _, err := g.fib8.WithAll(
		di.Injecting(keyFib7, g.fib7, func(t *plain.Fib8, d *plain.Fib7) { t.Fib7 = d }),
		di.Injecting(keyFib6, g.fib6, func(t *plain.Fib8, d *plain.Fib6) { t.Fib6 = d }),
	); err != nil {
		return nil, err
	}
	return g.fib8.Value(), nil
}

type odiBean struct {
	fib1 *di.Service[bean.Fib1]
	fib2 *di.Service[bean.Fib2]
	fib3 *di.Service[bean.Fib3]
	fib4 *di.Service[bean.Fib4]
	fib5 *di.Service[bean.Fib5]
	fib6 *di.Service[bean.Fib6]
	fib7 *di.Service[bean.Fib7]
	fib8 *di.Service[bean.Fib8]
}

func newOdiBean() *odiBean {
	return &odiBean{
		fib1: di.Init(bean.NewFib1),
		fib2: di.Init(bean.NewFib2),
		fib3: di.Init(func() *bean.Fib3 { return new(bean.Fib3) }),
		fib4: di.Init(func() *bean.Fib4 { return new(bean.Fib4) }),
		fib5: di.Init(func() *bean.Fib5 { return new(bean.Fib5) }),
		fib6: di.Init(func() *bean.Fib6 { return new(bean.Fib6) }),
		fib7: di.Init(func() *bean.Fib7 { return new(bean.Fib7) }),
		fib8: di.Init(func() *bean.Fib8 { return new(bean.Fib8) }),
	}
}

func (g *odiBean) inject() (*bean.Fib8, error) {
	if _, err := g.fib3.WithAll(
		di.Injecting(keyFib2, g.fib2, (*bean.Fib3).SetFib2),
		di.Injecting(keyFib1, g.fib1, (*bean.Fib3).SetFib1),
	); err != nil {
		return nil, err
	}
	if _, err := g.fib4.WithAll(
		di.Injecting(keyFib3, g.fib3, (*bean.Fib4).SetFib3),
		di.Injecting(keyFib2, g.fib2, (*bean.Fib4).SetFib2),
	); err != nil {
		return nil, err
	}
	if _, err := g.fib5.WithAll(
		di.Injecting(keyFib4, g.fib4, (*bean.Fib5).SetFib4),
		di.Injecting(keyFib3, g.fib3, (*bean.Fib5).SetFib3),
	); err != nil {
		return nil, err
	}
	if _, err := g.fib6.WithAll(
		di.Injecting(keyFib5, g.fib5, (*bean.Fib6).SetFib5),
		di.Injecting(keyFib4, g.fib4, (*bean.Fib6).SetFib4),
	); err != nil {
		return nil, err
	}
	if _, err := g.fib7.WithAll(
		di.Injecting(keyFib6, g.fib6, (*bean.Fib7).SetFib6),
		di.Injecting(keyFib5, g.fib5, (*bean.Fib7).SetFib5),
	); err != nil {
		return nil, err
	}
	if _, err := g.fib8.WithAll(
		di.Injecting(keyFib7, g.fib7, (*bean.Fib8).SetFib7),
		di.Injecting(keyFib6, g.fib6, (*bean.Fib8).SetFib6),
	); err != nil {
		return nil, err
	}
	return g.fib8.Value(), nil
}
