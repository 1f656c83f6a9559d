package di_test

import (
	"testing"

	"github.com/sghaida/diperf/di"
	"github.com/sghaida/diperf/payload/plain"
)

var sinkFib3 *plain.Fib3

func BenchmarkInjecting(b *testing.B) {
	fib2 := di.Init(plain.NewFib2)
	fib1 := di.Init(plain.NewFib1)

	b.ReportAllocs()
	for b.Loop() {
		svc := di.Init(func() *plain.Fib3 { return &plain.Fib3{} })
		_, err := svc.WithAll(
			di.Injecting(fib2Key, fib2, func(t *plain.Fib3, d *plain.Fib2) { t.Fib2 = d }),
			di.Injecting(di.Key("fib1"), fib1, func(t *plain.Fib3, d *plain.Fib1) { t.Fib1 = d }),
		)
		if err != nil {
			b.Fatal(err)
		}
		sinkFib3 = svc.Value()
	}
}

func BenchmarkServiceV2(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		sinkFib3 = di.New(func() *plain.Fib3 {
			return plain.NewFib3(plain.NewFib2(), plain.NewFib1())
		}).Value()
	}
}

func BenchmarkContainerGet(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		c := di.NewContainer()
		if err := c.LoadModule(leafModule()); err != nil {
			b.Fatal(err)
		}
		if err := c.LoadModule(fib3Module()); err != nil {
			b.Fatal(err)
		}
		v, err := di.Get[*plain.Fib3](c)
		if err != nil {
			b.Fatal(err)
		}
		sinkFib3 = v
	}
}
