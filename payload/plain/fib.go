// Package plain is the field-style Fibonacci payload: every node exposes its
// dependencies as exported fields and is built by a constructor function.
//
// FibN depends on Fib(N-1) and Fib(N-2); Fib1 and Fib2 are leaves. The graph
// has the same shape as package bean so both variants cost the same amount of
// wiring work.
package plain

//go:generate go run ../../cmd/injgen -spec component.inject.json -out component.gen.go

type Fib1 struct{}

func NewFib1() *Fib1 { return &Fib1{} }

func (f *Fib1) Value() int { return 1 }

type Fib2 struct{}

func NewFib2() *Fib2 { return &Fib2{} }

func (f *Fib2) Value() int { return 1 }

type Fib3 struct {
	Fib2 *Fib2
	Fib1 *Fib1
}

func NewFib3(fib2 *Fib2, fib1 *Fib1) *Fib3 { return &Fib3{Fib2: fib2, Fib1: fib1} }

func (f *Fib3) Value() int { return f.Fib2.Value() + f.Fib1.Value() }

type Fib4 struct {
	Fib3 *Fib3
	Fib2 *Fib2
}

func NewFib4(fib3 *Fib3, fib2 *Fib2) *Fib4 { return &Fib4{Fib3: fib3, Fib2: fib2} }

func (f *Fib4) Value() int { return f.Fib3.Value() + f.Fib2.Value() }

type Fib5 struct {
	Fib4 *Fib4
	Fib3 *Fib3
}

func NewFib5(fib4 *Fib4, fib3 *Fib3) *Fib5 { return &Fib5{Fib4: fib4, Fib3: fib3} }

func (f *Fib5) Value() int { return f.Fib4.Value() + f.Fib3.Value() }

type Fib6 struct {
	Fib5 *Fib5
	Fib4 *Fib4
}

func NewFib6(fib5 *Fib5, fib4 *Fib4) *Fib6 { return &Fib6{Fib5: fib5, Fib4: fib4} }

func (f *Fib6) Value() int { return f.Fib5.Value() + f.Fib4.Value() }

type Fib7 struct {
	Fib6 *Fib6
	Fib5 *Fib5
}

func NewFib7(fib6 *Fib6, fib5 *Fib5) *Fib7 { return &Fib7{Fib6: fib6, Fib5: fib5} }

func (f *Fib7) Value() int { return f.Fib6.Value() + f.Fib5.Value() }

// Fib8 is the root every subject resolves.
type Fib8 struct {
	Fib7 *Fib7
	Fib6 *Fib6
}

func NewFib8(fib7 *Fib7, fib6 *Fib6) *Fib8 { return &Fib8{Fib7: fib7, Fib6: fib6} }

func (f *Fib8) Value() int { return f.Fib7.Value() + f.Fib6.Value() }

// Fib8Holder is a field-injection target for generated components.
type Fib8Holder struct {
	Fib8 *Fib8
}
