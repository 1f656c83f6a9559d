// Package bean is the accessor-style Fibonacci payload: nodes keep their
// dependencies in unexported fields behind getters and setters.
//
// It mirrors package plain node for node.
package bean

//go:generate go run ../../cmd/injgen -spec component.inject.json -out component.gen.go

type Fib1 struct{}

func NewFib1() *Fib1 { return new(Fib1) }

func (f *Fib1) Value() int { return 1 }

type Fib2 struct{}

func NewFib2() *Fib2 { return new(Fib2) }

func (f *Fib2) Value() int { return 1 }

type Fib3 struct {
	fib2 *Fib2
	fib1 *Fib1
}

func NewFib3(fib2 *Fib2, fib1 *Fib1) *Fib3 {
	f := new(Fib3)
	f.fib2 = fib2
	f.fib1 = fib1
	return f
}

func (f *Fib3) GetFib2() *Fib2 { return f.fib2 }

func (f *Fib3) GetFib1() *Fib1 { return f.fib1 }

func (f *Fib3) SetFib2(fib2 *Fib2) { f.fib2 = fib2 }

func (f *Fib3) SetFib1(fib1 *Fib1) { f.fib1 = fib1 }

func (f *Fib3) Value() int { return f.GetFib2().Value() + f.GetFib1().Value() }

type Fib4 struct {
	fib3 *Fib3
	fib2 *Fib2
}

func NewFib4(fib3 *Fib3, fib2 *Fib2) *Fib4 {
	f := new(Fib4)
	f.fib3 = fib3
	f.fib2 = fib2
	return f
}

func (f *Fib4) GetFib3() *Fib3 { return f.fib3 }

func (f *Fib4) GetFib2() *Fib2 { return f.fib2 }

func (f *Fib4) SetFib3(fib3 *Fib3) { f.fib3 = fib3 }

func (f *Fib4) SetFib2(fib2 *Fib2) { f.fib2 = fib2 }

func (f *Fib4) Value() int { return f.GetFib3().Value() + f.GetFib2().Value() }

type Fib5 struct {
	fib4 *Fib4
	fib3 *Fib3
}

func NewFib5(fib4 *Fib4, fib3 *Fib3) *Fib5 {
	f := new(Fib5)
	f.fib4 = fib4
	f.fib3 = fib3
	return f
}

func (f *Fib5) GetFib4() *Fib4 { return f.fib4 }

func (f *Fib5) GetFib3() *Fib3 { return f.fib3 }

func (f *Fib5) SetFib4(fib4 *Fib4) { f.fib4 = fib4 }

func (f *Fib5) SetFib3(fib3 *Fib3) { f.fib3 = fib3 }

func (f *Fib5) Value() int { return f.GetFib4().Value() + f.GetFib3().Value() }

type Fib6 struct {
	fib5 *Fib5
	fib4 *Fib4
}

func NewFib6(fib5 *Fib5, fib4 *Fib4) *Fib6 {
	f := new(Fib6)
	f.fib5 = fib5
	f.fib4 = fib4
	return f
}

func (f *Fib6) GetFib5() *Fib5 { return f.fib5 }

func (f *Fib6) GetFib4() *Fib4 { return f.fib4 }

func (f *Fib6) SetFib5(fib5 *Fib5) { f.fib5 = fib5 }

func (f *Fib6) SetFib4(fib4 *Fib4) { f.fib4 = fib4 }

func (f *Fib6) Value() int { return f.GetFib5().Value() + f.GetFib4().Value() }

type Fib7 struct {
	fib6 *Fib6
	fib5 *Fib5
}

func NewFib7(fib6 *Fib6, fib5 *Fib5) *Fib7 {
	f := new(Fib7)
	f.fib6 = fib6
	f.fib5 = fib5
	return f
}

func (f *Fib7) GetFib6() *Fib6 { return f.fib6 }

func (f *Fib7) GetFib5() *Fib5 { return f.fib5 }

func (f *Fib7) SetFib6(fib6 *Fib6) { f.fib6 = fib6 }

func (f *Fib7) SetFib5(fib5 *Fib5) { f.fib5 = fib5 }

func (f *Fib7) Value() int { return f.GetFib6().Value() + f.GetFib5().Value() }

// Fib8 is the root every subject resolves.
type Fib8 struct {
	fib7 *Fib7
	fib6 *Fib6
}

func NewFib8(fib7 *Fib7, fib6 *Fib6) *Fib8 {
	f := new(Fib8)
	f.fib7 = fib7
	f.fib6 = fib6
	return f
}

func (f *Fib8) GetFib7() *Fib7 { return f.fib7 }

func (f *Fib8) GetFib6() *Fib6 { return f.fib6 }

func (f *Fib8) SetFib7(fib7 *Fib7) { f.fib7 = fib7 }

func (f *Fib8) SetFib6(fib6 *Fib6) { f.fib6 = fib6 }

func (f *Fib8) Value() int { return f.GetFib7().Value() + f.GetFib6().Value() }

// Fib8Holder is a field-injection target for generated components.
type Fib8Holder struct {
	Fib8 *Fib8
}
