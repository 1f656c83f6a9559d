// Package bench measures setup/use/teardown rounds of one injection approach
// and reduces the collected samples.
//
// A round is three timed calls: setup builds an instance (a container, a
// component, a started app), use performs the injection against it and
// teardown releases it. Each call is timed on its own with the monotonic
// clock.
package bench

import (
	"errors"
	"reflect"
	"time"
)

// ErrNoInstance is returned when setup reports success but yields a nil
// instance.
var ErrNoInstance = errors.New("bench: setup returned no instance")

// Phase names one of the three timed calls of a round.
type Phase string

const (
	PhaseSetup     Phase = "setup"
	PhaseInjection Phase = "injection"
	PhaseTeardown  Phase = "teardown"
)

// PhaseError reports which phase of a round failed.
type PhaseError struct {
	Phase Phase
	Err   error
}

func (e *PhaseError) Error() string { return "bench: " + string(e.Phase) + ": " + e.Err.Error() }

func (e *PhaseError) Unwrap() error { return e.Err }

// Runner is one measurable variant. LibraryBenchmark holds its two variants
// through this interface so they may work on different instance types.
type Runner interface {
	Run() error
	Rounds() int
	Result() TestResult
}

// VariantBenchmark wraps the setup/use/teardown triple of one variant and
// accumulates one sample per phase for every successful round.
//
// The three sample slices always have the same length. It is not safe for
// concurrent use.
type VariantBenchmark[T any] struct {
	setup    func() (T, error)
	use      func(T) error
	teardown func(T) error

	setupTimes     []time.Duration
	injectionTimes []time.Duration
	teardownTimes  []time.Duration
}

// NewVariant panics if any of the three operations is nil.
func NewVariant[T any](setup func() (T, error), use func(T) error, teardown func(T) error) *VariantBenchmark[T] {
	if setup == nil || use == nil || teardown == nil {
		panic("bench: NewVariant needs setup, use and teardown")
	}
	return &VariantBenchmark[T]{setup: setup, use: use, teardown: teardown}
}

// Run measures one round. Samples are appended only when all three phases
// succeed; on failure the error is returned as a *PhaseError and the
// remaining phases are skipped.
func (v *VariantBenchmark[T]) Run() error {
	var inst T

	setupTime, err := Measure(func() error {
		var err error
		inst, err = v.setup()
		return err
	})
	if err != nil {
		return &PhaseError{Phase: PhaseSetup, Err: err}
	}
	if isNil(inst) {
		return &PhaseError{Phase: PhaseSetup, Err: ErrNoInstance}
	}

	injectionTime, err := Measure(func() error { return v.use(inst) })
	if err != nil {
		return &PhaseError{Phase: PhaseInjection, Err: err}
	}

	teardownTime, err := Measure(func() error { return v.teardown(inst) })
	if err != nil {
		return &PhaseError{Phase: PhaseTeardown, Err: err}
	}

	v.setupTimes = append(v.setupTimes, setupTime)
	v.injectionTimes = append(v.injectionTimes, injectionTime)
	v.teardownTimes = append(v.teardownTimes, teardownTime)
	return nil
}

// Rounds returns the number of recorded rounds.
func (v *VariantBenchmark[T]) Rounds() int { return len(v.setupTimes) }

// SetupTimes returns a copy of the setup samples in round order.
func (v *VariantBenchmark[T]) SetupTimes() []time.Duration { return clone(v.setupTimes) }

// InjectionTimes returns a copy of the injection samples in round order.
func (v *VariantBenchmark[T]) InjectionTimes() []time.Duration { return clone(v.injectionTimes) }

// TeardownTimes returns a copy of the teardown samples in round order.
func (v *VariantBenchmark[T]) TeardownTimes() []time.Duration { return clone(v.teardownTimes) }

// Result returns a snapshot that shares no memory with v.
func (v *VariantBenchmark[T]) Result() TestResult {
	return TestResult{
		Setup:     v.SetupTimes(),
		Injection: v.InjectionTimes(),
		Teardown:  v.TeardownTimes(),
	}
}

func clone(in []time.Duration) []time.Duration {
	out := make([]time.Duration, len(in))
	copy(out, in)
	return out
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
