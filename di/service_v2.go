package di

// ServiceV2 wraps a constructed value and nothing else. Wiring is plain
// field assignment done by the caller.
type ServiceV2[T any] struct {
	Val *T
}

// New wraps the value built by ctor.
func New[T any](ctor func() *T) ServiceV2[T] {
	return ServiceV2[T]{Val: ctor()}
}

// Value returns the constructed value pointer.
func (s ServiceV2[T]) Value() *T { return s.Val }
