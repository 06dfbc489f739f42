package conduit

import (
	"context"
	"errors"
)

// NextFunc pulls the next element of a stream.
// It returns false once the stream is exhausted; exhaustion is not an error.
type NextFunc[T any] func(ctx context.Context) (T, bool, error)

// Source is a pull-based stream of elements.
// Every element is produced on demand by a call to Next, and exactly one
// previously pulled element may be pushed back with Unread, to be delivered
// again by the following Next.
type Source[T any] struct {
	next    NextFunc[T]
	closer  func() error
	buf     T
	buffed  bool
	drained bool
	closed  bool
}

// NewSource returns a source that pulls elements by calling next.
func NewSource[T any](next NextFunc[T]) *Source[T] {
	return &Source[T]{next: next}
}

// derive returns a source that pulls elements by calling next,
// and forwards Close to the upstream source.
func derive[T any, U any](upstream *Source[T], next NextFunc[U]) *Source[U] {
	return &Source[U]{next: next, closer: upstream.Close}
}

// Next pulls the next element.
// It returns false once the stream is exhausted. A pushed-back element is
// delivered before any new element is pulled from the underlying stream.
func (s *Source[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T

	if contextDone(ctx) {
		return zero, false, context.Cause(ctx)
	}

	if s.buffed {
		elem := s.buf
		s.buf = zero
		s.buffed = false

		return elem, true, nil
	}

	if s.drained {
		return zero, false, nil
	}

	elem, ok, err := s.next(ctx)
	if err != nil {
		return zero, false, err
	}

	if !ok {
		s.drained = true
		return zero, false, nil
	}

	return elem, true, nil
}

// Unread pushes elem back onto the front of the stream.
// The next call to Next returns elem; reconsumption is indistinguishable from
// data that was never pulled. At most one element may be pending at a time;
// pushing a second one panics.
func (s *Source[T]) Unread(elem T) {
	if s.buffed {
		panic("conduit: unread element already pending")
	}

	s.buf = elem
	s.buffed = true
}

// Close releases any resources held by the stream.
// It is safe to call Close more than once; only the first call has an effect.
// Sources derived from other sources forward Close upstream.
func (s *Source[T]) Close() error {
	if s.closed {
		return nil
	}

	s.closed = true

	if s.closer == nil {
		return nil
	}

	return s.closer()
}

// SourceSlice returns a source that produces the elements of the given slices, in order.
func SourceSlice[T any](slices ...[]T) *Source[T] {
	outer, inner := 0, 0

	return NewSource(func(_ context.Context) (T, bool, error) {
		var zero T

		for outer < len(slices) {
			if inner < len(slices[outer]) {
				elem := slices[outer][inner]
				inner++

				return elem, true, nil
			}

			outer++
			inner = 0
		}

		return zero, false, nil
	})
}

// SourceFunc returns a source that produces elements by repeatedly calling gen
// until it returns false.
func SourceFunc[T any](gen func() (T, bool)) *Source[T] {
	return NewSource(func(_ context.Context) (T, bool, error) {
		elem, ok := gen()
		return elem, ok, nil
	})
}

// Join returns a source that produces the elements produced by the given
// sources, in order. Closing the joined source closes all of them.
func Join[T any](sources ...*Source[T]) *Source[T] {
	current := 0

	out := NewSource(func(ctx context.Context) (T, bool, error) {
		var zero T

		for current < len(sources) {
			elem, ok, err := sources[current].Next(ctx)
			if err != nil {
				return zero, false, err
			}

			if ok {
				return elem, true, nil
			}

			current++
		}

		return zero, false, nil
	})

	out.closer = func() error {
		var errs []error
		for _, src := range sources {
			errs = append(errs, src.Close())
		}

		return errors.Join(errs...)
	}

	return out
}
