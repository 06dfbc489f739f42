package conduit

import "context"

// MapperFunc maps element elem to type U.
type MapperFunc[T any, U any] func(elem T) U

// PredicateFunc returns true if elem matches a predicate.
type PredicateFunc[T any] func(elem T) bool

// Map returns a source that calls mapp for each element pulled from src,
// mapping it to type U.
func Map[T any, U any](src *Source[T], mapp MapperFunc[T, U]) *Source[U] {
	return derive(src, func(ctx context.Context) (U, bool, error) {
		var zero U

		elem, ok, err := src.Next(ctx)
		if err != nil || !ok {
			return zero, false, err
		}

		return mapp(elem), true, nil
	})
}

// Filter returns a source that calls filter for each element pulled from src,
// and only produces elements for which filter returns true.
func Filter[T any](src *Source[T], filter PredicateFunc[T]) *Source[T] {
	return derive(src, func(ctx context.Context) (T, bool, error) {
		var zero T

		for {
			elem, ok, err := src.Next(ctx)
			if err != nil || !ok {
				return zero, false, err
			}

			if filter(elem) {
				return elem, true, nil
			}
		}
	})
}

// Take returns a source that produces the same elements as src, in order, up
// to n elements. It bounds supply only: elements it never gets pulled for
// remain in src. See TakeExactly for the draining variant.
func Take[T any](src *Source[T], n int) *Source[T] {
	remaining := n

	return derive(src, func(ctx context.Context) (T, bool, error) {
		var zero T

		if remaining <= 0 {
			return zero, false, nil
		}

		elem, ok, err := src.Next(ctx)
		if err != nil || !ok {
			return zero, false, err
		}

		remaining--

		return elem, true, nil
	})
}

// Drop returns a source that produces the same elements as src, in order,
// skipping the first n elements.
func Drop[T any](src *Source[T], n int) *Source[T] {
	remaining := n

	return derive(src, func(ctx context.Context) (T, bool, error) {
		var zero T

		for remaining > 0 {
			_, ok, err := src.Next(ctx)
			if err != nil || !ok {
				return zero, false, err
			}

			remaining--
		}

		return src.Next(ctx)
	})
}

// TakeWhile returns a source that produces elements from src for as long as
// pred matches. The first non-matching element is pushed back onto src, where
// the next consumer of src will find it.
func TakeWhile[T any](src *Source[T], pred PredicateFunc[T]) *Source[T] {
	done := false

	return derive(src, func(ctx context.Context) (T, bool, error) {
		var zero T

		if done {
			return zero, false, nil
		}

		elem, ok, err := src.Next(ctx)
		if err != nil || !ok {
			return zero, false, err
		}

		if !pred(elem) {
			src.Unread(elem)
			done = true

			return zero, false, nil
		}

		return elem, true, nil
	})
}

// DropWhile returns a source that skips elements from src for as long as pred
// matches, then produces every remaining element, starting with the first
// non-matching one.
func DropWhile[T any](src *Source[T], pred PredicateFunc[T]) *Source[T] {
	dropping := true

	return derive(src, func(ctx context.Context) (T, bool, error) {
		var zero T

		for {
			elem, ok, err := src.Next(ctx)
			if err != nil || !ok {
				return zero, false, err
			}

			if dropping && pred(elem) {
				continue
			}

			dropping = false

			return elem, true, nil
		}
	})
}

// Peek returns a source that calls peek for each element pulled from src, in
// order, and produces the same elements.
func Peek[T any](src *Source[T], peek ConsumerFunc[T]) *Source[T] {
	return derive(src, func(ctx context.Context) (T, bool, error) {
		elem, ok, err := src.Next(ctx)
		if err != nil || !ok {
			return elem, false, err
		}

		peek(elem)

		return elem, true, nil
	})
}
