package conduit

import (
	"context"

	"golang.org/x/exp/constraints"
)

// ConsumerFunc consumes element elem.
type ConsumerFunc[T any] func(elem T)

// AccumulatorFunc folds element elem into the accumulator acc, returning acc,
// or a new accumulator.
type AccumulatorFunc[T any, A any] func(elem T, acc A) A

// Number is a constraint for element types with arithmetic sums and products.
type Number interface {
	constraints.Integer | constraints.Float
}

// Each calls each for each element pulled from src, until src is exhausted.
func Each[T any](ctx context.Context, src *Source[T], each ConsumerFunc[T]) error {
	for {
		elem, ok, err := src.Next(ctx)
		if err != nil {
			return err
		}

		if !ok {
			return nil
		}

		each(elem)
	}
}

// Reduce calls reduce for each element pulled from src, folding it into
// accumulator acc, returning the final accumulator.
func Reduce[T any, A any](ctx context.Context, src *Source[T], acc A, reduce AccumulatorFunc[T, A]) (A, error) {
	err := Each(ctx, src, func(elem T) {
		acc = reduce(elem, acc)
	})

	return acc, err
}

// AnyMatch returns true as soon as pred returns true for an element pulled
// from src, that is, an element matches. It stops pulling as soon as a match
// is found; the matching element is consumed.
func AnyMatch[T any](ctx context.Context, src *Source[T], pred PredicateFunc[T]) (bool, error) {
	for {
		elem, ok, err := src.Next(ctx)
		if err != nil {
			return false, err
		}

		if !ok {
			return false, nil
		}

		if pred(elem) {
			return true, nil
		}
	}
}

// AllMatch returns true if pred returns true for all elements pulled from src,
// that is, all elements match. It stops pulling as soon as a non-matching
// element is found; that element is consumed.
func AllMatch[T any](ctx context.Context, src *Source[T], pred PredicateFunc[T]) (bool, error) {
	for {
		elem, ok, err := src.Next(ctx)
		if err != nil {
			return false, err
		}

		if !ok {
			return true, nil
		}

		if !pred(elem) {
			return false, nil
		}
	}
}

// Contains returns true if an element pulled from src equals elem.
func Contains[T comparable](ctx context.Context, src *Source[T], elem T) (bool, error) {
	return AnyMatch(ctx, src, func(other T) bool {
		return other == elem
	})
}

// Count returns the number of elements pulled from src.
func Count[T any](ctx context.Context, src *Source[T]) (int, error) {
	count := 0

	err := Each(ctx, src, func(_ T) {
		count++
	})

	return count, err
}

// Sum returns the sum of all elements pulled from src.
func Sum[T Number](ctx context.Context, src *Source[T]) (T, error) {
	var sum T

	err := Each(ctx, src, func(elem T) {
		sum += elem
	})

	return sum, err
}

// Product returns the product of all elements pulled from src.
// The product of an empty stream is 1.
func Product[T Number](ctx context.Context, src *Source[T]) (T, error) {
	product := T(1)

	err := Each(ctx, src, func(elem T) {
		product *= elem
	})

	return product, err
}

// Maximum returns the largest element pulled from src.
// It returns false if src is already exhausted.
func Maximum[T constraints.Ordered](ctx context.Context, src *Source[T]) (T, bool, error) {
	var best T

	found := false

	err := Each(ctx, src, func(elem T) {
		if !found || elem > best {
			best = elem
		}

		found = true
	})

	return best, found, err
}

// Minimum returns the smallest element pulled from src.
// It returns false if src is already exhausted.
func Minimum[T constraints.Ordered](ctx context.Context, src *Source[T]) (T, bool, error) {
	var best T

	found := false

	err := Each(ctx, src, func(elem T) {
		if !found || elem < best {
			best = elem
		}

		found = true
	})

	return best, found, err
}

// First returns the first element pulled from src, consuming it.
// It returns false if src is already exhausted.
func First[T any](ctx context.Context, src *Source[T]) (T, bool, error) {
	return src.Next(ctx)
}

// Last returns the last element pulled from src, consuming the whole stream.
// It returns false if src is already exhausted.
func Last[T any](ctx context.Context, src *Source[T]) (T, bool, error) {
	var last T

	found := false

	err := Each(ctx, src, func(elem T) {
		last = elem
		found = true
	})

	return last, found, err
}

// Null returns true if src is exhausted, without consuming any element: a
// pulled element is pushed back, so the next consumer of src still sees it.
func Null[T any](ctx context.Context, src *Source[T]) (bool, error) {
	elem, ok, err := src.Next(ctx)
	if err != nil {
		return false, err
	}

	if !ok {
		return true, nil
	}

	src.Unread(elem)

	return false, nil
}
