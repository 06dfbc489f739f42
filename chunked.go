package conduit

import (
	"context"

	"golang.org/x/exp/constraints"
)

// The *Elems operations treat a stream of chunks as the stream of the
// elements inside them. They behave as if chunk boundaries did not exist,
// without ever flattening the stream: a chunk straddling an element boundary
// is split exactly at that boundary, its consumed prefix is accounted for,
// and its unconsumed suffix is pushed back onto the stream for the next
// consumer.

// headOf returns the first element of a non-empty chunk.
func headOf[S Sequence[S, E], E any](chunk S) E {
	var head E

	chunk.Each(func(elem E) bool {
		head = elem
		return false
	})

	return head
}

// DropElems discards the first n elements pulled from src, across chunk
// boundaries. The unconsumed suffix of the final chunk is pushed back onto
// src, where the next consumer of src will find it.
func DropElems[S Sequence[S, E], E any](ctx context.Context, src *Source[S], n int) error {
	remaining := n

	for remaining > 0 {
		chunk, ok, err := src.Next(ctx)
		if err != nil {
			return err
		}

		if !ok {
			return nil
		}

		taken, rest := chunk.SplitAt(remaining)
		remaining -= taken.Len()

		if !rest.IsEmpty() {
			src.Unread(rest)
			return nil
		}
	}

	return nil
}

// DropWhileElems discards elements pulled from src for as long as pred
// matches, across chunk boundaries. The unconsumed suffix of the final chunk,
// starting with the first non-matching element, is pushed back onto src.
func DropWhileElems[S Sequence[S, E], E any](ctx context.Context, src *Source[S], pred PredicateFunc[E]) error {
	for {
		chunk, ok, err := src.Next(ctx)
		if err != nil {
			return err
		}

		if !ok {
			return nil
		}

		_, rest := chunk.Span(pred)

		if !rest.IsEmpty() {
			src.Unread(rest)
			return nil
		}
	}
}

// takeElems bounds src to its first n elements. Each chunk consumed past the
// bound is split at the boundary, with the unused suffix pushed back onto
// src. If consumed is non-nil, it is incremented by the number of elements
// handed downstream.
func takeElems[S Sequence[S, E], E any](src *Source[S], n int, consumed *int) *Source[S] {
	remaining := n

	return derive(src, func(ctx context.Context) (S, bool, error) {
		var zero S

		for remaining > 0 {
			chunk, ok, err := src.Next(ctx)
			if err != nil || !ok {
				return zero, false, err
			}

			taken, rest := chunk.SplitAt(remaining)
			remaining -= taken.Len()

			if !rest.IsEmpty() {
				src.Unread(rest)
			}

			if taken.IsEmpty() {
				continue
			}

			if consumed != nil {
				*consumed += taken.Len()
			}

			return taken, true, nil
		}

		return zero, false, nil
	})
}

// TakeElems returns a source that produces the first n elements pulled from
// src, preserving chunk boundaries. A chunk straddling the bound is split
// there, and its unused suffix is pushed back onto src. Once n elements have
// been produced, no further input is pulled. Like Take, TakeElems bounds
// supply only; see TakeExactlyElems for the draining variant.
func TakeElems[S Sequence[S, E], E any](src *Source[S], n int) *Source[S] {
	return takeElems[S, E](src, n, nil)
}

// TakeWhileElems returns a source that produces elements pulled from src for
// as long as pred matches, preserving chunk boundaries. The suffix of the
// final chunk, starting with the first non-matching element, is pushed back
// onto src.
func TakeWhileElems[S Sequence[S, E], E any](src *Source[S], pred PredicateFunc[E]) *Source[S] {
	done := false

	return derive(src, func(ctx context.Context) (S, bool, error) {
		var zero S

		for !done {
			chunk, ok, err := src.Next(ctx)
			if err != nil || !ok {
				return zero, false, err
			}

			taken, rest := chunk.Span(pred)

			if !rest.IsEmpty() {
				src.Unread(rest)
				done = true
			}

			if taken.IsEmpty() {
				continue
			}

			return taken, true, nil
		}

		return zero, false, nil
	})
}

// FilterElems returns a source that produces the chunks pulled from src with
// the elements not matching filter removed, preserving element order. Chunks
// whose elements are all removed are forwarded empty rather than suppressed.
func FilterElems[S Sequence[S, E], E any](src *Source[S], filter PredicateFunc[E]) *Source[S] {
	return derive(src, func(ctx context.Context) (S, bool, error) {
		var zero S

		chunk, ok, err := src.Next(ctx)
		if err != nil || !ok {
			return zero, false, err
		}

		return chunk.Filter(filter), true, nil
	})
}

// MapElems returns a source that produces the chunks pulled from src with
// mapp applied to each element.
func MapElems[S Sequence[S, E], E any](src *Source[S], mapp func(elem E) E) *Source[S] {
	return derive(src, func(ctx context.Context) (S, bool, error) {
		var zero S

		chunk, ok, err := src.Next(ctx)
		if err != nil || !ok {
			return zero, false, err
		}

		return chunk.Map(mapp), true, nil
	})
}

// FlattenElems returns a source that produces every element inside the chunks
// pulled from src, one at a time, in order.
func FlattenElems[S Sequence[S, E], E any](src *Source[S]) *Source[E] {
	var rest S

	return derive(src, func(ctx context.Context) (E, bool, error) {
		var zero E

		for rest.IsEmpty() {
			chunk, ok, err := src.Next(ctx)
			if err != nil || !ok {
				return zero, false, err
			}

			rest = chunk
		}

		head, tail := rest.SplitAt(1)
		rest = tail

		return headOf[S, E](head), true, nil
	})
}

// EachElems calls each for each element inside the chunks pulled from src,
// in order, until src is exhausted.
func EachElems[S Sequence[S, E], E any](ctx context.Context, src *Source[S], each ConsumerFunc[E]) error {
	for {
		chunk, ok, err := src.Next(ctx)
		if err != nil {
			return err
		}

		if !ok {
			return nil
		}

		chunk.Each(func(elem E) bool {
			each(elem)
			return true
		})
	}
}

// ReduceElems folds every element inside the chunks pulled from src, left to
// right across chunk boundaries, into accumulator acc, returning the final
// accumulator. Chunk boundaries are invisible to the result.
func ReduceElems[S Sequence[S, E], E any, A any](ctx context.Context, src *Source[S], acc A, reduce AccumulatorFunc[E, A]) (A, error) {
	err := EachElems[S, E](ctx, src, func(elem E) {
		acc = reduce(elem, acc)
	})

	return acc, err
}

// AnyMatchElems returns true as soon as pred returns true for an element
// inside a chunk pulled from src. It stops pulling as soon as a match is
// found, even mid-chunk; the remainder of that chunk is consumed, not pushed
// back.
func AnyMatchElems[S Sequence[S, E], E any](ctx context.Context, src *Source[S], pred PredicateFunc[E]) (bool, error) {
	for {
		chunk, ok, err := src.Next(ctx)
		if err != nil {
			return false, err
		}

		if !ok {
			return false, nil
		}

		matched := false

		chunk.Each(func(elem E) bool {
			matched = pred(elem)
			return !matched
		})

		if matched {
			return true, nil
		}
	}
}

// AllMatchElems returns true if pred returns true for all elements inside the
// chunks pulled from src. It stops pulling as soon as a non-matching element
// is found, even mid-chunk; the remainder of that chunk is consumed, not
// pushed back.
func AllMatchElems[S Sequence[S, E], E any](ctx context.Context, src *Source[S], pred PredicateFunc[E]) (bool, error) {
	mismatch, err := AnyMatchElems[S, E](ctx, src, func(elem E) bool {
		return !pred(elem)
	})

	return !mismatch, err
}

// ContainsElems returns true if an element inside a chunk pulled from src
// equals elem.
func ContainsElems[S Sequence[S, E], E comparable](ctx context.Context, src *Source[S], elem E) (bool, error) {
	return AnyMatchElems[S, E](ctx, src, func(other E) bool {
		return other == elem
	})
}

// CountElems returns the number of elements inside the chunks pulled from src.
func CountElems[S Sequence[S, E], E any](ctx context.Context, src *Source[S]) (int, error) {
	count := 0

	for {
		chunk, ok, err := src.Next(ctx)
		if err != nil {
			return count, err
		}

		if !ok {
			return count, nil
		}

		count += chunk.Len()
	}
}

// SumElems returns the sum of all elements inside the chunks pulled from src.
func SumElems[S Sequence[S, E], E Number](ctx context.Context, src *Source[S]) (E, error) {
	var sum E

	err := EachElems[S, E](ctx, src, func(elem E) {
		sum += elem
	})

	return sum, err
}

// ProductElems returns the product of all elements inside the chunks pulled
// from src. The product of an empty stream is 1.
func ProductElems[S Sequence[S, E], E Number](ctx context.Context, src *Source[S]) (E, error) {
	product := E(1)

	err := EachElems[S, E](ctx, src, func(elem E) {
		product *= elem
	})

	return product, err
}

// MaximumElems returns the largest element inside the chunks pulled from src.
// It returns false if the stream holds no elements.
func MaximumElems[S Sequence[S, E], E constraints.Ordered](ctx context.Context, src *Source[S]) (E, bool, error) {
	var best E

	found := false

	err := EachElems[S, E](ctx, src, func(elem E) {
		if !found || elem > best {
			best = elem
		}

		found = true
	})

	return best, found, err
}

// MinimumElems returns the smallest element inside the chunks pulled from
// src. It returns false if the stream holds no elements.
func MinimumElems[S Sequence[S, E], E constraints.Ordered](ctx context.Context, src *Source[S]) (E, bool, error) {
	var best E

	found := false

	err := EachElems[S, E](ctx, src, func(elem E) {
		if !found || elem < best {
			best = elem
		}

		found = true
	})

	return best, found, err
}

// FirstElems returns the first element inside the chunks pulled from src,
// consuming it. The remainder of its chunk is pushed back onto src. Leading
// empty chunks are consumed and discarded. It returns false if the stream
// holds no elements.
func FirstElems[S Sequence[S, E], E any](ctx context.Context, src *Source[S]) (E, bool, error) {
	var zero E

	for {
		chunk, ok, err := src.Next(ctx)
		if err != nil || !ok {
			return zero, false, err
		}

		if chunk.IsEmpty() {
			continue
		}

		head, tail := chunk.SplitAt(1)

		if !tail.IsEmpty() {
			src.Unread(tail)
		}

		return headOf[S, E](head), true, nil
	}
}

// LastElems returns the last element inside the chunks pulled from src,
// consuming the whole stream. It returns false if the stream holds no
// elements.
func LastElems[S Sequence[S, E], E any](ctx context.Context, src *Source[S]) (E, bool, error) {
	var last E

	found := false

	err := EachElems[S, E](ctx, src, func(elem E) {
		last = elem
		found = true
	})

	return last, found, err
}

// NullElems returns true if no element remains inside any chunk pulled from
// src. Leading empty chunks are consumed and discarded; the first non-empty
// chunk is pushed back onto src, so the next consumer of src still sees it.
func NullElems[S Sequence[S, E], E any](ctx context.Context, src *Source[S]) (bool, error) {
	for {
		chunk, ok, err := src.Next(ctx)
		if err != nil {
			return false, err
		}

		if !ok {
			return true, nil
		}

		if chunk.IsEmpty() {
			continue
		}

		src.Unread(chunk)

		return false, nil
	}
}
