package conduit

import "context"

// InnerPipeline consumes a bounded view of a stream and produces a result.
// It may stop pulling at any point; whatever it leaves behind within the
// bound is drained by the exact-consumption wrapper that invoked it.
type InnerPipeline[T any, R any] func(ctx context.Context, src *Source[T]) (R, error)

// TakeExactly runs inner against a view of src truncated to its first n
// elements, then drains whatever part of those n elements inner did not
// consume. Exactly min(n, available) elements are removed from src, no matter
// how early inner stopped, so the next consumer of src starts right after the
// bound. Compare Take, which bounds supply but leaves unconsumed elements in
// the stream.
//
// If inner fails, the failure is returned as is and no draining happens.
func TakeExactly[T any, R any](ctx context.Context, src *Source[T], n int, inner InnerPipeline[T, R]) (R, error) {
	var zero R

	consumed := 0

	bounded := derive(src, func(ctx context.Context) (T, bool, error) {
		var zeroT T

		if consumed >= n {
			return zeroT, false, nil
		}

		elem, ok, err := src.Next(ctx)
		if err != nil || !ok {
			return zeroT, false, err
		}

		consumed++

		return elem, true, nil
	})

	result, err := inner(ctx, bounded)
	if err != nil {
		return zero, err
	}

	for {
		_, ok, err := bounded.Next(ctx)
		if err != nil {
			return zero, err
		}

		if !ok {
			break
		}
	}

	if consumed > n {
		panic("conduit: bounded view consumed past its bound")
	}

	return result, nil
}

// TakeExactlyElems is TakeExactly over a stream of chunks, counting the
// elements inside them: it runs inner against a view of src truncated to its
// first n elements, then drains whatever part of those n elements inner did
// not consume. A chunk straddling the bound is split there and its unused
// suffix is pushed back onto src, so exactly min(n, available) elements are
// removed from src.
//
// If inner fails, the failure is returned as is and no draining happens.
func TakeExactlyElems[S Sequence[S, E], E any, R any](ctx context.Context, src *Source[S], n int, inner InnerPipeline[S, R]) (R, error) {
	var zero R

	consumed := 0

	bounded := takeElems[S, E](src, n, &consumed)

	result, err := inner(ctx, bounded)
	if err != nil {
		return zero, err
	}

	for {
		_, ok, err := bounded.Next(ctx)
		if err != nil {
			return zero, err
		}

		if !ok {
			break
		}
	}

	if consumed > n {
		panic("conduit: bounded view consumed past its bound")
	}

	return result, nil
}
