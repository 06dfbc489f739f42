package conduit

import "context"

// CollectSlice returns an accumulator that collects elements into a slice.
func CollectSlice[T any]() AccumulatorFunc[T, []T] {
	return func(elem T, acc []T) []T {
		return append(acc, elem)
	}
}

// CollectMap returns an accumulator that collects elements into a map.
// Elements are mapped using key and value, respectively.
// If a key is already in the map, the map entry will be overwritten.
func CollectMap[T any, K comparable, V any](key MapperFunc[T, K], value MapperFunc[T, V]) AccumulatorFunc[T, map[K]V] {
	return func(elem T, acc map[K]V) map[K]V {
		acc[key(elem)] = value(elem)
		return acc
	}
}

// CollectGroup returns an accumulator that collects elements into a group map.
// Elements will be grouped into slices according to key.
func CollectGroup[T any, K comparable, V any](key MapperFunc[T, K], value MapperFunc[T, V]) AccumulatorFunc[T, map[K][]V] {
	return func(elem T, acc map[K][]V) map[K][]V {
		k := key(elem)
		acc[k] = append(acc[k], value(elem))

		return acc
	}
}

// CollectPartition returns an accumulator that collects elements into a partition map.
// Elements will be grouped into slices according to pred.
func CollectPartition[T any, V any](pred PredicateFunc[T], value MapperFunc[T, V]) AccumulatorFunc[T, map[bool][]V] {
	return CollectGroup(MapperFunc[T, bool](pred), value)
}

// ReduceSlice pulls all elements from src and collects them into a slice.
func ReduceSlice[T any](ctx context.Context, src *Source[T]) ([]T, error) {
	return Reduce(ctx, src, nil, CollectSlice[T]())
}

// SinkVector pulls up to maxSize elements from src into a buffer allocated
// once up front, writing each element into the next free slot. It stops when
// the buffer is full or src is exhausted, whichever comes first, and returns
// a view over the filled slots. Elements beyond maxSize stay in src.
func SinkVector[T any](ctx context.Context, src *Source[T], maxSize int) ([]T, error) {
	if maxSize <= 0 {
		return nil, nil
	}

	buf := make([]T, maxSize)

	filled := 0
	for filled < maxSize {
		elem, ok, err := src.Next(ctx)
		if err != nil {
			return buf[:filled], err
		}

		if !ok {
			break
		}

		buf[filled] = elem
		filled++
	}

	return buf[:filled], nil
}

// ConduitVector returns a source that re-chunks src into slices of up to size
// elements, by repeatedly applying SinkVector. The final slice may be shorter
// if src is exhausted first; empty slices are never produced.
//
// If src fails mid-fill, the elements pulled so far are handed downstream as
// a final chunk, and the failure is surfaced on the following pull.
func ConduitVector[T any](src *Source[T], size int) *Source[[]T] {
	var pending error

	return derive(src, func(ctx context.Context) ([]T, bool, error) {
		if pending != nil {
			err := pending
			pending = nil

			return nil, false, err
		}

		vec, err := SinkVector(ctx, src, size)
		if err != nil {
			if len(vec) > 0 {
				pending = err
				return vec, true, nil
			}

			return nil, false, err
		}

		if len(vec) == 0 {
			return nil, false, nil
		}

		return vec, true, nil
	})
}
