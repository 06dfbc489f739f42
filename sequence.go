package conduit

// Foldable is an ordered, finite container of elements.
type Foldable[E any] interface {
	// Len returns the number of elements in the container.
	Len() int

	// Each calls fn for each element, in order, stopping early if fn returns false.
	Each(fn func(elem E) bool)
}

// Sequence is an ordered container of elements that supports splitting into a
// prefix and a suffix. Splitting never duplicates or drops elements: for any
// split, prefix followed by suffix is the original sequence.
//
// Sequence is self-referential in its first type parameter so that splits and
// filters preserve the concrete chunk type.
type Sequence[S any, E any] interface {
	Foldable[E]

	// IsEmpty returns true if the sequence contains no elements.
	IsEmpty() bool

	// SplitAt splits the sequence at index n, returning the first n elements
	// and the rest. n is clamped to [0, Len()].
	SplitAt(n int) (S, S)

	// Span splits the sequence at the first element not matching pred,
	// returning the longest matching prefix and the rest.
	Span(pred func(elem E) bool) (S, S)

	// Filter returns the elements matching keep, in order.
	Filter(keep func(elem E) bool) S

	// Map returns the sequence with fn applied to each element.
	Map(fn func(elem E) E) S
}

// clampSplit clamps a split index to [0, length].
func clampSplit(n int, length int) int {
	if n < 0 {
		return 0
	}

	if n > length {
		return length
	}

	return n
}

// Slice is a slice-backed Sequence.
type Slice[E any] []E

// Len implements Foldable.
func (s Slice[E]) Len() int {
	return len(s)
}

// Each implements Foldable.
func (s Slice[E]) Each(fn func(elem E) bool) {
	for _, elem := range s {
		if !fn(elem) {
			return
		}
	}
}

// IsEmpty implements Sequence.
func (s Slice[E]) IsEmpty() bool {
	return len(s) == 0
}

// SplitAt implements Sequence.
// Both halves alias the original backing array; no elements are copied.
func (s Slice[E]) SplitAt(n int) (Slice[E], Slice[E]) {
	n = clampSplit(n, len(s))
	return s[:n], s[n:]
}

// Span implements Sequence.
func (s Slice[E]) Span(pred func(elem E) bool) (Slice[E], Slice[E]) {
	for i, elem := range s {
		if !pred(elem) {
			return s[:i], s[i:]
		}
	}

	return s, s[len(s):]
}

// Filter implements Sequence.
func (s Slice[E]) Filter(keep func(elem E) bool) Slice[E] {
	out := make(Slice[E], 0, len(s))

	for _, elem := range s {
		if keep(elem) {
			out = append(out, elem)
		}
	}

	return out
}

// Map implements Sequence.
func (s Slice[E]) Map(fn func(elem E) E) Slice[E] {
	out := make(Slice[E], len(s))

	for i, elem := range s {
		out[i] = fn(elem)
	}

	return out
}

// Str is a string-backed Sequence of bytes.
type Str string

// Len implements Foldable.
func (s Str) Len() int {
	return len(s)
}

// Each implements Foldable.
func (s Str) Each(fn func(elem byte) bool) {
	for i := 0; i < len(s); i++ {
		if !fn(s[i]) {
			return
		}
	}
}

// IsEmpty implements Sequence.
func (s Str) IsEmpty() bool {
	return len(s) == 0
}

// SplitAt implements Sequence.
func (s Str) SplitAt(n int) (Str, Str) {
	n = clampSplit(n, len(s))
	return s[:n], s[n:]
}

// Span implements Sequence.
func (s Str) Span(pred func(elem byte) bool) (Str, Str) {
	for i := 0; i < len(s); i++ {
		if !pred(s[i]) {
			return s[:i], s[i:]
		}
	}

	return s, s[len(s):]
}

// Filter implements Sequence.
func (s Str) Filter(keep func(elem byte) bool) Str {
	out := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		if keep(s[i]) {
			out = append(out, s[i])
		}
	}

	return Str(out)
}

// Map implements Sequence.
func (s Str) Map(fn func(elem byte) byte) Str {
	out := make([]byte, len(s))

	for i := 0; i < len(s); i++ {
		out[i] = fn(s[i])
	}

	return Str(out)
}
