// Package conduit provides a set of operations on pull-based streams of elements.
// Streams form a pipeline of operations that elements are being pulled through.
//
// Streams are constructed by creating an initial Source, which can produce elements
// from slices, readers, scoped resources, or any arbitrary pull function.
//
// Elements may then be operated upon using mapping, filtering, and windowing
// operations (which are intermediate Sources wrapping their upstream). Streams of
// chunks, that is, ordered containers of elements such as Slice and Str, have a
// parallel family of element-wise operations (the *Elems functions) that behave as
// if chunk boundaries did not exist, without ever flattening the stream.
//
// Finally, the elements are consumed by terminal operations, such as reducing them
// into slices or accumulators, checking for matching elements, or simply iterating
// over them. A terminal operation pulls only as much input as it needs; anything it
// pulled but did not consume is pushed back onto the stream, so a sibling consumer
// picks up exactly where the previous one stopped.
//
// Control passes strictly in "downstream asks, upstream answers" order. There is no
// concurrency between stages: a stage computes only while a downstream stage is
// waiting on its Next call. Canceling the context passed to Next short-circuits the
// whole pipeline.
//
// Streams are always lazy, meaning that a source will produce a new element only
// after a downstream stage has pulled the previous one.
package conduit
