package conduit

import (
	"context"
	"errors"
	"io"
)

// A ReleaseError reports a failure from a resource release action. It is kept
// distinct from any failure of the streaming body, so that neither masks the
// other: when both fail, the returned error wraps both and matches both with
// errors.As / errors.Is.
type ReleaseError struct {
	// Err is the error returned by the release action.
	Err error
}

// Error implements error.
func (e *ReleaseError) Error() string {
	return "release resource: " + e.Err.Error()
}

// Unwrap returns the release action's error.
func (e *ReleaseError) Unwrap() error {
	return e.Err
}

// WithResource acquires a resource via alloc, runs body with it, and runs
// release exactly once on every exit path: normal completion, a failure in
// body, or a panic in body. A failure in release is wrapped in a ReleaseError
// and joined with body's failure, if any.
func WithResource[R any](ctx context.Context, alloc func(ctx context.Context) (R, error), release func(res R) error, body func(ctx context.Context, res R) error) (err error) {
	res, err := alloc(ctx)
	if err != nil {
		return err
	}

	released := false

	releaseOnce := func() error {
		if released {
			return nil
		}

		released = true

		if relErr := release(res); relErr != nil {
			return &ReleaseError{Err: relErr}
		}

		return nil
	}

	defer func() {
		// runs the release even if body panics
		if relErr := releaseOnce(); relErr != nil {
			err = errors.Join(err, relErr)
		}
	}()

	return body(ctx, res)
}

// SourceResource returns a source that acquires a resource via alloc on the
// first pull, produces chunks by calling read, and releases the resource
// exactly once: when read reports exhaustion, when read fails, or when the
// source is closed early by a downstream stage. A failure in release is
// wrapped in a ReleaseError; if read fails as well, the two are joined.
func SourceResource[R any, C any](alloc func(ctx context.Context) (R, error), release func(res R) error, read func(ctx context.Context, res R) (C, bool, error)) *Source[C] {
	var res R

	acquired := false
	failed := false

	releaseOnce := func() error {
		if !acquired {
			return nil
		}

		acquired = false

		if relErr := release(res); relErr != nil {
			return &ReleaseError{Err: relErr}
		}

		return nil
	}

	out := NewSource(func(ctx context.Context) (C, bool, error) {
		var zero C

		// a failed source stays terminal; it never re-acquires the resource
		if failed {
			return zero, false, nil
		}

		if !acquired {
			var err error

			res, err = alloc(ctx)
			if err != nil {
				failed = true
				return zero, false, err
			}

			acquired = true
		}

		chunk, ok, err := read(ctx, res)
		if err != nil {
			failed = true
			return zero, false, errors.Join(err, releaseOnce())
		}

		if !ok {
			return zero, false, releaseOnce()
		}

		return chunk, true, nil
	})

	out.closer = releaseOnce

	return out
}

// SinkResource acquires a resource via alloc, writes every chunk pulled from
// src to it via write, and releases the resource exactly once on every exit
// path, per WithResource.
func SinkResource[R any, C any](ctx context.Context, src *Source[C], alloc func(ctx context.Context) (R, error), release func(res R) error, write func(ctx context.Context, res R, chunk C) error) error {
	return WithResource(ctx, alloc, release, func(ctx context.Context, res R) error {
		for {
			chunk, ok, err := src.Next(ctx)
			if err != nil {
				return err
			}

			if !ok {
				return nil
			}

			if err := write(ctx, res, chunk); err != nil {
				return err
			}
		}
	})
}

// SourceReader returns a source that produces byte chunks of up to bufSize
// bytes read from r. The reader is externally owned and is not closed by the
// source. Each chunk is a freshly allocated buffer, so ownership passes to
// the consumer.
//
// A read may return final data together with a failure; the chunk is handed
// downstream first, and the failure is surfaced on the following pull.
func SourceReader(r io.Reader, bufSize int) *Source[Slice[byte]] {
	var pending error

	return NewSource(func(_ context.Context) (Slice[byte], bool, error) {
		if pending != nil {
			err := pending
			pending = nil

			return nil, false, err
		}

		buf := make([]byte, bufSize)

		n, err := r.Read(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			pending = err
		}

		if n > 0 {
			return buf[:n], true, nil
		}

		if pending != nil {
			err := pending
			pending = nil

			return nil, false, err
		}

		return nil, false, nil
	})
}

// SinkWriter writes every byte chunk pulled from src to w. The writer is
// externally owned and is not closed by the sink.
func SinkWriter(ctx context.Context, src *Source[Slice[byte]], w io.Writer) error {
	for {
		chunk, ok, err := src.Next(ctx)
		if err != nil {
			return err
		}

		if !ok {
			return nil
		}

		if _, err := w.Write(chunk); err != nil {
			return err
		}
	}
}
