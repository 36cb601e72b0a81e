package core

import (
	"fmt"
)

// TryInto transforms src into dst element by element, short-circuiting on
// the first error. dst and src must have the same length; TryInto panics
// otherwise, since a length mismatch is a bug in the calling code rather
// than a data condition.
//
// The transform runs on src[0], src[1], ... in order. When f returns an
// error, elements past that point are never visited, every value already
// written to dst is destroyed and its slot zeroed (see Builder.Rollback),
// and the error is returned. When f panics, the same teardown runs
// during unwinding and the panic continues to the caller; converting panics
// to errors is a policy decision left to wrappers such as
// batcherrors.Recover. On success every dst slot holds its transformed
// value and ownership rests with the caller.
//
// TryInto adds no heap allocation of its own; with an array-backed dst the
// whole operation runs on fixed-size storage.
func TryInto[IN, OUT any](dst []OUT, src []IN, f func(IN) (OUT, error), opts ...Option[OUT]) error {
	if len(dst) != len(src) {
		panic(fmt.Sprintf("batch: destination length %d does not match source length %d", len(dst), len(src)))
	}
	b := NewBuilder(dst, opts...)
	defer b.Rollback()
	for _, v := range src {
		out, err := f(v)
		if err != nil {
			return err
		}
		b.Put(out)
	}
	b.Commit()
	return nil
}

// Try transforms src element by element into a new batch of the same
// length. It is the allocating convenience form of TryInto and shares its
// semantics: the first error or panic destroys everything built so far,
// and a caller never observes a partial batch.
func Try[IN, OUT any](src []IN, f func(IN) (OUT, error), opts ...Option[OUT]) ([]OUT, error) {
	dst := make([]OUT, len(src))
	if err := TryInto(dst, src, f, opts...); err != nil {
		return nil, err
	}
	return dst, nil
}

// Map transforms src with a transform that cannot fail. It is defined in
// terms of Try with an error branch that is statically unreachable, so the
// caller gets the batch without an error to check. The build options still
// matter: if f panics partway through, values built before the panic are
// destroyed during unwinding exactly as in Try.
func Map[IN, OUT any](src []IN, f func(IN) OUT, opts ...Option[OUT]) []OUT {
	dst, err := Try(src, liftInfallible(f), opts...)
	if err != nil {
		panic("batch: transform without an error path returned an error")
	}
	return dst
}

// MapInto is the non-allocating form of Map, writing into caller storage.
func MapInto[IN, OUT any](dst []OUT, src []IN, f func(IN) OUT, opts ...Option[OUT]) {
	if err := TryInto(dst, src, liftInfallible(f), opts...); err != nil {
		panic("batch: transform without an error path returned an error")
	}
}

// liftInfallible adapts an infallible transform to the fallible signature.
func liftInfallible[IN, OUT any](f func(IN) OUT) func(IN) (OUT, error) {
	return func(v IN) (OUT, error) {
		return f(v), nil
	}
}
