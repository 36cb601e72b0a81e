package combine

import (
	"fmt"

	"github.com/lguimbarda/min-batch/batch/core"
)

// Pair holds one element from each of two zipped batches.
type Pair[A, B any] struct {
	A A
	B B
}

// TryZipInto combines the sources pairwise into dst, which must have the
// same length. It stops at the first element the combiner rejects; values
// already written to dst are destroyed before the error is returned.
// Sources of different lengths are a caller bug and panic.
func TryZipInto[A, B, OUT any](dst []OUT, a []A, b []B, f func(A, B) (OUT, error), opts ...core.Option[OUT]) error {
	if len(a) != len(b) {
		panic(fmt.Sprintf("batch: zip sources have different lengths (%d and %d)", len(a), len(b)))
	}
	if len(dst) != len(a) {
		panic(fmt.Sprintf("batch: destination length %d does not match source length %d", len(dst), len(a)))
	}
	bld := core.NewBuilder(dst, opts...)
	defer bld.Rollback()
	for i := range a {
		out, err := f(a[i], b[i])
		if err != nil {
			return err
		}
		bld.Put(out)
	}
	bld.Commit()
	return nil
}

// TryZip combines the sources pairwise into a new batch. On error the
// partial batch is destroyed and a nil slice is returned.
func TryZip[A, B, OUT any](a []A, b []B, f func(A, B) (OUT, error), opts ...core.Option[OUT]) ([]OUT, error) {
	dst := make([]OUT, len(a))
	if err := TryZipInto(dst, a, b, f, opts...); err != nil {
		return nil, err
	}
	return dst, nil
}

// ZipWith combines the sources pairwise with an infallible combiner.
func ZipWith[A, B, OUT any](a []A, b []B, f func(A, B) OUT, opts ...core.Option[OUT]) []OUT {
	out, err := TryZip(a, b, func(x A, y B) (OUT, error) {
		return f(x, y), nil
	}, opts...)
	if err != nil {
		panic("batch: combine without an error path returned an error")
	}
	return out
}

// Zip pairs the sources element by element.
func Zip[A, B any](a []A, b []B, opts ...core.Option[Pair[A, B]]) []Pair[A, B] {
	return ZipWith(a, b, func(x A, y B) Pair[A, B] {
		return Pair[A, B]{A: x, B: y}
	}, opts...)
}

// TryZip3 combines three equal-length sources element by element.
func TryZip3[A, B, C, OUT any](a []A, b []B, c []C, f func(A, B, C) (OUT, error), opts ...core.Option[OUT]) ([]OUT, error) {
	if len(a) != len(b) || len(a) != len(c) {
		panic(fmt.Sprintf("batch: zip sources have different lengths (%d, %d and %d)", len(a), len(b), len(c)))
	}
	dst := make([]OUT, len(a))
	bld := core.NewBuilder(dst, opts...)
	defer bld.Rollback()
	for i := range a {
		out, err := f(a[i], b[i], c[i])
		if err != nil {
			return nil, err
		}
		bld.Put(out)
	}
	bld.Commit()
	return dst, nil
}
