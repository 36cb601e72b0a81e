package batch

import (
	"github.com/lguimbarda/min-batch/batch/core"
)

// TryTabulateInto fills dst with values built from their slot index,
// short-circuiting on the first error. Values built before a failure are
// destroyed per the build options.
func TryTabulateInto[T any](dst []T, f func(int) (T, error), opts ...Option[T]) error {
	b := core.NewBuilder(dst, opts...)
	defer b.Rollback()
	for i := 0; i < len(dst); i++ {
		v, err := f(i)
		if err != nil {
			return err
		}
		b.Put(v)
	}
	b.Commit()
	return nil
}

// TryTabulate builds a batch of n values from an index function,
// short-circuiting on the first error.
func TryTabulate[T any](n int, f func(int) (T, error), opts ...Option[T]) ([]T, error) {
	dst := make([]T, n)
	if err := TryTabulateInto(dst, f, opts...); err != nil {
		return nil, err
	}
	return dst, nil
}

// Tabulate builds a batch of n values from an index function that cannot
// fail. Values built before a panic in f are destroyed during unwinding.
func Tabulate[T any](n int, f func(int) T, opts ...Option[T]) []T {
	out, err := TryTabulate(n, func(i int) (T, error) {
		return f(i), nil
	}, opts...)
	if err != nil {
		panic("batch: transform without an error path returned an error")
	}
	return out
}

// TryFill builds a batch of n values from a generator, short-circuiting on
// the first error. The generator runs once per slot, in slot order, so
// stateful generators are well defined.
func TryFill[T any](n int, f func() (T, error), opts ...Option[T]) ([]T, error) {
	return TryTabulate(n, func(int) (T, error) {
		return f()
	}, opts...)
}

// Fill builds a batch of n values from a generator that cannot fail.
func Fill[T any](n int, f func() T, opts ...Option[T]) []T {
	return Tabulate(n, func(int) T {
		return f()
	}, opts...)
}

// Repeat builds a batch holding the same value n times.
func Repeat[T any](n int, value T) []T {
	return Tabulate(n, func(int) T {
		return value
	})
}

// Range builds the batch of integers from start (inclusive) to end
// (exclusive). When start >= end the batch is empty.
func Range(start, end int) []int {
	n := end - start
	if n < 0 {
		n = 0
	}
	return Tabulate(n, func(i int) int {
		return start + i
	})
}
