// Package batch provides fallible, panic-safe, element-wise transformation
// over fixed-size collections in Go.
//
// The central guarantee: however a build ends - success, an error from the
// transform, or a panic unwinding through it - every value produced so far
// is destroyed exactly once, and a caller never observes a partially built
// batch. Construction is all-or-nothing.
//
// This package is the primary user-facing API. Most users should only
// need to import this package. The batch/core subpackage contains the
// low-level builder that adapters are assembled from and is rarely
// needed directly.
package batch

import (
	"github.com/lguimbarda/min-batch/batch/core"
)

// Type aliases for core build abstractions.
// These allow users to work with the library without importing core directly.
type (
	// Builder incrementally fills fixed-size storage and guarantees
	// teardown of everything built so far on every exit path.
	Builder[T any] = core.Builder[T]

	// Hooks holds typed observation callbacks for a build.
	Hooks[T any] = core.Hooks[T]

	// Option configures a build: its drop function and its hooks.
	Option[T any] = core.Option[T]
)

// Builder and option constructors - wrappers around core functions.

// NewBuilder creates a Builder over the caller's destination slice.
func NewBuilder[T any](dst []T, opts ...Option[T]) *Builder[T] {
	return core.NewBuilder(dst, opts...)
}

// WithDrop sets the drop function used to destroy values on rollback.
func WithDrop[T any](drop func(T)) Option[T] {
	return core.WithDrop(drop)
}

// WithHooks attaches observation hooks to a build.
func WithHooks[T any](hooks Hooks[T]) Option[T] {
	return core.WithHooks(hooks)
}

// Transform operations.

// Try transforms src element by element, short-circuiting on the first
// error. Either every element transforms and the full batch is returned, or
// the values built before the failure are destroyed and only the error
// remains. A panic in f triggers the same teardown before propagating.
func Try[IN, OUT any](src []IN, f func(IN) (OUT, error), opts ...Option[OUT]) ([]OUT, error) {
	return core.Try(src, f, opts...)
}

// TryInto is Try writing into caller storage, typically an array slice.
// dst and src must have the same length.
func TryInto[IN, OUT any](dst []OUT, src []IN, f func(IN) (OUT, error), opts ...Option[OUT]) error {
	return core.TryInto(dst, src, f, opts...)
}

// Map transforms src with a transform that cannot fail. Values built before
// a panic in f are still destroyed during unwinding.
func Map[IN, OUT any](src []IN, f func(IN) OUT, opts ...Option[OUT]) []OUT {
	return core.Map(src, f, opts...)
}

// MapInto is Map writing into caller storage.
func MapInto[IN, OUT any](dst []OUT, src []IN, f func(IN) OUT, opts ...Option[OUT]) {
	core.MapInto(dst, src, f, opts...)
}

// Indexed variants.

// TryIndexed is Try for transforms that also need the element's position.
func TryIndexed[IN, OUT any](src []IN, f func(int, IN) (OUT, error), opts ...Option[OUT]) ([]OUT, error) {
	index := 0
	return core.Try(src, func(v IN) (OUT, error) {
		out, err := f(index, v)
		index++
		return out, err
	}, opts...)
}

// MapIndexed is Map for transforms that also need the element's position.
func MapIndexed[IN, OUT any](src []IN, f func(int, IN) OUT, opts ...Option[OUT]) []OUT {
	index := 0
	return core.Map(src, func(v IN) OUT {
		out := f(index, v)
		index++
		return out
	}, opts...)
}
