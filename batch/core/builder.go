package core

import (
	"fmt"
)

// Builder incrementally fills a fixed-size destination with constructed
// values. At every point the live values form a contiguous prefix of the
// destination, and Rollback destroys exactly that prefix: each live slot is
// zeroed and its value handed to the drop function, in index order, exactly
// once.
//
// The intended shape mirrors database/sql.Tx:
//
//	b := core.NewBuilder(dst, core.WithDrop(release))
//	defer b.Rollback()
//	for _, v := range src {
//		out, err := f(v)
//		if err != nil {
//			return err
//		}
//		b.Put(out)
//	}
//	b.Commit()
//
// Because the teardown is registered with defer before the first value is
// produced, it runs on normal return, on early error return, and during
// panic unwinding alike. Commit disarms it, so the deferred call is a no-op
// on the success path.
//
// A Builder is single-use and not safe for concurrent use.
type Builder[T any] struct {
	dst     []T
	n       int // live prefix length: dst[:n] holds constructed values
	drop    func(T)
	hooks   hookInvoker[T]
	retired bool // Commit or Rollback has run
}

// NewBuilder creates a Builder over the caller's destination slice.
// The destination is typically backed by an array (arr[:]), which keeps the
// storage fixed-size and free of heap allocation. The Builder owns dst until
// Commit: only dst[:Len()] holds constructed values, and nothing past the
// live prefix is ever read.
func NewBuilder[T any](dst []T, opts ...Option[T]) *Builder[T] {
	cfg := applyOptions(opts...)
	return &Builder[T]{
		dst:   dst,
		drop:  cfg.Drop,
		hooks: newHookInvoker(cfg.Hooks),
	}
}

// Len returns the number of slots currently holding a constructed value.
func (b *Builder[T]) Len() int { return b.n }

// Cap returns the total number of slots.
func (b *Builder[T]) Cap() int { return len(b.dst) }

// Put writes v into the next free slot and extends the live prefix over it.
// The slot is recorded as live before any OnPut hook runs, so a value whose
// hook panics is still destroyed during the unwinding rollback.
//
// Put panics if the builder is full or retired. Both indicate a bug in the
// calling code, not a data condition.
func (b *Builder[T]) Put(v T) {
	if b.retired {
		panic("batch: Put on retired builder")
	}
	if b.n == len(b.dst) {
		panic(fmt.Sprintf("batch: Put on full builder (capacity %d)", len(b.dst)))
	}
	i := b.n
	b.dst[i] = v
	b.n = i + 1
	b.hooks.invokePut(i, v)
}

// Commit ends the build successfully. Ownership of every constructed value
// transfers to the returned slice, which is the same storage passed to
// NewBuilder, and the deferred Rollback becomes a no-op.
//
// Commit panics if any slot is still unfilled: a partially built batch has
// no success form. It also panics on a retired builder.
func (b *Builder[T]) Commit() []T {
	if b.retired {
		panic("batch: Commit on retired builder")
	}
	if b.n != len(b.dst) {
		panic(fmt.Sprintf("batch: Commit of partial batch (%d of %d slots filled)", b.n, len(b.dst)))
	}
	b.retired = true
	b.hooks.invokeCommit(b.n)
	return b.dst
}

// Rollback destroys the live prefix in index order: each slot is zeroed and
// its value handed to the drop function. Rollback is idempotent and a no-op
// after Commit, so it is safe to defer unconditionally.
//
// The prefix is marked dead before any destruction runs. If a drop function
// panics partway through, the remaining values are abandoned rather than
// destroyed, but no value is ever destroyed twice. Hook panics are recovered;
// observation cannot break the teardown guarantee.
func (b *Builder[T]) Rollback() {
	if b.retired {
		return
	}
	b.retired = true
	live := b.n
	b.n = 0
	var zero T
	for i := 0; i < live; i++ {
		v := b.dst[i]
		b.dst[i] = zero
		b.hooks.invokeDropSafe(i, v)
		if b.drop != nil {
			b.drop(v)
		}
	}
	b.hooks.invokeRollbackSafe(live)
}
