package observe

import (
	"github.com/lguimbarda/min-batch/batch/core"
)

// This file provides convenience options for single-event observers.
// The hook system is type-parameterized, so observers attach to builds of
// the specific element type they want to observe.

// WithPutHook returns an Option whose callback fires for each value written.
func WithPutHook[T any](callback func(index int, value T)) core.Option[T] {
	return core.WithHooks(core.Hooks[T]{
		OnPut: callback,
	})
}

// WithDropHook returns an Option whose callback fires for each value
// destroyed during rollback.
func WithDropHook[T any](callback func(index int, value T)) core.Option[T] {
	return core.WithHooks(core.Hooks[T]{
		OnDrop: callback,
	})
}

// WithCommitHook returns an Option whose callback fires when the build
// commits, with the committed batch size.
func WithCommitHook[T any](callback func(size int)) core.Option[T] {
	return core.WithHooks(core.Hooks[T]{
		OnCommit: callback,
	})
}

// WithRollbackHook returns an Option whose callback fires when the build
// rolls back, with the number of values destroyed.
func WithRollbackHook[T any](callback func(dropped int)) core.Option[T] {
	return core.WithHooks(core.Hooks[T]{
		OnRollback: callback,
	})
}
