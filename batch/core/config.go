package core

// BuildConfig holds configuration assembled from Options for one build.
type BuildConfig[T any] struct {
	// Drop releases a constructed value during Rollback. nil means the
	// element type owns no resources and teardown only zeroes slots.
	Drop func(T)

	// Hooks holds observation callbacks, invoked in FIFO order.
	Hooks []Hooks[T]
}

// Option is a functional option for configuring a build.
type Option[T any] func(*BuildConfig[T])

// WithDrop sets the drop function used to destroy constructed values during
// Rollback. A later WithDrop replaces an earlier one.
func WithDrop[T any](drop func(T)) Option[T] {
	return func(c *BuildConfig[T]) {
		c.Drop = drop
	}
}

// WithHooks attaches observation hooks to the build.
// Multiple calls to WithHooks compose in FIFO order - hooks from earlier
// calls are invoked before hooks from later calls.
func WithHooks[T any](hooks Hooks[T]) Option[T] {
	return func(c *BuildConfig[T]) {
		c.Hooks = append(c.Hooks, hooks)
	}
}

// applyOptions applies functional options to an empty config.
func applyOptions[T any](opts ...Option[T]) BuildConfig[T] {
	var cfg BuildConfig[T]
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
