package core

// Hooks holds typed observation callbacks for a build.
// All fields are optional - nil means no observation for that event.
// Hooks are invoked synchronously during the build, so they should be
// fast to avoid slowing construction down.
//
// OnPut and OnCommit run on the ordinary build path and may panic; a panic
// unwinds through the build like any other, and the deferred Rollback still
// destroys every live value. OnDrop and OnRollback run inside Rollback
// itself, so panics there are recovered rather than allowed to interrupt
// teardown.
type Hooks[T any] struct {
	OnPut      func(index int, value T) // Slot index filled with value
	OnDrop     func(index int, value T) // Slot index destroyed during rollback
	OnCommit   func(size int)           // Build succeeded with size values
	OnRollback func(dropped int)        // Teardown finished after destroying dropped values
}

// hookInvoker wraps the configured hook sets for efficient invocation.
// It caches whether specific hook types exist to avoid repeated nil checks.
type hookInvoker[T any] struct {
	hookSets    []Hooks[T]
	hasPut      bool
	hasDrop     bool
	hasCommit   bool
	hasRollback bool
}

// newHookInvoker creates a hook invoker for the given hook sets.
// This is called once at build start to cache hook existence flags.
func newHookInvoker[T any](hookSets []Hooks[T]) hookInvoker[T] {
	invoker := hookInvoker[T]{hookSets: hookSets}

	// Check which hook types exist
	for _, h := range hookSets {
		if h.OnPut != nil {
			invoker.hasPut = true
		}
		if h.OnDrop != nil {
			invoker.hasDrop = true
		}
		if h.OnCommit != nil {
			invoker.hasCommit = true
		}
		if h.OnRollback != nil {
			invoker.hasRollback = true
		}
	}

	return invoker
}

// invokePut calls all OnPut hooks in FIFO order.
func (h *hookInvoker[T]) invokePut(index int, value T) {
	if !h.hasPut {
		return
	}
	for _, hooks := range h.hookSets {
		if hooks.OnPut != nil {
			hooks.OnPut(index, value)
		}
	}
}

// invokeCommit calls all OnCommit hooks in FIFO order.
func (h *hookInvoker[T]) invokeCommit(size int) {
	if !h.hasCommit {
		return
	}
	for _, hooks := range h.hookSets {
		if hooks.OnCommit != nil {
			hooks.OnCommit(size)
		}
	}
}

// invokeDropSafe calls all OnDrop hooks in FIFO order, recovering panics.
// Drop hooks run inside Rollback, where a panicking hook must not be able
// to stop the rest of the teardown.
func (h *hookInvoker[T]) invokeDropSafe(index int, value T) {
	if !h.hasDrop {
		return
	}
	for _, hooks := range h.hookSets {
		if hooks.OnDrop != nil {
			invokeDropRecovered(hooks.OnDrop, index, value)
		}
	}
}

// invokeRollbackSafe calls all OnRollback hooks in FIFO order, recovering panics.
func (h *hookInvoker[T]) invokeRollbackSafe(dropped int) {
	if !h.hasRollback {
		return
	}
	for _, hooks := range h.hookSets {
		if hooks.OnRollback != nil {
			invokeRollbackRecovered(hooks.OnRollback, dropped)
		}
	}
}

func invokeDropRecovered[T any](hook func(int, T), index int, value T) {
	defer func() {
		_ = recover()
	}()
	hook(index, value)
}

func invokeRollbackRecovered(hook func(int), dropped int) {
	defer func() {
		_ = recover()
	}()
	hook(dropped)
}

// SafeHooks wraps Hooks[T] to recover from panics in hook functions.
// Use this when hooks are user-provided and panics should not abort the build.
type SafeHooks[T any] struct {
	Hooks[T]
	panicHandler func(any) // Called when a hook panics
}

// NewSafeHooks creates SafeHooks from regular Hooks.
// If panicHandler is nil, panics are silently recovered.
func NewSafeHooks[T any](hooks Hooks[T], panicHandler func(any)) SafeHooks[T] {
	if panicHandler == nil {
		panicHandler = func(any) {} // Silent recovery
	}

	safe := SafeHooks[T]{
		panicHandler: panicHandler,
	}

	// Wrap each hook with panic recovery
	if hooks.OnPut != nil {
		originalPut := hooks.OnPut
		safe.OnPut = func(index int, value T) {
			defer func() {
				if r := recover(); r != nil {
					safe.panicHandler(r)
				}
			}()
			originalPut(index, value)
		}
	}

	if hooks.OnDrop != nil {
		originalDrop := hooks.OnDrop
		safe.OnDrop = func(index int, value T) {
			defer func() {
				if r := recover(); r != nil {
					safe.panicHandler(r)
				}
			}()
			originalDrop(index, value)
		}
	}

	if hooks.OnCommit != nil {
		originalCommit := hooks.OnCommit
		safe.OnCommit = func(size int) {
			defer func() {
				if r := recover(); r != nil {
					safe.panicHandler(r)
				}
			}()
			originalCommit(size)
		}
	}

	if hooks.OnRollback != nil {
		originalRollback := hooks.OnRollback
		safe.OnRollback = func(dropped int) {
			defer func() {
				if r := recover(); r != nil {
					safe.panicHandler(r)
				}
			}()
			originalRollback(dropped)
		}
	}

	return safe
}
