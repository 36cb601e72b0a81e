package batcherrors

// Recover wraps a transform so that a panic in it is captured and returned
// as an ErrPanic instead of unwinding the build. The build still fails and
// tears down as usual; only the failure's form changes from panic to error:
//
//	out, err := batch.Try(src, batcherrors.Recover(parse))
func Recover[IN, OUT any](f func(IN) (OUT, error)) func(IN) (OUT, error) {
	return func(v IN) (out OUT, err error) {
		defer func() {
			if r := recover(); r != nil {
				var zero OUT
				out = zero
				err = NewPanicError(r)
			}
		}()
		return f(v)
	}
}

// OnError wraps a transform with an error handler called for side effects.
// The error still fails the build unchanged.
func OnError[IN, OUT any](f func(IN) (OUT, error), handler func(error)) func(IN) (OUT, error) {
	return func(v IN) (OUT, error) {
		out, err := f(v)
		if err != nil {
			handler(err)
		}
		return out, err
	}
}

// MapError wraps a transform so that its errors are rewritten by mapper
// before they fail the build. Useful for decorating low-level errors with
// batch-level context.
func MapError[IN, OUT any](f func(IN) (OUT, error), mapper func(error) error) func(IN) (OUT, error) {
	return func(v IN) (OUT, error) {
		out, err := f(v)
		if err != nil {
			var zero OUT
			return zero, mapper(err)
		}
		return out, nil
	}
}

// CatchError wraps a transform so that errors matching a predicate are
// handled in place. If the handler returns a value, it substitutes for the
// failed element and the build continues. If the handler returns an error,
// that error fails the build. Non-matching errors pass through unchanged.
func CatchError[IN, OUT any](f func(IN) (OUT, error), predicate func(error) bool, handler func(error) (OUT, error)) func(IN) (OUT, error) {
	return func(v IN) (OUT, error) {
		out, err := f(v)
		if err != nil && predicate(err) {
			return handler(err)
		}
		return out, err
	}
}
