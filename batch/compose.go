package batch

// Through chains two fallible transforms together, creating a new transform
// that first applies f and then g to each element. The composition
// short-circuits: when f fails, g never runs for that element.
func Through[IN, MID, OUT any](f func(IN) (MID, error), g func(MID) (OUT, error)) func(IN) (OUT, error) {
	return func(v IN) (OUT, error) {
		mid, err := f(v)
		if err != nil {
			var zero OUT
			return zero, err
		}
		return g(mid)
	}
}

// Chain composes multiple transforms of the same type into a single
// transform. Transforms are applied in order from left to right.
// If no transforms are provided, returns an identity transform.
func Chain[T any](transforms ...func(T) (T, error)) func(T) (T, error) {
	return func(v T) (T, error) {
		for _, f := range transforms {
			var err error
			v, err = f(v)
			if err != nil {
				var zero T
				return zero, err
			}
		}
		return v, nil
	}
}

// Lift adapts an infallible transform to the fallible signature so it can
// be composed with Through and Chain.
func Lift[IN, OUT any](f func(IN) OUT) func(IN) (OUT, error) {
	return func(v IN) (OUT, error) {
		return f(v), nil
	}
}
