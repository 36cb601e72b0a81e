package fast

// Map transforms every element with a plain loop.
// Panics are NOT recovered and nothing is destroyed on the way out.
func Map[IN, OUT any](src []IN, f func(IN) OUT) []OUT {
	dst := make([]OUT, len(src))
	for i, v := range src {
		dst[i] = f(v)
	}
	return dst
}

// MapInto transforms src into dst in place. dst must be at least as long
// as src; only the slice bounds themselves are checked.
func MapInto[IN, OUT any](dst []OUT, src []IN, f func(IN) OUT) {
	for i, v := range src {
		dst[i] = f(v)
	}
}

// Try transforms with a fallible function. On error the values already
// written are abandoned where they lie, not destroyed.
func Try[IN, OUT any](src []IN, f func(IN) (OUT, error)) ([]OUT, error) {
	dst := make([]OUT, len(src))
	for i, v := range src {
		out, err := f(v)
		if err != nil {
			return nil, err
		}
		dst[i] = out
	}
	return dst, nil
}

// Tabulate builds a batch from an index function.
func Tabulate[T any](n int, f func(int) T) []T {
	dst := make([]T, n)
	for i := range dst {
		dst[i] = f(i)
	}
	return dst
}
