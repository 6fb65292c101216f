package stdx

// Zero returns the zero value of T. It reads better than a named variable
// on error returns of generic functions.
func Zero[T any]() T {
	var zero T
	return zero
}
