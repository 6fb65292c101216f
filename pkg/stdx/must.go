package stdx

// Must0 panics when err is not nil.
func Must0(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns v, or panics when err is not nil. It is meant for call sites
// where an error can only come from a programming mistake, such as retrieving
// a box with a type that was checked a line earlier.
//
//	v := stdx.Must1(box.Get[int](b))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Must2 is Must1 for functions returning two values and an error.
func Must2[T, V any](t T, v V, err error) (T, V) {
	if err != nil {
		panic(err)
	}
	return t, v
}

// Must3 is Must1 for functions returning three values and an error.
func Must3[T, V, U any](t T, v V, u U, err error) (T, V, U) {
	if err != nil {
		panic(err)
	}
	return t, v, u
}
