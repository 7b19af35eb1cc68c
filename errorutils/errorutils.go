package errorutils

// Returns the value passed in if there is no error, otherwise it will panic
// Only meant for data that is known-good at build time (embedded tables)
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}

	return value
}
