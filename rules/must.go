package rules

// Must returns v and panics if err is non-nil. It is intended for rules
// and groups built from constants, e.g. Must(Range('0', '9')).
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
