package result

// Of converts Go's (value, error) convention into a Result. A nil error, or a
// typed nil pointer stored in the error, yields Ok.
func Of[T any](v T, err error) Result[T, error] {
	if IsNil(err) {
		return Ok[T, error](v)
	}
	return Err[T](err)
}

// Unpack returns both slots. Exactly one of them is meaningful, as reported
// by Kind.
func (r Result[T, E]) Unpack() (T, E) {
	return r.c.getOk(), r.c.getErr()
}

// ToError is the inverse of Of.
func ToError[T any](r Result[T, error]) (T, error) {
	if r.IsErr() {
		var zero T
		return zero, r.c.getErr()
	}
	return r.c.getOk(), nil
}
