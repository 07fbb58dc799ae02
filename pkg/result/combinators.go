package result

// Map applies f to the success payload. An Err passes through with its
// payload unchanged.
func Map[T, T2, E any](r Result[T, E], f func(T) T2) Result[T2, E] {
	if r.IsOk() {
		return Ok[T2, E](f(r.c.getOk()))
	}
	return Err[T2, E](r.c.getErr())
}

// MapErr applies f to the failure payload. An Ok passes through unchanged.
func MapErr[T, E, E2 any](r Result[T, E], f func(E) E2) Result[T, E2] {
	if r.IsErr() {
		return Err[T, E2](f(r.c.getErr()))
	}
	return Ok[T, E2](r.c.getOk())
}

// And returns other if r is Ok, otherwise r's failure.
func And[T, T2, E any](r Result[T, E], other Result[T2, E]) Result[T2, E] {
	if r.IsOk() {
		return other
	}
	return Err[T2, E](r.c.getErr())
}

// AndThen returns f applied to the success payload, without wrapping it
// again. An Err passes through.
func AndThen[T, T2, E any](r Result[T, E], f func(T) Result[T2, E]) Result[T2, E] {
	if r.IsOk() {
		return f(r.c.getOk())
	}
	return Err[T2, E](r.c.getErr())
}

// Or returns other if r is Err, otherwise r's success.
func Or[T, E, E2 any](r Result[T, E], other Result[T, E2]) Result[T, E2] {
	if r.IsErr() {
		return other
	}
	return Ok[T, E2](r.c.getOk())
}

// OrElse returns f applied to the failure payload if r is Err.
func OrElse[T, E, E2 any](r Result[T, E], f func(E) Result[T, E2]) Result[T, E2] {
	if r.IsErr() {
		return f(r.c.getErr())
	}
	return Ok[T, E2](r.c.getOk())
}

// Match folds r into a single value.
func Match[T, E, R any](r Result[T, E], onOk func(T) R, onErr func(E) R) R {
	if r.IsOk() {
		return onOk(r.c.getOk())
	}
	return onErr(r.c.getErr())
}

// Flatten removes one level of nesting.
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	return AndThen(r, func(inner Result[T, E]) Result[T, E] { return inner })
}
