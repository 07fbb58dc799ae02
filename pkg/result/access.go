package result

// Ok returns the success payload and true, or the zero T and false.
func (r Result[T, E]) Ok() (T, bool) {
	if r.IsOk() {
		return r.c.getOk(), true
	}
	var zero T
	return zero, false
}

// Err returns the failure payload and true, or the zero E and false.
func (r Result[T, E]) Err() (E, bool) {
	if r.IsErr() {
		return r.c.getErr(), true
	}
	var zero E
	return zero, false
}

// OkRef returns a pointer to the success payload stored in r, or nil if r is
// Err. Writes through the pointer update r.
func (r *Result[T, E]) OkRef() *T {
	if r.IsOk() {
		return r.c.okRef()
	}
	return nil
}

// ErrRef returns a pointer to the failure payload stored in r, or nil if r is
// Ok.
func (r *Result[T, E]) ErrRef() *E {
	if r.IsErr() {
		return r.c.errRef()
	}
	return nil
}

// OkUnchecked returns the success slot without looking at the discriminant.
// The caller must already know r is Ok; on an Err the returned value is
// meaningless.
func (r Result[T, E]) OkUnchecked() T {
	return r.c.getOk()
}

// ErrUnchecked is the failure-side counterpart of OkUnchecked.
func (r Result[T, E]) ErrUnchecked() E {
	return r.c.getErr()
}

// TryOk returns the success payload or terminates the process if r is Err.
func (r Result[T, E]) TryOk() T {
	if !r.IsOk() {
		terminate("called TryOk on an Err value", r)
	}
	return r.c.getOk()
}

// TryErr returns the failure payload or terminates the process if r is Ok.
func (r Result[T, E]) TryErr() E {
	if !r.IsErr() {
		terminate("called TryErr on an Ok value", r)
	}
	return r.c.getErr()
}

// Unwrap returns the success payload or terminates the process if r is Err.
func (r Result[T, E]) Unwrap() T {
	if !r.IsOk() {
		terminate("called Unwrap on an Err value", r)
	}
	return r.c.getOk()
}

// Expect is Unwrap with a caller supplied diagnostic.
func (r Result[T, E]) Expect(msg string) T {
	if !r.IsOk() {
		terminate(msg, r)
	}
	return r.c.getOk()
}

func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.IsOk() {
		return r.c.getOk()
	}
	return fallback
}

// UnwrapOrDefault returns the success payload or the zero T.
func (r Result[T, E]) UnwrapOrDefault() T {
	if r.IsOk() {
		return r.c.getOk()
	}
	var zero T
	return zero
}

// UnwrapOrElse returns the success payload or computes one from the failure.
func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if r.IsOk() {
		return r.c.getOk()
	}
	return f(r.c.getErr())
}
