package result

// Result is either Ok with a T or Err with an E.
//
// The zero value is Ok holding the zero T. A Result never changes variant in
// place except through whole-value assignment (Set, Take, or plain Go
// assignment).
type Result[T, E any] struct {
	c cell[T, E]
}

// Ok returns a success Result holding v.
func Ok[T, E any](v T) Result[T, E] {
	var r Result[T, E]
	r.c.constructOk(v)
	return r
}

// Err returns a failure Result holding e.
func Err[T, E any](e E) Result[T, E] {
	var r Result[T, E]
	r.c.constructErr(e)
	return r
}

// FromSuccess converts a success wrapper into a Result. The failure type
// comes first so it can be given explicitly: FromSuccess[string](Succeed(5)).
func FromSuccess[E, T any](s Success[T]) Result[T, E] {
	return Ok[T, E](s.value)
}

// FromFailure converts a failure wrapper into a Result:
// FromFailure[int](Fail("boom")).
func FromFailure[T, E any](f Failure[E]) Result[T, E] {
	return Err[T, E](f.value)
}

// Default returns Ok with the zero T, same as the zero Result.
func Default[T, E any]() Result[T, E] {
	var zero T
	return Ok[T, E](zero)
}

func (r Result[T, E]) IsOk() bool {
	return r.c.kind() == KindOk
}

func (r Result[T, E]) IsErr() bool {
	return r.c.kind() == KindErr
}

func (r Result[T, E]) Kind() Kind {
	return r.c.kind()
}

// Clone returns an independent copy. Payloads are copied with Go assignment,
// so reference types inside T or E stay shared.
func (r Result[T, E]) Clone() Result[T, E] {
	var out Result[T, E]
	out.c.assign(&r.c)
	return out
}

// Set replaces r with a copy of other.
func (r *Result[T, E]) Set(other Result[T, E]) {
	r.c.assign(&other.c)
}

// Take moves the contents out of r and resets r to Default.
func (r *Result[T, E]) Take() Result[T, E] {
	return Result[T, E]{c: r.c.take()}
}
