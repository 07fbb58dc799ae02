package result

// Propagate supports early return from a function that itself returns a
// Result with the same failure type:
//
//	n, early, failed := result.Propagate[Config](parsePort(s))
//	if failed {
//		return early
//	}
//
// When r is Ok, v is its payload and failed is false. When r is Err, early
// carries the failure retyped for the enclosing function.
func Propagate[T2, T, E any](r Result[T, E]) (v T, early Result[T2, E], failed bool) {
	if r.IsErr() {
		return v, Err[T2, E](r.c.getErr()), true
	}
	return r.c.getOk(), early, false
}
