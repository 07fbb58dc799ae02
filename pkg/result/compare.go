package result

import (
	"cmp"
	"reflect"
)

// equatable is implemented by payloads that define their own equality.
type equatable[T any] interface {
	Equal(other T) bool
}

// Equal reports whether r and other hold the same variant with equal
// payloads. A payload type with an Equal(T) bool method is compared with it;
// otherwise == is used when the stored values are comparable. Payloads that
// cannot be compared, including interface payloads holding such values,
// never compare equal.
func (r Result[T, E]) Equal(other Result[T, E]) bool {
	if r.Kind() != other.Kind() {
		return false
	}
	if r.IsOk() {
		return payloadEqual(r.c.getOk(), other.c.getOk())
	}
	return payloadEqual(r.c.getErr(), other.c.getErr())
}

// EqualSuccess reports whether r is Ok and holds the wrapped value.
func (r Result[T, E]) EqualSuccess(s Success[T]) bool {
	return r.IsOk() && payloadEqual(r.c.getOk(), s.value)
}

// EqualFailure reports whether r is Err and holds the wrapped value.
func (r Result[T, E]) EqualFailure(f Failure[E]) bool {
	return r.IsErr() && payloadEqual(r.c.getErr(), f.value)
}

func payloadEqual[T any](a, b T) bool {
	av := any(a)
	if eq, ok := av.(equatable[T]); ok {
		return eq.Equal(b)
	}
	if !reflect.TypeFor[T]().Comparable() {
		return false
	}
	bv := any(b)
	if av == nil || bv == nil {
		return av == bv
	}
	// T may be an interface type whose dynamic values are not comparable.
	ra, rb := reflect.ValueOf(av), reflect.ValueOf(bv)
	if ra.Type() != rb.Type() || !ra.Comparable() || !rb.Comparable() {
		return false
	}
	return av == bv
}

// CompareFunc orders two Results that share a failure type. Every Err sorts
// before every Ok and two Errs compare equal regardless of payload; two Oks
// are ordered by cmpOk.
func CompareFunc[T, T2, E any](a Result[T, E], b Result[T2, E], cmpOk func(T, T2) int) int {
	switch {
	case a.IsErr() && b.IsErr():
		return 0
	case a.IsErr():
		return -1
	case b.IsErr():
		return 1
	}
	return cmpOk(a.c.getOk(), b.c.getOk())
}

// Compare is CompareFunc with the natural ordering of T.
func Compare[T cmp.Ordered, E any](a, b Result[T, E]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

func Less[T cmp.Ordered, E any](a, b Result[T, E]) bool {
	return Compare(a, b) < 0
}

func LessOrEqual[T cmp.Ordered, E any](a, b Result[T, E]) bool {
	return Compare(a, b) <= 0
}

func Greater[T cmp.Ordered, E any](a, b Result[T, E]) bool {
	return Compare(a, b) > 0
}

func GreaterOrEqual[T cmp.Ordered, E any](a, b Result[T, E]) bool {
	return Compare(a, b) >= 0
}
