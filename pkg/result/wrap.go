package result

import "fmt"

// Unit is the empty success payload, for operations that succeed without data.
type Unit struct{}

// Success carries a success payload until it becomes a Result.
type Success[T any] struct {
	value T
}

// Failure carries a failure payload until it becomes a Result.
type Failure[E any] struct {
	value E
}

// Succeed wraps v as a success payload.
func Succeed[T any](v T) Success[T] {
	return Success[T]{value: v}
}

// OkUnit is the success wrapper for Unit.
func OkUnit() Success[Unit] {
	return Success[Unit]{}
}

// Fail wraps e as a failure payload.
func Fail[E any](e E) Failure[E] {
	return Failure[E]{value: e}
}

func (s Success[T]) Value() T {
	return s.value
}

func (f Failure[E]) Value() E {
	return f.value
}

func (s Success[T]) String() string {
	return renderOk(s.value)
}

func (f Failure[E]) String() string {
	return fmt.Sprintf("Err(%v)", f.value)
}

func renderOk[T any](v T) string {
	if _, ok := any(v).(Unit); ok {
		return "Ok()"
	}
	return fmt.Sprintf("Ok(%v)", v)
}
