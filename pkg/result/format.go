package result

import "fmt"

// String renders r as Ok(<payload>), Ok() for Unit, or Err(<payload>).
// The format is meant for logs and is not stable.
func (r Result[T, E]) String() string {
	switch r.Kind() {
	case KindOk:
		return renderOk(r.c.getOk())
	case KindErr:
		return fmt.Sprintf("Err(%v)", r.c.getErr())
	default:
		return "Result(invalid)"
	}
}
