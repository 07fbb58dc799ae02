package result

// Kind is the discriminant of a Result.
type Kind uint8

const (
	KindOk Kind = iota
	KindErr
)

func (k Kind) String() string {
	switch k {
	case KindOk:
		return "Ok"
	case KindErr:
		return "Err"
	default:
		return "Kind(invalid)"
	}
}
