package attester

import "fmt"

// Kind classifies an attester failure.
type Kind int

const (
	KindGeneric Kind = iota
	KindService
	KindSession
	KindFetch
)

func (k Kind) String() string {
	switch k {
	case KindService:
		return "service"
	case KindSession:
		return "session"
	case KindFetch:
		return "fetch"
	default:
		return "generic"
	}
}

// Error is returned by every Client operation.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("attester %s: %s error: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
