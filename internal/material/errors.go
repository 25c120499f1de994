package material

import "fmt"

// Error reports out-of-range or mutually inconsistent material
// parameters detected at construction time.
type Error struct {
	msg string
}

func (e *Error) Error() string {
	return e.msg
}

func errorf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}
