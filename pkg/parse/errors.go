package parse

import (
	"errors"
	"fmt"
)

// ErrMalformed is the sentinel for markup the parser cannot consume.
// Match with errors.Is; the concrete *Error carries the byte offset.
var ErrMalformed = errors.New("malformed markup")

// Error reports malformed markup with the byte offset of the problem.
type Error struct {
	Offset int
	Msg    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("malformed markup at offset %d: %s", e.Offset, e.Msg)
}

// Is reports whether target is ErrMalformed.
func (e *Error) Is(target error) bool {
	return target == ErrMalformed
}

func malformed(offset int, format string, args ...any) error {
	return &Error{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}
