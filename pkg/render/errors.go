package render

import (
	"errors"
	"fmt"
)

// ErrUnsupportedChild is the sentinel for child values the element factory
// could not convert. Match with errors.Is.
var ErrUnsupportedChild = errors.New("unsupported child type")

// UnsupportedChildError reports a child value outside the supported set
// (string, number, bool, *Node). The whole render call fails rather than
// emitting markup with the value dropped.
type UnsupportedChildError struct {
	Tag  string // element the value was passed to
	Type string // Go type of the offending value
}

// Error implements the error interface.
func (e *UnsupportedChildError) Error() string {
	return fmt.Sprintf("unsupported child type %s in <%s>", e.Type, e.Tag)
}

// Is reports whether target is ErrUnsupportedChild.
func (e *UnsupportedChildError) Is(target error) bool {
	return target == ErrUnsupportedChild
}
