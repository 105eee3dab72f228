package attrkey

import (
	"errors"
	"fmt"
)

// ErrInvalidKey is the sentinel for malformed shorthand keys.
// Match with errors.Is; the concrete *InvalidKeyError carries the key.
var ErrInvalidKey = errors.New("invalid attribute key")

// InvalidKeyError reports a shorthand key that cannot form a legal
// attribute name.
type InvalidKeyError struct {
	Key    string
	Reason string
}

// Error implements the error interface.
func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid attribute key %q: %s", e.Key, e.Reason)
}

// Is reports whether target is ErrInvalidKey.
func (e *InvalidKeyError) Is(target error) bool {
	return target == ErrInvalidKey
}

func invalidKey(key, reason string) error {
	return &InvalidKeyError{Key: key, Reason: reason}
}
