package gsheets

import (
	"errors"
	"fmt"
)

// ErrInvalidAddress is returned for malformed column letters or cell
// references e.g. "", "a1", "B-7".
var ErrInvalidAddress = errors.New("invalid address")

// InitializationError wraps any credential, authorization or document-open
// failure raised while constructing a Bridge. A Bridge whose construction
// failed must not be used.
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("error initializing Google Sheets bridge (%v)", e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}
