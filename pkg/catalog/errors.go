package catalog

import "errors"

var ErrNotFound = errors.New("record not found")

// ErrValidation is a simple input validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
