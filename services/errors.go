package services

import "errors"

// ErrForbidden marks operations the caller's role set does not allow.
var ErrForbidden = errors.New("forbidden")
