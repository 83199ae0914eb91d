package models

import "errors"

// ErrNotFound is returned by storage lookups when no record with the given
// id exists.
var ErrNotFound = errors.New("record not found")
