package repository

import "errors"

// ErrNotFound marks a lookup miss; use cases translate it to the
// domain-level not-found errors.
var ErrNotFound = errors.New("record not found")
