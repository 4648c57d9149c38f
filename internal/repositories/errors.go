package repositories

import "errors"

// ErrNotFound is returned by all repositories when a lookup matches no record.
// Callers distinguish it from store failures with errors.Is.
var ErrNotFound = errors.New("record not found")
