package types

import "errors"

// Store lifecycle errors.
var (
	ErrStoreClosed = errors.New("store is closed")
	ErrAlreadyOpen = errors.New("store is already open")
)

// Operation errors. Lookups and conditional updates signal a missing record
// with a nil result rather than an error; ErrNotFound is reserved for
// operations that require the referenced record to exist.
var (
	ErrDuplicateEmail = errors.New("email already in use")
	ErrNotFound       = errors.New("record not found")
	ErrInvalidID      = errors.New("invalid record ID")
	ErrInvalidValue   = errors.New("invalid value")
	ErrEmptySummary   = errors.New("summary must not be empty")
)
