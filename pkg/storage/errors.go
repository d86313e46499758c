package storage

import "errors"

var (
	// ErrAlreadyInTx is returned by Begin on a handle that is already transactional.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback outside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicate is returned when a write violates a uniqueness constraint.
	// The wrapping error names the constraint.
	ErrDuplicate = errors.New("duplicate")
	// ErrOutOfRange is returned when a write would overflow a numeric column.
	ErrOutOfRange = errors.New("out of range")
)
