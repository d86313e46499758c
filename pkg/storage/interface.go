// Package storage defines the persistence contracts of the service. Backends
// such as pkg/storage/postgres implement them; services only see these
// interfaces so they can be tested against mocks.
//
// Lookups of a single entity return (nil, nil) when nothing matches.
//
//go:generate mockgen -package mockstorage -destination=mock/mockstorage.go casino/pkg/storage AllStorage,Storage
package storage

import "context"

// AllStorage groups every domain capability. It is what callbacks passed to
// WithTx receive.
type AllStorage interface {
	UserStorage
	DepositStorage
	PayoutStorage
	JobStorage
}

// TxStorage is an AllStorage bound to an open transaction. It must not be
// used after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the long-lived, non-transactional handle shared by all requests.
type Storage interface {
	AllStorage

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases the connection pool.
	Close() error

	// Begin opens a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
