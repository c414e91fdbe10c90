// Package storage defines the persistence interfaces the application depends
// on. Concrete backends (PostgreSQL under pkg/storage/postgres) implement
// them; services only ever see these interfaces, which keeps transaction
// handling and mocking uniform.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage combines every domain-specific capability the application needs.
type AllStorage interface {
	ApplicationStorage
	EmailStorage
	ScanRunStorage
	JobStorage
}

// TxStorage is a storage handle bound to an open database transaction. It
// becomes unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction.
	Commit() error
	// Rollback aborts the transaction.
	Rollback() error
}

// Storage is the non-transactional handle with lifecycle management and the
// ability to start transactions.
type Storage interface {
	AllStorage

	// Close releases the underlying connection pool.
	Close() error

	// Begin starts a transaction and returns a handle scoped to it.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, runs cb, commits on nil error and rolls
	// back otherwise.
	WithTx(ctx context.Context, cb func(tx AllStorage) error) error
}
