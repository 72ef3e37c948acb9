package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no document exists for the requested key.
var ErrNotFound = errors.New("store: not found")

// Store persists the two JSON documents of the system: the master record
// (one per deployment) and session snapshots (one per in-progress report).
// Both are opaque blobs to the store; shape is owned by the callers.
type Store interface {
	LoadMaster(ctx context.Context) ([]byte, error)
	SaveMaster(ctx context.Context, doc []byte) error

	LoadSession(ctx context.Context, id string) ([]byte, error)
	SaveSession(ctx context.Context, id string, doc []byte) error
	DeleteSession(ctx context.Context, id string) error

	Ping(ctx context.Context) error
	Close()
}
