// Package core defines the key-value persistence contract fieldcore's
// repositories are built on: string keys mapped to serialized JSON blobs.
package core

import (
	"context"
	"errors"
)

// Driver identifies a concrete key-value backend implementation.
type Driver string

const (
	DriverMemory   Driver = "memory"   // in-memory (tests / ephemeral)
	DriverFS       Driver = "fs"       // file per key (default, dev)
	DriverSQLite   Driver = "sqlite"   // embedded sqlite file
	DriverPostgres Driver = "postgres" // PostgreSQL server
	DriverRedis    Driver = "redis"    // Redis server
	DriverS3       Driver = "s3"       // S3 / MinIO compatible
)

// Store is the persistence primitive every repository consumes. One logical
// collection lives under one key as a single JSON blob; there is no
// partial-update primitive, so writers re-encode whole collections.
// Implementations must serialize physical I/O internally; they do not
// serialize concurrent writers racing on the same key.
type Store interface {
	// Get returns the blob stored at key. A missing key is (_, false, nil),
	// never an error; errors indicate genuine I/O failure.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value at key, replacing any previous blob.
	Set(ctx context.Context, key string, value string) error
	// Remove deletes the key. Removing a missing key is a no-op.
	Remove(ctx context.Context, key string) error
	// Driver returns the configured backend driver identifier.
	Driver() Driver
}

// ErrClosed is returned by operations against a store that has been closed.
var ErrClosed = errors.New("kv: store closed")
