// Package kv re-exports the key-value persistence abstractions for stable
// imports inside the internal tree.
package kv

import (
	"fieldcore/internal/kv/core"
)

type (
	// Driver identifies a key-value backend driver.
	Driver = core.Driver
	// Store is the interface for key-value storage backends.
	Store = core.Store
)

const (
	// DriverMemory is the in-memory test driver.
	DriverMemory = core.DriverMemory
	// DriverFS is the file-per-key driver.
	DriverFS = core.DriverFS
	// DriverSQLite is the embedded sqlite driver.
	DriverSQLite = core.DriverSQLite
	// DriverPostgres is the PostgreSQL driver.
	DriverPostgres = core.DriverPostgres
	// DriverRedis is the Redis driver.
	DriverRedis = core.DriverRedis
	// DriverS3 is the S3-compatible driver.
	DriverS3 = core.DriverS3
)

// ErrClosed indicates an operation against a closed store.
var ErrClosed = core.ErrClosed
