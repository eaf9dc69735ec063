package domain

import "fmt"

// NotFoundError reports a lookup miss for a specific record. Repository
// lookups return an explicit absent result instead of this error; the facade
// raises it where absence is a caller mistake.
type NotFoundError struct {
	Entity EntityType
	ID     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// StorageError wraps an adapter I/O failure. Decode failures never produce
// it; a failed write always does, so a save cannot appear to have succeeded.
type StorageError struct {
	Op  string // "get", "set", "remove"
	Key string
	Err error
}

func (e StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Key, e.Err)
}

func (e StorageError) Unwrap() error { return e.Err }

// DecodeError reports a malformed collection payload. It is recovered at the
// codec boundary (empty collection plus a logged diagnostic) and never
// surfaces to callers.
type DecodeError struct {
	Key string
	Err error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Key, e.Err)
}

func (e DecodeError) Unwrap() error { return e.Err }
