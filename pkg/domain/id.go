package domain

import "github.com/google/uuid"

// NewID returns a fresh opaque record identifier. Callers assign ids at
// creation time; the stores never mint them on a caller's behalf.
func NewID() string { return uuid.NewString() }
