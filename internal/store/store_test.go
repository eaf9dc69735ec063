package store

import (
	"context"
	"errors"
	"time"

	"fieldcore/internal/infra/kv/memory"
	"fieldcore/internal/kv/core"
)

// fixedClock returns a deterministic nowFn advancing one second per call.
func fixedClock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

var errBroken = errors.New("adapter down")

// brokenStore fails every operation, for exercising the degrade paths.
type brokenStore struct{}

func (brokenStore) Driver() core.Driver { return core.DriverMemory }

func (brokenStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errBroken
}

func (brokenStore) Set(context.Context, string, string) error { return errBroken }

func (brokenStore) Remove(context.Context, string) error { return errBroken }

func newMemory() *memory.Store { return memory.New() }
