package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"fieldcore/internal/kv"
	"fieldcore/pkg/domain"
)

// recordPtr constrains a pointer-to-entity to the record surface the
// collection needs: identity plus lifecycle timestamp stamping.
type recordPtr[T any] interface {
	*T
	RecordID() string
	CreatedTime() time.Time
	SetCreatedTime(time.Time)
	StampCreated(time.Time)
	StampUpdated(time.Time)
}

// collection is the shared whole-blob read-modify-write core every
// repository service is built on. Reads swallow decode failures; writes
// surface adapter failures as domain.StorageError.
type collection[T any, PT recordPtr[T]] struct {
	kv     kv.Store
	key    string
	logger *zap.Logger
}

func newCollection[T any, PT recordPtr[T]](store kv.Store, key string, logger *zap.Logger) collection[T, PT] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return collection[T, PT]{kv: store, key: key, logger: logger}
}

// load fetches and decodes the full collection. Insertion order from storage
// is preserved. Only genuine adapter I/O failures surface as errors.
func (c collection[T, PT]) load(ctx context.Context) ([]T, error) {
	raw, present, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, domain.StorageError{Op: "get", Key: c.key, Err: err}
	}
	return decodeCollection[T](c.key, raw, present, c.logger), nil
}

// store re-encodes the whole collection and writes it back as one blob. A
// failed write must never appear to have succeeded.
func (c collection[T, PT]) store(ctx context.Context, items []T) error {
	data, err := encodeCollection(c.key, items)
	if err != nil {
		return err
	}
	if err := c.kv.Set(ctx, c.key, data); err != nil {
		return domain.StorageError{Op: "set", Key: c.key, Err: err}
	}
	return nil
}

// find scans for a record by id. Absence is an explicit result, not an
// error; collections are small enough that the linear scan is deliberate.
func (c collection[T, PT]) find(ctx context.Context, id string) (T, bool, error) {
	var zero T
	items, err := c.load(ctx)
	if err != nil {
		return zero, false, err
	}
	for i := range items {
		if PT(&items[i]).RecordID() == id {
			return items[i], true, nil
		}
	}
	return zero, false, nil
}

// save upserts by id: an existing record is replaced in place keeping its
// position and original CreatedAt with UpdatedAt refreshed; a new record is
// appended with both timestamps stamped. The entire collection is written
// back before save returns.
func (c collection[T, PT]) save(ctx context.Context, item T, now time.Time) (T, error) {
	items, err := c.load(ctx)
	if err != nil {
		return item, err
	}
	p := PT(&item)
	for i := range items {
		if PT(&items[i]).RecordID() == p.RecordID() {
			p.SetCreatedTime(PT(&items[i]).CreatedTime())
			p.StampUpdated(now)
			items[i] = item
			return item, c.store(ctx, items)
		}
	}
	p.StampCreated(now)
	items = append(items, item)
	return item, c.store(ctx, items)
}

// remove deletes the record with the given id. No match is a no-op, not an
// error, and skips the write entirely.
func (c collection[T, PT]) remove(ctx context.Context, id string) error {
	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if PT(&items[i]).RecordID() == id {
			items = append(items[:i], items[i+1:]...)
			return c.store(ctx, items)
		}
	}
	return nil
}

// mutate applies fn to the record with the given id and writes the
// collection back, stamping UpdatedAt. Returns domain.NotFoundError when the
// id does not resolve.
func (c collection[T, PT]) mutate(ctx context.Context, entity domain.EntityType, id string, now time.Time, fn func(PT)) (T, error) {
	var zero T
	items, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	for i := range items {
		p := PT(&items[i])
		if p.RecordID() == id {
			fn(p)
			p.StampUpdated(now)
			if err := c.store(ctx, items); err != nil {
				return zero, err
			}
			return items[i], nil
		}
	}
	return zero, domain.NotFoundError{Entity: entity, ID: id}
}
