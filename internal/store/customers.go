package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"fieldcore/internal/kv"
	"fieldcore/pkg/domain"
)

// Customers is the repository service owning the customers collection.
// Customers are archived, never hard-deleted, so every historical case, log,
// and contract keeps a resolvable parent.
type Customers struct {
	col   collection[domain.Customer, *domain.Customer]
	nowFn func() time.Time
}

// NewCustomers constructs the customer repository over the given adapter.
func NewCustomers(store kv.Store, logger *zap.Logger) *Customers {
	return &Customers{
		col:   newCollection[domain.Customer](store, KeyCustomers, logger),
		nowFn: func() time.Time { return time.Now().UTC() },
	}
}

// List returns all customers, archived included, in storage order.
func (s *Customers) List(ctx context.Context) ([]domain.Customer, error) {
	return s.col.load(ctx)
}

// ListActive returns customers not yet archived.
func (s *Customers) ListActive(ctx context.Context) ([]domain.Customer, error) {
	items, err := s.col.load(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]domain.Customer, 0, len(items))
	for _, c := range items {
		if c.IsActive {
			active = append(active, c)
		}
	}
	return active, nil
}

// Get returns the customer with the given id, archived or not.
func (s *Customers) Get(ctx context.Context, id string) (domain.Customer, bool, error) {
	return s.col.find(ctx, id)
}

// Save upserts the customer by id.
func (s *Customers) Save(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	return s.col.save(ctx, c, s.nowFn())
}

// Archive soft-deletes the customer: IsActive flips to false and UpdatedAt
// is stamped, but the record stays queryable by id for historical joins.
func (s *Customers) Archive(ctx context.Context, id string) (domain.Customer, error) {
	return s.col.mutate(ctx, domain.EntityCustomer, id, s.nowFn(), func(c *domain.Customer) {
		c.IsActive = false
	})
}

// Restore reverses an archive.
func (s *Customers) Restore(ctx context.Context, id string) (domain.Customer, error) {
	return s.col.mutate(ctx, domain.EntityCustomer, id, s.nowFn(), func(c *domain.Customer) {
		c.IsActive = true
	})
}
