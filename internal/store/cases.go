package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"fieldcore/internal/kv"
	"fieldcore/pkg/domain"
)

// Cases is the repository service owning the service_cases collection.
type Cases struct {
	col   collection[domain.ServiceCase, *domain.ServiceCase]
	nowFn func() time.Time
}

// NewCases constructs the service case repository over the given adapter.
func NewCases(store kv.Store, logger *zap.Logger) *Cases {
	return &Cases{
		col:   newCollection[domain.ServiceCase](store, KeyServiceCases, logger),
		nowFn: func() time.Time { return time.Now().UTC() },
	}
}

// List returns all service cases in storage order.
func (s *Cases) List(ctx context.Context) ([]domain.ServiceCase, error) {
	return s.col.load(ctx)
}

// ListByCustomer returns the cases belonging to the given customer. Archived
// customers keep their cases; there is no cascade.
func (s *Cases) ListByCustomer(ctx context.Context, customerID string) ([]domain.ServiceCase, error) {
	items, err := s.col.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ServiceCase, 0, len(items))
	for _, c := range items {
		if c.CustomerID == customerID {
			out = append(out, c)
		}
	}
	return out, nil
}

// ListOpen returns cases still being worked: open or in progress.
func (s *Cases) ListOpen(ctx context.Context) ([]domain.ServiceCase, error) {
	items, err := s.col.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ServiceCase, 0, len(items))
	for _, c := range items {
		if c.Status == domain.CaseStatusOpen || c.Status == domain.CaseStatusInProgress {
			out = append(out, c)
		}
	}
	return out, nil
}

// Get returns the case with the given id.
func (s *Cases) Get(ctx context.Context, id string) (domain.ServiceCase, bool, error) {
	return s.col.find(ctx, id)
}

// Save upserts the case by id.
func (s *Cases) Save(ctx context.Context, c domain.ServiceCase) (domain.ServiceCase, error) {
	return s.col.save(ctx, c, s.nowFn())
}

// Delete removes the case permanently; no match is a no-op. Log entries
// referencing the case are left in place and degrade to unknown-customer
// resolution.
func (s *Cases) Delete(ctx context.Context, id string) error {
	return s.col.remove(ctx, id)
}

// SetStatus transitions the case workflow state.
func (s *Cases) SetStatus(ctx context.Context, id string, status domain.CaseStatus) (domain.ServiceCase, error) {
	return s.col.mutate(ctx, domain.EntityServiceCase, id, s.nowFn(), func(c *domain.ServiceCase) {
		c.Status = status
	})
}
