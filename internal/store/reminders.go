package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"fieldcore/internal/kv"
	"fieldcore/pkg/domain"
)

// Reminders is the repository service owning the service_reminders
// collection. Overdue / due-today / upcoming are derived at query time by
// the query package; this store only persists due dates and completion.
type Reminders struct {
	col   collection[domain.ServiceReminder, *domain.ServiceReminder]
	nowFn func() time.Time
}

// NewReminders constructs the reminder repository over the given adapter.
func NewReminders(store kv.Store, logger *zap.Logger) *Reminders {
	return &Reminders{
		col:   newCollection[domain.ServiceReminder](store, KeyServiceReminders, logger),
		nowFn: func() time.Time { return time.Now().UTC() },
	}
}

// List returns all reminders in storage order.
func (s *Reminders) List(ctx context.Context) ([]domain.ServiceReminder, error) {
	return s.col.load(ctx)
}

// ListByCustomer returns the reminders belonging to the given customer.
func (s *Reminders) ListByCustomer(ctx context.Context, customerID string) ([]domain.ServiceReminder, error) {
	items, err := s.col.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ServiceReminder, 0, len(items))
	for _, r := range items {
		if r.CustomerID == customerID {
			out = append(out, r)
		}
	}
	return out, nil
}

// ListPending returns reminders not yet completed.
func (s *Reminders) ListPending(ctx context.Context) ([]domain.ServiceReminder, error) {
	items, err := s.col.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ServiceReminder, 0, len(items))
	for _, r := range items {
		if !r.IsCompleted {
			out = append(out, r)
		}
	}
	return out, nil
}

// Get returns the reminder with the given id.
func (s *Reminders) Get(ctx context.Context, id string) (domain.ServiceReminder, bool, error) {
	return s.col.find(ctx, id)
}

// Save upserts the reminder by id.
func (s *Reminders) Save(ctx context.Context, r domain.ServiceReminder) (domain.ServiceReminder, error) {
	return s.col.save(ctx, r, s.nowFn())
}

// Delete removes the reminder permanently; no match is a no-op.
func (s *Reminders) Delete(ctx context.Context, id string) error {
	return s.col.remove(ctx, id)
}

// Complete marks the reminder done, stamping CompletedAt.
func (s *Reminders) Complete(ctx context.Context, id string) (domain.ServiceReminder, error) {
	now := s.nowFn()
	return s.col.mutate(ctx, domain.EntityReminder, id, now, func(r *domain.ServiceReminder) {
		r.IsCompleted = true
		completed := now
		r.CompletedAt = &completed
	})
}

// Reopen reverses a completion, clearing CompletedAt.
func (s *Reminders) Reopen(ctx context.Context, id string) (domain.ServiceReminder, error) {
	return s.col.mutate(ctx, domain.EntityReminder, id, s.nowFn(), func(r *domain.ServiceReminder) {
		r.IsCompleted = false
		r.CompletedAt = nil
	})
}
