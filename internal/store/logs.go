package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"fieldcore/internal/kv"
	"fieldcore/pkg/domain"
)

// Logs is the repository service owning the service_log_entries collection.
// Entries are append-mostly history: saving an existing entry refreshes its
// visit Timestamp along with UpdatedAt, everything else is whatever the
// caller passes.
type Logs struct {
	col   collection[domain.ServiceLogEntry, *domain.ServiceLogEntry]
	nowFn func() time.Time
}

// NewLogs constructs the service log repository over the given adapter.
func NewLogs(store kv.Store, logger *zap.Logger) *Logs {
	return &Logs{
		col:   newCollection[domain.ServiceLogEntry](store, KeyServiceLogEntries, logger),
		nowFn: func() time.Time { return time.Now().UTC() },
	}
}

// List returns all log entries in storage order.
func (s *Logs) List(ctx context.Context) ([]domain.ServiceLogEntry, error) {
	return s.col.load(ctx)
}

// ListByCase returns entries linked to the given service case.
func (s *Logs) ListByCase(ctx context.Context, caseID string) ([]domain.ServiceLogEntry, error) {
	items, err := s.col.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ServiceLogEntry, 0, len(items))
	for _, e := range items {
		if e.ServiceCaseID == caseID {
			out = append(out, e)
		}
	}
	return out, nil
}

// ListByCustomer returns entries referencing the customer directly (the
// legacy linkage path, predating case-scoped entries).
func (s *Logs) ListByCustomer(ctx context.Context, customerID string) ([]domain.ServiceLogEntry, error) {
	items, err := s.col.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ServiceLogEntry, 0, len(items))
	for _, e := range items {
		if e.CustomerID == customerID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Get returns the entry with the given id.
func (s *Logs) Get(ctx context.Context, id string) (domain.ServiceLogEntry, bool, error) {
	return s.col.find(ctx, id)
}

// Save upserts the entry by id and refreshes its visit Timestamp; a zero
// Timestamp on a new entry is stamped the same way.
func (s *Logs) Save(ctx context.Context, e domain.ServiceLogEntry) (domain.ServiceLogEntry, error) {
	e.Timestamp = s.nowFn()
	return s.col.save(ctx, e, s.nowFn())
}

// Delete removes the entry permanently; no match is a no-op.
func (s *Logs) Delete(ctx context.Context, id string) error {
	return s.col.remove(ctx, id)
}
