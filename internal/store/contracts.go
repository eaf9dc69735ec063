package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"fieldcore/internal/kv"
	"fieldcore/pkg/domain"
)

const contractNumberPrefix = "CON"

// Contracts is the repository service owning both the service_contracts and
// contract_schedules collections; schedules are a separate key joined by
// contract id, while contract line items stay embedded in the contract blob.
type Contracts struct {
	col       collection[domain.ServiceContract, *domain.ServiceContract]
	schedules collection[domain.ContractSchedule, *domain.ContractSchedule]
	nowFn     func() time.Time
}

// NewContracts constructs the contract repository over the given adapter.
func NewContracts(store kv.Store, logger *zap.Logger) *Contracts {
	return &Contracts{
		col:       newCollection[domain.ServiceContract](store, KeyServiceContracts, logger),
		schedules: newCollection[domain.ContractSchedule](store, KeyContractSchedules, logger),
		nowFn:     func() time.Time { return time.Now().UTC() },
	}
}

// List returns all contracts in storage order.
func (s *Contracts) List(ctx context.Context) ([]domain.ServiceContract, error) {
	return s.col.load(ctx)
}

// ListByCustomer returns the contracts belonging to the given customer.
func (s *Contracts) ListByCustomer(ctx context.Context, customerID string) ([]domain.ServiceContract, error) {
	items, err := s.col.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ServiceContract, 0, len(items))
	for _, c := range items {
		if c.CustomerID == customerID {
			out = append(out, c)
		}
	}
	return out, nil
}

// ListActive returns contracts whose stored status is active.
func (s *Contracts) ListActive(ctx context.Context) ([]domain.ServiceContract, error) {
	items, err := s.col.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ServiceContract, 0, len(items))
	for _, c := range items {
		if c.Status == domain.ContractStatusActive {
			out = append(out, c)
		}
	}
	return out, nil
}

// Get returns the contract with the given id.
func (s *Contracts) Get(ctx context.Context, id string) (domain.ServiceContract, bool, error) {
	return s.col.find(ctx, id)
}

// Save upserts the contract by id. The contract number travels with the
// record: edits keep whatever number creation assigned.
func (s *Contracts) Save(ctx context.Context, c domain.ServiceContract) (domain.ServiceContract, error) {
	return s.col.save(ctx, c, s.nowFn())
}

// Delete removes the contract permanently; no match is a no-op. Schedules
// referencing it remain until removed explicitly.
func (s *Contracts) Delete(ctx context.Context, id string) error {
	return s.col.remove(ctx, id)
}

// GenerateNumber produces the next contract number for the current year,
// formatted CON-<year>-<4-digit sequence>. The sequence is a count of
// contracts already carrying the year's prefix plus one, recomputed from a
// scan on every call rather than a stored counter: re-running it without an
// intervening save yields the same number twice, and two concurrent writers
// can collide. The single-writer assumption makes that acceptable.
// A read failure degrades to the year's first number instead of erroring.
func (s *Contracts) GenerateNumber(ctx context.Context) string {
	prefix := fmt.Sprintf("%s-%d", contractNumberPrefix, s.nowFn().Year())
	items, err := s.col.load(ctx)
	if err != nil {
		return prefix + "-0001"
	}
	count := 0
	for _, c := range items {
		if strings.HasPrefix(c.ContractNumber, prefix) {
			count++
		}
	}
	return fmt.Sprintf("%s-%04d", prefix, count+1)
}

// ListSchedulesByContract returns the planned visits joined to the given
// contract.
func (s *Contracts) ListSchedulesByContract(ctx context.Context, contractID string) ([]domain.ContractSchedule, error) {
	items, err := s.schedules.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ContractSchedule, 0, len(items))
	for _, sch := range items {
		if sch.ContractID == contractID {
			out = append(out, sch)
		}
	}
	return out, nil
}

// ListSchedules returns every schedule entry in storage order.
func (s *Contracts) ListSchedules(ctx context.Context) ([]domain.ContractSchedule, error) {
	return s.schedules.load(ctx)
}

// SaveSchedule upserts a schedule entry by id.
func (s *Contracts) SaveSchedule(ctx context.Context, sch domain.ContractSchedule) (domain.ContractSchedule, error) {
	return s.schedules.save(ctx, sch, s.nowFn())
}

// DeleteSchedule removes a schedule entry permanently; no match is a no-op.
func (s *Contracts) DeleteSchedule(ctx context.Context, id string) error {
	return s.schedules.remove(ctx, id)
}

// CompleteSchedule stamps the completion date on a planned visit.
func (s *Contracts) CompleteSchedule(ctx context.Context, id string) (domain.ContractSchedule, error) {
	now := s.nowFn()
	return s.schedules.mutate(ctx, domain.EntityContractSchedule, id, now, func(sch *domain.ContractSchedule) {
		completed := now
		sch.CompletedDate = &completed
	})
}
