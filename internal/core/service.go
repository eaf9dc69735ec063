// Package core exposes the high-level service facade tying the repositories,
// resolution, and derived views together for the presentation layer.
package core

import (
	"context"
	"time"

	"go.uber.org/zap"

	"fieldcore/internal/kv"
	"fieldcore/internal/query"
	"fieldcore/internal/store"
	"fieldcore/pkg/domain"
)

// Service aggregates the per-entity repositories behind one facade. All
// repositories share the one kv adapter but own disjoint keys.
type Service struct {
	customers  *store.Customers
	categories *store.Categories
	products   *store.Products
	cases      *store.Cases
	logs       *store.Logs
	reminders  *store.Reminders
	contracts  *store.Contracts
	resolver   *query.Resolver

	logger  *zap.Logger
	metrics MetricsRecorder
	tracer  Tracer
	nowFn   func() time.Time
}

// Option configures optional service collaborators.
type Option func(*Service)

// WithLogger attaches a structured logger shared with the repositories.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics attaches a metrics recorder observed by every facade op.
func WithMetrics(rec MetricsRecorder) Option {
	return func(s *Service) { s.metrics = rec }
}

// WithTracer attaches a tracer spanning every facade op.
func WithTracer(tr Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

// WithClock overrides the wall clock, for tests.
func WithClock(nowFn func() time.Time) Option {
	return func(s *Service) { s.nowFn = nowFn }
}

// NewService constructs the facade over the supplied adapter.
func NewService(kvStore kv.Store, opts ...Option) *Service {
	s := &Service{
		logger: zap.NewNop(),
		nowFn:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.customers = store.NewCustomers(kvStore, s.logger)
	s.categories = store.NewCategories(kvStore, s.logger)
	s.products = store.NewProducts(kvStore, s.logger)
	s.cases = store.NewCases(kvStore, s.logger)
	s.logs = store.NewLogs(kvStore, s.logger)
	s.reminders = store.NewReminders(kvStore, s.logger)
	s.contracts = store.NewContracts(kvStore, s.logger)
	s.resolver = query.NewResolver(s.customers, s.cases)
	return s
}

// Customers returns the customer repository.
func (s *Service) Customers() *store.Customers { return s.customers }

// Categories returns the product category repository.
func (s *Service) Categories() *store.Categories { return s.categories }

// Products returns the product repository.
func (s *Service) Products() *store.Products { return s.products }

// Cases returns the service case repository.
func (s *Service) Cases() *store.Cases { return s.cases }

// Logs returns the service log repository.
func (s *Service) Logs() *store.Logs { return s.logs }

// Reminders returns the reminder repository.
func (s *Service) Reminders() *store.Reminders { return s.reminders }

// Contracts returns the contract repository.
func (s *Service) Contracts() *store.Contracts { return s.contracts }

// CreateContract assigns the next contract number when the draft carries
// none and saves the record. Numbers stay with the record across later
// edits; only creation assigns.
func (s *Service) CreateContract(ctx context.Context, c domain.ServiceContract) (domain.ServiceContract, error) {
	var saved domain.ServiceContract
	err := s.observe(ctx, "create_contract", func(ctx context.Context) error {
		if c.ContractNumber == "" {
			c.ContractNumber = s.contracts.GenerateNumber(ctx)
		}
		var err error
		saved, err = s.contracts.Save(ctx, c)
		return err
	})
	return saved, err
}

// ArchiveCustomer soft-deletes a customer. Children stay put: cases, logs,
// reminders, and contracts referencing the customer keep resolving.
func (s *Service) ArchiveCustomer(ctx context.Context, id string) (domain.Customer, error) {
	var archived domain.Customer
	err := s.observe(ctx, "archive_customer", func(ctx context.Context) error {
		var err error
		archived, err = s.customers.Archive(ctx, id)
		return err
	})
	return archived, err
}

// ResolveLogCustomerName derives the display customer name for a log entry
// via the reference priority chain.
func (s *Service) ResolveLogCustomerName(ctx context.Context, entry domain.ServiceLogEntry) (string, error) {
	var name string
	err := s.observe(ctx, "resolve_log_customer", func(ctx context.Context) error {
		var err error
		name, err = s.resolver.CustomerName(ctx, entry.CustomerRef)
		return err
	})
	return name, err
}

// CustomerDetail aggregates everything belonging to one customer the way
// the detail screen renders it.
type CustomerDetail struct {
	Customer  domain.Customer
	Cases     []domain.ServiceCase
	Logs      []domain.ServiceLogEntry
	Reminders []domain.ServiceReminder
	Contracts []domain.ServiceContract
}

// GetCustomerDetail loads a customer with its cases, case-linked and
// directly-linked logs, reminders, and contracts. Archived customers report
// the same way active ones do.
func (s *Service) GetCustomerDetail(ctx context.Context, id string) (CustomerDetail, error) {
	var detail CustomerDetail
	err := s.observe(ctx, "customer_detail", func(ctx context.Context) error {
		c, ok, err := s.customers.Get(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.NotFoundError{Entity: domain.EntityCustomer, ID: id}
		}
		detail.Customer = c
		if detail.Cases, err = s.cases.ListByCustomer(ctx, id); err != nil {
			return err
		}
		caseIDs := make(map[string]struct{}, len(detail.Cases))
		for _, sc := range detail.Cases {
			caseIDs[sc.ID] = struct{}{}
		}
		entries, err := s.logs.List(ctx)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if e.CustomerID == id {
				detail.Logs = append(detail.Logs, e)
				continue
			}
			if _, linked := caseIDs[e.ServiceCaseID]; linked {
				detail.Logs = append(detail.Logs, e)
			}
		}
		if detail.Reminders, err = s.reminders.ListByCustomer(ctx, id); err != nil {
			return err
		}
		detail.Contracts, err = s.contracts.ListByCustomer(ctx, id)
		return err
	})
	return detail, err
}

// ReminderOverview buckets pending reminders by derived urgency.
type ReminderOverview struct {
	Overdue  []domain.ServiceReminder
	DueToday []domain.ServiceReminder
	Upcoming []domain.ServiceReminder
}

// GetReminderOverview derives the overdue / due-today / upcoming buckets
// from due dates at call time; nothing derived is ever stored.
func (s *Service) GetReminderOverview(ctx context.Context) (ReminderOverview, error) {
	var overview ReminderOverview
	err := s.observe(ctx, "reminder_overview", func(ctx context.Context) error {
		pending, err := s.reminders.ListPending(ctx)
		if err != nil {
			return err
		}
		now := s.nowFn()
		query.SortRemindersByRelevance(pending, now)
		for _, r := range pending {
			switch {
			case r.IsOverdue(now):
				overview.Overdue = append(overview.Overdue, r)
			case r.IsDueToday(now):
				overview.DueToday = append(overview.DueToday, r)
			default:
				overview.Upcoming = append(overview.Upcoming, r)
			}
		}
		return nil
	})
	return overview, err
}

// SearchLogs filters and orders the audit log for the list screen.
func (s *Service) SearchLogs(ctx context.Context, filter query.LogFilter, ascending bool) ([]domain.ServiceLogEntry, error) {
	var out []domain.ServiceLogEntry
	err := s.observe(ctx, "search_logs", func(ctx context.Context) error {
		entries, err := s.logs.List(ctx)
		if err != nil {
			return err
		}
		out = query.FilterLogs(entries, filter, s.nowFn())
		query.SortLogsByTimestamp(out, ascending)
		return nil
	})
	return out, err
}
