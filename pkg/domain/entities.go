// Package domain defines the persistent entities, value types, and error
// taxonomy used by fieldcore.
package domain

import "time"

// EntityType identifies the type of record stored in the core domain.
type EntityType string

// Supported entity type identifiers used in errors and persistence keys.
const (
	// EntityCustomer identifies a customer record.
	EntityCustomer EntityType = "customer"
	// EntityProductCategory identifies a product category record.
	EntityProductCategory EntityType = "product_category"
	// EntityProduct identifies an equipment product record.
	EntityProduct EntityType = "product"
	// EntityServiceCase identifies a service case record.
	EntityServiceCase EntityType = "service_case"
	// EntityServiceLog identifies a service log entry record.
	EntityServiceLog EntityType = "service_log_entry"
	// EntityReminder identifies a service reminder record.
	EntityReminder EntityType = "service_reminder"
	// EntityContract identifies a service contract record.
	EntityContract EntityType = "service_contract"
	// EntityContractSchedule identifies a contract schedule record.
	EntityContractSchedule EntityType = "contract_schedule"
)

// CaseStatus enumerates service case workflow states.
type CaseStatus string

// Canonical case statuses driving reminder and log visibility.
const (
	CaseStatusOpen       CaseStatus = "open"
	CaseStatusInProgress CaseStatus = "in_progress"
	CaseStatusCompleted  CaseStatus = "completed"
	CaseStatusCancelled  CaseStatus = "cancelled"
)

// Priority captures urgency of cases and reminders.
type Priority string

// Canonical priorities.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ContractStatus enumerates contract lifecycle states.
type ContractStatus string

// Canonical contract statuses.
const (
	ContractStatusDraft     ContractStatus = "draft"
	ContractStatusActive    ContractStatus = "active"
	ContractStatusExpired   ContractStatus = "expired"
	ContractStatusCancelled ContractStatus = "cancelled"
)

// Base contains common fields for all domain records. IDs are opaque strings
// assigned by the caller at creation time and never reused.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RecordID returns the record's identifier.
func (b Base) RecordID() string { return b.ID }

// CreatedTime returns the creation timestamp.
func (b Base) CreatedTime() time.Time { return b.CreatedAt }

// SetCreatedTime overrides the creation timestamp, used by upsert to carry
// the original CreatedAt across edits.
func (b *Base) SetCreatedTime(t time.Time) { b.CreatedAt = t }

// StampCreated sets both lifecycle timestamps, used on first save.
func (b *Base) StampCreated(now time.Time) {
	b.CreatedAt = now
	b.UpdatedAt = now
}

// StampUpdated refreshes the update timestamp, preserving CreatedAt.
func (b *Base) StampUpdated(now time.Time) {
	b.UpdatedAt = now
}

// Customer represents a serviced customer. Customers are archived, never
// deleted, so historical joins from cases, logs and contracts keep resolving.
type Customer struct {
	Base
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	Address  string  `json:"address"`
	Email    *string `json:"email,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	IsActive bool    `json:"isActive"`
}

// ProductCategory groups equipment products. Names are unique
// case-insensitively; listing de-duplicates by lower-cased name.
type ProductCategory struct {
	Base
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Product represents a tracked piece of equipment. Deletion is permanent;
// deactivation toggles IsActive and is reversible.
type Product struct {
	Base
	Name         string  `json:"name"`
	SerialNumber string  `json:"serialNumber"`
	Model        string  `json:"model"`
	Location     string  `json:"location"`
	CategoryID   string  `json:"categoryId"`
	CustomerID   *string `json:"customerId,omitempty"`
	IsActive     bool    `json:"isActive"`
}

// ServiceCase is a unit of work performed for a customer and the parent of
// service log entries.
type ServiceCase struct {
	Base
	CustomerID    string     `json:"customerId"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        CaseStatus `json:"status"`
	Priority      Priority   `json:"priority"`
	EquipmentType string     `json:"equipmentType"`
}

// ServiceLogEntry records a single service visit. Its customer linkage is a
// CustomerRef: newer entries point at a service case or customer id, legacy
// entries carry the customer display name inline.
type ServiceLogEntry struct {
	Base
	CustomerRef
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Content     string    `json:"content"`
	Location    string    `json:"location"`
	Technician  string    `json:"technician"`
	Tags        []string  `json:"tags"`
	IsImportant bool      `json:"isImportant"`
	Images      []string  `json:"images"`
	Timestamp   time.Time `json:"timestamp"`
}

// ServiceReminder is a dated follow-up for a customer, optionally linked to a
// service case. Overdue / due-today / upcoming are derived from DueDate at
// query time and never stored.
type ServiceReminder struct {
	Base
	CustomerID    string     `json:"customerId"`
	ServiceCaseID *string    `json:"serviceCaseId,omitempty"`
	Title         string     `json:"title"`
	DueDate       time.Time  `json:"dueDate"`
	Priority      Priority   `json:"priority"`
	IsCompleted   bool       `json:"isCompleted"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

// IsOverdue reports whether the reminder is incomplete and due strictly
// before the start of the current day.
func (r ServiceReminder) IsOverdue(now time.Time) bool {
	return !r.IsCompleted && r.DueDate.Before(StartOfDay(now))
}

// IsDueToday reports whether the reminder is incomplete and due within the
// current calendar day.
func (r ServiceReminder) IsDueToday(now time.Time) bool {
	if r.IsCompleted {
		return false
	}
	day := StartOfDay(now)
	return !r.DueDate.Before(day) && r.DueDate.Before(day.AddDate(0, 0, 1))
}

// ContractService is a line item embedded in a service contract. It has no
// store of its own.
type ContractService struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Frequency   string  `json:"frequency"`
	Price       float64 `json:"price"`
}

// ServiceContract is a maintenance agreement with a customer. ContractNumber
// is assigned once at creation and preserved across edits.
type ServiceContract struct {
	Base
	CustomerID     string            `json:"customerId"`
	ContractNumber string            `json:"contractNumber"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	ContractType   string            `json:"contractType"`
	Status         ContractStatus    `json:"status"`
	StartDate      time.Time         `json:"startDate"`
	EndDate        time.Time         `json:"endDate"`
	AutoRenewal    bool              `json:"autoRenewal"`
	RenewalPeriod  *string           `json:"renewalPeriod,omitempty"`
	TotalValue     float64           `json:"totalValue"`
	MonthlyValue   *float64          `json:"monthlyValue,omitempty"`
	Services       []ContractService `json:"services"`
	Terms          string            `json:"terms"`
	Notes          string            `json:"notes"`
}

// InForce reports whether now falls within the contract's start/end window.
// It derives scheduling state from the dates alone; Status stays whatever
// the caller stored.
func (c ServiceContract) InForce(now time.Time) bool {
	return !now.Before(c.StartDate) && !now.After(c.EndDate)
}

// ContractSchedule is a planned service visit belonging to a contract,
// stored in its own collection and joined by ContractID.
type ContractSchedule struct {
	Base
	ContractID    string     `json:"contractId"`
	ScheduledDate time.Time  `json:"scheduledDate"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
