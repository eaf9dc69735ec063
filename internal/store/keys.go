// Package store implements the per-entity repository services. Each service
// owns exactly one storage key (two for contracts) and goes through the kv
// adapter with whole-collection read-modify-write.
package store

// Storage keys, one logical collection per key, JSON array encoded. No other
// component writes these keys.
const (
	KeyCustomers         = "customers"
	KeyProductCategories = "product_categories"
	KeyProducts          = "products"
	KeyServiceCases      = "service_cases"
	KeyServiceLogEntries = "service_log_entries"
	KeyServiceReminders  = "service_reminders"
	KeyServiceContracts  = "service_contracts"
	KeyContractSchedules = "contract_schedules"
)
