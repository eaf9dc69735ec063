// Package query implements cross-entity resolution and the filter/sort
// semantics consumed by list screens.
package query

import (
	"context"

	"fieldcore/internal/store"
	"fieldcore/pkg/domain"
)

// UnknownCustomer is the sentinel rendered when a customer reference cannot
// be resolved. Dangling references degrade to it instead of failing.
const UnknownCustomer = "Unknown customer"

// Resolver derives display values for entities whose customer linkage is
// indirect, walking foreign keys with fallback.
type Resolver struct {
	customers *store.Customers
	cases     *store.Cases
}

// NewResolver constructs a resolver over the customer and case repositories.
func NewResolver(customers *store.Customers, cases *store.Cases) *Resolver {
	return &Resolver{customers: customers, cases: cases}
}

// CustomerName resolves the customer display name for a reference. The
// priority order reflects the data-model migration from a denormalized name
// to normalized ids and must not be reordered:
//
//  1. a service case link whose case and customer both resolve,
//  2. a direct customer id that resolves,
//  3. a legacy inline name, used verbatim,
//  4. the UnknownCustomer sentinel.
//
// Archived customers still resolve; only adapter I/O failures return an
// error.
func (r *Resolver) CustomerName(ctx context.Context, ref domain.CustomerRef) (string, error) {
	if ref.ServiceCaseID != "" {
		sc, ok, err := r.cases.Get(ctx, ref.ServiceCaseID)
		if err != nil {
			return "", err
		}
		if ok {
			c, found, err := r.customers.Get(ctx, sc.CustomerID)
			if err != nil {
				return "", err
			}
			if found {
				return c.Name, nil
			}
		}
	}
	if ref.CustomerID != "" {
		c, found, err := r.customers.Get(ctx, ref.CustomerID)
		if err != nil {
			return "", err
		}
		if found {
			return c.Name, nil
		}
	}
	if ref.LegacyName != "" {
		return ref.LegacyName, nil
	}
	return UnknownCustomer, nil
}
