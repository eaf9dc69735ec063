package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"fieldcore/internal/kv"
	"fieldcore/pkg/domain"
)

// Products is the repository service owning the products collection. Unlike
// customers, products support both lifecycles: Delete is permanent, while
// Deactivate/Reactivate toggle IsActive and are reversible.
type Products struct {
	col   collection[domain.Product, *domain.Product]
	nowFn func() time.Time
}

// NewProducts constructs the product repository over the given adapter.
func NewProducts(store kv.Store, logger *zap.Logger) *Products {
	return &Products{
		col:   newCollection[domain.Product](store, KeyProducts, logger),
		nowFn: func() time.Time { return time.Now().UTC() },
	}
}

// List returns all products in storage order.
func (s *Products) List(ctx context.Context) ([]domain.Product, error) {
	return s.col.load(ctx)
}

// ListActive returns products whose IsActive flag is set.
func (s *Products) ListActive(ctx context.Context) ([]domain.Product, error) {
	items, err := s.col.load(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]domain.Product, 0, len(items))
	for _, p := range items {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active, nil
}

// ListByCategory returns products referencing the given category id.
func (s *Products) ListByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	items, err := s.col.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(items))
	for _, p := range items {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

// Get returns the product with the given id.
func (s *Products) Get(ctx context.Context, id string) (domain.Product, bool, error) {
	return s.col.find(ctx, id)
}

// Save upserts the product by id.
func (s *Products) Save(ctx context.Context, p domain.Product) (domain.Product, error) {
	return s.col.save(ctx, p, s.nowFn())
}

// Delete removes the product permanently. A deleted product is
// unrecoverable; a deactivated one is not.
func (s *Products) Delete(ctx context.Context, id string) error {
	return s.col.remove(ctx, id)
}

// Deactivate clears IsActive without removing the record.
func (s *Products) Deactivate(ctx context.Context, id string) (domain.Product, error) {
	return s.col.mutate(ctx, domain.EntityProduct, id, s.nowFn(), func(p *domain.Product) {
		p.IsActive = false
	})
}

// Reactivate restores a deactivated product.
func (s *Products) Reactivate(ctx context.Context, id string) (domain.Product, error) {
	return s.col.mutate(ctx, domain.EntityProduct, id, s.nowFn(), func(p *domain.Product) {
		p.IsActive = true
	})
}
