package store

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"fieldcore/internal/kv"
	"fieldcore/pkg/domain"
)

// Categories is the repository service owning the product_categories
// collection. Category names are unique case-insensitively; the store keeps
// whatever it is given and List de-duplicates on the way out, first
// occurrence wins.
type Categories struct {
	col   collection[domain.ProductCategory, *domain.ProductCategory]
	nowFn func() time.Time
}

// NewCategories constructs the category repository over the given adapter.
func NewCategories(store kv.Store, logger *zap.Logger) *Categories {
	return &Categories{
		col:   newCollection[domain.ProductCategory](store, KeyProductCategories, logger),
		nowFn: func() time.Time { return time.Now().UTC() },
	}
}

// List returns categories de-duplicated by lower-cased name, preserving the
// position of each name's first occurrence.
func (s *Categories) List(ctx context.Context) ([]domain.ProductCategory, error) {
	items, err := s.col.load(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]domain.ProductCategory, 0, len(items))
	for _, c := range items {
		name := strings.ToLower(c.Name)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}

// Get returns the category with the given id.
func (s *Categories) Get(ctx context.Context, id string) (domain.ProductCategory, bool, error) {
	return s.col.find(ctx, id)
}

// Save upserts the category by id.
func (s *Categories) Save(ctx context.Context, c domain.ProductCategory) (domain.ProductCategory, error) {
	return s.col.save(ctx, c, s.nowFn())
}

// Delete removes the category permanently; no match is a no-op.
func (s *Categories) Delete(ctx context.Context, id string) error {
	return s.col.remove(ctx, id)
}
