package store

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"fieldcore/pkg/domain"
)

func TestProductLifecycles(t *testing.T) {
	ctx := context.Background()
	repo := NewProducts(newMemory(), zap.NewNop())

	seed := []domain.Product{
		{Base: domain.Base{ID: "p1"}, Name: "Boiler X", CategoryID: "heating", IsActive: true},
		{Base: domain.Base{ID: "p2"}, Name: "Chiller Y", CategoryID: "cooling", IsActive: true},
	}
	for _, p := range seed {
		if _, err := repo.Save(ctx, p); err != nil {
			t.Fatalf("seed %s: %v", p.ID, err)
		}
	}

	// Deactivation is reversible and keeps the record.
	if _, err := repo.Deactivate(ctx, "p1"); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	active, err := repo.ListActive(ctx)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 || active[0].ID != "p2" {
		t.Fatalf("expected only p2 active, got %+v", active)
	}
	restored, err := repo.Reactivate(ctx, "p1")
	if err != nil || !restored.IsActive {
		t.Fatalf("reactivate: err=%v product=%+v", err, restored)
	}

	// Deletion is not.
	if err := repo.Delete(ctx, "p2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := repo.Get(ctx, "p2"); ok {
		t.Fatal("expected deleted product gone")
	}

	byCategory, err := repo.ListByCategory(ctx, "heating")
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].ID != "p1" {
		t.Fatalf("expected p1 under heating, got %+v", byCategory)
	}
}
