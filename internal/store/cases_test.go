package store

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"fieldcore/pkg/domain"
)

func TestListOpenCases(t *testing.T) {
	ctx := context.Background()
	repo := NewCases(newMemory(), zap.NewNop())

	seed := []domain.ServiceCase{
		{Base: domain.Base{ID: "s1"}, CustomerID: "c1", Status: domain.CaseStatusOpen},
		{Base: domain.Base{ID: "s2"}, CustomerID: "c1", Status: domain.CaseStatusInProgress},
		{Base: domain.Base{ID: "s3"}, CustomerID: "c2", Status: domain.CaseStatusCompleted},
		{Base: domain.Base{ID: "s4"}, CustomerID: "c2", Status: domain.CaseStatusCancelled},
	}
	for _, c := range seed {
		if _, err := repo.Save(ctx, c); err != nil {
			t.Fatalf("seed %s: %v", c.ID, err)
		}
	}

	open, err := repo.ListOpen(ctx)
	if err != nil {
		t.Fatalf("list open: %v", err)
	}
	if len(open) != 2 || open[0].ID != "s1" || open[1].ID != "s2" {
		t.Fatalf("expected s1 and s2 open, got %+v", open)
	}

	byCustomer, err := repo.ListByCustomer(ctx, "c2")
	if err != nil {
		t.Fatalf("list by customer: %v", err)
	}
	if len(byCustomer) != 2 {
		t.Fatalf("expected 2 cases for c2, got %d", len(byCustomer))
	}
}

func TestSetStatusTransitions(t *testing.T) {
	ctx := context.Background()
	repo := NewCases(newMemory(), zap.NewNop())

	if _, err := repo.Save(ctx, domain.ServiceCase{Base: domain.Base{ID: "s1"}, Status: domain.CaseStatusOpen}); err != nil {
		t.Fatalf("save: %v", err)
	}
	updated, err := repo.SetStatus(ctx, "s1", domain.CaseStatusCompleted)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if updated.Status != domain.CaseStatusCompleted {
		t.Fatalf("expected completed, got %q", updated.Status)
	}
}
