package s3

import (
	"context"
	"testing"
)

func TestS3StoreContractAgainstMock(t *testing.T) {
	ctx := context.Background()
	s := NewMockForTests()

	if _, ok, err := s.Get(ctx, "customers"); err != nil || ok {
		t.Fatalf("expected absent key without error, ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "customers", `[{"id":"c1"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := s.Get(ctx, "customers")
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%v err=%v", ok, err)
	}
	if v != `[{"id":"c1"}]` {
		t.Fatalf("unexpected payload %q", v)
	}
	if err := s.Remove(ctx, "customers"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "customers"); ok {
		t.Fatal("expected key gone after remove")
	}
}
