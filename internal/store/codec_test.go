package store

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"fieldcore/pkg/domain"
)

func TestDecodeCollectionAbsentAndEmptyPayloads(t *testing.T) {
	logger := zap.NewNop()
	cases := []struct {
		name    string
		raw     string
		present bool
	}{
		{"absent key", "", false},
		{"empty string", "", true},
		{"whitespace", "   \n", true},
		{"json null", "null", true},
		{"empty array", "[]", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := decodeCollection[domain.Customer]("customers", tc.raw, tc.present, logger)
			if items == nil {
				t.Fatal("expected non-nil empty slice")
			}
			if len(items) != 0 {
				t.Fatalf("expected empty collection, got %d", len(items))
			}
		})
	}
}

func TestDecodeCollectionMalformedLogsAndReturnsEmpty(t *testing.T) {
	items := decodeCollection[domain.Customer]("customers", `[{"id": 42}]`, true, zap.NewNop())
	if len(items) != 0 {
		t.Fatalf("expected malformed payload discarded, got %d records", len(items))
	}
}

func TestRoundTripSurvivesDates(t *testing.T) {
	created := time.Date(2024, 5, 12, 8, 30, 0, 0, time.UTC)
	email := "ops@acme.example"
	in := []domain.Customer{{
		Base:     domain.Base{ID: "c1", CreatedAt: created, UpdatedAt: created},
		Name:     "Acme",
		Phone:    "555-0100",
		Address:  "1 Main St",
		Email:    &email,
		IsActive: true,
	}}
	raw, err := encodeCollection("customers", in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out := decodeCollection[domain.Customer]("customers", raw, true, zap.NewNop())
	if len(out) != 1 {
		t.Fatalf("expected one record back, got %d", len(out))
	}
	if !out[0].CreatedAt.Equal(created) {
		t.Fatalf("expected dates to survive round trip, got %v", out[0].CreatedAt)
	}
	if out[0].Email == nil || *out[0].Email != email {
		t.Fatalf("expected email preserved, got %v", out[0].Email)
	}
}

func TestEncodeNilCollectionIsEmptyArray(t *testing.T) {
	raw, err := encodeCollection[domain.Customer]("customers", nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if raw != "[]" {
		t.Fatalf("expected empty array, got %q", raw)
	}
}
