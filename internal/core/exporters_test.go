package core

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestExpvarMetricsRecorderAggregates(t *testing.T) {
	rec := NewExpvarMetricsRecorder("")
	ctx := context.Background()

	rec.Observe(ctx, "create_contract", true, 10*time.Millisecond)
	rec.Observe(ctx, "create_contract", true, 5*time.Millisecond)
	rec.Observe(ctx, "create_contract", false, 1*time.Millisecond)
	rec.Observe(ctx, "", true, time.Millisecond) // ignored

	snap := rec.Snapshot()
	if snap.DurationsMS["create_contract"] != 16 {
		t.Fatalf("expected 16ms total, got %v", snap.DurationsMS["create_contract"])
	}
	if snap.Results["create_contract"]["success"] != 2 || snap.Results["create_contract"]["error"] != 1 {
		t.Fatalf("unexpected result counters: %v", snap.Results["create_contract"])
	}
	if rec.Name() == "" {
		t.Fatal("expected a generated export name")
	}
}

func TestJSONTracerEmitsSpans(t *testing.T) {
	var buf bytes.Buffer
	tr := NewJSONTracer(&buf)

	_, span := tr.Start(context.Background(), "archive_customer")
	span.End(nil)
	_, span = tr.Start(context.Background(), "archive_customer")
	span.End(errors.New("boom"))

	entries := tr.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(entries))
	}
	if entries[0].Status != "success" || entries[1].Status != "error" || entries[1].Error != "boom" {
		t.Fatalf("unexpected span statuses: %+v", entries)
	}
	if lines := strings.Count(strings.TrimSpace(buf.String()), "\n") + 1; lines != 2 {
		t.Fatalf("expected 2 JSON lines, got %d", lines)
	}
}

func TestPrometheusRecorderRegistersAndObserves(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPrometheusMetricsRecorder(reg)
	if err != nil {
		t.Fatalf("new recorder: %v", err)
	}
	rec.Observe(context.Background(), "create_contract", true, 20*time.Millisecond)
	rec.Observe(context.Background(), "create_contract", false, 5*time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := map[string]bool{}
	for _, mf := range families {
		found[mf.GetName()] = true
	}
	if !found["fieldcore_service_operation_duration_seconds"] {
		t.Fatal("expected duration histogram registered")
	}
	if !found["fieldcore_service_operation_results_total"] {
		t.Fatal("expected result counter registered")
	}

	// Double registration against the same registry must fail.
	if _, err := NewPrometheusMetricsRecorder(reg); err == nil {
		t.Fatal("expected duplicate registration to error")
	}
}
