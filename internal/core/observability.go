package core

import (
	"context"
	"time"
)

// MetricsRecorder receives one observation per facade operation.
type MetricsRecorder interface {
	Observe(ctx context.Context, operation string, success bool, duration time.Duration)
}

// TraceSpan represents one in-flight operation span.
type TraceSpan interface {
	End(err error)
}

// Tracer starts spans around facade operations.
type Tracer interface {
	Start(ctx context.Context, operation string) (context.Context, TraceSpan)
}

// observe wraps a facade operation with optional tracing and metrics.
func (s *Service) observe(ctx context.Context, operation string, fn func(context.Context) error) error {
	start := time.Now()
	var span TraceSpan
	if s.tracer != nil {
		ctx, span = s.tracer.Start(ctx, operation)
	}
	err := fn(ctx)
	if span != nil {
		span.End(err)
	}
	if s.metrics != nil {
		s.metrics.Observe(ctx, operation, err == nil, time.Since(start))
	}
	return err
}
