package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/orchay/internal/core/domain"
)

// BatchObserver receives a summary of every processed batch.
type BatchObserver interface {
	OnBatch(summary domain.BatchSummary)
}

// Bridge implements sdktrace.SpanProcessor to forward batch spans to an observer.
type Bridge struct {
	observer BatchObserver
}

// NewBridge returns a new Bridge.
func NewBridge(observer BatchObserver) *Bridge {
	return &Bridge{
		observer: observer,
	}
}

// OnStart does nothing; batches are reported once complete.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.observer == nil || s.Name() != domain.BatchSpanName {
		return
	}

	summary := domain.BatchSummary{
		Duration: s.EndTime().Sub(s.StartTime()),
	}
	for _, kv := range s.Attributes() {
		switch string(kv.Key) {
		case domain.AttrBatchSize:
			summary.Size = int(kv.Value.AsInt64())
		case domain.AttrBatchEmitted:
			summary.Emitted = int(kv.Value.AsInt64())
		}
	}

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "batch failed"
		}
		summary.Err = errors.New(desc)
	}

	b.observer.OnBatch(summary)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
