package ports

import (
	"context"

	"go.trai.ch/orchay/internal/core/domain"
)

// EventSink delivers notifications to a consumer.
//
//go:generate mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks
type EventSink interface {
	// Emit delivers a single notification. Delivery is best effort; an error
	// means the notification was not delivered to at least one consumer.
	Emit(ctx context.Context, n domain.Notification) error
}
