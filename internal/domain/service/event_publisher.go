package service

import (
	"context"

	"eats/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEngagementEvent publishes an engagement event for async counting
	PublishEngagementEvent(ctx context.Context, event *entity.EngagementEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
