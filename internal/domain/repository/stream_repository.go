package repository

import (
	"context"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"
)

// StreamRepository - Redis Streams access
type StreamRepository interface {
	// ConsumeBatch reads up to maxCount pending messages without blocking
	ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error)

	AckMessage(ctx context.Context, stream, group, messageID string) error

	AckMessages(ctx context.Context, stream, group string, messageIDs []string) error

	// CreateConsumerGroup is a no-op when the group exists
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
