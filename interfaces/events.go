package interfaces

import (
	"context"

	"github.com/customeros/trustwatch/dto"
	"github.com/customeros/trustwatch/internal/enum"
)

type EventPublisher interface {
	PublishVerificationCompleted(ctx context.Context, entityId string, entityType enum.EntityType, message dto.VerificationCompleted) error
	PublishFanoutEvent(ctx context.Context, entityId string, entityType enum.EntityType, message interface{}) error
	Close() error
}
