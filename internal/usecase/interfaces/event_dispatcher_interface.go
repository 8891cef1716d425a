package interfaces

import (
	"context"
	"rubrox/internal/domain/entities"
)

// IEventDispatcher publishes domain events after their aggregates are committed.
type IEventDispatcher interface {
	Dispatch(ctx context.Context, events []entities.DomainEvent) error
}
