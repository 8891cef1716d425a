package interfaces

import (
	"context"
	"rubrox/internal/domain/entities"
	"time"
)

// IMovementRepository reads Movement aggregates. Writes go through ITransaction.
//
// Lookups return (nil, nil) when the movement does not exist.
type IMovementRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Movement, error)
	// ListByLine returns movements of a line, oldest first.
	ListByLine(ctx context.Context, lineID string) ([]*entities.Movement, error)
	ListByParent(ctx context.Context, parentID string) ([]*entities.Movement, error)
	// ListDue returns active movements of the given type whose due date is at or before now.
	ListDue(ctx context.Context, movementType entities.MovementType, now time.Time) ([]*entities.Movement, error)
}
