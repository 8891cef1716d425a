package messaging

import (
	"context"
	"rubrox/internal/domain/entities"
	"rubrox/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// LogDispatcher writes events to the log. Used when no broker is configured.
type LogDispatcher struct {
	logger *zap.Logger
}

var _ interfaces.IEventDispatcher = (*LogDispatcher)(nil)

func NewLogDispatcher(logger *zap.Logger) *LogDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Dispatch(_ context.Context, events []entities.DomainEvent) error {
	for _, e := range events {
		d.logger.Info("[events][log] "+e.EventName(),
			zap.String("event_id", e.EventID()),
			zap.String("aggregate_id", e.AggregateID()),
			zap.Time("occurred_at", e.OccurredAt()),
			zap.Any("event", e))
	}
	return nil
}
