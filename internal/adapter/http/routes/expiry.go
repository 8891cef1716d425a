package routes

import (
	"context"
	"rubrox/internal/usecase"
	"time"

	"go.uber.org/zap"
)

// runExpirySweep expires due CDPs every interval until ctx is done.
func runExpirySweep(ctx context.Context, movements usecase.IMovementUseCase, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("[movement][sweep] started", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("[movement][sweep] stopped")
			return
		case now := <-ticker.C:
			expired, err := movements.ExpireDue(ctx, now.UTC())
			if err != nil {
				logger.Warn("[movement][sweep] sweep finished with errors", zap.Int("expired", expired), zap.Error(err))
			}
		}
	}
}
