package routes

import (
	"context"
	"errors"
	"fmt"
	"rubrox/internal/adapter/http/handlers"
	"rubrox/internal/adapter/persistence/memory"
	"rubrox/internal/adapter/persistence/repository"
	"rubrox/internal/infrastructure/cache"
	"rubrox/internal/infrastructure/config"
	"rubrox/internal/infrastructure/database"
	"rubrox/internal/infrastructure/lock"
	"rubrox/internal/infrastructure/messaging"
	"rubrox/internal/usecase"
	"rubrox/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type dependencies struct {
	lines     *usecase.BudgetLineUseCase
	movements *usecase.MovementUseCase
	flows     *usecase.ApprovalFlowUseCase

	budgetLineHandler   *handlers.BudgetLineHandler
	movementHandler     *handlers.MovementHandler
	approvalFlowHandler *handlers.ApprovalFlowHandler

	closers []func() error
}

// Close releases broker and cache connections.
func (d *dependencies) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		errs = append(errs, d.closers[i]())
	}
	return errors.Join(errs...)
}

type stores struct {
	lines     interfaces.IBudgetLineRepository
	movements interfaces.IMovementRepository
	flows     interfaces.IApprovalFlowRepository
	uow       interfaces.IUnitOfWork
	sequence  interfaces.ISequence
}

func buildDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*dependencies, error) {
	d := &dependencies{}
	fail := func(err error) (*dependencies, error) {
		_ = d.Close()
		return nil, err
	}

	var redisClient *redis.Client
	if cfg.Sequence == config.BackendRedis || cfg.Lock == config.BackendRedis {
		client, err := cache.Connect(ctx, cfg.Redis)
		if err != nil {
			return fail(err)
		}
		redisClient = client
		d.closers = append(d.closers, client.Close)
	}

	s, err := buildStores(ctx, cfg, redisClient)
	if err != nil {
		return fail(err)
	}

	var locker interfaces.ILocker = lock.NewLocalLocker()
	if cfg.Lock == config.BackendRedis {
		locker = lock.NewRedisLocker(redisClient, lock.DefaultOptions(), logger)
	}

	var dispatcher interfaces.IEventDispatcher = messaging.NewLogDispatcher(logger)
	if cfg.Events == config.BackendRabbitMQ {
		conn, err := messaging.Connect(cfg.AMQP)
		if err != nil {
			return fail(err)
		}
		d.closers = append(d.closers, conn.Close)
		dispatcher = messaging.NewRabbitMQDispatcher(conn.Channel, cfg.AMQP.Exchange, logger)
	}

	policy, err := usecase.DefaultRolePolicy().WithOverrides(cfg.RoleOverrides)
	if err != nil {
		return fail(fmt.Errorf("approval role overrides: %w", err))
	}

	d.lines = usecase.NewBudgetLineUseCase(s.lines, s.uow, locker, dispatcher, logger)
	d.movements = usecase.NewMovementUseCase(s.movements, s.lines, s.sequence, s.uow, locker, dispatcher, logger)
	executor := usecase.NewFlowActionExecutor(d.lines, d.movements)
	d.flows = usecase.NewApprovalFlowUseCase(s.flows, s.lines, s.movements, executor, policy, s.uow, locker, dispatcher, logger)

	d.budgetLineHandler = handlers.NewBudgetLineHandler(d.lines)
	d.movementHandler = handlers.NewMovementHandler(d.movements)
	d.approvalFlowHandler = handlers.NewApprovalFlowHandler(d.flows)

	logger.Info("[app][routes] dependencies ready",
		zap.String("storage", cfg.Storage),
		zap.String("sequence", cfg.Sequence),
		zap.String("lock", cfg.Lock),
		zap.String("events", cfg.Events))
	return d, nil
}

func buildStores(ctx context.Context, cfg *config.Config, redisClient *redis.Client) (stores, error) {
	var s stores
	var store *memory.Store

	switch cfg.Storage {
	case config.BackendMemory:
		store = memory.NewStore()
		s.lines = memory.NewBudgetLineRepository(store)
		s.movements = memory.NewMovementRepository(store)
		s.flows = memory.NewApprovalFlowRepository(store)
		s.uow = memory.NewUnitOfWork(store)
	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return s, err
		}
		s.lines = repository.NewBudgetLineDynamoRepository(ddb, cfg.Tables)
		s.movements = repository.NewMovementDynamoRepository(ddb, cfg.Tables)
		s.flows = repository.NewApprovalFlowDynamoRepository(ddb, cfg.Tables)
		s.uow = repository.NewDynamoUnitOfWork(ddb, cfg.Tables)
		if cfg.Sequence == config.BackendDynamoDB {
			s.sequence = repository.NewDynamoSequence(ddb, cfg.Tables)
		}
	}

	switch cfg.Sequence {
	case config.BackendRedis:
		s.sequence = cache.NewRedisSequence(redisClient)
	case config.BackendMemory:
		if store == nil {
			store = memory.NewStore()
		}
		s.sequence = memory.NewSequence(store)
	}
	return s, nil
}
